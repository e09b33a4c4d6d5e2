package commands

import (
	"github.com/spf13/cobra"

	"github.com/n8nup/n8nup/cmd/n8nup/handlers"
)

// Apply returns the command for provisioning the deployment.
//
// Optional flags:
//
//	--config, -c: Path to deployment configuration YAML file (default: auto-detect n8nup.yaml)
//
// Credentials come from the standard AWS chain (environment variables,
// shared config, instance role).
func Apply() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Create or converge the deployment",
		Long: `Create or converge your n8n deployment.

This command provisions everything the deployment needs on AWS: a security
group allowing SSH, HTTP, and HTTPS, an EC2 instance that brings up n8n in
Docker behind nginx with a Let's Encrypt certificate on first boot, and a
static Elastic IP bound to the instance.

Re-running apply is safe: existing resources are reused and drifted
security group rules are converged. The instance is never relaunched.

If no config file is specified, it looks for n8nup.yaml in the current
directory. Use 'n8nup init' to create a configuration file.

Examples:
  # Provision using n8nup.yaml in current directory
  n8nup apply

  # Provision using a specific config file
  n8nup apply -c production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Apply(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: n8nup.yaml)")

	return cmd
}
