package commands

import (
	"github.com/spf13/cobra"

	"github.com/n8nup/n8nup/cmd/n8nup/handlers"
)

// Destroy returns the command for tearing down the deployment.
func Destroy() *cobra.Command {
	var (
		configPath string
		yes        bool
	)

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Tear down the deployment",
		Long: `Tear down the deployment and release all of its AWS resources.

The Elastic IP is released, the instance is terminated, and the security
group is deleted. The imported key pair and your local private key file
are kept so they can be reused.

This does not touch the external Postgres database.

Examples:
  # Destroy with confirmation prompt
  n8nup destroy

  # Destroy without prompting
  n8nup destroy --yes`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Destroy(cmd.Context(), configPath, yes)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: n8nup.yaml)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
