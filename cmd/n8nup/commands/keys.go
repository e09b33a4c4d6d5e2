package commands

import (
	"github.com/spf13/cobra"

	"github.com/n8nup/n8nup/cmd/n8nup/handlers"
)

// Keys returns the command for creating and importing the SSH key pair.
func Keys() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Generate an SSH key pair and register it with AWS",
		Long: `Generate an RSA key pair for SSH access and register the public key
with AWS under the configured key name.

The private key is written next to the configuration file as
<key_name>.pem with owner-only permissions. An existing key file or an
already registered key pair is never overwritten.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Keys(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: n8nup.yaml)")

	return cmd
}
