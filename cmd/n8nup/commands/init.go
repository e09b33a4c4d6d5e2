package commands

import (
	"github.com/spf13/cobra"

	"github.com/n8nup/n8nup/cmd/n8nup/handlers"
)

// Init returns the command for interactively creating a deployment configuration.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a deployment configuration",
		Long: `Interactively create a deployment configuration file.

This command guides you through configuring your n8n deployment
step by step. It will ask about:

  - Deployment identity (name, region, key pair)
  - Public endpoint (domain and certificate contact email)
  - External Postgres database coordinates
  - The n8n encryption key (generated if left empty)

Secret inputs are masked and the resulting file is written with
owner-only permissions.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "n8nup.yaml", "Output file path")

	return cmd
}
