package commands

import (
	"github.com/spf13/cobra"

	"github.com/n8nup/n8nup/cmd/n8nup/handlers"
)

// Status returns the command for inspecting the deployment.
func Status() *cobra.Command {
	var (
		configPath string
		probe      bool
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the deployment's current state",
		Long: `Show the current state of the deployment's AWS resources.

Reports the instance, its state and public address, and the security
group. Nothing is created or modified. With --probe, additionally checks
that the service URL answers over HTTPS.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Status(cmd.Context(), configPath, probe)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: n8nup.yaml)")
	cmd.Flags().BoolVar(&probe, "probe", false, "Check that the service URL is reachable over HTTPS")

	return cmd
}
