// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the n8nup CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "n8nup",
		Short: "Provision a single-instance n8n deployment on AWS",
	}

	// Core commands
	cmd.AddCommand(Init())
	cmd.AddCommand(Apply())
	cmd.AddCommand(Status())
	cmd.AddCommand(Destroy())

	// Utility commands
	cmd.AddCommand(Keys())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
