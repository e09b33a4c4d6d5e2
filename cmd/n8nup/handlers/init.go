package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/n8nup/n8nup/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// runWizard runs the interactive configuration wizard.
	runWizard = config.RunWizard

	// writeConfigFile writes the configuration to disk.
	writeConfigFile = config.WriteFile
)

// Init runs the interactive wizard and writes the resulting configuration.
func Init(ctx context.Context, outputPath string) error {
	if _, err := os.Stat(outputPath); err == nil {
		return fmt.Errorf("%s already exists; pass --output to write elsewhere", outputPath)
	}

	result, err := runWizard(ctx)
	if err != nil {
		return err
	}

	cfg := result.ToConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := writeConfigFile(cfg, outputPath); err != nil {
		return err
	}

	fmt.Printf("configuration written to %s\n", outputPath)
	fmt.Println("next: run 'n8nup keys' to create the SSH key pair, then 'n8nup apply'")
	return nil
}
