// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/n8nup/n8nup/internal/config"
	"github.com/n8nup/n8nup/internal/platform/aws"
	"github.com/n8nup/n8nup/internal/provisioning"
	"github.com/n8nup/n8nup/internal/provisioning/address"
	"github.com/n8nup/n8nup/internal/provisioning/compute"
	"github.com/n8nup/n8nup/internal/provisioning/network"
	"github.com/n8nup/n8nup/internal/provisioning/preflight"
	"github.com/n8nup/n8nup/internal/report"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newInfraClient creates a new infrastructure client for the region.
	newInfraClient = func(ctx context.Context, region string) (aws.InfrastructureManager, error) {
		return aws.NewRealClient(ctx, region)
	}

	// newProvisioningContext creates a new provisioning context.
	newProvisioningContext = provisioning.NewContext

	// applyPhases returns the ordered apply pipeline.
	applyPhases = func() []provisioning.Phase {
		return []provisioning.Phase{
			preflight.NewProvisioner(),
			network.NewProvisioner(),
			compute.NewProvisioner(),
			address.NewProvisioner(),
		}
	}

	// writeFile writes data to a file (for testing injection).
	writeFile = os.WriteFile

	// loadConfigFile loads config from file (for testing injection).
	loadConfigFile = config.LoadFile

	// findConfigFile finds the default config file (for testing injection).
	findConfigFile = config.FindConfigFile

	// renderReport writes the apply summary (for testing injection).
	renderReport = report.Render
)

// Apply provisions the n8n deployment on AWS.
//
// The pipeline runs preflight checks, converges the security group,
// launches the instance with its first-boot script, and binds the Elastic
// IP. When this run launched the instance, the generated admin credential
// is written to the access file; it appears nowhere else.
func Apply(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	client, err := newInfraClient(ctx, cfg.Region)
	if err != nil {
		return err
	}

	pCtx := newProvisioningContext(ctx, cfg, client)
	runErr := provisioning.RunPhases(pCtx, applyPhases())

	// The credential lives only in the launched instance and in State. It
	// must reach the access file even when a later phase fails: a re-run
	// converges on the existing instance and never regenerates it.
	if pCtx.State.InstanceCreated {
		if err := persistAccessData(cfg, pCtx.State); err != nil {
			return errors.Join(runErr, err)
		}
	}
	if runErr != nil {
		return runErr
	}

	renderReport(os.Stdout, cfg.Name, report.FromState(cfg, pCtx.State))
	return nil
}

// loadConfig resolves and loads the configuration file.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		found, err := findConfigFile()
		if err != nil {
			return nil, fmt.Errorf("no configuration file found; run 'n8nup init' or pass --config: %w", err)
		}
		configPath = found
	}
	return loadConfigFile(configPath)
}
