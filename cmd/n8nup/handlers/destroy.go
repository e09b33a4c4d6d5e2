package handlers

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/n8nup/n8nup/internal/provisioning"
	"github.com/n8nup/n8nup/internal/provisioning/destroy"
)

// Provisioner interface for testing - matches provisioning.Phase.
type Provisioner interface {
	Provision(ctx *provisioning.Context) error
}

// Factory function variables for destroy - can be replaced in tests.
var (
	// newDestroyProvisioner creates a new destroy provisioner.
	newDestroyProvisioner = func() Provisioner {
		return destroy.NewProvisioner()
	}

	// confirmInput reads the confirmation answer (for testing injection).
	confirmInput = func() (string, error) {
		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		return strings.TrimSpace(answer), err
	}
)

// Destroy tears down the deployment's AWS resources in dependency order.
// The key pair registration and local private key are kept.
func Destroy(ctx context.Context, configPath string, skipConfirmation bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if !skipConfirmation {
		fmt.Printf("This will destroy deployment %q in %s. Type the deployment name to confirm: ", cfg.Name, cfg.Region)
		answer, err := confirmInput()
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if answer != cfg.Name {
			return fmt.Errorf("confirmation did not match deployment name, aborting")
		}
	}

	client, err := newInfraClient(ctx, cfg.Region)
	if err != nil {
		return err
	}

	pCtx := newProvisioningContext(ctx, cfg, client)
	return newDestroyProvisioner().Provision(pCtx)
}
