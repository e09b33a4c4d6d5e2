// Package preflight validates the configuration and resolves external
// prerequisites before any resource is created.
package preflight

import (
	"fmt"

	"github.com/n8nup/n8nup/internal/provisioning"
)

// Provisioner handles pre-flight checks: configuration validation, key pair
// presence, and base image resolution.
type Provisioner struct{}

// NewProvisioner creates a new preflight provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return "preflight"
}

// Provision implements the provisioning.Phase interface.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	if err := ctx.Config.Validate(); err != nil {
		return err
	}

	// The key pair must already be registered; launching without it would
	// produce an unreachable server.
	exists, err := ctx.Infra.KeyPairExists(ctx, ctx.Config.KeyName)
	if err != nil {
		return fmt.Errorf("failed to check key pair %s: %w", ctx.Config.KeyName, err)
	}
	if !exists {
		return fmt.Errorf("key pair %q is not registered in region %s; run 'n8nup keys' to create and import one", ctx.Config.KeyName, ctx.Config.Region)
	}

	imageID, err := ctx.Infra.ResolveImage(ctx, ctx.Config.AMI)
	if err != nil {
		return err
	}
	ctx.State.ImageID = imageID
	ctx.Observer.Printf("[preflight] using image %s", imageID)

	return nil
}
