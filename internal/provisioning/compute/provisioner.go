// Package compute launches the deployment's server with its first-boot
// bring-up script.
package compute

import (
	"fmt"

	"github.com/n8nup/n8nup/internal/config"
	"github.com/n8nup/n8nup/internal/platform/aws"
	"github.com/n8nup/n8nup/internal/provisioning"
	"github.com/n8nup/n8nup/internal/userdata"
	"github.com/n8nup/n8nup/internal/util/keygen"
	"github.com/n8nup/n8nup/internal/util/naming"
	"github.com/n8nup/n8nup/internal/util/tags"
)

const adminPasswordLength = 20

// Provisioner handles the compute instance.
type Provisioner struct{}

// NewProvisioner creates a new compute provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return "compute"
}

// Provision implements the provisioning.Phase interface.
//
// The admin password is generated fresh for every run but only becomes the
// instance's credential when this run actually launches it: an existing
// instance keeps the credential baked into its original first-boot script,
// so State.AdminPassword stays empty in that case.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	password, err := keygen.GeneratePassword(adminPasswordLength)
	if err != nil {
		return fmt.Errorf("failed to generate admin password: %w", err)
	}

	script, err := userdata.Script(userdata.Params{
		Config:        ctx.Config,
		AdminPassword: password,
	})
	if err != nil {
		return fmt.Errorf("failed to render first-boot script: %w", err)
	}

	name := naming.Instance(ctx.Config.Name)
	result, err := ctx.Infra.EnsureInstance(ctx, aws.InstanceCreateOpts{
		Name:            name,
		ImageID:         ctx.State.ImageID,
		InstanceType:    ctx.Config.InstanceType,
		KeyName:         ctx.Config.KeyName,
		SecurityGroupID: ctx.State.SecurityGroupID,
		UserData:        script,
		Tags: tags.NewBuilder(ctx.Config.Name).
			WithName(name).
			WithRole(tags.RoleServer).
			Build(),
	})
	if err != nil {
		return err
	}

	ctx.State.InstanceID = result.InstanceID
	ctx.State.InstanceCreated = result.Created
	if result.Created {
		ctx.State.AdminPassword = config.Secret(password)
		provisioning.LogResourceCreated(ctx.Observer, p.Name(), "instance", name, result.InstanceID)
	} else {
		provisioning.LogResourceExists(ctx.Observer, p.Name(), "instance", name, result.InstanceID)
	}

	return nil
}
