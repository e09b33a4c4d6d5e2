// Package address allocates the deployment's Elastic IP and binds it to
// the instance.
package address

import (
	"github.com/n8nup/n8nup/internal/provisioning"
	"github.com/n8nup/n8nup/internal/util/naming"
	"github.com/n8nup/n8nup/internal/util/tags"
)

// Provisioner handles the static public address.
type Provisioner struct{}

// NewProvisioner creates a new address provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return "address"
}

// Provision implements the provisioning.Phase interface.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	name := naming.Address(ctx.Config.Name)

	alloc, err := ctx.Infra.EnsureAddress(ctx, name, tags.NewBuilder(ctx.Config.Name).
		WithName(name).
		WithRole(tags.RoleAddress).
		Build())
	if err != nil {
		return err
	}

	if alloc.InstanceID == ctx.State.InstanceID && alloc.InstanceID != "" {
		provisioning.LogResourceExists(ctx.Observer, p.Name(), "elastic IP", name, alloc.AllocationID)
	} else {
		if err := ctx.Infra.AssociateAddress(ctx, alloc.AllocationID, ctx.State.InstanceID); err != nil {
			return err
		}
		provisioning.LogResourceCreated(ctx.Observer, p.Name(), "elastic IP", name, alloc.AllocationID)
	}

	ctx.State.AllocationID = alloc.AllocationID
	ctx.State.PublicIP = alloc.PublicIP

	return nil
}
