// Package destroy handles deployment teardown and resource cleanup.
package destroy

import (
	"errors"
	"fmt"

	"github.com/n8nup/n8nup/internal/provisioning"
	"github.com/n8nup/n8nup/internal/util/naming"
)

// Provisioner handles deployment destruction.
type Provisioner struct{}

// NewProvisioner creates a new destroy provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return "destroy"
}

// Provision tears down the deployment's resources in dependency order:
// the address is released before the instance terminates, and the security
// group goes last because the instance references it until termination
// completes. Failures do not abort the remaining steps; all errors are
// reported together so a partial teardown can be re-run.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	name := ctx.Config.Name
	ctx.Observer.Printf("[destroy] tearing down deployment %s", name)

	var errs []error

	addressName := naming.Address(name)
	provisioning.LogResourceDeleting(ctx.Observer, p.Name(), "elastic IP", addressName)
	if err := ctx.Infra.ReleaseAddress(ctx, addressName); err != nil {
		errs = append(errs, fmt.Errorf("release address: %w", err))
	} else {
		provisioning.LogResourceDeleted(ctx.Observer, p.Name(), "elastic IP", addressName)
	}

	instanceName := naming.Instance(name)
	provisioning.LogResourceDeleting(ctx.Observer, p.Name(), "instance", instanceName)
	if err := ctx.Infra.TerminateInstance(ctx, instanceName); err != nil {
		errs = append(errs, fmt.Errorf("terminate instance: %w", err))
	} else {
		provisioning.LogResourceDeleted(ctx.Observer, p.Name(), "instance", instanceName)
	}

	groupName := naming.SecurityGroup(name)
	provisioning.LogResourceDeleting(ctx.Observer, p.Name(), "security group", groupName)
	if err := ctx.Infra.DeleteSecurityGroup(ctx, groupName); err != nil {
		errs = append(errs, fmt.Errorf("delete security group: %w", err))
	} else {
		provisioning.LogResourceDeleted(ctx.Observer, p.Name(), "security group", groupName)
	}

	if len(errs) > 0 {
		return fmt.Errorf("teardown incomplete for %s: %w", name, errors.Join(errs...))
	}

	ctx.Observer.Printf("[destroy] deployment %s destroyed", name)
	return nil
}
