// Package network converges the deployment's security group on the fixed
// ingress allow-list.
package network

import (
	"fmt"

	"github.com/n8nup/n8nup/internal/config"
	"github.com/n8nup/n8nup/internal/provisioning"
	"github.com/n8nup/n8nup/internal/util/naming"
	"github.com/n8nup/n8nup/internal/util/tags"
)

// Provisioner handles the security group.
type Provisioner struct{}

// NewProvisioner creates a new network provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return "network"
}

// Provision implements the provisioning.Phase interface.
//
// Only SSH, HTTP, and HTTPS are reachable from outside. The application
// port stays loopback-only behind the reverse proxy, so it is never part
// of the allow-list.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	name := naming.SecurityGroup(ctx.Config.Name)

	existing, err := ctx.Infra.GetSecurityGroup(ctx, name)
	if err != nil {
		return err
	}

	groupTags := tags.NewBuilder(ctx.Config.Name).
		WithName(name).
		WithRole(tags.RolePolicy).
		Build()

	groupID, err := ctx.Infra.EnsureSecurityGroup(ctx, name,
		fmt.Sprintf("web and SSH access for %s", ctx.Config.Name),
		config.AllowedIngressPorts, groupTags)
	if err != nil {
		return err
	}
	ctx.State.SecurityGroupID = groupID

	if existing != nil {
		provisioning.LogResourceExists(ctx.Observer, p.Name(), "security group", name, groupID)
	} else {
		provisioning.LogResourceCreated(ctx.Observer, p.Name(), "security group", name, groupID)
	}

	return nil
}
