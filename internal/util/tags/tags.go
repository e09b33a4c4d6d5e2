// Package tags provides consistent tagging for AWS resources.
//
// All tags use the n8nup.dev key prefix and follow a builder pattern for
// constructing tag sets with deployment name, resource role, and manager
// identification. Uniform tags are what make lookup and cleanup by
// deployment possible.
package tags

import (
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// Standard tag keys for AWS resources.
const (
	// KeyName is the conventional AWS display-name tag.
	KeyName = "Name"

	// KeyDeployment identifies which deployment a resource belongs to.
	KeyDeployment = "n8nup.dev/deployment"

	// KeyRole identifies the role of a resource (server, address, policy).
	KeyRole = "n8nup.dev/role"

	// KeyManagedBy identifies the management system.
	KeyManagedBy = "n8nup.dev/managed-by"
)

// Role values.
const (
	RoleServer  = "server"
	RoleAddress = "address"
	RolePolicy  = "policy"
	RoleKey     = "key"
)

// ManagedBy value.
const ManagedByN8nup = "n8nup"

// Builder provides a fluent interface for building AWS resource tag sets.
type Builder struct {
	tags map[string]string
}

// NewBuilder creates a new tag builder with the deployment name pre-set.
func NewBuilder(deployment string) *Builder {
	return &Builder{
		tags: map[string]string{
			KeyDeployment: deployment,
			KeyManagedBy:  ManagedByN8nup,
		},
	}
}

// WithName sets the Name tag.
func (b *Builder) WithName(name string) *Builder {
	b.tags[KeyName] = name
	return b
}

// WithRole sets the role tag.
func (b *Builder) WithRole(role string) *Builder {
	b.tags[KeyRole] = role
	return b
}

// Build returns the tag set as a plain map.
func (b *Builder) Build() map[string]string {
	out := make(map[string]string, len(b.tags))
	for k, v := range b.tags {
		out[k] = v
	}
	return out
}

// ToEC2 converts a tag map to the EC2 SDK representation, sorted by key for
// deterministic request bodies.
func ToEC2(tags map[string]string) []ec2types.Tag {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]ec2types.Tag, 0, len(keys))
	for _, k := range keys {
		out = append(out, ec2types.Tag{
			Key:   aws.String(k),
			Value: aws.String(tags[k]),
		})
	}
	return out
}

// Spec builds a TagSpecification for the given EC2 resource type.
func Spec(resourceType ec2types.ResourceType, tags map[string]string) ec2types.TagSpecification {
	return ec2types.TagSpecification{
		ResourceType: resourceType,
		Tags:         ToEC2(tags),
	}
}
