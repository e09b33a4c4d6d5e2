package aws

import (
	"context"

	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// InstanceCreateOpts holds all parameters for launching the instance.
type InstanceCreateOpts struct {
	Name            string
	ImageID         string
	InstanceType    string
	KeyName         string
	SecurityGroupID string
	// UserData is the plain-text first-boot script; it is base64-encoded on
	// the wire as the EC2 API requires.
	UserData string
	Tags     map[string]string
}

// EnsureInstanceResult reports the ensured instance and whether this call
// created it. Callers use Created to decide whether first-boot-only
// artifacts (like the generated admin credential) apply.
type EnsureInstanceResult struct {
	InstanceID string
	Created    bool
}

// Allocation describes an Elastic IP allocation.
type Allocation struct {
	AllocationID string
	PublicIP     string
	// InstanceID is the currently associated instance, empty when unbound.
	InstanceID string
}

// ImageResolver resolves the base image for the instance.
type ImageResolver interface {
	// ResolveImage returns the image ID to launch from. A non-empty override
	// is validated to exist; otherwise the latest Ubuntu LTS image for the
	// region is returned.
	ResolveImage(ctx context.Context, override string) (string, error)
}

// KeyPairManager defines the interface for managing EC2 key pairs.
type KeyPairManager interface {
	KeyPairExists(ctx context.Context, name string) (bool, error)
	ImportKeyPair(ctx context.Context, name, publicKey string, tags map[string]string) (string, error)
	DeleteKeyPair(ctx context.Context, name string) error
}

// SecurityGroupManager defines the interface for managing the access policy.
type SecurityGroupManager interface {
	// EnsureSecurityGroup converges on a security group whose ingress rules
	// are exactly the given TCP ports, open to any source. Extra rules on an
	// existing group are revoked.
	EnsureSecurityGroup(ctx context.Context, name, description string, ports []int32, tags map[string]string) (string, error)
	GetSecurityGroup(ctx context.Context, name string) (*ec2types.SecurityGroup, error)
	DeleteSecurityGroup(ctx context.Context, name string) error
}

// InstanceManager defines the interface for managing the compute instance.
type InstanceManager interface {
	// EnsureInstance returns the existing instance with the given Name tag,
	// or launches a new one. An existing instance is never relaunched and
	// its user data is never replaced.
	EnsureInstance(ctx context.Context, opts InstanceCreateOpts) (*EnsureInstanceResult, error)
	GetInstanceByName(ctx context.Context, name string) (*ec2types.Instance, error)
	TerminateInstance(ctx context.Context, name string) error
}

// AddressManager defines the interface for managing the static address.
type AddressManager interface {
	EnsureAddress(ctx context.Context, name string, tags map[string]string) (*Allocation, error)
	// AssociateAddress binds the allocation to the instance. Binding to the
	// already-associated instance is a no-op.
	AssociateAddress(ctx context.Context, allocationID, instanceID string) error
	ReleaseAddress(ctx context.Context, name string) error
}

// InfrastructureManager aggregates all AWS operations the provisioning
// pipeline needs.
type InfrastructureManager interface {
	ImageResolver
	KeyPairManager
	SecurityGroupManager
	InstanceManager
	AddressManager
}
