package aws

import (
	"context"
	"fmt"

	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// MockClient is a mock implementation of InfrastructureManager for testing.
// Each method delegates to the corresponding Func field when set and
// otherwise returns a benign default, so tests only stub what they assert.
type MockClient struct {
	ResolveImageFunc        func(ctx context.Context, override string) (string, error)
	KeyPairExistsFunc       func(ctx context.Context, name string) (bool, error)
	ImportKeyPairFunc       func(ctx context.Context, name, publicKey string, tags map[string]string) (string, error)
	DeleteKeyPairFunc       func(ctx context.Context, name string) error
	EnsureSecurityGroupFunc func(ctx context.Context, name, description string, ports []int32, tags map[string]string) (string, error)
	GetSecurityGroupFunc    func(ctx context.Context, name string) (*ec2types.SecurityGroup, error)
	DeleteSecurityGroupFunc func(ctx context.Context, name string) error
	EnsureInstanceFunc      func(ctx context.Context, opts InstanceCreateOpts) (*EnsureInstanceResult, error)
	GetInstanceByNameFunc   func(ctx context.Context, name string) (*ec2types.Instance, error)
	TerminateInstanceFunc   func(ctx context.Context, name string) error
	EnsureAddressFunc       func(ctx context.Context, name string, tags map[string]string) (*Allocation, error)
	AssociateAddressFunc    func(ctx context.Context, allocationID, instanceID string) error
	ReleaseAddressFunc      func(ctx context.Context, name string) error
}

var _ InfrastructureManager = (*MockClient)(nil)

func (m *MockClient) ResolveImage(ctx context.Context, override string) (string, error) {
	if m.ResolveImageFunc != nil {
		return m.ResolveImageFunc(ctx, override)
	}
	if override != "" {
		return override, nil
	}
	return "ami-mock", nil
}

func (m *MockClient) KeyPairExists(ctx context.Context, name string) (bool, error) {
	if m.KeyPairExistsFunc != nil {
		return m.KeyPairExistsFunc(ctx, name)
	}
	return true, nil
}

func (m *MockClient) ImportKeyPair(ctx context.Context, name, publicKey string, tags map[string]string) (string, error) {
	if m.ImportKeyPairFunc != nil {
		return m.ImportKeyPairFunc(ctx, name, publicKey, tags)
	}
	return fmt.Sprintf("key-%s", name), nil
}

func (m *MockClient) DeleteKeyPair(ctx context.Context, name string) error {
	if m.DeleteKeyPairFunc != nil {
		return m.DeleteKeyPairFunc(ctx, name)
	}
	return nil
}

func (m *MockClient) EnsureSecurityGroup(ctx context.Context, name, description string, ports []int32, tags map[string]string) (string, error) {
	if m.EnsureSecurityGroupFunc != nil {
		return m.EnsureSecurityGroupFunc(ctx, name, description, ports, tags)
	}
	return "sg-mock", nil
}

func (m *MockClient) GetSecurityGroup(ctx context.Context, name string) (*ec2types.SecurityGroup, error) {
	if m.GetSecurityGroupFunc != nil {
		return m.GetSecurityGroupFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockClient) DeleteSecurityGroup(ctx context.Context, name string) error {
	if m.DeleteSecurityGroupFunc != nil {
		return m.DeleteSecurityGroupFunc(ctx, name)
	}
	return nil
}

func (m *MockClient) EnsureInstance(ctx context.Context, opts InstanceCreateOpts) (*EnsureInstanceResult, error) {
	if m.EnsureInstanceFunc != nil {
		return m.EnsureInstanceFunc(ctx, opts)
	}
	return &EnsureInstanceResult{InstanceID: "i-mock", Created: true}, nil
}

func (m *MockClient) GetInstanceByName(ctx context.Context, name string) (*ec2types.Instance, error) {
	if m.GetInstanceByNameFunc != nil {
		return m.GetInstanceByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockClient) TerminateInstance(ctx context.Context, name string) error {
	if m.TerminateInstanceFunc != nil {
		return m.TerminateInstanceFunc(ctx, name)
	}
	return nil
}

func (m *MockClient) EnsureAddress(ctx context.Context, name string, tags map[string]string) (*Allocation, error) {
	if m.EnsureAddressFunc != nil {
		return m.EnsureAddressFunc(ctx, name, tags)
	}
	return &Allocation{AllocationID: "eipalloc-mock", PublicIP: "203.0.113.10"}, nil
}

func (m *MockClient) AssociateAddress(ctx context.Context, allocationID, instanceID string) error {
	if m.AssociateAddressFunc != nil {
		return m.AssociateAddressFunc(ctx, allocationID, instanceID)
	}
	return nil
}

func (m *MockClient) ReleaseAddress(ctx context.Context, name string) error {
	if m.ReleaseAddressFunc != nil {
		return m.ReleaseAddressFunc(ctx, name)
	}
	return nil
}
