package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/n8nup/n8nup/internal/util/retry"
	"github.com/n8nup/n8nup/internal/util/tags"
)

// getAddressByName returns the Elastic IP carrying the given Name tag, or
// nil when none exists.
func (c *RealClient) getAddressByName(ctx context.Context, name string) (*ec2types.Address, error) {
	out, err := c.api.DescribeAddresses(ctx, &ec2.DescribeAddressesInput{
		Filters: []ec2types.Filter{
			{Name: awssdk.String("tag:" + tags.KeyName), Values: []string{name}},
		},
	})
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to describe address %s: %w", name, err)
	}
	if len(out.Addresses) == 0 {
		return nil, nil
	}
	return &out.Addresses[0], nil
}

// EnsureAddress returns the Elastic IP with the given name, allocating one
// if none exists. The public IP therefore survives re-runs and instance
// replacement.
func (c *RealClient) EnsureAddress(ctx context.Context, name string, tagSet map[string]string) (*Allocation, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.AddressBind)
	defer cancel()

	existing, err := c.getAddressByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &Allocation{
			AllocationID: awssdk.ToString(existing.AllocationId),
			PublicIP:     awssdk.ToString(existing.PublicIp),
			InstanceID:   awssdk.ToString(existing.InstanceId),
		}, nil
	}

	out, err := c.api.AllocateAddress(ctx, &ec2.AllocateAddressInput{
		Domain: ec2types.DomainTypeVpc,
		TagSpecifications: []ec2types.TagSpecification{
			tags.Spec(ec2types.ResourceTypeElasticIp, tagSet),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to allocate address %s: %w", name, classify(err))
	}

	return &Allocation{
		AllocationID: awssdk.ToString(out.AllocationId),
		PublicIP:     awssdk.ToString(out.PublicIp),
	}, nil
}

// AssociateAddress binds the allocation to the instance. Binding an
// allocation already associated with the same instance is a no-op, so the
// pipeline can re-run freely.
func (c *RealClient) AssociateAddress(ctx context.Context, allocationID, instanceID string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.AddressBind)
	defer cancel()

	out, err := c.api.DescribeAddresses(ctx, &ec2.DescribeAddressesInput{
		AllocationIds: []string{allocationID},
	})
	if err != nil {
		return fmt.Errorf("failed to describe allocation %s: %w", allocationID, err)
	}
	if len(out.Addresses) > 0 && awssdk.ToString(out.Addresses[0].InstanceId) == instanceID {
		return nil
	}

	return retry.WithExponentialBackoff(ctx, func() error {
		_, err := c.api.AssociateAddress(ctx, &ec2.AssociateAddressInput{
			AllocationId:       awssdk.String(allocationID),
			InstanceId:         awssdk.String(instanceID),
			AllowReassociation: awssdk.Bool(true),
		})
		if err != nil {
			if isThrottled(err) {
				return err
			}
			return classify(err)
		}
		return nil
	},
		retry.WithMaxRetries(c.timeouts.RetryMaxAttempts),
		retry.WithInitialDelay(c.timeouts.RetryInitialDelay),
	)
}

// ReleaseAddress disassociates and releases the Elastic IP with the given
// name. A missing allocation is a no-op.
func (c *RealClient) ReleaseAddress(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.Delete)
	defer cancel()

	addr, err := c.getAddressByName(ctx, name)
	if err != nil {
		return err
	}
	if addr == nil {
		return nil
	}

	if addr.AssociationId != nil {
		_, err := c.api.DisassociateAddress(ctx, &ec2.DisassociateAddressInput{
			AssociationId: addr.AssociationId,
		})
		if err != nil && !IsNotFound(err) {
			return fmt.Errorf("failed to disassociate address %s: %w", name, err)
		}
	}

	_, err = c.api.ReleaseAddress(ctx, &ec2.ReleaseAddressInput{
		AllocationId: addr.AllocationId,
	})
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("failed to release address %s: %w", name, err)
	}
	return nil
}
