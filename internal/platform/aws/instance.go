package aws

import (
	"context"
	"encoding/base64"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/n8nup/n8nup/internal/util/retry"
	"github.com/n8nup/n8nup/internal/util/tags"
)

// GetInstanceByName returns the pending or running instance carrying the
// given Name tag, or nil when none exists. Terminated instances keep their
// tags for a while, so the state filter is what makes re-runs after a
// destroy behave.
func (c *RealClient) GetInstanceByName(ctx context.Context, name string) (*ec2types.Instance, error) {
	out, err := c.api.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		Filters: []ec2types.Filter{
			{Name: awssdk.String("tag:" + tags.KeyName), Values: []string{name}},
			{Name: awssdk.String("instance-state-name"), Values: []string{
				string(ec2types.InstanceStateNamePending),
				string(ec2types.InstanceStateNameRunning),
			}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe instance %s: %w", name, err)
	}

	for _, res := range out.Reservations {
		if len(res.Instances) > 0 {
			return &res.Instances[0], nil
		}
	}
	return nil, nil
}

// EnsureInstance returns the existing instance with the given name or
// launches a new one and waits for it to reach the running state. An
// existing instance is returned as-is: it is never relaunched and its
// first-boot user data is never replaced.
func (c *RealClient) EnsureInstance(ctx context.Context, opts InstanceCreateOpts) (*EnsureInstanceResult, error) {
	existing, err := c.GetInstanceByName(ctx, opts.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &EnsureInstanceResult{
			InstanceID: awssdk.ToString(existing.InstanceId),
			Created:    false,
		}, nil
	}

	createCtx, cancel := context.WithTimeout(ctx, c.timeouts.InstanceCreate)
	defer cancel()

	var instanceID string
	err = retry.WithExponentialBackoff(createCtx, func() error {
		out, err := c.api.RunInstances(createCtx, &ec2.RunInstancesInput{
			ImageId:          awssdk.String(opts.ImageID),
			InstanceType:     ec2types.InstanceType(opts.InstanceType),
			KeyName:          awssdk.String(opts.KeyName),
			SecurityGroupIds: []string{opts.SecurityGroupID},
			MinCount:         awssdk.Int32(1),
			MaxCount:         awssdk.Int32(1),
			UserData:         awssdk.String(base64.StdEncoding.EncodeToString([]byte(opts.UserData))),
			TagSpecifications: []ec2types.TagSpecification{
				tags.Spec(ec2types.ResourceTypeInstance, opts.Tags),
			},
		})
		if err != nil {
			return classify(err)
		}
		if len(out.Instances) == 0 {
			return retry.Fatal(fmt.Errorf("RunInstances returned no instances"))
		}
		instanceID = awssdk.ToString(out.Instances[0].InstanceId)
		return nil
	},
		retry.WithMaxRetries(c.timeouts.RetryMaxAttempts),
		retry.WithInitialDelay(c.timeouts.RetryInitialDelay),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to launch instance %s: %w", opts.Name, err)
	}

	waiter := ec2.NewInstanceRunningWaiter(c.api)
	err = waiter.Wait(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	}, c.timeouts.InstanceRunning)
	if err != nil {
		return nil, fmt.Errorf("instance %s did not reach running state: %w", instanceID, err)
	}

	return &EnsureInstanceResult{InstanceID: instanceID, Created: true}, nil
}

// TerminateInstance terminates the instance with the given name and waits
// for termination to complete. A missing instance is a no-op.
func (c *RealClient) TerminateInstance(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.Delete)
	defer cancel()

	instance, err := c.GetInstanceByName(ctx, name)
	if err != nil {
		return err
	}
	if instance == nil {
		return nil
	}

	instanceID := awssdk.ToString(instance.InstanceId)
	_, err = c.api.TerminateInstances(ctx, &ec2.TerminateInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		if IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to terminate instance %s: %w", name, err)
	}

	waiter := ec2.NewInstanceTerminatedWaiter(c.api)
	err = waiter.Wait(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	}, c.timeouts.Delete)
	if err != nil {
		return fmt.Errorf("instance %s did not terminate: %w", instanceID, err)
	}
	return nil
}
