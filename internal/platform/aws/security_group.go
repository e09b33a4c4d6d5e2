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

const anyIPv4 = "0.0.0.0/0"

// GetSecurityGroup looks up a security group by group name. Returns nil when
// no group with that name exists.
func (c *RealClient) GetSecurityGroup(ctx context.Context, name string) (*ec2types.SecurityGroup, error) {
	out, err := c.api.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{
		Filters: []ec2types.Filter{
			{Name: awssdk.String("group-name"), Values: []string{name}},
		},
	})
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to describe security group %s: %w", name, err)
	}
	if len(out.SecurityGroups) == 0 {
		return nil, nil
	}
	return &out.SecurityGroups[0], nil
}

// EnsureSecurityGroup converges on a security group whose ingress rules are
// exactly TCP on the given ports from anywhere. A missing group is created
// in the default VPC; an existing group has missing rules authorized and
// unexpected rules revoked, so drift from the fixed allow-list never
// survives a run.
func (c *RealClient) EnsureSecurityGroup(ctx context.Context, name, description string, ports []int32, tagSet map[string]string) (string, error) {
	group, err := c.GetSecurityGroup(ctx, name)
	if err != nil {
		return "", err
	}

	var groupID string
	if group != nil {
		groupID = awssdk.ToString(group.GroupId)
	} else {
		vpcID, err := c.defaultVPC(ctx)
		if err != nil {
			return "", err
		}

		out, err := c.api.CreateSecurityGroup(ctx, &ec2.CreateSecurityGroupInput{
			GroupName:   awssdk.String(name),
			Description: awssdk.String(description),
			VpcId:       awssdk.String(vpcID),
			TagSpecifications: []ec2types.TagSpecification{
				tags.Spec(ec2types.ResourceTypeSecurityGroup, tagSet),
			},
		})
		if err != nil {
			return "", fmt.Errorf("failed to create security group %s: %w", name, classify(err))
		}
		groupID = awssdk.ToString(out.GroupId)

		group, err = c.GetSecurityGroup(ctx, name)
		if err != nil {
			return "", err
		}
	}

	if err := c.convergeIngress(ctx, groupID, group, ports); err != nil {
		return "", err
	}

	return groupID, nil
}

// convergeIngress authorizes wanted rules that are missing and revokes
// ingress permissions outside the wanted port set.
func (c *RealClient) convergeIngress(ctx context.Context, groupID string, group *ec2types.SecurityGroup, ports []int32) error {
	wanted := make(map[int32]bool, len(ports))
	for _, p := range ports {
		wanted[p] = true
	}

	present := make(map[int32]bool)
	var extra []ec2types.IpPermission
	if group != nil {
		for _, perm := range group.IpPermissions {
			if isSimpleTCPRule(perm) && wanted[awssdk.ToInt32(perm.FromPort)] {
				present[awssdk.ToInt32(perm.FromPort)] = true
				continue
			}
			extra = append(extra, perm)
		}
	}

	var missing []ec2types.IpPermission
	for _, p := range ports {
		if !present[p] {
			missing = append(missing, tcpIngressRule(p))
		}
	}

	if len(missing) > 0 {
		_, err := c.api.AuthorizeSecurityGroupIngress(ctx, &ec2.AuthorizeSecurityGroupIngressInput{
			GroupId:       awssdk.String(groupID),
			IpPermissions: missing,
		})
		if err != nil {
			return fmt.Errorf("failed to authorize ingress on %s: %w", groupID, classify(err))
		}
	}

	if len(extra) > 0 {
		_, err := c.api.RevokeSecurityGroupIngress(ctx, &ec2.RevokeSecurityGroupIngressInput{
			GroupId:       awssdk.String(groupID),
			IpPermissions: extra,
		})
		if err != nil {
			return fmt.Errorf("failed to revoke extra ingress on %s: %w", groupID, classify(err))
		}
	}

	return nil
}

// DeleteSecurityGroup removes the security group with the given name. A
// group still referenced by a terminating instance triggers a retried
// DependencyViolation until the reference clears. A missing group is a no-op.
func (c *RealClient) DeleteSecurityGroup(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.Delete)
	defer cancel()

	group, err := c.GetSecurityGroup(ctx, name)
	if err != nil {
		return err
	}
	if group == nil {
		return nil
	}

	groupID := awssdk.ToString(group.GroupId)
	return retry.WithExponentialBackoff(ctx, func() error {
		_, err := c.api.DeleteSecurityGroup(ctx, &ec2.DeleteSecurityGroupInput{
			GroupId: awssdk.String(groupID),
		})
		if err != nil {
			if IsNotFound(err) {
				return nil
			}
			if isDependencyViolation(err) || isThrottled(err) {
				return err
			}
			return retry.Fatal(fmt.Errorf("failed to delete security group %s: %w", name, err))
		}
		return nil
	},
		retry.WithMaxRetries(c.timeouts.RetryMaxAttempts),
		retry.WithInitialDelay(c.timeouts.RetryInitialDelay),
	)
}

func (c *RealClient) defaultVPC(ctx context.Context) (string, error) {
	out, err := c.api.DescribeVpcs(ctx, &ec2.DescribeVpcsInput{
		Filters: []ec2types.Filter{
			{Name: awssdk.String("is-default"), Values: []string{"true"}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to look up default VPC: %w", err)
	}
	if len(out.Vpcs) == 0 {
		return "", fmt.Errorf("no default VPC in this region")
	}
	return awssdk.ToString(out.Vpcs[0].VpcId), nil
}

func tcpIngressRule(port int32) ec2types.IpPermission {
	return ec2types.IpPermission{
		IpProtocol: awssdk.String("tcp"),
		FromPort:   awssdk.Int32(port),
		ToPort:     awssdk.Int32(port),
		IpRanges: []ec2types.IpRange{
			{CidrIp: awssdk.String(anyIPv4)},
		},
	}
}

// isSimpleTCPRule matches the shape EnsureSecurityGroup manages: a single
// TCP port open to 0.0.0.0/0 with no other sources.
func isSimpleTCPRule(perm ec2types.IpPermission) bool {
	if awssdk.ToString(perm.IpProtocol) != "tcp" {
		return false
	}
	if perm.FromPort == nil || perm.ToPort == nil || *perm.FromPort != *perm.ToPort {
		return false
	}
	if len(perm.IpRanges) != 1 || len(perm.Ipv6Ranges) != 0 ||
		len(perm.UserIdGroupPairs) != 0 || len(perm.PrefixListIds) != 0 {
		return false
	}
	return awssdk.ToString(perm.IpRanges[0].CidrIp) == anyIPv4
}
