package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// ec2Stub implements EC2API with function fields so each test wires only
// the calls it expects. Unstubbed calls return empty outputs.
type ec2Stub struct {
	describeVpcs           func(ctx context.Context, in *ec2.DescribeVpcsInput) (*ec2.DescribeVpcsOutput, error)
	describeImages         func(ctx context.Context, in *ec2.DescribeImagesInput) (*ec2.DescribeImagesOutput, error)
	describeKeyPairs       func(ctx context.Context, in *ec2.DescribeKeyPairsInput) (*ec2.DescribeKeyPairsOutput, error)
	importKeyPair          func(ctx context.Context, in *ec2.ImportKeyPairInput) (*ec2.ImportKeyPairOutput, error)
	deleteKeyPair          func(ctx context.Context, in *ec2.DeleteKeyPairInput) (*ec2.DeleteKeyPairOutput, error)
	describeSecurityGroups func(ctx context.Context, in *ec2.DescribeSecurityGroupsInput) (*ec2.DescribeSecurityGroupsOutput, error)
	createSecurityGroup    func(ctx context.Context, in *ec2.CreateSecurityGroupInput) (*ec2.CreateSecurityGroupOutput, error)
	deleteSecurityGroup    func(ctx context.Context, in *ec2.DeleteSecurityGroupInput) (*ec2.DeleteSecurityGroupOutput, error)
	authorizeIngress       func(ctx context.Context, in *ec2.AuthorizeSecurityGroupIngressInput) (*ec2.AuthorizeSecurityGroupIngressOutput, error)
	revokeIngress          func(ctx context.Context, in *ec2.RevokeSecurityGroupIngressInput) (*ec2.RevokeSecurityGroupIngressOutput, error)
	runInstances           func(ctx context.Context, in *ec2.RunInstancesInput) (*ec2.RunInstancesOutput, error)
	describeInstances      func(ctx context.Context, in *ec2.DescribeInstancesInput) (*ec2.DescribeInstancesOutput, error)
	terminateInstances     func(ctx context.Context, in *ec2.TerminateInstancesInput) (*ec2.TerminateInstancesOutput, error)
	describeAddresses      func(ctx context.Context, in *ec2.DescribeAddressesInput) (*ec2.DescribeAddressesOutput, error)
	allocateAddress        func(ctx context.Context, in *ec2.AllocateAddressInput) (*ec2.AllocateAddressOutput, error)
	associateAddress       func(ctx context.Context, in *ec2.AssociateAddressInput) (*ec2.AssociateAddressOutput, error)
	disassociateAddress    func(ctx context.Context, in *ec2.DisassociateAddressInput) (*ec2.DisassociateAddressOutput, error)
	releaseAddress         func(ctx context.Context, in *ec2.ReleaseAddressInput) (*ec2.ReleaseAddressOutput, error)
}

var _ EC2API = (*ec2Stub)(nil)

func (s *ec2Stub) DescribeVpcs(ctx context.Context, in *ec2.DescribeVpcsInput, _ ...func(*ec2.Options)) (*ec2.DescribeVpcsOutput, error) {
	if s.describeVpcs != nil {
		return s.describeVpcs(ctx, in)
	}
	return &ec2.DescribeVpcsOutput{}, nil
}

func (s *ec2Stub) DescribeImages(ctx context.Context, in *ec2.DescribeImagesInput, _ ...func(*ec2.Options)) (*ec2.DescribeImagesOutput, error) {
	if s.describeImages != nil {
		return s.describeImages(ctx, in)
	}
	return &ec2.DescribeImagesOutput{}, nil
}

func (s *ec2Stub) DescribeKeyPairs(ctx context.Context, in *ec2.DescribeKeyPairsInput, _ ...func(*ec2.Options)) (*ec2.DescribeKeyPairsOutput, error) {
	if s.describeKeyPairs != nil {
		return s.describeKeyPairs(ctx, in)
	}
	return &ec2.DescribeKeyPairsOutput{}, nil
}

func (s *ec2Stub) ImportKeyPair(ctx context.Context, in *ec2.ImportKeyPairInput, _ ...func(*ec2.Options)) (*ec2.ImportKeyPairOutput, error) {
	if s.importKeyPair != nil {
		return s.importKeyPair(ctx, in)
	}
	return &ec2.ImportKeyPairOutput{}, nil
}

func (s *ec2Stub) DeleteKeyPair(ctx context.Context, in *ec2.DeleteKeyPairInput, _ ...func(*ec2.Options)) (*ec2.DeleteKeyPairOutput, error) {
	if s.deleteKeyPair != nil {
		return s.deleteKeyPair(ctx, in)
	}
	return &ec2.DeleteKeyPairOutput{}, nil
}

func (s *ec2Stub) DescribeSecurityGroups(ctx context.Context, in *ec2.DescribeSecurityGroupsInput, _ ...func(*ec2.Options)) (*ec2.DescribeSecurityGroupsOutput, error) {
	if s.describeSecurityGroups != nil {
		return s.describeSecurityGroups(ctx, in)
	}
	return &ec2.DescribeSecurityGroupsOutput{}, nil
}

func (s *ec2Stub) CreateSecurityGroup(ctx context.Context, in *ec2.CreateSecurityGroupInput, _ ...func(*ec2.Options)) (*ec2.CreateSecurityGroupOutput, error) {
	if s.createSecurityGroup != nil {
		return s.createSecurityGroup(ctx, in)
	}
	return &ec2.CreateSecurityGroupOutput{}, nil
}

func (s *ec2Stub) DeleteSecurityGroup(ctx context.Context, in *ec2.DeleteSecurityGroupInput, _ ...func(*ec2.Options)) (*ec2.DeleteSecurityGroupOutput, error) {
	if s.deleteSecurityGroup != nil {
		return s.deleteSecurityGroup(ctx, in)
	}
	return &ec2.DeleteSecurityGroupOutput{}, nil
}

func (s *ec2Stub) AuthorizeSecurityGroupIngress(ctx context.Context, in *ec2.AuthorizeSecurityGroupIngressInput, _ ...func(*ec2.Options)) (*ec2.AuthorizeSecurityGroupIngressOutput, error) {
	if s.authorizeIngress != nil {
		return s.authorizeIngress(ctx, in)
	}
	return &ec2.AuthorizeSecurityGroupIngressOutput{}, nil
}

func (s *ec2Stub) RevokeSecurityGroupIngress(ctx context.Context, in *ec2.RevokeSecurityGroupIngressInput, _ ...func(*ec2.Options)) (*ec2.RevokeSecurityGroupIngressOutput, error) {
	if s.revokeIngress != nil {
		return s.revokeIngress(ctx, in)
	}
	return &ec2.RevokeSecurityGroupIngressOutput{}, nil
}

func (s *ec2Stub) RunInstances(ctx context.Context, in *ec2.RunInstancesInput, _ ...func(*ec2.Options)) (*ec2.RunInstancesOutput, error) {
	if s.runInstances != nil {
		return s.runInstances(ctx, in)
	}
	return &ec2.RunInstancesOutput{}, nil
}

func (s *ec2Stub) DescribeInstances(ctx context.Context, in *ec2.DescribeInstancesInput, _ ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error) {
	if s.describeInstances != nil {
		return s.describeInstances(ctx, in)
	}
	return &ec2.DescribeInstancesOutput{}, nil
}

func (s *ec2Stub) TerminateInstances(ctx context.Context, in *ec2.TerminateInstancesInput, _ ...func(*ec2.Options)) (*ec2.TerminateInstancesOutput, error) {
	if s.terminateInstances != nil {
		return s.terminateInstances(ctx, in)
	}
	return &ec2.TerminateInstancesOutput{}, nil
}

func (s *ec2Stub) DescribeAddresses(ctx context.Context, in *ec2.DescribeAddressesInput, _ ...func(*ec2.Options)) (*ec2.DescribeAddressesOutput, error) {
	if s.describeAddresses != nil {
		return s.describeAddresses(ctx, in)
	}
	return &ec2.DescribeAddressesOutput{}, nil
}

func (s *ec2Stub) AllocateAddress(ctx context.Context, in *ec2.AllocateAddressInput, _ ...func(*ec2.Options)) (*ec2.AllocateAddressOutput, error) {
	if s.allocateAddress != nil {
		return s.allocateAddress(ctx, in)
	}
	return &ec2.AllocateAddressOutput{}, nil
}

func (s *ec2Stub) AssociateAddress(ctx context.Context, in *ec2.AssociateAddressInput, _ ...func(*ec2.Options)) (*ec2.AssociateAddressOutput, error) {
	if s.associateAddress != nil {
		return s.associateAddress(ctx, in)
	}
	return &ec2.AssociateAddressOutput{}, nil
}

func (s *ec2Stub) DisassociateAddress(ctx context.Context, in *ec2.DisassociateAddressInput, _ ...func(*ec2.Options)) (*ec2.DisassociateAddressOutput, error) {
	if s.disassociateAddress != nil {
		return s.disassociateAddress(ctx, in)
	}
	return &ec2.DisassociateAddressOutput{}, nil
}

func (s *ec2Stub) ReleaseAddress(ctx context.Context, in *ec2.ReleaseAddressInput, _ ...func(*ec2.Options)) (*ec2.ReleaseAddressOutput, error) {
	if s.releaseAddress != nil {
		return s.releaseAddress(ctx, in)
	}
	return &ec2.ReleaseAddressOutput{}, nil
}
