package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/n8nup/n8nup/internal/util/tags"
)

// KeyPairExists reports whether a key pair with the given name is registered.
func (c *RealClient) KeyPairExists(ctx context.Context, name string) (bool, error) {
	out, err := c.api.DescribeKeyPairs(ctx, &ec2.DescribeKeyPairsInput{
		KeyNames: []string{name},
	})
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to describe key pair %s: %w", name, err)
	}
	return len(out.KeyPairs) > 0, nil
}

// ImportKeyPair registers a public key under the given name and returns the
// key pair ID. Importing a name that already exists is an error; callers
// check KeyPairExists first.
func (c *RealClient) ImportKeyPair(ctx context.Context, name, publicKey string, tagSet map[string]string) (string, error) {
	out, err := c.api.ImportKeyPair(ctx, &ec2.ImportKeyPairInput{
		KeyName:           awssdk.String(name),
		PublicKeyMaterial: []byte(publicKey),
		TagSpecifications: []ec2types.TagSpecification{
			tags.Spec(ec2types.ResourceTypeKeyPair, tagSet),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to import key pair %s: %w", name, classify(err))
	}
	return awssdk.ToString(out.KeyPairId), nil
}

// DeleteKeyPair removes the key pair registration. Deleting a key pair that
// does not exist is a no-op.
func (c *RealClient) DeleteKeyPair(ctx context.Context, name string) error {
	_, err := c.api.DeleteKeyPair(ctx, &ec2.DeleteKeyPairInput{
		KeyName: awssdk.String(name),
	})
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("failed to delete key pair %s: %w", name, err)
	}
	return nil
}
