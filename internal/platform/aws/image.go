package aws

import (
	"context"
	"fmt"
	"sort"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/n8nup/n8nup/internal/config"
)

// ResolveImage returns the image ID to launch from. A non-empty override is
// validated against the API so a typo fails before anything is created.
// Without an override the newest Ubuntu LTS image published by Canonical for
// the region is selected.
func (c *RealClient) ResolveImage(ctx context.Context, override string) (string, error) {
	if override != "" {
		out, err := c.api.DescribeImages(ctx, &ec2.DescribeImagesInput{
			ImageIds: []string{override},
		})
		if err != nil {
			if IsNotFound(err) {
				return "", fmt.Errorf("image %s not found", override)
			}
			return "", fmt.Errorf("failed to describe image %s: %w", override, err)
		}
		if len(out.Images) == 0 {
			return "", fmt.Errorf("image %s not found", override)
		}
		return override, nil
	}

	out, err := c.api.DescribeImages(ctx, &ec2.DescribeImagesInput{
		Owners: []string{config.UbuntuImageOwner},
		Filters: []ec2types.Filter{
			{Name: awssdk.String("name"), Values: []string{config.UbuntuImagePattern}},
			{Name: awssdk.String("state"), Values: []string{string(ec2types.ImageStateAvailable)}},
			{Name: awssdk.String("architecture"), Values: []string{string(ec2types.ArchitectureValuesX8664)}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to list Ubuntu images: %w", err)
	}
	if len(out.Images) == 0 {
		return "", fmt.Errorf("no Ubuntu image matching %q in this region", config.UbuntuImagePattern)
	}

	images := out.Images
	sort.Slice(images, func(i, j int) bool {
		return awssdk.ToString(images[i].CreationDate) > awssdk.ToString(images[j].CreationDate)
	})

	return awssdk.ToString(images[0].ImageId), nil
}
