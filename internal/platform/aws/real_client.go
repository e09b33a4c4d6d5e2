package aws

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/n8nup/n8nup/internal/config"
)

// RealClient implements InfrastructureManager against the AWS EC2 API.
type RealClient struct {
	api      EC2API
	region   string
	timeouts *config.Timeouts

	staticAccessKey string
	staticSecretKey string
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithTimeouts sets custom timeouts for the client.
func WithTimeouts(t *config.Timeouts) ClientOption {
	return func(c *RealClient) {
		c.timeouts = t
	}
}

// WithEC2API sets a custom EC2 API implementation (useful for testing).
func WithEC2API(api EC2API) ClientOption {
	return func(c *RealClient) {
		c.api = api
	}
}

// WithStaticCredentials bypasses the default credential chain. The default
// chain (env vars, shared config, instance role) is preferred; this exists
// for environments where none of those apply.
func WithStaticCredentials(accessKey, secretKey string) ClientOption {
	return func(c *RealClient) {
		c.staticAccessKey = accessKey
		c.staticSecretKey = secretKey
	}
}

// NewRealClient creates a new RealClient for the given region using the
// default AWS credential chain.
func NewRealClient(ctx context.Context, region string, opts ...ClientOption) (*RealClient, error) {
	c := &RealClient{
		region:   region,
		timeouts: config.LoadTimeouts(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.api == nil {
		loadOpts := []func(*awsconfig.LoadOptions) error{
			awsconfig.WithRegion(region),
		}
		if c.staticAccessKey != "" {
			loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(c.staticAccessKey, c.staticSecretKey, "")))
		}

		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		c.api = ec2.NewFromConfig(awsCfg)
	}

	return c, nil
}
