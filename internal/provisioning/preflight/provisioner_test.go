package preflight

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n8nup/n8nup/internal/config"
	"github.com/n8nup/n8nup/internal/platform/aws"
	"github.com/n8nup/n8nup/internal/provisioning"
)

func validConfig() *config.Config {
	cfg := &config.Config{
		Name:    "demo",
		Region:  "us-east-1",
		KeyName: "demo-key",
		Domain:  "n8n.example.com",
		Email:   "ops@example.com",
		Database: config.DatabaseConfig{
			Host:     "db.example.com",
			User:     "n8n",
			Password: "dbsecret",
		},
		EncryptionKey: "0123456789abcdef0123456789abcdef",
	}
	cfg.ApplyDefaults()
	return cfg
}

func newContext(infra aws.InfrastructureManager) *provisioning.Context {
	return provisioning.NewContext(context.Background(), validConfig(), infra)
}

func TestProvision_ResolvesImage(t *testing.T) {
	infra := &aws.MockClient{
		ResolveImageFunc: func(ctx context.Context, override string) (string, error) {
			assert.Empty(t, override)
			return "ami-ubuntu", nil
		},
	}
	ctx := newContext(infra)

	err := NewProvisioner().Provision(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ami-ubuntu", ctx.State.ImageID)
}

func TestProvision_MissingKeyPairFailsClosed(t *testing.T) {
	infra := &aws.MockClient{
		KeyPairExistsFunc: func(ctx context.Context, name string) (bool, error) {
			return false, nil
		},
	}
	ctx := newContext(infra)

	err := NewProvisioner().Provision(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "demo-key")
	assert.Contains(t, err.Error(), "n8nup keys")
}

func TestProvision_InvalidConfigRejectedBeforeAPICalls(t *testing.T) {
	called := false
	infra := &aws.MockClient{
		KeyPairExistsFunc: func(ctx context.Context, name string) (bool, error) {
			called = true
			return true, nil
		},
	}
	cfg := validConfig()
	cfg.Domain = ""
	ctx := provisioning.NewContext(context.Background(), cfg, infra)

	err := NewProvisioner().Provision(ctx)
	require.Error(t, err)
	assert.False(t, called)
}

func TestProvision_ImageResolutionErrorPropagates(t *testing.T) {
	boom := errors.New("no image")
	infra := &aws.MockClient{
		ResolveImageFunc: func(ctx context.Context, override string) (string, error) {
			return "", boom
		},
	}

	err := NewProvisioner().Provision(newContext(infra))
	assert.ErrorIs(t, err, boom)
}

func TestName(t *testing.T) {
	assert.Equal(t, "preflight", NewProvisioner().Name())
}
