package provisioning

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n8nup/n8nup/internal/config"
	"github.com/n8nup/n8nup/internal/platform/aws"
)

func TestNewContext_Defaults(t *testing.T) {
	cfg := &config.Config{Name: "demo"}
	infra := &aws.MockClient{}

	ctx := NewContext(context.Background(), cfg, infra)

	require.NotNil(t, ctx.State)
	require.NotNil(t, ctx.Observer)
	require.NotNil(t, ctx.Timeouts)
	assert.Same(t, cfg, ctx.Config)
	assert.False(t, ctx.State.InstanceCreated)
	assert.Empty(t, ctx.State.PublicIP)
}

func TestContext_IsAContext(t *testing.T) {
	base, cancel := context.WithCancel(context.Background())
	ctx := NewContext(base, &config.Config{}, nil)

	cancel()
	assert.Error(t, ctx.Err())
}
