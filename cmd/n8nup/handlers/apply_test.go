package handlers

import (
	"context"
	"errors"
	"io"
	iofs "io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/n8nup/n8nup/internal/config"
	"github.com/n8nup/n8nup/internal/platform/aws"
	"github.com/n8nup/n8nup/internal/report"
)

func saveAndRestoreFactories(t *testing.T) {
	t.Helper()
	origNewInfraClient := newInfraClient
	origNewProvisioningContext := newProvisioningContext
	origApplyPhases := applyPhases
	origWriteFile := writeFile
	origLoadConfigFile := loadConfigFile
	origFindConfigFile := findConfigFile
	origRenderReport := renderReport
	origNewDestroyProvisioner := newDestroyProvisioner
	origConfirmInput := confirmInput
	origRunWizard := runWizard
	origWriteConfigFile := writeConfigFile
	origGenerateKeyPair := generateKeyPair
	origProbeService := probeService

	t.Cleanup(func() {
		newInfraClient = origNewInfraClient
		newProvisioningContext = origNewProvisioningContext
		applyPhases = origApplyPhases
		writeFile = origWriteFile
		loadConfigFile = origLoadConfigFile
		findConfigFile = origFindConfigFile
		renderReport = origRenderReport
		newDestroyProvisioner = origNewDestroyProvisioner
		confirmInput = origConfirmInput
		runWizard = origRunWizard
		writeConfigFile = origWriteConfigFile
		generateKeyPair = origGenerateKeyPair
		probeService = origProbeService
	})
}

func testConfig() *config.Config {
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

// stubApplyEnvironment wires the factories to an in-memory run and returns
// the file writes keyed by path.
func stubApplyEnvironment(t *testing.T, infra *aws.MockClient) map[string][]byte {
	t.Helper()
	saveAndRestoreFactories(t)

	written := map[string][]byte{}

	loadConfigFile = func(string) (*config.Config, error) { return testConfig(), nil }
	findConfigFile = func() (string, error) { return "n8nup.yaml", nil }
	newInfraClient = func(ctx context.Context, region string) (aws.InfrastructureManager, error) {
		return infra, nil
	}
	writeFile = func(name string, data []byte, perm iofs.FileMode) error {
		assert.Equal(t, iofs.FileMode(0600), perm)
		written[name] = data
		return nil
	}
	renderReport = func(w io.Writer, deployment string, out report.Outputs) {}

	return written
}

func TestLoadConfig_EmptyPath_NoDefaultFile(t *testing.T) {
	saveAndRestoreFactories(t)

	findConfigFile = func() (string, error) {
		return "", errors.New("n8nup.yaml not found")
	}

	_, err := loadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "n8nup init")
}

func TestApply_FreshRunWritesAccessFile(t *testing.T) {
	infra := &aws.MockClient{
		EnsureInstanceFunc: func(ctx context.Context, opts aws.InstanceCreateOpts) (*aws.EnsureInstanceResult, error) {
			return &aws.EnsureInstanceResult{InstanceID: "i-new", Created: true}, nil
		},
	}
	written := stubApplyEnvironment(t, infra)

	require.NoError(t, Apply(context.Background(), ""))

	content, ok := written["demo-access.yaml"]
	require.True(t, ok, "access file should be written on a fresh launch")

	var data accessData
	require.NoError(t, yaml.Unmarshal(content, &data))
	assert.Equal(t, "demo", data.Deployment)
	assert.Equal(t, "https://n8n.example.com", data.URL)
	assert.Equal(t, "admin", data.Username)
	assert.NotEmpty(t, data.Password)
}

func TestApply_SecondRunConvergesWithoutCreating(t *testing.T) {
	creates := 0
	infra := &aws.MockClient{
		EnsureInstanceFunc: func(ctx context.Context, opts aws.InstanceCreateOpts) (*aws.EnsureInstanceResult, error) {
			return &aws.EnsureInstanceResult{InstanceID: "i-existing", Created: false}, nil
		},
		ImportKeyPairFunc: func(ctx context.Context, name, publicKey string, tags map[string]string) (string, error) {
			creates++
			return "key-1", nil
		},
	}
	written := stubApplyEnvironment(t, infra)

	require.NoError(t, Apply(context.Background(), ""))

	assert.Empty(t, written, "no files written when the instance already exists")
	assert.Zero(t, creates)
}

func TestApply_ReportsAllOutputs(t *testing.T) {
	infra := &aws.MockClient{
		EnsureAddressFunc: func(ctx context.Context, name string, tags map[string]string) (*aws.Allocation, error) {
			return &aws.Allocation{AllocationID: "eipalloc-1", PublicIP: "203.0.113.10"}, nil
		},
	}
	stubApplyEnvironment(t, infra)

	var reported report.Outputs
	renderReport = func(w io.Writer, deployment string, out report.Outputs) {
		reported = out
	}

	require.NoError(t, Apply(context.Background(), ""))

	assert.Equal(t, "203.0.113.10", reported.PublicIP)
	assert.Contains(t, reported.SSHCommand, "ubuntu@203.0.113.10")
	assert.Equal(t, "https://n8n.example.com", reported.AccessURL)
}

// A phase failing after the launch must not lose the credential: it exists
// only inside the new instance and in the access file, and a re-run sees an
// existing instance so it never writes the file again.
func TestApply_AccessFileSurvivesLaterPhaseFailure(t *testing.T) {
	infra := &aws.MockClient{
		EnsureInstanceFunc: func(ctx context.Context, opts aws.InstanceCreateOpts) (*aws.EnsureInstanceResult, error) {
			return &aws.EnsureInstanceResult{InstanceID: "i-new", Created: true}, nil
		},
		AssociateAddressFunc: func(ctx context.Context, allocationID, instanceID string) error {
			return errors.New("bind boom")
		},
	}
	written := stubApplyEnvironment(t, infra)

	err := Apply(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address phase failed")

	content, ok := written["demo-access.yaml"]
	require.True(t, ok, "access file must be written even when a later phase fails")

	var data accessData
	require.NoError(t, yaml.Unmarshal(content, &data))
	assert.NotEmpty(t, data.Password)
}

func TestApply_PhaseFailurePropagates(t *testing.T) {
	infra := &aws.MockClient{
		EnsureSecurityGroupFunc: func(ctx context.Context, name, description string, ports []int32, tags map[string]string) (string, error) {
			return "", errors.New("sg boom")
		},
	}
	stubApplyEnvironment(t, infra)

	err := Apply(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "network phase failed")
}
