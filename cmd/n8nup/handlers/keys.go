package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/n8nup/n8nup/internal/util/keygen"
	"github.com/n8nup/n8nup/internal/util/tags"
)

const keyBits = 4096

// generateKeyPair generates the RSA key pair (for testing injection).
var generateKeyPair = func() (*keygen.KeyPair, error) {
	return keygen.GenerateRSAKeyPair(keyBits)
}

// Keys generates an RSA key pair, writes the private key locally, and
// registers the public key with AWS under the configured key name.
//
// Neither side is ever overwritten: an existing local key file or an
// already registered key pair aborts with an error so a working key is
// never lost.
func Keys(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	keyPath := cfg.KeyName + ".pem"
	if _, err := os.Stat(keyPath); err == nil {
		return fmt.Errorf("%s already exists; remove it first if you want a new key", keyPath)
	}

	client, err := newInfraClient(ctx, cfg.Region)
	if err != nil {
		return err
	}

	exists, err := client.KeyPairExists(ctx, cfg.KeyName)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("key pair %q is already registered in %s", cfg.KeyName, cfg.Region)
	}

	pair, err := generateKeyPair()
	if err != nil {
		return err
	}

	if err := writeFile(keyPath, pair.PrivateKey, 0600); err != nil {
		return fmt.Errorf("failed to write private key: %w", err)
	}

	keyTags := tags.NewBuilder(cfg.Name).
		WithName(cfg.KeyName).
		WithRole(tags.RoleKey).
		Build()
	if _, err := client.ImportKeyPair(ctx, cfg.KeyName, string(pair.PublicKey), keyTags); err != nil {
		return err
	}

	fmt.Printf("private key written to %s\n", keyPath)
	fmt.Printf("key pair %q registered in %s\n", cfg.KeyName, cfg.Region)
	return nil
}
