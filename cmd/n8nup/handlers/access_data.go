package handlers

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/n8nup/n8nup/internal/config"
	"github.com/n8nup/n8nup/internal/provisioning"
	"github.com/n8nup/n8nup/internal/util/naming"
)

type accessData struct {
	Deployment string `yaml:"deployment"`
	SavedAt    string `yaml:"saved_at"`
	URL        string `yaml:"url"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
}

// persistAccessData writes the generated admin credential to the access
// file with owner-only permissions. This file is the only place the
// credential is surfaced.
func persistAccessData(cfg *config.Config, state *provisioning.State) error {
	data := &accessData{
		Deployment: cfg.Name,
		SavedAt:    time.Now().UTC().Format(time.RFC3339),
		URL:        fmt.Sprintf("https://%s", cfg.Domain),
		Username:   config.AdminUser,
		Password:   state.AdminPassword.Reveal(),
	}

	content, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal access data: %w", err)
	}

	path := naming.AccessFile(cfg.Name)
	if err := writeFile(path, content, 0600); err != nil {
		return fmt.Errorf("failed to write access data: %w", err)
	}

	return nil
}
