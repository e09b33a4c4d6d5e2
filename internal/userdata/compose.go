package userdata

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/compose-spec/compose-go/v2/types"

	"github.com/n8nup/n8nup/internal/config"
)

// Image is the official n8n container image.
const Image = "docker.n8n.io/n8nio/n8n"

// ComposePath is where the descriptor lands on the instance.
const ComposePath = "/opt/n8n/docker-compose.yml"

const dataVolume = "n8n_data"

// Compose builds the docker-compose descriptor for the n8n service and
// serializes it to YAML. The service port is published on the loopback
// interface only; external traffic must traverse the reverse proxy.
func Compose(p Params) ([]byte, error) {
	if err := p.check(); err != nil {
		return nil, err
	}

	env := []string{
		"DB_TYPE=postgresdb",
		fmt.Sprintf("DB_POSTGRESDB_HOST=%s", p.Config.Database.Host),
		fmt.Sprintf("DB_POSTGRESDB_PORT=%d", p.Config.Database.Port),
		fmt.Sprintf("DB_POSTGRESDB_DATABASE=%s", p.Config.Database.Name),
		fmt.Sprintf("DB_POSTGRESDB_USER=%s", p.Config.Database.User),
		fmt.Sprintf("DB_POSTGRESDB_PASSWORD=%s", p.Config.Database.Password.Reveal()),
		"N8N_BASIC_AUTH_ACTIVE=true",
		fmt.Sprintf("N8N_BASIC_AUTH_USER=%s", config.AdminUser),
		fmt.Sprintf("N8N_BASIC_AUTH_PASSWORD=%s", p.AdminPassword),
		fmt.Sprintf("N8N_ENCRYPTION_KEY=%s", p.Config.EncryptionKey.Reveal()),
		fmt.Sprintf("N8N_HOST=%s", p.Config.Domain),
		fmt.Sprintf("N8N_PORT=%d", config.ServicePort),
		"N8N_PROTOCOL=https",
		fmt.Sprintf("WEBHOOK_URL=https://%s/", p.Config.Domain),
	}
	sort.Strings(env)

	service := types.ServiceConfig{
		Name:    "n8n",
		Image:   Image,
		Restart: "always",
		Ports: []types.ServicePortConfig{{
			Mode:      "ingress",
			HostIP:    "127.0.0.1",
			Target:    config.ServicePort,
			Published: strconv.Itoa(config.ServicePort),
			Protocol:  "tcp",
		}},
		Environment: types.NewMappingWithEquals(env),
		Volumes: []types.ServiceVolumeConfig{{
			Type:   types.VolumeTypeVolume,
			Source: dataVolume,
			Target: "/home/node/.n8n",
		}},
	}

	project := types.Project{
		Name: "n8n",
		Services: types.Services{
			"n8n": service,
		},
		Volumes: types.Volumes{
			dataVolume: types.VolumeConfig{},
		},
	}

	data, err := project.MarshalYAML()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal compose descriptor: %w", err)
	}
	return data, nil
}
