package userdata

import (
	"fmt"
	"strings"

	"github.com/n8nup/n8nup/internal/config"
)

// Params holds everything the bring-up script needs baked in.
type Params struct {
	Config *config.Config

	// AdminPassword is the generated basic-auth credential. It is embedded
	// in the container descriptor and surfaced to the operator only through
	// the access file, never through logs.
	AdminPassword string
}

func (p Params) check() error {
	if p.Config == nil {
		return fmt.Errorf("config is required")
	}
	if p.AdminPassword == "" {
		return fmt.Errorf("admin password is required")
	}
	return nil
}

// Step is one named stage of the bring-up sequence.
type Step struct {
	Name     string
	Commands []string
}

// Step names, in execution order.
const (
	StepPackages     = "packages"
	StepDockerEnable = "docker-enable"
	StepComposeFile  = "compose-file"
	StepContainerUp  = "container-up"
	StepProxySite    = "proxy-site"
	StepProxyEnable  = "proxy-enable"
	StepCertificate  = "certificate"
	StepDockerGroup  = "docker-group"
)

// Steps builds the ordered bring-up sequence. The order is load-bearing:
// prerequisites install before the container starts, the container starts
// before the proxy that fronts it is activated, and the certificate is
// requested only after the proxy site for the same domain is live.
//
// The certificate step runs immediately after proxy activation with no wait
// for DNS to have propagated to the freshly bound address. That ordering is
// known to race slow DNS; see the package tests before changing it.
func Steps(p Params) ([]Step, error) {
	composeYAML, err := Compose(p)
	if err != nil {
		return nil, err
	}

	cfg := p.Config
	site := NginxSite(cfg.Domain, config.ServicePort)

	return []Step{
		{
			Name: StepPackages,
			Commands: []string{
				"apt-get update -y",
				"DEBIAN_FRONTEND=noninteractive apt-get install -y docker.io docker-compose-v2 nginx certbot python3-certbot-nginx",
			},
		},
		{
			Name: StepDockerEnable,
			Commands: []string{
				"systemctl enable --now docker",
			},
		},
		{
			Name: StepComposeFile,
			Commands: []string{
				"install -d -m 755 /opt/n8n",
				heredoc(ComposePath, string(composeYAML)),
				fmt.Sprintf("chmod 600 %s", ComposePath),
			},
		},
		{
			Name: StepContainerUp,
			Commands: []string{
				fmt.Sprintf("docker compose -f %s up -d", ComposePath),
			},
		},
		{
			Name: StepProxySite,
			Commands: []string{
				heredoc(SitePath, site),
			},
		},
		{
			Name: StepProxyEnable,
			Commands: []string{
				fmt.Sprintf("ln -sf %s /etc/nginx/sites-enabled/n8n", SitePath),
				"rm -f /etc/nginx/sites-enabled/default",
				"nginx -t",
				"systemctl reload nginx",
			},
		},
		{
			Name: StepCertificate,
			Commands: []string{
				fmt.Sprintf("certbot --nginx -d %s -m %s --agree-tos --non-interactive --redirect --keep-until-expiring", cfg.Domain, cfg.Email),
			},
		},
		{
			Name: StepDockerGroup,
			Commands: []string{
				fmt.Sprintf("usermod -aG docker %s", config.SSHUser),
			},
		},
	}, nil
}

// Script renders the full first-boot script. Each step is delimited by a
// marker comment so boot logs can be mapped back to the failing step.
func Script(p Params) (string, error) {
	steps, err := Steps(p)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("#!/bin/bash\n")
	b.WriteString("exec > >(tee -a /var/log/n8nup-bringup.log) 2>&1\n")

	for _, step := range steps {
		fmt.Fprintf(&b, "\n# step: %s\n", step.Name)
		for _, cmd := range step.Commands {
			b.WriteString(cmd)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// heredoc writes content to path via a quoted heredoc, so neither shell
// expansion nor nginx runtime variables get mangled.
func heredoc(path, content string) string {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return fmt.Sprintf("cat > %s <<'N8NUP_EOF'\n%sN8NUP_EOF", path, content)
}
