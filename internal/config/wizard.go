package config

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/n8nup/n8nup/internal/util/keygen"
)

// WizardResult holds the user's choices from the wizard.
type WizardResult struct {
	Name          string
	Region        string
	KeyName       string
	InstanceType  string
	Domain        string
	Email         string
	DBHost        string
	DBPort        string
	DBName        string
	DBUser        string
	DBPassword    string
	EncryptionKey string
}

// instanceTypeOptions are the sizes offered by the wizard. A single n8n
// instance rarely needs more than 2 vCPUs.
func instanceTypeOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("t3.micro - 2 vCPU, 1GB RAM", "t3.micro"),
		huh.NewOption("t3.small - 2 vCPU, 2GB RAM", "t3.small"),
		huh.NewOption("t3.medium - 2 vCPU, 4GB RAM", "t3.medium"),
		huh.NewOption("t3.large - 2 vCPU, 8GB RAM", "t3.large"),
	}
}

func regionOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("N. Virginia (us-east-1)", "us-east-1"),
		huh.NewOption("Ohio (us-east-2)", "us-east-2"),
		huh.NewOption("Oregon (us-west-2)", "us-west-2"),
		huh.NewOption("Ireland (eu-west-1)", "eu-west-1"),
		huh.NewOption("Frankfurt (eu-central-1)", "eu-central-1"),
		huh.NewOption("Singapore (ap-southeast-1)", "ap-southeast-1"),
		huh.NewOption("Sydney (ap-southeast-2)", "ap-southeast-2"),
	}
}

// RunWizard runs the interactive configuration wizard.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		// Defaults
		Region:       "us-east-1",
		InstanceType: DefaultInstanceType,
		DBPort:       strconv.Itoa(DefaultDatabasePort),
		DBName:       DefaultDatabaseName,
	}

	form := huh.NewForm(
		// Deployment identity
		huh.NewGroup(
			huh.NewInput().
				Title("Deployment name").
				Description("A unique name for this deployment (DNS-safe, lowercase)").
				Placeholder("my-n8n").
				Value(&result.Name).
				Validate(validateName),

			huh.NewSelect[string]().
				Title("Region").
				Description("AWS region to provision in").
				Options(regionOptions()...).
				Value(&result.Region),

			huh.NewSelect[string]().
				Title("Instance size").
				Description("Burstable instances are cost-effective for a single workflow server").
				Options(instanceTypeOptions()...).
				Value(&result.InstanceType),

			huh.NewInput().
				Title("EC2 key pair name").
				Description("Must already exist in the selected region (or run 'n8nup keys' first)").
				Placeholder("my-keypair").
				Value(&result.KeyName).
				Validate(required("key pair name")),
		),

		// Public endpoint
		huh.NewGroup(
			huh.NewInput().
				Title("Domain").
				Description("Public hostname for the service, e.g. n8n.example.com. Point its DNS A record at the static address after apply.").
				Placeholder("n8n.example.com").
				Value(&result.Domain).
				Validate(validateWizardDomain),

			huh.NewInput().
				Title("Contact email").
				Description("Used for TLS certificate issuance notices").
				Placeholder("ops@example.com").
				Value(&result.Email).
				Validate(required("email")),
		),

		// Database coordinates
		huh.NewGroup(
			huh.NewInput().
				Title("Postgres host").
				Placeholder("db.example.com").
				Value(&result.DBHost).
				Validate(required("database host")),

			huh.NewInput().
				Title("Postgres port").
				Value(&result.DBPort).
				Validate(validatePort),

			huh.NewInput().
				Title("Database name").
				Value(&result.DBName).
				Validate(required("database name")),

			huh.NewInput().
				Title("Database user").
				Value(&result.DBUser).
				Validate(required("database user")),

			huh.NewInput().
				Title("Database password").
				EchoMode(huh.EchoModePassword).
				Value(&result.DBPassword).
				Validate(required("database password")),
		),

		// Encryption secret
		huh.NewGroup(
			huh.NewInput().
				Title("Encryption key (optional)").
				Description("Secret n8n encrypts stored credentials with. Leave empty to generate one.").
				EchoMode(huh.EchoModePassword).
				Value(&result.EncryptionKey),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	if result.EncryptionKey == "" {
		key, err := keygen.GeneratePassword(32)
		if err != nil {
			return nil, fmt.Errorf("failed to generate encryption key: %w", err)
		}
		result.EncryptionKey = key
	}

	return result, nil
}

// ToConfig converts the wizard result to a Config with defaults applied.
func (r *WizardResult) ToConfig() *Config {
	port, err := strconv.Atoi(r.DBPort)
	if err != nil {
		port = DefaultDatabasePort
	}

	cfg := &Config{
		Name:         r.Name,
		Region:       r.Region,
		KeyName:      r.KeyName,
		InstanceType: r.InstanceType,
		Domain:       r.Domain,
		Email:        r.Email,
		Database: DatabaseConfig{
			Host:     r.DBHost,
			Port:     port,
			Name:     r.DBName,
			User:     r.DBUser,
			Password: Secret(r.DBPassword),
		},
		EncryptionKey: Secret(r.EncryptionKey),
	}
	cfg.ApplyDefaults()
	return cfg
}

func required(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateName(s string) error {
	if s == "" {
		return fmt.Errorf("deployment name is required")
	}
	if !nameRe.MatchString(s) {
		return fmt.Errorf("use lowercase letters, numbers, and hyphens (3-32 characters)")
	}
	return nil
}

func validateWizardDomain(s string) error {
	if s == "" {
		return fmt.Errorf("domain is required")
	}
	if !domainRe.MatchString(s) {
		return fmt.Errorf("enter a fully qualified domain like n8n.example.com")
	}
	return nil
}

func validatePort(s string) error {
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("enter a port between 1 and 65535")
	}
	return nil
}
