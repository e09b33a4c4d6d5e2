package config

// Secret is a string that redacts itself in formatted output. The raw value
// is only reachable through Reveal, which keeps secrets out of log lines and
// error strings that format the enclosing struct.
type Secret string

// String implements fmt.Stringer and always redacts.
func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return "[redacted]"
}

// GoString redacts %#v output as well.
func (s Secret) GoString() string {
	return s.String()
}

// Reveal returns the raw secret value.
func (s Secret) Reveal() string {
	return string(s)
}

// Config holds the deployment configuration.
type Config struct {
	// Name is the deployment name, used as the prefix for all resource names.
	Name string `yaml:"name"`

	// Region is the AWS region to provision in.
	Region string `yaml:"region"`

	// KeyName references an EC2 key pair that must already exist in-account.
	KeyName string `yaml:"key_name"`

	// InstanceType is the EC2 size class. Defaults to t3.small.
	InstanceType string `yaml:"instance_type,omitempty"`

	// AMI optionally pins the base image. When empty the latest Canonical
	// Ubuntu LTS image for the region is resolved at apply time.
	AMI string `yaml:"ami,omitempty"`

	// Domain is the public hostname the deployment serves under.
	Domain string `yaml:"domain"`

	// Email is the contact address used for certificate issuance.
	Email string `yaml:"email"`

	Database DatabaseConfig `yaml:"database"`

	// EncryptionKey is the application-level encryption secret n8n uses for
	// stored credentials. Losing it makes stored credentials unreadable.
	EncryptionKey Secret `yaml:"encryption_key"`
}

// DatabaseConfig holds the external Postgres coordinates.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port,omitempty"`
	Name     string `yaml:"name,omitempty"`
	User     string `yaml:"user"`
	Password Secret `yaml:"password"`
}

// ApplyDefaults fills in optional fields that were left empty.
func (c *Config) ApplyDefaults() {
	if c.InstanceType == "" {
		c.InstanceType = DefaultInstanceType
	}
	if c.Database.Port == 0 {
		c.Database.Port = DefaultDatabasePort
	}
	if c.Database.Name == "" {
		c.Database.Name = DefaultDatabaseName
	}
}
