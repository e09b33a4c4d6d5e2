package config

// Service constants for the n8n deployment.
const (
	// ServicePort is the port the n8n container listens on. It is reachable
	// only through the reverse proxy and never appears in the access policy.
	ServicePort = 5678

	// AdminUser is the basic-auth login for the freshly provisioned service.
	// The matching password is generated at provisioning time.
	AdminUser = "admin"

	// SSHUser is the administrative login user on Ubuntu images.
	SSHUser = "ubuntu"
)

// Defaults applied by Config.ApplyDefaults.
const (
	DefaultInstanceType = "t3.small"
	DefaultDatabasePort = 5432
	DefaultDatabaseName = "n8n"
	DefaultConfigFile   = "n8nup.yaml"
)

// Canonical's AWS account, the owner of official Ubuntu images.
const UbuntuImageOwner = "099720109477"

// UbuntuImagePattern matches Canonical Ubuntu 22.04 LTS amd64 server images.
const UbuntuImagePattern = "ubuntu/images/hvm-ssd/ubuntu-jammy-22.04-amd64-server-*"

// AllowedIngressPorts is the fixed, non-configurable inbound allow-list:
// SSH, plaintext HTTP (redirects to HTTPS), and TLS service traffic.
// Everything else, including ServicePort, is denied by default.
var AllowedIngressPorts = []int32{22, 80, 443}
