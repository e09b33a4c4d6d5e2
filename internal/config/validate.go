package config

import (
	"fmt"
	"net/mail"
	"regexp"
	"sort"
	"strings"
)

// ValidRegions contains the AWS regions the tool has been exercised in.
// https://docs.aws.amazon.com/general/latest/gr/rande.html
var ValidRegions = map[string]bool{
	"us-east-1":      true, // N. Virginia
	"us-east-2":      true, // Ohio
	"us-west-1":      true, // N. California
	"us-west-2":      true, // Oregon
	"eu-west-1":      true, // Ireland
	"eu-west-2":      true, // London
	"eu-central-1":   true, // Frankfurt
	"ap-southeast-1": true, // Singapore
	"ap-southeast-2": true, // Sydney
	"ap-northeast-1": true, // Tokyo
	"sa-east-1":      true, // Sao Paulo
}

var (
	nameRe   = regexp.MustCompile(`^[a-z][a-z0-9-]{1,30}[a-z0-9]$`)
	domainRe = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)
	amiRe    = regexp.MustCompile(`^ami-[0-9a-f]{8,17}$`)
)

// Validate checks the configuration for common errors and returns a detailed
// error if validation fails. No AWS call is made before this passes.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !nameRe.MatchString(c.Name) {
		return fmt.Errorf("invalid name %q: must be lowercase alphanumeric with dashes, 3-32 characters", c.Name)
	}

	if c.Region == "" {
		return fmt.Errorf("region is required")
	}
	if !ValidRegions[c.Region] {
		return fmt.Errorf("invalid region %q: must be one of %v", c.Region, sortedKeys(ValidRegions))
	}

	if c.KeyName == "" {
		return fmt.Errorf("key_name is required")
	}

	if err := c.validateEndpoint(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return fmt.Errorf("database validation failed: %w", err)
	}

	if c.EncryptionKey == "" {
		return fmt.Errorf("encryption_key is required")
	}

	if c.AMI != "" && !amiRe.MatchString(c.AMI) {
		return fmt.Errorf("invalid ami %q: must look like ami-0123456789abcdef0", c.AMI)
	}

	return nil
}

// validateEndpoint validates the public-facing domain and contact email.
func (c *Config) validateEndpoint() error {
	if c.Domain == "" {
		return fmt.Errorf("domain is required")
	}
	if !domainRe.MatchString(c.Domain) || strings.Contains(c.Domain, "..") {
		return fmt.Errorf("invalid domain %q", c.Domain)
	}

	if c.Email == "" {
		return fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return fmt.Errorf("invalid email %q: %w", c.Email, err)
	}

	return nil
}

// validateDatabase validates the external database coordinates.
func (c *Config) validateDatabase() error {
	if c.Database.Host == "" {
		return fmt.Errorf("host is required")
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Database.Port)
	}
	if c.Database.User == "" {
		return fmt.Errorf("user is required")
	}
	if c.Database.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// sortedKeys returns the keys of a map, sorted, for stable error messages.
func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
