// Package config defines the deployment configuration, its YAML loading and
// validation, the interactive setup wizard, and operation timeouts.
//
// Configuration is supplied once, before provisioning. Validation is strict
// and runs before any AWS call so that a bad configuration can never leave a
// partially created deployment behind. Secret-bearing fields use the [Secret]
// type, which redacts itself in formatted output.
package config
