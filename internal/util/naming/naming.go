// Package naming provides consistent naming functions for AWS resources.
//
// Resource names follow the pattern {deployment}-{type} so that every
// resource belonging to a deployment can be identified and cleaned up
// by name or Name tag.
package naming

import "fmt"

func SecurityGroup(deployment string) string {
	return fmt.Sprintf("%s-sg", deployment)
}

func Instance(deployment string) string {
	return fmt.Sprintf("%s-server", deployment)
}

func Address(deployment string) string {
	return fmt.Sprintf("%s-eip", deployment)
}

func AccessFile(deployment string) string {
	return fmt.Sprintf("%s-access.yaml", deployment)
}
