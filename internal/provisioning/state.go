package provisioning

import "github.com/n8nup/n8nup/internal/config"

// State holds the shared results of provisioning phases.
// It is progressively populated as each phase completes and is passed
// to subsequent phases that need earlier results.
type State struct {
	// Preflight results
	ImageID string

	// Network results
	SecurityGroupID string

	// Compute results
	InstanceID string
	// InstanceCreated is true only when this run launched the instance.
	// First-boot artifacts like the generated admin credential apply only
	// in that case.
	InstanceCreated bool
	// AdminPassword is the credential generated for a fresh launch. It is
	// surfaced exclusively through the access file, never through logs.
	AdminPassword config.Secret

	// Address results
	AllocationID string
	PublicIP     string
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{}
}
