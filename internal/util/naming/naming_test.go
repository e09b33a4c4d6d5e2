package naming

import "testing"

func TestNamingFunctions(t *testing.T) {
	deployment := "my-n8n"

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"SecurityGroup", SecurityGroup(deployment), "my-n8n-sg"},
		{"Instance", Instance(deployment), "my-n8n-server"},
		{"Address", Address(deployment), "my-n8n-eip"},
		{"AccessFile", AccessFile(deployment), "my-n8n-access.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.got)
			}
		})
	}
}
