package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds all configurable timeout values.
// These values can be customized via environment variables.
type Timeouts struct {
	InstanceCreate    time.Duration // Timeout for instance launch operations
	InstanceRunning   time.Duration // Timeout for waiting for the running state
	AddressBind       time.Duration // Timeout for address allocation and binding
	Delete            time.Duration // Timeout for all delete operations
	RetryMaxAttempts  int           // Maximum number of retry attempts
	RetryInitialDelay time.Duration // Initial delay between retries
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - N8NUP_TIMEOUT_INSTANCE_CREATE (default: 5m)
//   - N8NUP_TIMEOUT_INSTANCE_RUNNING (default: 5m)
//   - N8NUP_TIMEOUT_ADDRESS_BIND (default: 2m)
//   - N8NUP_TIMEOUT_DELETE (default: 5m)
//   - N8NUP_RETRY_MAX_ATTEMPTS (default: 5)
//   - N8NUP_RETRY_INITIAL_DELAY (default: 1s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		InstanceCreate:    parseDuration("N8NUP_TIMEOUT_INSTANCE_CREATE", 5*time.Minute),
		InstanceRunning:   parseDuration("N8NUP_TIMEOUT_INSTANCE_RUNNING", 5*time.Minute),
		AddressBind:       parseDuration("N8NUP_TIMEOUT_ADDRESS_BIND", 2*time.Minute),
		Delete:            parseDuration("N8NUP_TIMEOUT_DELETE", 5*time.Minute),
		RetryMaxAttempts:  parseInt("N8NUP_RETRY_MAX_ATTEMPTS", 5),
		RetryInitialDelay: parseDuration("N8NUP_RETRY_INITIAL_DELAY", 1*time.Second),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return i
}
