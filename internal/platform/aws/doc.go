// Package aws provides a wrapper around the AWS EC2 API with retry logic,
// timeout management, and error classification.
//
// # Architecture
//
// The package is organized into resource-specific modules:
//
//   - client.go: manager interfaces and operation parameter types
//   - real_client.go: client initialization and configuration
//   - security_group.go: access policy management (create, rule convergence, delete)
//   - instance.go: instance lifecycle (ensure, wait for running, terminate)
//   - address.go: Elastic IP allocation, association, and release
//   - keypair.go: key pair lookup, import, and deletion
//   - image.go: base image resolution (pinned or latest Ubuntu LTS)
//   - errors.go: error classification for retry logic
//   - mock_client.go: hand-rolled mock for consumers' tests
//
// # Key properties
//
//   - Resource idempotency: Ensure* operations look up existing resources by
//     Name tag or group name before creating, so re-running converges instead
//     of duplicating.
//   - Retry logic: throttling and dependency-ordering errors are retried with
//     exponential backoff; validation errors fail immediately.
//   - Timeout management: operation timeouts come from config.Timeouts and
//     can be tuned through N8NUP_TIMEOUT_* environment variables.
package aws
