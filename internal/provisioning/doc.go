// Package provisioning provides shared types, interfaces, and orchestration
// for deployment provisioning.
//
// # Subpackages
//
//   - preflight/ configuration validation, key pair check, image resolution
//   - network/ security group with the fixed ingress allow-list
//   - compute/ server launch with the first-boot bring-up script
//   - address/ Elastic IP allocation and binding
//   - destroy/ resource cleanup and teardown
//
// # Core Types
//
// Context carries configuration, state, the infrastructure client, and the
// observer. Phase defines a provisioning step with Name() and Provision()
// methods. State accumulates results from each phase (image ID, security
// group, instance, public IP, generated credential).
package provisioning
