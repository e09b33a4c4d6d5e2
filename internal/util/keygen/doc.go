// Package keygen generates RSA key pairs and random credentials.
//
// Key pairs are produced in PEM format (private) and OpenSSH authorized_keys
// format (public), suitable for importing into EC2 as key pairs. Passwords
// are drawn from crypto/rand for use as one-time provisioning credentials.
package keygen
