// Package main is the entry point for the n8nup CLI.
//
// n8nup is a command-line tool for provisioning a single-instance n8n
// workflow automation deployment on AWS. It launches one EC2 instance that
// runs n8n in Docker behind an nginx reverse proxy with a Let's Encrypt
// certificate, bound to a static Elastic IP.
//
// Commands: init, apply, destroy, status, keys.
//
// For detailed usage information, run:
//
//	n8nup --help
package main

import (
	"fmt"
	"os"

	"github.com/n8nup/n8nup/cmd/n8nup/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
