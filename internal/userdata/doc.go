// Package userdata renders the first-boot bring-up script for the n8n
// instance.
//
// The bring-up sequence is modeled as an explicit ordered list of named
// steps, each rendered with a marker comment, so the sequencing the rest of
// the system depends on (packages before container start, container before
// proxy, proxy before certificate) is testable rather than implicit in one
// opaque shell blob. Individual steps are written to be safe to re-run where
// the underlying tool allows it.
//
// The container descriptor embedded by the compose-file step is built as a
// compose-spec project and serialized through the compose-go library, not
// string-templated YAML.
package userdata
