// Package preflight provides read-only readiness checks for the manifest
// prepress is about to rewrite.
//
// The CLI "prepress inspect" command runs these before an operator commits to
// a prepare pass: file access (exists, regular, read/write bits), TOML
// well-formedness, and presence probes for each rewrite pattern. The
// well-formedness check is diagnostic only; the rewrite itself never parses
// the manifest.
package preflight
