// Package manifest rewrites the crate manifest ahead of a crates.io publish.
//
// The b4ae Cargo.toml carries an optional workspace-path dependency on
// elara-transport that cannot ship through the registry. Rewrite strips that
// dependency block and normalizes the feature definitions referencing it, so
// the published crate still compiles with the feature disabled. The manifest
// is treated as opaque text: fixed patterns only, no TOML parsing, and lines
// outside the patterns pass through byte for byte.
//
// Rewriter wraps the pure transformation with file I/O and an advisory flock
// so concurrent invocations against one manifest cannot interleave.
package manifest
