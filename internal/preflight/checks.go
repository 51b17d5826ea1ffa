package preflight

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/sys/unix"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// CheckManifestAccess verifies that the manifest exists, is a regular file,
// and carries read and write permission for the current user.
func CheckManifestAccess(path string) Result {
	const name = "Manifest access"

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckWellFormed verifies that the manifest text parses as TOML. The rewrite
// operates on raw text either way; a parse failure here flags a manifest that
// was probably corrupted before prepress ever ran.
func CheckWellFormed(content string) Result {
	const name = "TOML well-formed"

	var doc map[string]any
	if err := toml.Unmarshal([]byte(content), &doc); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("parse error: %v", err)}
	}
	return Result{Name: name, Passed: true, Detail: "parses cleanly"}
}
