package preflight

import (
	"os"
)

// RunAll executes the file-level checks for the given manifest path. The
// well-formedness check only runs when the file is readable.
func RunAll(path string) []Result {
	results := []Result{CheckManifestAccess(path)}

	data, err := os.ReadFile(path)
	if err != nil {
		return results
	}
	results = append(results, CheckWellFormed(string(data)))
	return results
}
