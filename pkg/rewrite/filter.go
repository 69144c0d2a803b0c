// Package rewrite walks a template tree and applies literal substitution
// rules to file contents, in place. It is the engine behind the convert
// command: path filtering, per-extension dispatch, and single-pass
// multi-pattern replacement.
package rewrite

import "strings"

// Skipped reports whether path is excluded by any of the skip patterns.
// Matching is plain substring containment over the path string; the first
// hit wins. A pattern matching an unintended substring deep in a path is an
// intentional skip, not an error.
func Skipped(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}
