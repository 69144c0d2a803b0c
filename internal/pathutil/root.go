// Package pathutil resolves and validates the template root directory that
// every component operates on. The root is always passed explicitly; the
// tool never changes its working directory.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveRoot cleans path, makes it absolute, and verifies it refers to an
// existing directory. The returned path is safe to thread through the walker
// and the artifact generators.
func ResolveRoot(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("template root cannot be empty")
	}

	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("cannot resolve template root %q: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("cannot stat template root %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("template root %s is not a directory", abs)
	}
	return abs, nil
}
