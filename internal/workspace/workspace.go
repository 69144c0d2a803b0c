// Package workspace provides utilities for finding the default template root.
package workspace

import (
	"os"
	"os/exec"
	"strings"
)

// FindRoot finds the default template root. It prefers the enclosing git
// repository toplevel (via `git rev-parse --show-toplevel`) and falls back
// to the current working directory when not inside a repository.
func FindRoot() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err == nil {
		if root := strings.TrimSpace(string(output)); root != "" {
			return root, nil
		}
	}
	return os.Getwd()
}
