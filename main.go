// Package main is the entry point for the templatize CLI application.
package main

import (
	"fmt"
	"os"

	"github.com/vvg/templatize/cmd"
	"github.com/vvg/templatize/internal/errors"
)

var version = "dev"

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetExitCode(err))
	}
}
