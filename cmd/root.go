// Package cmd defines command-line interface commands for templatize.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vvg/templatize/internal/logging"
)

var (
	version   string
	verbosity int
)

var rootCmd = &cobra.Command{
	Use:   "templatize",
	Short: "Convert a branded web-app template into a generic, reusable one",
	Long: `templatize rewrites a previously-branded web application template into a
generic scaffold: project-specific identifiers become placeholder tokens, and
the setup artifacts new projects need (.env.template, an environment-driven
config module, setup-project.sh) are generated at the template root.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbosity)
	},
}

// Execute runs the root CLI command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	version = v
	rootCmd.Version = version
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase logging verbosity (repeatable)")
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(rulesCmd)
}
