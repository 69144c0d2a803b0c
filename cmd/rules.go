package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vvg/templatize/internal/errors"
	"github.com/vvg/templatize/pkg/rules"
)

var (
	rulesProject string
	rulesDisplay string
	rulesPackage string
	rulesFile    string
)

var rulesCmd = &cobra.Command{
	Use:   "rules [flags]",
	Short: "Print the effective substitution ruleset as TOML",
	Long: `Rules prints the ruleset convert would apply, in the TOML format accepted
by --rules. Useful as a starting point for a custom ruleset file.`,
	Example: `  # Print the built-in ruleset
  templatize rules

  # Print the ruleset derived from custom branding
  templatize rules --project acme-portal --display "Acme Portal"`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if rulesFile != "" {
			for _, name := range []string{"project", "display", "package"} {
				if cmd.Flags().Changed(name) {
					return errors.NewValidationError(
						fmt.Sprintf("--rules and --%s are mutually exclusive", name), nil)
				}
			}
			return nil
		}
		project := rules.Project{Slug: rulesProject, Display: rulesDisplay, Package: rulesPackage}
		if err := project.Validate(); err != nil {
			return errors.NewValidationError("invalid project branding", err)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := runRules(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(errors.GetExitCode(err))
		}
	},
}

func runRules() error {
	var ruleset rules.Ruleset
	var err error
	if rulesFile != "" {
		ruleset, err = rules.Load(rulesFile)
		if err != nil {
			return errors.NewValidationError("failed to load ruleset", err)
		}
	} else {
		ruleset = rules.ForProject(rules.Project{
			Slug:    rulesProject,
			Display: rulesDisplay,
			Package: rulesPackage,
		})
	}

	out, err := ruleset.Marshal()
	if err != nil {
		return errors.NewRuntimeError("failed to marshal ruleset", err)
	}
	fmt.Print(string(out))
	return nil
}

func init() {
	rulesCmd.Flags().StringVar(&rulesProject, "project", rules.DefaultSlug, "Concrete project identifier to replace")
	rulesCmd.Flags().StringVar(&rulesDisplay, "display", rules.DefaultDisplay, "Concrete display string to replace")
	rulesCmd.Flags().StringVar(&rulesPackage, "package", rules.DefaultPackage, "Generic package-manifest name substituted into JSON files")
	rulesCmd.Flags().StringVar(&rulesFile, "rules", "", "TOML ruleset file to print instead of the built-in rules")
}
