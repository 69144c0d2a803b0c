package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vvg/templatize/internal/errors"
	"github.com/vvg/templatize/internal/pathutil"
	"github.com/vvg/templatize/internal/ui"
	"github.com/vvg/templatize/internal/workspace"
	"github.com/vvg/templatize/pkg/artifacts"
	"github.com/vvg/templatize/pkg/rewrite"
	"github.com/vvg/templatize/pkg/rules"
)

var (
	convertRoot          string
	convertProject       string
	convertDisplay       string
	convertPackage       string
	convertRules         string
	convertDryRun        bool
	convertSkipArtifacts bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags]",
	Short: "Run the one-shot template conversion",
	Long: `Convert walks the template tree, replacing project-specific identifiers
with placeholder tokens per file extension, and generates the setup artifacts
(.env.template, the environment-driven lib/config.ts with a write-once backup
of the original, and the executable setup-project.sh).

Excluded directories (node_modules, .git, .next, dist, build) are never
descended into. Files that cannot be read or decoded as text are reported and
skipped; they never abort the run.`,
	Example: `  # Convert the template rooted at the enclosing git repository
  templatize convert

  # Convert a specific tree, replacing custom branding
  templatize convert --root ./my-template --project acme-portal --display "Acme Portal"

  # Preview the rewrite without touching any file
  templatize convert --dry-run

  # Use a custom ruleset file instead of the built-in rules
  templatize convert --rules rules.toml`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		var errs []error

		if convertRules != "" {
			for _, name := range []string{"project", "display", "package"} {
				if cmd.Flags().Changed(name) {
					errs = append(errs, fmt.Errorf("--rules and --%s are mutually exclusive (a ruleset file replaces the built-in rules entirely)", name))
				}
			}
		} else {
			project := rules.Project{Slug: convertProject, Display: convertDisplay, Package: convertPackage}
			if err := project.Validate(); err != nil {
				errs = append(errs, err)
			}
		}

		if len(errs) > 0 {
			combined := "Validation errors:\n"
			for _, err := range errs {
				combined += fmt.Sprintf("  - %s\n", err)
			}
			return errors.NewValidationError(combined, nil)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := runConvert(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(errors.GetExitCode(err))
		}
	},
}

func runConvert() error {
	root := convertRoot
	if root == "" {
		found, err := workspace.FindRoot()
		if err != nil {
			return errors.NewRuntimeError("failed to locate template root", err)
		}
		root = found
	}

	root, err := pathutil.ResolveRoot(root)
	if err != nil {
		return errors.NewRuntimeError("invalid template root", err)
	}

	var ruleset rules.Ruleset
	if convertRules != "" {
		ruleset, err = rules.Load(convertRules)
		if err != nil {
			return errors.NewValidationError("failed to load ruleset", err)
		}
	} else {
		ruleset = rules.ForProject(rules.Project{
			Slug:    convertProject,
			Display: convertDisplay,
			Package: convertPackage,
		})
	}

	ui.Info("Making the template generic...\n")
	ui.Info("==============================\n")

	generateArtifacts := !convertSkipArtifacts && !convertDryRun
	if convertDryRun && !convertSkipArtifacts {
		ui.Warning("Dry run: artifact generation skipped\n")
	}

	if generateArtifacts {
		if err := artifacts.WriteEnvTemplate(root); err != nil {
			return errors.NewRuntimeError("failed to write "+artifacts.EnvTemplateName, err)
		}
		ui.Success("✓ Created %s\n", artifacts.EnvTemplateName)

		rewritten, err := artifacts.RewriteConfigModule(root)
		if err != nil {
			return errors.NewRuntimeError("failed to rewrite "+artifacts.ConfigModulePath, err)
		}
		if rewritten {
			ui.Success("✓ Updated %s\n", artifacts.ConfigModulePath)
		}
	}

	ui.Info("\nProcessing files...\n")
	result, err := rewrite.Walk(root, ruleset, rewrite.WithDryRun(convertDryRun))
	if err != nil {
		return errors.NewRuntimeError("failed to walk template tree", err)
	}

	for _, path := range result.Updated {
		ui.Success("  ✓ Updated: %s\n", path)
	}
	for _, fe := range result.Errors {
		ui.Error("  ✗ Error updating %s: %v\n", fe.Path, fe.Err)
	}

	if generateArtifacts {
		if err := artifacts.WriteSetupScript(root); err != nil {
			return errors.NewRuntimeError("failed to write "+artifacts.SetupScriptName, err)
		}
		ui.Success("✓ Created %s\n", artifacts.SetupScriptName)
	}

	if convertDryRun {
		fmt.Printf("\nDry run complete: %d files would be updated\n", len(result.Updated))
	} else {
		fmt.Printf("\nTemplate conversion complete! Updated %d files\n", len(result.Updated))
		fmt.Println("Users should run './setup-project.sh' to configure it for their project.")
	}
	return nil
}

func init() {
	convertCmd.Flags().StringVar(&convertRoot, "root", "", "Template root directory (default: enclosing git toplevel, else current directory)")
	convertCmd.Flags().StringVar(&convertProject, "project", rules.DefaultSlug, "Concrete project identifier to replace")
	convertCmd.Flags().StringVar(&convertDisplay, "display", rules.DefaultDisplay, "Concrete display string to replace")
	convertCmd.Flags().StringVar(&convertPackage, "package", rules.DefaultPackage, "Generic package-manifest name substituted into JSON files")
	convertCmd.Flags().StringVar(&convertRules, "rules", "", "TOML ruleset file replacing the built-in rules")
	convertCmd.Flags().BoolVar(&convertDryRun, "dry-run", false, "Report what would change without writing anything")
	convertCmd.Flags().BoolVar(&convertSkipArtifacts, "skip-artifacts", false, "Run only the tree rewrite, without generating setup artifacts")
}
