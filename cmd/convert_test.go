package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvg/templatize/pkg/rules"
)

// resetConvertFlags restores the convert command's flag state between tests.
func resetConvertFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		convertCmd.Flags().VisitAll(func(f *pflag.Flag) {
			f.Changed = false
			_ = f.Value.Set(f.DefValue)
		})
	})
}

func TestConvertFlags(t *testing.T) {
	assert.NotNil(t, convertCmd.Flags().Lookup("root"))
	assert.NotNil(t, convertCmd.Flags().Lookup("project"))
	assert.NotNil(t, convertCmd.Flags().Lookup("display"))
	assert.NotNil(t, convertCmd.Flags().Lookup("package"))
	assert.NotNil(t, convertCmd.Flags().Lookup("rules"))
	assert.NotNil(t, convertCmd.Flags().Lookup("dry-run"))
	assert.NotNil(t, convertCmd.Flags().Lookup("skip-artifacts"))

	project, _ := convertCmd.Flags().GetString("project")
	assert.Equal(t, rules.DefaultSlug, project)

	display, _ := convertCmd.Flags().GetString("display")
	assert.Equal(t, rules.DefaultDisplay, display)

	pkg, _ := convertCmd.Flags().GetString("package")
	assert.Equal(t, rules.DefaultPackage, pkg)

	dryRun, _ := convertCmd.Flags().GetBool("dry-run")
	assert.False(t, dryRun)
}

func TestConvertValidation(t *testing.T) {
	tests := []struct {
		name      string
		project   string
		display   string
		pkg       string
		rulesFile string
		changed   []string // flags to mark as explicitly set
		wantErr   bool
		errMsg    string
	}{
		{
			name:    "defaults are valid",
			project: rules.DefaultSlug,
			display: rules.DefaultDisplay,
			pkg:     rules.DefaultPackage,
			wantErr: false,
		},
		{
			name:    "uppercase project slug rejected",
			project: "NDA Analyzer",
			display: rules.DefaultDisplay,
			pkg:     rules.DefaultPackage,
			wantErr: true,
			errMsg:  "lowercase letters, numbers, and hyphens",
		},
		{
			name:    "empty display rejected",
			project: rules.DefaultSlug,
			display: "",
			pkg:     rules.DefaultPackage,
			wantErr: true,
			errMsg:  "display name",
		},
		{
			name:      "rules file alone is valid",
			project:   rules.DefaultSlug,
			display:   rules.DefaultDisplay,
			pkg:       rules.DefaultPackage,
			rulesFile: "rules.toml",
			wantErr:   false,
		},
		{
			name:      "rules file and project are exclusive",
			project:   "acme",
			display:   rules.DefaultDisplay,
			pkg:       rules.DefaultPackage,
			rulesFile: "rules.toml",
			changed:   []string{"project"},
			wantErr:   true,
			errMsg:    "mutually exclusive",
		},
		{
			name:      "rules file and display are exclusive",
			project:   rules.DefaultSlug,
			display:   "Acme",
			pkg:       rules.DefaultPackage,
			rulesFile: "rules.toml",
			changed:   []string{"display"},
			wantErr:   true,
			errMsg:    "mutually exclusive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetConvertFlags(t)

			convertProject = tt.project
			convertDisplay = tt.display
			convertPackage = tt.pkg
			convertRules = tt.rulesFile
			for _, name := range tt.changed {
				convertCmd.Flags().Lookup(name).Changed = true
			}

			err := convertCmd.PreRunE(convertCmd, []string{})

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRunConvertEndToEnd(t *testing.T) {
	resetConvertFlags(t)
	root := t.TempDir()

	writeTestFile(t, filepath.Join(root, "app.ts"), `const name = "nda-analyzer";`)
	writeTestFile(t, filepath.Join(root, "package.json"), `{"name": "nda-analyzer"}`)
	originalConfig := "export const config = { hardcoded: true };\n"
	writeTestFile(t, filepath.Join(root, "lib", "config.ts"), originalConfig)

	convertRoot = root
	convertProject = rules.DefaultSlug
	convertDisplay = rules.DefaultDisplay
	convertPackage = rules.DefaultPackage
	convertRules = ""
	convertDryRun = false
	convertSkipArtifacts = false

	require.NoError(t, runConvert())

	// Tree rewrite happened.
	assert.Equal(t, `const name = "${PROJECT_NAME}";`, readTestFile(t, filepath.Join(root, "app.ts")))
	assert.Equal(t, `{"name": "vvg-template"}`, readTestFile(t, filepath.Join(root, "package.json")))

	// Artifacts were generated.
	assert.FileExists(t, filepath.Join(root, ".env.template"))
	assert.Equal(t, originalConfig, readTestFile(t, filepath.Join(root, "lib", "config.ts.original")))
	assert.Contains(t, readTestFile(t, filepath.Join(root, "lib", "config.ts")), "process.env.PROJECT_NAME")

	info, err := os.Stat(filepath.Join(root, "setup-project.sh"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestRunConvertSecondRunKeepsBackup(t *testing.T) {
	resetConvertFlags(t)
	root := t.TempDir()

	originalConfig := "export const config = { hardcoded: true };\n"
	writeTestFile(t, filepath.Join(root, "lib", "config.ts"), originalConfig)

	convertRoot = root
	convertProject = rules.DefaultSlug
	convertDisplay = rules.DefaultDisplay
	convertPackage = rules.DefaultPackage
	convertRules = ""
	convertDryRun = false
	convertSkipArtifacts = false

	require.NoError(t, runConvert())
	require.NoError(t, runConvert())

	assert.Equal(t, originalConfig, readTestFile(t, filepath.Join(root, "lib", "config.ts.original")))
}

func TestRunConvertDryRun(t *testing.T) {
	resetConvertFlags(t)
	root := t.TempDir()

	content := `const name = "nda-analyzer";`
	writeTestFile(t, filepath.Join(root, "app.ts"), content)

	convertRoot = root
	convertProject = rules.DefaultSlug
	convertDisplay = rules.DefaultDisplay
	convertPackage = rules.DefaultPackage
	convertRules = ""
	convertDryRun = true
	convertSkipArtifacts = false

	require.NoError(t, runConvert())

	assert.Equal(t, content, readTestFile(t, filepath.Join(root, "app.ts")))
	assert.NoFileExists(t, filepath.Join(root, ".env.template"))
	assert.NoFileExists(t, filepath.Join(root, "setup-project.sh"))
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
