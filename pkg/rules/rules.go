// Package rules defines the substitution ruleset that drives template
// genericization: which paths are skipped, which directories are pruned,
// and which literal replacements apply to which file extensions.
package rules

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// slugPattern is the allowed shape of a project slug: lowercase letters,
// digits, and hyphens only. The generated setup script enforces the same
// pattern on end-user input.
var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Defaults for the project being genericized.
const (
	DefaultSlug    = "nda-analyzer"
	DefaultDisplay = "NDA Analyzer"
	DefaultPackage = "vvg-template"
)

// Rule is a single literal replacement: every occurrence of Old becomes New.
type Rule struct {
	Old string `toml:"old"`
	New string `toml:"new"`
}

// Map is an ordered list of replacement rules for one file extension.
type Map []Rule

// Ruleset is the full configuration for one conversion run.
//
// Skip patterns are literal substrings; a path containing any of them is
// excluded from processing. PruneDirs are directory basenames that are never
// descended into. Extensions maps a lowercase dotted extension to the
// replacement rules for files of that extension; extensions absent from the
// map are left untouched.
type Ruleset struct {
	Skip       []string       `toml:"skip"`
	PruneDirs  []string       `toml:"prune_dirs"`
	Extensions map[string]Map `toml:"extensions"`
}

// Project identifies the concrete branding to replace and the generic
// package-manifest name that takes its place in JSON files.
type Project struct {
	Slug    string // concrete identifier, e.g. "nda-analyzer"
	Display string // concrete display string, e.g. "NDA Analyzer"
	Package string // generic manifest name, e.g. "vvg-template"
}

// Underscore returns the slug with hyphens replaced by underscores,
// matching the identifier style used in database and Python-ish contexts.
func (p Project) Underscore() string {
	return strings.ReplaceAll(p.Slug, "-", "_")
}

// Validate checks that the project fields are usable as replacement sources.
func (p Project) Validate() error {
	if !slugPattern.MatchString(p.Slug) {
		return fmt.Errorf("project slug %q must be lowercase letters, numbers, and hyphens only", p.Slug)
	}
	if !slugPattern.MatchString(p.Package) {
		return fmt.Errorf("package name %q must be lowercase letters, numbers, and hyphens only", p.Package)
	}
	if p.Display == "" {
		return fmt.Errorf("display name must not be empty")
	}
	return nil
}

// DefaultProject returns the branding the original template carries.
func DefaultProject() Project {
	return Project{
		Slug:    DefaultSlug,
		Display: DefaultDisplay,
		Package: DefaultPackage,
	}
}

// generalExtensions are the extensions that share the full replacement map.
var generalExtensions = []string{".ts", ".tsx", ".js", ".jsx", ".yml", ".yaml", ".sh", ".conf"}

// ForProject builds the built-in ruleset for the given project branding.
//
// Three distinct maps are produced on purpose: the general map rewrites
// source and config files to ${...} placeholders, the JSON map only swaps
// the quoted package-manifest name, and the Markdown map uses brace-only
// placeholders so documentation reads cleanly.
func ForProject(p Project) Ruleset {
	general := Map{
		{Old: p.Slug, New: "${PROJECT_NAME}"},
		{Old: "/" + p.Slug, New: "/${PROJECT_NAME}"},
		{Old: p.Slug + "/", New: "${PROJECT_NAME}/"},
		{Old: "'" + p.Slug + "'", New: "'${PROJECT_NAME}'"},
		{Old: `"` + p.Slug + `"`, New: `"${PROJECT_NAME}"`},
		{Old: p.Display, New: "${PROJECT_DISPLAY_NAME}"},
		{Old: p.Underscore(), New: "${PROJECT_NAME_UNDERSCORE}"},
	}

	exts := make(map[string]Map, len(generalExtensions)+2)
	for _, ext := range generalExtensions {
		exts[ext] = general
	}
	exts[".json"] = Map{
		{Old: `"` + p.Slug + `"`, New: `"` + p.Package + `"`},
	}
	exts[".md"] = Map{
		{Old: p.Slug, New: "{PROJECT_NAME}"},
		{Old: p.Display, New: "{PROJECT_DISPLAY_NAME}"},
	}

	return Ruleset{
		Skip: []string{
			"node_modules",
			".git",
			".next",
			"dist",
			"build",
			".original",
			".env.template",
			"setup-project.sh",
		},
		PruneDirs:  []string{"node_modules", ".git", ".next", "dist", "build"},
		Extensions: exts,
	}
}

// Default returns the ruleset for the default project branding.
func Default() Ruleset {
	return ForProject(DefaultProject())
}

// Load reads a TOML ruleset file, replacing the built-in rules entirely.
func Load(path string) (Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Ruleset{}, fmt.Errorf("failed to read ruleset file: %w", err)
	}

	var rs Ruleset
	if err := toml.Unmarshal(data, &rs); err != nil {
		return Ruleset{}, fmt.Errorf("failed to parse ruleset file %s: %w", path, err)
	}

	if err := rs.Validate(); err != nil {
		return Ruleset{}, fmt.Errorf("invalid ruleset in %s: %w", path, err)
	}
	return rs, nil
}

// Validate checks structural invariants: extension keys are lowercase and
// dotted, and no rule has an empty Old string (an empty key would match
// between every pair of bytes).
func (rs Ruleset) Validate() error {
	for ext, m := range rs.Extensions {
		if ext == "" || !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension key %q must start with a dot", ext)
		}
		if ext != strings.ToLower(ext) {
			return fmt.Errorf("extension key %q must be lowercase", ext)
		}
		for i, r := range m {
			if r.Old == "" {
				return fmt.Errorf("extension %s rule %d has an empty old string", ext, i)
			}
		}
	}
	return nil
}

// Marshal renders the ruleset as TOML.
func (rs Ruleset) Marshal() ([]byte, error) {
	return toml.Marshal(rs)
}
