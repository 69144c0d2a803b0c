package rewrite

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/vvg/templatize/internal/logging"
	"github.com/vvg/templatize/pkg/rules"
)

// ErrNotText marks files that could not be decoded as UTF-8 text. Such files
// are diagnosed and skipped; they never abort the walk.
var ErrNotText = errors.New("file is not valid UTF-8 text")

// FileError records a per-file failure that was skipped over.
type FileError struct {
	Path string // root-relative path
	Err  error
}

// Result accumulates the outcome of one tree walk.
type Result struct {
	Updated []string    // root-relative paths rewritten in place
	Errors  []FileError // per-file failures, skipped without aborting
}

type config struct {
	dryRun bool
	log    zerolog.Logger
}

// Option configures a tree walk.
type Option func(*config)

// WithDryRun makes the walk report what would change without writing.
func WithDryRun(dryRun bool) Option {
	return func(c *config) {
		c.dryRun = dryRun
	}
}

// WithLogger sets the logger used for per-file diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// Walk traverses every file under root, pruning excluded directories by name
// before descending, and applies the ruleset's extension-dispatched
// substitution maps to the remaining files in place.
//
// Skip patterns and reported paths are matched against root-relative paths,
// so a pattern like "build" never fires because of a segment in the absolute
// path of the root itself. Per-file read, decode, and write failures are
// collected in the result; only a walk-level failure returns an error.
func Walk(root string, rs rules.Ruleset, opts ...Option) (*Result, error) {
	cfg := &config{log: logging.GetLogger("rewrite")}
	for _, opt := range opts {
		opt(cfg)
	}

	result := &Result{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			rel := relPath(root, path)
			cfg.log.Warn().Str("path", rel).Err(err).Msg("cannot access path")
			result.Errors = append(result.Errors, FileError{Path: rel, Err: err})
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != root && slices.Contains(rs.PruneDirs, d.Name()) {
				cfg.log.Debug().Str("dir", relPath(root, path)).Msg("pruned directory")
				return fs.SkipDir
			}
			return nil
		}

		rel := relPath(root, path)
		if Skipped(rel, rs.Skip) {
			cfg.log.Debug().Str("path", rel).Msg("skip pattern matched")
			return nil
		}

		ext := strings.ToLower(filepath.Ext(d.Name()))
		// A dotfile's whole name is not an extension: a file literally
		// named ".sh" or ".json" has no extension and is never dispatched.
		if strings.EqualFold(d.Name(), ext) {
			return nil
		}
		m, ok := rs.Extensions[ext]
		if !ok {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			cfg.log.Warn().Str("path", rel).Err(err).Msg("cannot read file")
			result.Errors = append(result.Errors, FileError{Path: rel, Err: err})
			return nil
		}
		if !utf8.Valid(data) {
			cfg.log.Warn().Str("path", rel).Msg("not valid UTF-8, skipping")
			result.Errors = append(result.Errors, FileError{Path: rel, Err: ErrNotText})
			return nil
		}

		content, changed := Apply(string(data), m)
		if !changed {
			return nil
		}

		if !cfg.dryRun {
			mode := fs.FileMode(0644)
			if info, err := d.Info(); err == nil {
				mode = info.Mode().Perm()
			}
			if err := os.WriteFile(path, []byte(content), mode); err != nil {
				cfg.log.Warn().Str("path", rel).Err(err).Msg("cannot write file")
				result.Errors = append(result.Errors, FileError{Path: rel, Err: err})
				return nil
			}
		}

		cfg.log.Info().Str("path", rel).Msg("updated")
		result.Updated = append(result.Updated, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
