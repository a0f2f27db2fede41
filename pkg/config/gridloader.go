package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// GridLoader loads every run config under a directory, an experiment
// grid. Each file runs through the full Load pipeline; per-file
// failures are collected rather than aborting the whole grid.
type GridLoader struct {
	// Path is the grid directory.
	Path string

	// Recursive scans subdirectories via ** globs.
	Recursive bool

	// Filter, when set, keeps only matching configs.
	Filter *Filter

	// Logger receives per-file diagnostics. Nil disables logging.
	Logger *slog.Logger
}

// GridEntry is one successfully loaded run config.
type GridEntry struct {
	Path   string
	Config *RunConfig
}

// GridResult is the outcome of loading a grid directory.
type GridResult struct {
	// Runs are the configs that loaded, validated, and passed the
	// filter, ordered by path.
	Runs []GridEntry

	// FileCount is the number of config files processed.
	FileCount int

	// Errors are the per-file failures.
	Errors []LoadError
}

// LoadError is a failure tied to one grid file.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// NewGridLoader creates a recursive GridLoader for the directory.
func NewGridLoader(path string) *GridLoader {
	return &GridLoader{Path: path, Recursive: true}
}

// Load scans the grid directory and loads every config file found.
func (g *GridLoader) Load() (*GridResult, error) {
	info, err := os.Stat(g.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("directory not found: %s", g.Path)
		}
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", g.Path)
	}

	files, err := g.findConfigFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory: %w", err)
	}

	result := &GridResult{}
	for _, file := range files {
		result.FileCount++

		cfg, err := Load(file, nil)
		if err != nil {
			g.logger().Warn("run config rejected", "path", file, "error", err)
			result.Errors = append(result.Errors, LoadError{
				Path:    file,
				Message: "invalid run config",
				Err:     err,
			})
			continue
		}

		if g.Filter != nil {
			ok, err := g.Filter.Match(cfg)
			if err != nil {
				result.Errors = append(result.Errors, LoadError{
					Path:    file,
					Message: "filter evaluation failed",
					Err:     err,
				})
				continue
			}
			if !ok {
				g.logger().Debug("run config filtered out", "path", file)
				continue
			}
		}

		g.logger().Debug("run config loaded", "path", file,
			"dataset", cfg.Dataset.Name, "dim_in", cfg.Share.DimIn)
		result.Runs = append(result.Runs, GridEntry{Path: file, Config: cfg})
	}

	return result, nil
}

// findConfigFiles globs *.yaml and *.yml under the grid directory.
func (g *GridLoader) findConfigFiles() ([]string, error) {
	patterns := []string{"*.yaml", "*.yml"}
	if g.Recursive {
		patterns = []string{"**/*.yaml", "**/*.yml"}
	}

	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(filepath.Join(g.Path, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}

	// Grid reports should be stable across runs.
	sort.Strings(files)
	files = dedupePaths(files)

	// Hidden files and editor leftovers are not grid members.
	kept := files[:0]
	for _, f := range files {
		if strings.HasPrefix(filepath.Base(f), ".") {
			continue
		}
		kept = append(kept, f)
	}
	return kept, nil
}

func dedupePaths(paths []string) []string {
	out := paths[:0]
	var prev string
	for i, p := range paths {
		if i == 0 || p != prev {
			out = append(out, p)
		}
		prev = p
	}
	return out
}

func (g *GridLoader) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
