// Package create turns a resolved configuration into a project on disk.
package create

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/donaldgifford/create-skeleton-app/internal/catalog"
	"github.com/donaldgifford/create-skeleton-app/internal/configs"
	"github.com/donaldgifford/create-skeleton-app/internal/generator"
	"github.com/donaldgifford/create-skeleton-app/internal/options"
	"github.com/donaldgifford/create-skeleton-app/internal/pkgmgr"
	"github.com/donaldgifford/create-skeleton-app/internal/ui"
)

// ErrTargetNotEmpty is returned when the project directory already has content.
var ErrTargetNotEmpty = errors.New("target directory is not empty")

// LibDir is created in every project, even when the template has none.
const LibDir = "src/lib"

// Opts holds the collaborators and configuration for one run.
type Opts struct {
	// Options is the resolved configuration. It is not modified.
	Options *options.Options

	// Generator produces the base project. Nil means the builtin skeleton.
	Generator generator.Generator

	// Installer adds dependencies. Nil runs the configured package manager.
	Installer pkgmgr.Installer

	// Fetcher downloads the editor settings file. Nil skips the download
	// with a warning.
	Fetcher configs.FileFetcher

	// Catalog supplies the template. Nil means the builtin catalog.
	Catalog *catalog.Catalog

	// SettingsURL overrides the editor settings source.
	SettingsURL string

	// Out receives user-facing output. Nil discards it.
	Out *ui.Writer

	Logger *slog.Logger
}

// Result describes a created project.
type Result struct {
	// Dir is the absolute project directory.
	Dir string

	// Template is the ID of the applied template.
	Template string

	// Dependencies are the packages passed to the package manager.
	Dependencies []string

	// Warnings are the failures of steps that do not abort the run.
	Warnings []error
}

// Run executes every step in order. A failed Abort step stops the run and
// returns its error; a failed Warn step is reported and recorded in
// Result.Warnings. Nothing is rolled back.
func Run(ctx context.Context, opts *Opts) (*Result, error) {
	r, err := newRun(opts)
	if err != nil {
		return nil, err
	}

	for _, s := range r.steps() {
		if err := ctx.Err(); err != nil {
			return r.result, err
		}

		r.logger.Debug("step started", "step", s.Name, "policy", s.Policy.String())

		err := s.Run(ctx)
		if err == nil {
			r.logger.Debug("step finished", "step", s.Name)

			continue
		}

		if s.Policy == Abort {
			return r.result, fmt.Errorf("%s: %w", s.Name, err)
		}

		r.warn(fmt.Errorf("%s: %w", s.Name, err))
	}

	r.logger.Debug("project created", "dir", r.result.Dir, "template", r.result.Template)

	return r.result, nil
}

// TargetDir returns the absolute project directory: path joined with the
// normalized name.
func TargetDir(o *options.Options) (string, error) {
	return filepath.Abs(filepath.Join(o.Path, options.Normalize(o.Name)))
}

// CheckTarget returns ErrTargetNotEmpty if dir exists and has entries. A
// missing directory passes.
func CheckTarget(dir string) error {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("checking target directory: %w", err)
	}

	if len(entries) > 0 {
		return fmt.Errorf("%s: %w", dir, ErrTargetNotEmpty)
	}

	return nil
}
