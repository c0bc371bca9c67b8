// Package generator produces the base SvelteKit project that the rest of
// the pipeline patches. Generator is the boundary; Builtin renders an
// embedded skeleton and is the default implementation.
package generator

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/donaldgifford/create-skeleton-app/internal/options"
	tmpl "github.com/donaldgifford/create-skeleton-app/internal/template"
)

// Options is the subset of the project configuration the generator understands.
type Options struct {
	Name       string
	Types      options.TypeMode
	ESLint     bool
	Prettier   bool
	Playwright bool
	Vitest     bool
}

// FromOptions extracts the generator options from a resolved configuration.
func FromOptions(o *options.Options) Options {
	return Options{
		Name:       o.Name,
		Types:      o.Types,
		ESLint:     o.ESLint,
		Prettier:   o.Prettier,
		Playwright: o.Playwright,
		Vitest:     o.Vitest,
	}
}

func (o Options) vars() map[string]any {
	return map[string]any{
		"name":       o.Name,
		"types":      string(o.Types),
		"typed":      o.Types.Typed(),
		"eslint":     o.ESLint,
		"prettier":   o.Prettier,
		"playwright": o.Playwright,
		"vitest":     o.Vitest,
	}
}

// Generator creates the base file tree of a project in dir.
type Generator interface {
	Generate(ctx context.Context, dir string, opts Options) error
}

//go:embed all:skeleton
var skeletonFS embed.FS

const skeletonRoot = "skeleton"

// Builtin renders the embedded SvelteKit skeleton.
type Builtin struct {
	fsys     fs.FS
	renderer *tmpl.Renderer
	logger   *slog.Logger
}

// NewBuiltin creates the embedded generator.
func NewBuiltin(logger *slog.Logger) *Builtin {
	if logger == nil {
		logger = slog.Default()
	}

	sub, err := fs.Sub(skeletonFS, skeletonRoot)
	if err != nil {
		panic(err)
	}

	return &Builtin{
		fsys:     sub,
		renderer: tmpl.NewRenderer(),
		logger:   logger,
	}
}

// Generate writes the skeleton into dir, which must already exist.
func (b *Builtin) Generate(ctx context.Context, dir string, opts Options) error {
	m, err := loadManifest(b.fsys)
	if err != nil {
		return err
	}

	fileSet, err := collectFiles(b.fsys)
	if err != nil {
		return err
	}

	vars := opts.vars()

	if err := evaluateConditions(b.renderer, m.Conditions, vars, fileSet); err != nil {
		return fmt.Errorf("evaluating conditions: %w", err)
	}

	b.logger.Debug("generating base project", "dir", dir, "files", fileSet.Len(), "types", opts.Types)

	for _, entry := range fileSet.Entries() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := b.writeFile(dir, entry, m.Rename, vars); err != nil {
			return fmt.Errorf("writing file %s: %w", entry, err)
		}
	}

	return nil
}

func (b *Builtin) writeFile(dir, relPath string, rename map[string]string, vars map[string]any) error {
	outPath := tmpl.StripExt(relPath)
	if renamed, ok := rename[outPath]; ok {
		outPath = renamed
	}

	dest := filepath.Join(dir, filepath.FromSlash(outPath))

	if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
		return fmt.Errorf("creating directory for %s: %w", dest, err)
	}

	var (
		content []byte
		err     error
	)

	if tmpl.IsTemplate(relPath) {
		content, err = b.renderer.RenderFS(b.fsys, relPath, vars)
	} else {
		content, err = fs.ReadFile(b.fsys, relPath)
	}

	if err != nil {
		return err
	}

	return os.WriteFile(dest, content, 0o644)
}
