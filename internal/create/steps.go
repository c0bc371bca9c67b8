package create

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/donaldgifford/create-skeleton-app/internal/catalog"
	"github.com/donaldgifford/create-skeleton-app/internal/configs"
	"github.com/donaldgifford/create-skeleton-app/internal/generator"
	"github.com/donaldgifford/create-skeleton-app/internal/options"
	"github.com/donaldgifford/create-skeleton-app/internal/patch"
	"github.com/donaldgifford/create-skeleton-app/internal/pkgmgr"
	"github.com/donaldgifford/create-skeleton-app/internal/ui"
)

// Policy decides what a failed step does to the run.
type Policy int

const (
	// Abort stops the run and returns the error.
	Abort Policy = iota
	// Warn reports the error and continues.
	Warn
)

func (p Policy) String() string {
	if p == Warn {
		return "warn"
	}

	return "abort"
}

// Step is one stage of a run.
type Step struct {
	Name   string
	Policy Policy
	Run    func(ctx context.Context) error
}

// Step names.
const (
	StepGuard    = "check target"
	StepTemplate = "find template"
	StepScaffold = "scaffold"
	StepInstall  = "install dependencies"
	StepConfigs  = "write configs"
	StepMonorepo = "patch vite config"
	StepSettings = "editor settings"
	StepPatch    = "apply template"
	StepFixups   = "fixups"
)

// run carries the state shared by the steps. root is the project directory
// every step after the scaffold works relative to.
type run struct {
	o      *options.Options
	opts   *Opts
	out    *ui.Writer
	logger *slog.Logger

	root   string
	tpl    fs.FS
	result *Result
}

func newRun(opts *Opts) (*run, error) {
	if opts == nil || opts.Options == nil {
		return nil, errors.New("no options to create a project from")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	out := opts.Out
	if out == nil {
		out = ui.NewWriterWithOutputs(io.Discard, io.Discard, true)
	}

	return &run{
		o:      opts.Options,
		opts:   opts,
		out:    out,
		logger: logger,
		result: &Result{Template: opts.Options.Template},
	}, nil
}

func (r *run) steps() []Step {
	steps := []Step{
		{Name: StepGuard, Policy: Abort, Run: r.guard},
		{Name: StepTemplate, Policy: Abort, Run: r.findTemplate},
		{Name: StepScaffold, Policy: Abort, Run: r.scaffold},
		{Name: StepInstall, Policy: Warn, Run: r.install},
		{Name: StepConfigs, Policy: Abort, Run: r.writeConfigs},
	}

	if r.o.Monorepo {
		steps = append(steps, Step{Name: StepMonorepo, Policy: Warn, Run: r.monorepo})
	}

	return append(steps,
		Step{Name: StepSettings, Policy: Warn, Run: r.editorSettings},
		Step{Name: StepPatch, Policy: Abort, Run: r.applyTemplate},
		Step{Name: StepFixups, Policy: Abort, Run: r.fixups},
	)
}

func (r *run) warn(err error) {
	r.result.Warnings = append(r.result.Warnings, err)
	r.logger.Debug("step warning", "err", err)
	r.out.Warning(err.Error())
}

func (r *run) guard(_ context.Context) error {
	dir, err := TargetDir(r.o)
	if err != nil {
		return fmt.Errorf("resolving target directory: %w", err)
	}

	if err := CheckTarget(dir); err != nil {
		return err
	}

	r.root = dir
	r.result.Dir = dir

	return nil
}

func (r *run) findTemplate(_ context.Context) error {
	cat := r.opts.Catalog
	if cat == nil {
		cat = catalog.Builtin()
	}

	tpl, err := cat.FS(r.o.Template)
	if err != nil {
		return err
	}

	r.logger.Debug("using template", "id", r.o.Template, "catalog", cat.Source())
	r.tpl = tpl

	return nil
}

func (r *run) scaffold(ctx context.Context) error {
	if err := os.MkdirAll(r.root, 0o750); err != nil {
		return fmt.Errorf("creating %s: %w", r.root, err)
	}

	gen := r.opts.Generator
	if gen == nil {
		gen = generator.NewBuiltin(r.logger)
	}

	return gen.Generate(ctx, r.root, generator.FromOptions(r.o))
}

func (r *run) install(ctx context.Context) error {
	deps := pkgmgr.Dependencies(r.o)
	r.result.Dependencies = deps
	r.logger.Debug("dependencies", "pm", r.o.PackageManager, "packages", deps)

	inst := r.opts.Installer
	if inst == nil {
		pm := r.o.PackageManager
		if pm == "" {
			pm = pkgmgr.Default
		}

		inst = pkgmgr.NewExec(pm, r.logger)
	}

	res, err := inst.Install(ctx, r.root, deps)
	if res != nil {
		r.out.Raw(res.Stderr)

		if r.o.Verbose {
			r.out.Verbatim(res.Stdout)
		}
	}

	return err
}

func (r *run) writeConfigs(_ context.Context) error {
	return configs.Write(r.root, r.o)
}

func (r *run) monorepo(_ context.Context) error {
	return configs.PatchViteMonorepo(r.root, r.o.Types)
}

func (r *run) editorSettings(ctx context.Context) error {
	if r.opts.Fetcher == nil {
		return errors.New("no fetcher configured, " + configs.EditorSettings + " not written")
	}

	return configs.FetchEditorSettings(ctx, r.opts.Fetcher, r.root, r.opts.SettingsURL)
}

func (r *run) applyTemplate(_ context.Context) error {
	warnings, err := patch.New(r.root, nil, r.logger).Apply(r.tpl, r.o)
	for _, w := range warnings {
		r.warn(fmt.Errorf("%s: %w", StepPatch, w))
	}

	return err
}

func (r *run) fixups(_ context.Context) error {
	return os.MkdirAll(filepath.Join(r.root, filepath.FromSlash(LibDir)), 0o750)
}
