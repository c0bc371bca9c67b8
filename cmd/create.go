package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/donaldgifford/create-skeleton-app/internal/create"
	"github.com/donaldgifford/create-skeleton-app/internal/getter"
	"github.com/donaldgifford/create-skeleton-app/internal/options"
	"github.com/donaldgifford/create-skeleton-app/internal/pkgmgr"
	"github.com/donaldgifford/create-skeleton-app/internal/prompt"
	"github.com/donaldgifford/create-skeleton-app/internal/resolve"
	"github.com/donaldgifford/create-skeleton-app/internal/ui"
)

// Flag names. Presence of each is what decides whether it is prompted for.
const (
	flagName        = "name"
	flagPath        = "path"
	flagTypes       = "types"
	flagESLint      = "eslint"
	flagPrettier    = "prettier"
	flagPlaywright  = "playwright"
	flagVitest      = "vitest"
	flagInspector   = "inspector"
	flagForms       = "forms"
	flagTypography  = "typography"
	flagLineClamp   = "lineclamp"
	flagTheme       = "skeletontheme"
	flagTemplate    = "skeletontemplate"
	flagTemplateDir = "skeletontemplatedir"
	flagCodeBlocks  = "codeblocks"
	flagPopups      = "popups"
	flagMonorepo    = "monorepo"
	flagQuiet       = "quiet"
	flagSettingsURL = "settings-url"
)

var (
	createName        string
	createPath        string
	createTypes       string
	createESLint      bool
	createPrettier    bool
	createPlaywright  bool
	createVitest      bool
	createInspector   bool
	createForms       bool
	createTypography  bool
	createLineClamp   bool
	createTheme       string
	createTemplate    string
	createTemplateDir string
	createCodeBlocks  bool
	createPopups      bool
	createMonorepo    bool
	createQuiet       bool
	createSettingsURL string
)

func registerCreateFlags(c *cobra.Command) {
	f := c.Flags()
	f.StringVarP(&createName, flagName, "n", options.DefaultName, "project name, also the directory created under --path")
	f.StringVarP(&createPath, flagPath, "p", ".", "directory the project directory is created in")
	f.StringVar(&createTypes, flagTypes, string(options.TypeScript), "type checking: typescript, checkjs or none")
	f.BoolVar(&createESLint, flagESLint, true, "add ESLint for code linting")
	f.BoolVar(&createPrettier, flagPrettier, true, "add Prettier for code formatting")
	f.BoolVar(&createPlaywright, flagPlaywright, false, "add Playwright for browser testing")
	f.BoolVar(&createVitest, flagVitest, false, "add Vitest for unit testing")
	f.BoolVar(&createInspector, flagInspector, false, "enable the experimental Svelte inspector")
	f.BoolVar(&createForms, flagForms, false, "add the @tailwindcss/forms plugin")
	f.BoolVar(&createTypography, flagTypography, false, "add the @tailwindcss/typography plugin")
	f.BoolVar(&createLineClamp, flagLineClamp, false, "add the @tailwindcss/line-clamp plugin")
	f.StringVarP(&createTheme, flagTheme, "t", "skeleton", "Skeleton theme")
	f.StringVar(&createTemplate, flagTemplate, "bare", "template ID from the template catalog")
	f.StringVar(&createTemplateDir, flagTemplateDir, "", "template catalog: a directory or a go-getter source (default builtin)")
	f.BoolVar(&createCodeBlocks, flagCodeBlocks, false, "add code block highlighting with highlight.js")
	f.BoolVar(&createPopups, flagPopups, false, "add popups with Floating UI")
	f.BoolVarP(&createMonorepo, flagMonorepo, "m", false, "let the dev server read ../../packages/skeleton")
	f.BoolVarP(&createQuiet, flagQuiet, "q", false, "do not prompt, use defaults for every option not given")
	f.StringVar(&createSettingsURL, flagSettingsURL, "", "editor settings file source")
}

// overlayFromFlags returns an overlay holding only the flags the user set.
func overlayFromFlags(f *pflag.FlagSet) (*options.Overlay, error) {
	ov := &options.Overlay{}

	strs := []struct {
		name string
		dst  **string
		val  string
	}{
		{flagName, &ov.Name, createName},
		{flagPath, &ov.Path, createPath},
		{flagTheme, &ov.Theme, createTheme},
		{flagTemplate, &ov.Template, createTemplate},
		{flagTemplateDir, &ov.TemplateDir, createTemplateDir},
	}

	for _, s := range strs {
		if f.Changed(s.name) {
			*s.dst = options.Ptr(s.val)
		}
	}

	bools := []struct {
		name string
		dst  **bool
		val  bool
	}{
		{flagESLint, &ov.ESLint, createESLint},
		{flagPrettier, &ov.Prettier, createPrettier},
		{flagPlaywright, &ov.Playwright, createPlaywright},
		{flagVitest, &ov.Vitest, createVitest},
		{flagInspector, &ov.Inspector, createInspector},
		{flagForms, &ov.Forms, createForms},
		{flagTypography, &ov.Typography, createTypography},
		{flagLineClamp, &ov.LineClamp, createLineClamp},
		{flagCodeBlocks, &ov.CodeBlocks, createCodeBlocks},
		{flagPopups, &ov.Popups, createPopups},
		{flagMonorepo, &ov.Monorepo, createMonorepo},
		{flagQuiet, &ov.Quiet, createQuiet},
		{"verbose", &ov.Verbose, verbose},
	}

	for _, b := range bools {
		if f.Changed(b.name) {
			*b.dst = options.Ptr(b.val)
		}
	}

	if f.Changed(flagTypes) {
		mode, err := options.ParseTypeMode(createTypes)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", flagTypes, err)
		}

		ov.Types = &mode
	}

	return ov, nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := slog.Default()
	w := ui.NewWriter(noColor)

	cfg, err := loadConfig(w)
	if err != nil {
		return err
	}

	ov, err := overlayFromFlags(cmd.Flags())
	if err != nil {
		return err
	}

	defaults := cfg.Defaults()

	templateDir := defaults.TemplateDir
	if ov.TemplateDir != nil {
		templateDir = *ov.TemplateDir
	}

	cat, err := openCatalog(ctx, cfg, templateDir)
	if err != nil {
		return err
	}

	quiet := ov.IsQuiet()
	if !quiet {
		w.Banner(build.Version)
	}

	o, err := resolve.Resolve(ctx, resolve.Opts{
		Defaults:  &defaults,
		Flags:     ov,
		Args:      args,
		Asker:     prompt.NewForm(!ui.IsTerminal() || os.Getenv("ACCESSIBLE") != ""),
		Templates: cat,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	settingsURL := cfg.SettingsURL
	if cmd.Flags().Changed(flagSettingsURL) {
		settingsURL = createSettingsURL
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	opts := &create.Opts{
		Options:     o,
		Fetcher:     getter.New(logger),
		Catalog:     cat,
		SettingsURL: settingsURL,
		Out:         w,
		Logger:      logger,
	}

	var res *create.Result

	showSpinner := !quiet && !o.Verbose && ui.IsTerminal()

	err = ui.RunWithSpinner(ctx, w, "Creating your Skeleton app...", showSpinner, func(out *ui.Writer) error {
		var runErr error

		opts.Out = out
		res, runErr = create.Run(ctx, opts)

		return runErr
	})
	if err != nil {
		return err
	}

	if !quiet {
		w.NextSteps(res.Dir, cwd, pkgmgr.DevCommand(o.PackageManager))
	}

	return nil
}
