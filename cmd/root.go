// Package cmd defines the CLI commands for create-skeleton-app.
package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/create-skeleton-app/internal/catalog"
	"github.com/donaldgifford/create-skeleton-app/internal/config"
	"github.com/donaldgifford/create-skeleton-app/internal/getter"
	"github.com/donaldgifford/create-skeleton-app/internal/prompt"
	"github.com/donaldgifford/create-skeleton-app/internal/ui"
)

var (
	verbose bool
	noColor bool
	cfgFile string
	refresh bool
)

// rootCmd creates a project; the subcommands inspect what it can create.
var rootCmd = &cobra.Command{
	Use:   "create-skeleton-app [name]",
	Short: "Create a new Skeleton app with SvelteKit and Tailwind",
	Long: `Create a new SvelteKit project with the Skeleton UI toolkit, Tailwind and
a starter template. Options not given as flags are asked for interactively
unless --quiet is set, in which case they take their defaults.`,
	Example: `  create-skeleton-app my-app
  create-skeleton-app --name "My App" --skeletontheme rocket --types typescript --quiet
  create-skeleton-app -n docs --skeletontemplatedir git::https://github.com/acme/skeleton-templates.git`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		initLogger()
	},
	RunE: runCreate,
}

// Execute runs the root command and reports its error.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	w := ui.NewWriter(noColor)

	if errors.Is(err, prompt.ErrCancelled) {
		w.Println("Exiting")
	} else {
		w.Error(err.Error())
	}

	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output, including package manager output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/create-skeleton-app/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&refresh, "refresh", false, "re-fetch a cached remote template catalog")
	registerCreateFlags(rootCmd)
}

func initLogger() {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	handler := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: verbose,
	})
	slog.SetDefault(slog.New(handler))
}

// loadConfig reads --config or the default config file and reports its
// warnings.
func loadConfig(w *ui.Writer) (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	for _, msg := range cfg.Warnings() {
		w.Warning(msg)
	}

	return cfg, nil
}

// openCatalog opens the template catalog named by source, falling back to
// the configured catalog and then the builtin one.
func openCatalog(ctx context.Context, cfg *config.Config, source string) (*catalog.Catalog, error) {
	if source == "" {
		source = cfg.TemplateDir
	}

	logger := slog.Default()

	return catalog.Open(ctx, source, catalog.OpenOpts{
		Fetcher:  getter.New(logger),
		CacheDir: cfg.CacheDir,
		Refresh:  refresh,
		Logger:   logger,
	})
}
