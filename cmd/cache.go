package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/create-skeleton-app/internal/catalog"
	"github.com/donaldgifford/create-skeleton-app/internal/ui"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the remote template catalog cache",
}

var cacheCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove cached template catalogs",
	Long: `Remove every remote template catalog fetched with --skeletontemplatedir.
They are fetched again on next use.`,
	Args: cobra.NoArgs,
	RunE: runCacheClean,
}

func init() {
	cacheCmd.AddCommand(cacheCleanCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheClean(_ *cobra.Command, _ []string) error {
	w := ui.NewWriter(noColor)

	cfg, err := loadConfig(w)
	if err != nil {
		return err
	}

	dir := cfg.CacheDir
	if dir == "" {
		dir = catalog.DefaultCacheDir()
	}

	freed, err := catalog.NewCache(dir, slog.Default()).Clean()
	if err != nil {
		return fmt.Errorf("cleaning catalog cache: %w", err)
	}

	if freed > 0 {
		w.Successf("Cleaned catalog cache (%s)", formatBytes(freed))
	} else {
		w.Info("Catalog cache already clean")
	}

	return nil
}

func formatBytes(b int64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
	)

	switch {
	case b >= gb:
		return fmt.Sprintf("%.1f GB", float64(b)/float64(gb))
	case b >= mb:
		return fmt.Sprintf("%.1f MB", float64(b)/float64(mb))
	case b >= kb:
		return fmt.Sprintf("%.1f KB", float64(b)/float64(kb))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
