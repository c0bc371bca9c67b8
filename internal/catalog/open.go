package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// Fetcher downloads a directory tree from a remote source.
type Fetcher interface {
	Fetch(ctx context.Context, src, dest string) error
}

// OpenOpts configures Open.
type OpenOpts struct {
	// Fetcher downloads remote catalogs. Required only for remote sources.
	Fetcher Fetcher
	// CacheDir holds fetched remote catalogs. Defaults to DefaultCacheDir.
	CacheDir string
	// Refresh forces a re-fetch of a cached remote catalog.
	Refresh bool
	Logger  *slog.Logger
}

// Open resolves a catalog source. An empty source selects the builtin
// catalog; an existing directory is used in place; anything else is treated
// as a go-getter source and fetched into the cache.
func Open(ctx context.Context, source string, opts OpenOpts) (*Catalog, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if source == "" || source == BuiltinSource {
		logger.Debug("using builtin template catalog")

		return Builtin(), nil
	}

	if info, err := os.Stat(source); err == nil {
		if !info.IsDir() {
			return nil, fmt.Errorf("template catalog %s is not a directory", source)
		}

		logger.Debug("using local template catalog", "dir", source)

		return New(os.DirFS(source), source), nil
	}

	if opts.Fetcher == nil {
		return nil, fmt.Errorf("template catalog %s does not exist locally and no fetcher is configured", source)
	}

	cacheDir := opts.CacheDir
	if cacheDir == "" {
		cacheDir = DefaultCacheDir()
	}

	cache := NewCache(cacheDir, logger)

	dir, err := cache.GetOrFetch(source, opts.Refresh, func(dest string) error {
		return opts.Fetcher.Fetch(ctx, source, dest)
	})
	if err != nil {
		return nil, err
	}

	return New(os.DirFS(dir), source), nil
}
