package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	cacheMetaFile = ".catalog-cache-meta"
	catalogsDir   = "catalogs"
)

// cacheMeta records where a cached catalog came from.
type cacheMeta struct {
	Source    string    `yaml:"source"`
	FetchedAt time.Time `yaml:"fetched_at"`
}

// Cache keeps fetched remote catalogs on disk, one directory per source.
type Cache struct {
	baseDir string
	logger  *slog.Logger
}

// NewCache creates a Cache rooted at baseDir.
func NewCache(baseDir string, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}

	return &Cache{
		baseDir: baseDir,
		logger:  logger,
	}
}

// DefaultCacheDir returns the default cache directory, respecting XDG_CACHE_HOME.
func DefaultCacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "create-skeleton-app")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".cache", "create-skeleton-app")
	}

	return filepath.Join(home, ".cache", "create-skeleton-app")
}

// GetOrFetch returns the cached directory for source, calling fetchFn to
// populate it when missing or when refresh is set.
func (c *Cache) GetOrFetch(source string, refresh bool, fetchFn func(dest string) error) (string, error) {
	dir := c.dir(source)
	metaPath := filepath.Join(dir, cacheMetaFile)

	if !refresh {
		if meta, err := readCacheMeta(metaPath); err == nil && meta.Source == source {
			c.logger.Debug("catalog cache hit", "source", source, "fetched_at", meta.FetchedAt)

			return dir, nil
		}
	}

	if err := os.RemoveAll(dir); err != nil {
		return "", fmt.Errorf("removing stale catalog cache %s: %w", dir, err)
	}

	if err := os.MkdirAll(filepath.Dir(dir), 0o750); err != nil {
		return "", fmt.Errorf("creating cache directory %s: %w", c.baseDir, err)
	}

	c.logger.Debug("fetching template catalog", "source", source, "dest", dir)

	if err := fetchFn(dir); err != nil {
		if removeErr := os.RemoveAll(dir); removeErr != nil {
			c.logger.Warn("failed to clean up catalog cache after fetch failure", "err", removeErr)
		}

		return "", fmt.Errorf("fetching template catalog %s: %w", source, err)
	}

	meta := &cacheMeta{Source: source, FetchedAt: time.Now().UTC()}
	if err := writeCacheMeta(metaPath, meta); err != nil {
		return "", fmt.Errorf("writing catalog cache metadata: %w", err)
	}

	return dir, nil
}

// Clean removes every cached catalog and returns the bytes freed.
func (c *Cache) Clean() (int64, error) {
	dir := filepath.Join(c.baseDir, catalogsDir)

	size, err := dirSize(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}

		return 0, err
	}

	c.logger.Debug("removing catalog cache", "dir", dir, "size", size)

	if err := os.RemoveAll(dir); err != nil {
		return 0, fmt.Errorf("removing %s: %w", dir, err)
	}

	return size, nil
}

func dirSize(path string) (int64, error) {
	var size int64

	err := filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			info, infoErr := d.Info()
			if infoErr != nil {
				return infoErr
			}

			size += info.Size()
		}

		return nil
	})

	return size, err
}

func (c *Cache) dir(source string) string {
	hash := sha256.Sum256([]byte(source))

	return filepath.Join(c.baseDir, catalogsDir, hex.EncodeToString(hash[:8]))
}

func readCacheMeta(path string) (*cacheMeta, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var meta cacheMeta
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func writeCacheMeta(path string, meta *cacheMeta) error {
	data, err := yaml.Marshal(meta)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
