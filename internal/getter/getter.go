// Package getter wraps hashicorp/go-getter for fetching remote template
// catalogs and the editor settings file.
package getter

import (
	"context"
	"fmt"
	"log/slog"

	getter "github.com/hashicorp/go-getter/v2"
)

// Getter fetches sources from git, HTTP and the other go-getter protocols.
type Getter struct {
	client *getter.Client
	logger *slog.Logger
}

// New creates a Getter with symlinks disabled.
func New(logger *slog.Logger) *Getter {
	if logger == nil {
		logger = slog.Default()
	}

	return &Getter{
		client: &getter.Client{
			DisableSymlinks: true,
		},
		logger: logger,
	}
}

// Fetch downloads a directory tree to dest. src uses go-getter syntax,
// including // for subdirectories and ?ref= for git refs.
func (g *Getter) Fetch(ctx context.Context, src, dest string) error {
	return g.get(ctx, src, dest, getter.ModeDir)
}

// FetchFile downloads a single file to dest.
func (g *Getter) FetchFile(ctx context.Context, src, dest string) error {
	return g.get(ctx, src, dest, getter.ModeFile)
}

func (g *Getter) get(ctx context.Context, src, dest string, mode getter.Mode) error {
	g.logger.Debug("fetching", "src", src, "dest", dest, "mode", modeName(mode))

	req := &getter.Request{
		Src:             src,
		Dst:             dest,
		GetMode:         mode,
		DisableSymlinks: true,
	}

	if _, err := g.client.Get(ctx, req); err != nil {
		return fmt.Errorf("fetching %s: %w", src, err)
	}

	return nil
}

func modeName(mode getter.Mode) string {
	if mode == getter.ModeFile {
		return "file"
	}

	return "dir"
}
