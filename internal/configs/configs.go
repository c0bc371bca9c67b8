// Package configs writes the fixed configuration files of a new project:
// build tool, CSS pipeline, the seed layout and global stylesheet, the
// monorepo vite patch and the editor settings file.
package configs

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/donaldgifford/create-skeleton-app/internal/options"
	tmpl "github.com/donaldgifford/create-skeleton-app/internal/template"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Project-relative paths of the files this package writes.
const (
	SvelteConfig   = "svelte.config.js"
	TailwindConfig = "tailwind.config.cjs"
	PostCSSConfig  = "postcss.config.cjs"
	LayoutFile     = "src/routes/+layout.svelte"
	StylesheetFile = "src/app.postcss"
	EditorSettings = ".vscode/settings.json"
)

// DefaultSettingsURL is where the editor settings file is fetched from.
const DefaultSettingsURL = "https://raw.githubusercontent.com/skeletonlabs/skeleton/master/scripts/tw-settings.json"

// tailwindPlugins lists plugin require() calls in config order.
var tailwindPlugins = []struct {
	enabled func(*options.Options) bool
	expr    string
}{
	{func(o *options.Options) bool { return o.Forms }, `require('@tailwindcss/forms')`},
	{func(o *options.Options) bool { return o.Typography }, `require('@tailwindcss/typography')`},
	{func(o *options.Options) bool { return o.LineClamp }, `require('@tailwindcss/line-clamp')`},
}

const skeletonTailwindPlugin = `require('@skeletonlabs/skeleton/tailwind/theme.cjs')`

// Write renders and writes the static configuration files into root.
func Write(root string, o *options.Options) error {
	r := tmpl.NewRenderer()
	vars := templateVars(o)

	files := []struct {
		name string
		dest string
	}{
		{"svelte.config.js.tmpl", SvelteConfig},
		{"tailwind.config.cjs.tmpl", TailwindConfig},
		{"postcss.config.cjs.tmpl", PostCSSConfig},
		{"layout.svelte.tmpl", LayoutFile},
		{"app.postcss.tmpl", StylesheetFile},
	}

	for _, f := range files {
		content, err := r.RenderFS(templatesFS, "templates/"+f.name, vars)
		if err != nil {
			return err
		}

		if err := writeFile(filepath.Join(root, filepath.FromSlash(f.dest)), content); err != nil {
			return err
		}
	}

	return nil
}

func templateVars(o *options.Options) map[string]any {
	plugins := make([]string, 0, len(tailwindPlugins)+1)

	for _, p := range tailwindPlugins {
		if p.enabled(o) {
			plugins = append(plugins, p.expr)
		}
	}

	plugins = append(plugins, skeletonTailwindPlugin)

	return map[string]any{
		"typed":     o.Types.Typed(),
		"theme":     o.Theme,
		"inspector": o.Inspector,
		"plugins":   plugins,
	}
}

const (
	viteInsertToken = "kit()]"
	viteFSAllow     = `,
	server: {
		fs: {
			allow: ['../../packages/skeleton/']
		}
	}`
)

// ViteConfigName returns the vite config file the base scaffold produced.
func ViteConfigName(types options.TypeMode) string {
	if types.Typed() {
		return "vite.config.ts"
	}

	return "vite.config.js"
}

// PatchViteMonorepo lets the dev server read the toolkit sources from the
// workspace's packages directory. The patch is applied once; a config that
// already allows the path is left alone.
func PatchViteMonorepo(root string, types options.TypeMode) error {
	path := filepath.Join(root, ViteConfigName(types))

	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("reading vite config: %w", err)
	}

	if bytes.Contains(content, []byte("packages/skeleton/")) {
		return nil
	}

	idx := bytes.Index(content, []byte(viteInsertToken))
	if idx < 0 {
		return fmt.Errorf("patching %s: %q not found", filepath.Base(path), viteInsertToken)
	}

	at := idx + len(viteInsertToken)

	var out bytes.Buffer
	out.Write(content[:at])
	out.WriteString(viteFSAllow)
	out.Write(content[at:])

	return os.WriteFile(path, out.Bytes(), 0o644)
}

// FileFetcher downloads a single remote file.
type FileFetcher interface {
	FetchFile(ctx context.Context, src, dest string) error
}

// FetchEditorSettings downloads the editor settings file into root. Callers
// treat failure as a warning.
func FetchEditorSettings(ctx context.Context, f FileFetcher, root, src string) error {
	if src == "" {
		src = DefaultSettingsURL
	}

	dest := filepath.Join(root, filepath.FromSlash(EditorSettings))
	if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(dest), err)
	}

	if err := f.FetchFile(ctx, src, dest); err != nil {
		return fmt.Errorf("fetching editor settings: %w", err)
	}

	return nil
}

func writeFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
