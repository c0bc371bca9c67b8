package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/create-skeleton-app/internal/config"
	"github.com/donaldgifford/create-skeleton-app/internal/options"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
theme: rocket
template: welcome
template_dir: git::https://github.com/acme/skeleton-templates.git
types: checkjs
settings_url: https://example.com/settings.json
cache_dir: /tmp/csa-cache
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "rocket", cfg.Theme)
	assert.Equal(t, "welcome", cfg.Template)
	assert.Equal(t, "git::https://github.com/acme/skeleton-templates.git", cfg.TemplateDir)
	assert.Equal(t, "checkjs", cfg.Types)
	assert.Equal(t, "https://example.com/settings.json", cfg.SettingsURL)
	assert.Equal(t, "/tmp/csa-cache", cfg.CacheDir)
	assert.Empty(t, cfg.Warnings())
}

func TestLoad_NotFound(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("/nonexistent/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, options.Defaults(), cfg.Defaults())
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := config.Load(writeConfig(t, "{{invalid"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoad_InvalidTypes(t *testing.T) {
	t.Parallel()

	_, err := config.Load(writeConfig(t, "types: flow\n"))
	require.ErrorIs(t, err, options.ErrInvalidTypeMode)
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Theme: "vintage", Types: "none", Template: "welcome"}

	got := cfg.Defaults()

	want := options.Defaults()
	want.Theme = "vintage"
	want.Types = options.NoTypes
	want.Template = "welcome"

	assert.Equal(t, want, got)
}

func TestWarnings_UnknownTheme(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Theme: "neon"}

	warnings := cfg.Warnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `"neon"`)
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	assert.Equal(t, filepath.Join("/custom/config", config.AppName), config.DefaultConfigDir())
	assert.Equal(t, filepath.Join("/custom/config", config.AppName, config.FileName), config.DefaultPath())
}
