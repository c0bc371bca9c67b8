// Package config loads the user's create-skeleton-app configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/create-skeleton-app/internal/options"
)

// AppName names the configuration and cache directories.
const AppName = "create-skeleton-app"

// FileName is the configuration file inside the configuration directory.
const FileName = "config.yaml"

// Config represents the user's configuration file. Every field is optional;
// set fields replace the built-in defaults.
type Config struct {
	Theme       string `yaml:"theme"`
	Template    string `yaml:"template"`
	TemplateDir string `yaml:"template_dir"`
	Types       string `yaml:"types"`
	SettingsURL string `yaml:"settings_url"`
	CacheDir    string `yaml:"cache_dir"`
}

// DefaultConfigDir returns the default configuration directory, respecting XDG_CONFIG_HOME.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", AppName)
	}

	return filepath.Join(home, ".config", AppName)
}

// DefaultPath returns the default configuration file path.
func DefaultPath() string {
	return filepath.Join(DefaultConfigDir(), FileName)
}

// Load reads the config from the given path.
// If the file doesn't exist, it returns a zero-value config (no error).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}

		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks the values that would fail later in the run.
func Validate(cfg *Config) error {
	if cfg.Types != "" {
		if _, err := options.ParseTypeMode(cfg.Types); err != nil {
			return fmt.Errorf("types: %w", err)
		}
	}

	return nil
}

// Warnings returns problems that do not stop a run.
func (c *Config) Warnings() []string {
	var warnings []string

	if c.Theme != "" && !options.KnownTheme(c.Theme) {
		warnings = append(warnings, fmt.Sprintf("theme %q is not a known theme, no font will be bundled", c.Theme))
	}

	return warnings
}

// Defaults returns the built-in defaults with the configured values applied.
func (c *Config) Defaults() options.Options {
	o := options.Defaults()

	if c.Theme != "" {
		o.Theme = c.Theme
	}

	if c.Template != "" {
		o.Template = c.Template
	}

	if c.TemplateDir != "" {
		o.TemplateDir = c.TemplateDir
	}

	if c.Types != "" {
		if mode, err := options.ParseTypeMode(c.Types); err == nil {
			o.Types = mode
		}
	}

	return o
}
