package generator

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

const manifestFile = "manifest.yaml"

// manifest controls which skeleton files are emitted and under what name.
type manifest struct {
	Rename     map[string]string `yaml:"rename"`
	Conditions []condition       `yaml:"conditions"`
}

// condition excludes files when its rendered When expression is "true".
type condition struct {
	When    string   `yaml:"when"`
	Exclude []string `yaml:"exclude"`
}

func loadManifest(fsys fs.FS) (*manifest, error) {
	data, err := fs.ReadFile(fsys, manifestFile)
	if err != nil {
		return nil, fmt.Errorf("reading skeleton manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing skeleton manifest: %w", err)
	}

	return &m, nil
}
