// Package catalog loads the template catalog: one directory per template,
// each with a meta.json descriptor and the src/ and static/ trees that are
// copied into a new project.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// MetaFile is the descriptor every template directory carries.
const MetaFile = "meta.json"

var (
	// ErrTemplateNotFound is returned for an unknown template ID.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrTemplateDisabled is returned for a template whose meta.json has enabled=false.
	ErrTemplateDisabled = errors.New("template is disabled")
)

// Template is a catalog entry.
type Template struct {
	ID          string `json:"id"`
	Position    int    `json:"position"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

type meta struct {
	Position    int    `json:"position"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

// Catalog is a template catalog rooted at an fs.FS.
type Catalog struct {
	fsys   fs.FS
	source string
}

// New wraps fsys as a catalog. Source names where it came from for messages.
func New(fsys fs.FS, source string) *Catalog {
	return &Catalog{fsys: fsys, source: source}
}

// Source returns the catalog's origin (a directory, a remote URL or "builtin").
func (c *Catalog) Source() string {
	return c.source
}

// All returns every template in the catalog, enabled or not, sorted by
// position then ID. Directories without a meta.json are skipped.
func (c *Catalog) All() ([]Template, error) {
	entries, err := fs.ReadDir(c.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading template catalog %s: %w", c.source, err)
	}

	var templates []Template

	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}

		t, err := c.load(e.Name())
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			return nil, err
		}

		templates = append(templates, *t)
	}

	sort.SliceStable(templates, func(i, j int) bool {
		if templates[i].Position != templates[j].Position {
			return templates[i].Position < templates[j].Position
		}

		return templates[i].ID < templates[j].ID
	})

	return templates, nil
}

// Enabled returns the selectable templates in position order.
func (c *Catalog) Enabled() ([]Template, error) {
	all, err := c.All()
	if err != nil {
		return nil, err
	}

	enabled := make([]Template, 0, len(all))

	for i := range all {
		if all[i].Enabled {
			enabled = append(enabled, all[i])
		}
	}

	return enabled, nil
}

// Find returns the template with the given ID. Unknown and disabled
// templates are errors; there is no fallback.
func (c *Catalog) Find(id string) (*Template, error) {
	if id == "" || !fs.ValidPath(id) || strings.Contains(id, "/") {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
	}

	t, err := c.load(id)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, c.notFound(id)
	}

	if err != nil {
		return nil, err
	}

	if !t.Enabled {
		return nil, fmt.Errorf("%w: %q in %s", ErrTemplateDisabled, id, c.source)
	}

	return t, nil
}

// FS returns the file tree of a template. The template must be enabled.
func (c *Catalog) FS(id string) (fs.FS, error) {
	if _, err := c.Find(id); err != nil {
		return nil, err
	}

	return fs.Sub(c.fsys, id)
}

func (c *Catalog) load(id string) (*Template, error) {
	data, err := fs.ReadFile(c.fsys, path.Join(id, MetaFile))
	if err != nil {
		return nil, err
	}

	var m meta
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s for template %q: %w", MetaFile, id, err)
	}

	title := m.Title
	if title == "" {
		title = id
	}

	return &Template{
		ID:          id,
		Position:    m.Position,
		Title:       title,
		Description: m.Description,
		Enabled:     m.Enabled,
	}, nil
}

func (c *Catalog) notFound(id string) error {
	available := []string{}

	if enabled, err := c.Enabled(); err == nil {
		for i := range enabled {
			available = append(available, enabled[i].ID)
		}
	}

	return fmt.Errorf(
		"%w: %q in %s; available templates: %s",
		ErrTemplateNotFound,
		id,
		c.source,
		strings.Join(available, ", "),
	)
}
