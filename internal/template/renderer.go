// Package template renders the text/template files used for the base
// scaffold and the generated configuration files.
package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"
)

// Ext marks a file as a template; it is stripped from the output path.
const Ext = ".tmpl"

// Renderer renders templates with the project function map.
type Renderer struct {
	funcMap template.FuncMap
}

// NewRenderer creates a Renderer with FuncMap.
func NewRenderer() *Renderer {
	return &Renderer{
		funcMap: FuncMap(),
	}
}

// RenderFS reads name from fsys and renders it with data.
func (r *Renderer) RenderFS(fsys fs.FS, name string, data any) ([]byte, error) {
	text, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}

	return r.render(path.Base(name), string(text), data)
}

// RenderString renders an inline template.
func (r *Renderer) RenderString(text string, data any) (string, error) {
	out, err := r.render("inline", text, data)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// StripExt removes the template extension from a file name.
func StripExt(name string) string {
	return strings.TrimSuffix(name, Ext)
}

// IsTemplate reports whether name carries the template extension.
func IsTemplate(name string) bool {
	return strings.HasSuffix(name, Ext)
}

func (r *Renderer) render(name, text string, data any) ([]byte, error) {
	tmpl, err := template.New(name).
		Funcs(r.funcMap).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing template %q: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %q: %w", name, err)
	}

	return buf.Bytes(), nil
}
