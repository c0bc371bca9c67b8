// Package options defines the project configuration assembled by the resolver
// and consumed by the materializer.
package options

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidTypeMode is returned when a type mode string is not recognized.
var ErrInvalidTypeMode = errors.New("invalid type mode")

// TypeMode selects how generated script blocks are type checked.
type TypeMode string

const (
	// TypeScript generates lang="ts" script blocks and a tsconfig.json.
	TypeScript TypeMode = "typescript"
	// CheckJS generates plain JavaScript checked through JSDoc comments.
	CheckJS TypeMode = "checkjs"
	// NoTypes disables type checking.
	NoTypes TypeMode = "none"
)

// TypeModes lists the accepted type modes in prompt order.
var TypeModes = []TypeMode{CheckJS, TypeScript, NoTypes}

// ParseTypeMode converts a flag or config value to a TypeMode. The empty
// string and "null" are accepted as NoTypes.
func ParseTypeMode(s string) (TypeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "typescript", "ts":
		return TypeScript, nil
	case "checkjs":
		return CheckJS, nil
	case "none", "null", "":
		return NoTypes, nil
	default:
		return "", fmt.Errorf("%w %q, must be one of: typescript, checkjs, none", ErrInvalidTypeMode, s)
	}
}

// Typed reports whether script blocks use TypeScript syntax.
func (m TypeMode) Typed() bool {
	return m == TypeScript
}

// Options is the fully resolved project configuration.
type Options struct {
	Name string
	Path string

	Types      TypeMode
	ESLint     bool
	Prettier   bool
	Playwright bool
	Vitest     bool
	Inspector  bool

	Quiet   bool
	Verbose bool

	Forms      bool
	Typography bool
	LineClamp  bool

	Theme       string
	Template    string
	TemplateDir string

	CodeBlocks bool
	Popups     bool

	Monorepo       bool
	PackageManager string
}

// DefaultName is the project name used when none is supplied.
const DefaultName = "new-skel-app"

// Defaults returns the built-in configuration.
func Defaults() Options {
	return Options{
		Name:           DefaultName,
		Path:           ".",
		Types:          TypeScript,
		ESLint:         true,
		Prettier:       true,
		Theme:          "skeleton",
		Template:       "bare",
		PackageManager: "npm",
	}
}

// Plugins returns the selected Tailwind plugins in install order.
func (o *Options) Plugins() []string {
	var plugins []string

	if o.Typography {
		plugins = append(plugins, PluginTypography)
	}

	if o.Forms {
		plugins = append(plugins, PluginForms)
	}

	if o.LineClamp {
		plugins = append(plugins, PluginLineClamp)
	}

	return plugins
}

// Tailwind plugin identifiers.
const (
	PluginForms      = "forms"
	PluginTypography = "typography"
	PluginLineClamp  = "lineclamp"
)

// Component feature identifiers.
const (
	FeatureCodeBlocks = "codeblocks"
	FeaturePopups     = "popups"
)

var whitespace = regexp.MustCompile(`\s+`)

// Normalize turns a project name into a directory slug: runs of whitespace
// become a single hyphen and the result is lower-cased.
func Normalize(name string) string {
	return strings.ToLower(whitespace.ReplaceAllString(name, "-"))
}
