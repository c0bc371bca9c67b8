package patch

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/donaldgifford/create-skeleton-app/internal/configs"
	"github.com/donaldgifford/create-skeleton-app/internal/options"
)

// ErrNoMatch reports a patch rule that found nothing to rewrite.
var ErrNoMatch = errors.New("no match")

// Project-relative paths the patcher reads and writes.
const (
	LayoutFile     = configs.LayoutFile
	StylesheetFile = configs.StylesheetFile
	DocumentFile   = "src/app.html"
	FontsDir       = "static/fonts"
)

// CopiedTrees are the template subtrees copied over the project.
var CopiedTrees = []string{"src", "static"}

// Patcher applies a template to the project rooted at Root.
type Patcher struct {
	root   string
	rules  *Rules
	logger *slog.Logger
}

// New creates a Patcher for root. A nil rules uses the regexp locator.
func New(root string, rules *Rules, logger *slog.Logger) *Patcher {
	if rules == nil {
		rules = NewRules(nil)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Patcher{root: root, rules: rules, logger: logger}
}

// Apply copies the template and runs every patch in order. Rules that found
// nothing to rewrite are returned as warnings wrapping ErrNoMatch; err is
// reserved for filesystem failures.
func (p *Patcher) Apply(tpl fs.FS, o *options.Options) ([]error, error) {
	if err := p.CopyTemplate(tpl); err != nil {
		return nil, err
	}

	var warnings []error

	steps := []func(*options.Options) (bool, string, error){
		p.patchTheme,
		p.patchScript,
		p.injectFeatures,
		p.fonts,
		p.patchBody,
	}

	for _, step := range steps {
		matched, what, err := step(o)
		if err != nil {
			return warnings, err
		}

		if !matched {
			p.logger.Debug("patch rule did not match", "rule", what)
			warnings = append(warnings, fmt.Errorf("%s: %w", what, ErrNoMatch))
		}
	}

	return warnings, nil
}

// CopyTemplate copies the template's src/ and static/ trees over the
// project. Template files replace generated files at the same path.
func (p *Patcher) CopyTemplate(tpl fs.FS) error {
	for _, tree := range CopiedTrees {
		if _, err := fs.Stat(tpl, tree); errors.Is(err, fs.ErrNotExist) {
			p.logger.Debug("template has no tree", "tree", tree)

			continue
		}

		if err := copyTree(tpl, tree, filepath.Join(p.root, tree)); err != nil {
			return fmt.Errorf("copying template %s/: %w", tree, err)
		}
	}

	return nil
}

func (p *Patcher) patchTheme(o *options.Options) (bool, string, error) {
	matched, err := p.rewrite(LayoutFile, func(s string) (string, bool) {
		return p.rules.ThemeImport(s, o.Theme)
	})

	return matched, "theme import in " + LayoutFile, err
}

func (p *Patcher) patchScript(o *options.Options) (bool, string, error) {
	matched, err := p.rewrite(LayoutFile, func(s string) (string, bool) {
		return p.rules.ScriptTag(s, o.Types.Typed())
	})

	return matched, "script tag in " + LayoutFile, err
}

func (p *Patcher) injectFeatures(o *options.Options) (bool, string, error) {
	for _, f := range Features {
		if !f.Enabled(o) {
			continue
		}

		matched, err := p.rewrite(LayoutFile, func(s string) (string, bool) {
			return p.rules.FeatureImport(s, f.Block)
		})
		if err != nil || !matched {
			return matched, f.Name + " imports in " + LayoutFile, err
		}

		p.logger.Debug("injected feature imports", "feature", f.Name)
	}

	return true, "feature imports", nil
}

func (p *Patcher) patchBody(o *options.Options) (bool, string, error) {
	matched, err := p.rewrite(DocumentFile, func(s string) (string, bool) {
		return p.rules.BodyTag(s, o.Theme)
	})

	return matched, "body tag in " + DocumentFile, err
}

// fonts keeps only the theme's bundled font and declares it in the global
// stylesheet. Themes without a font lose the fonts directory entirely; a
// template missing the theme's font gets no @font-face.
func (p *Patcher) fonts(o *options.Options) (bool, string, error) {
	fontsDir := filepath.Join(p.root, filepath.FromSlash(FontsDir))

	font, ok := options.FontFor(o.Theme)
	if !ok {
		p.logger.Debug("theme has no bundled font", "theme", o.Theme)

		return true, "fonts", os.RemoveAll(fontsDir)
	}

	if err := pruneFonts(fontsDir, font.File); err != nil {
		return false, "fonts", err
	}

	what := "font " + font.File + " in " + FontsDir

	if _, err := os.Stat(filepath.Join(fontsDir, font.File)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, what, nil
		}

		return false, what, fmt.Errorf("checking font %s: %w", font.File, err)
	}

	face := FontFace(font)

	_, err := p.rewrite(StylesheetFile, func(s string) (string, bool) {
		if strings.Contains(s, face) {
			return s, true
		}

		return s + face, true
	})

	return true, what, err
}

// rewrite applies fn to a project file, writing it back only on change.
// A missing file counts as no match.
func (p *Patcher) rewrite(rel string, fn func(string) (string, bool)) (bool, error) {
	path := filepath.Join(p.root, filepath.FromSlash(rel))

	data, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("reading %s: %w", rel, err)
	}

	out, matched := fn(string(data))
	if out == string(data) {
		return matched, nil
	}

	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return matched, fmt.Errorf("writing %s: %w", rel, err)
	}

	return matched, nil
}

func pruneFonts(dir, keep string) error {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("reading %s: %w", FontsDir, err)
	}

	for _, e := range entries {
		if e.Name() == keep {
			continue
		}

		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return fmt.Errorf("removing font %s: %w", e.Name(), err)
		}
	}

	return nil
}
