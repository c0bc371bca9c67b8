package patch

import (
	"fmt"
	"strings"

	"github.com/donaldgifford/create-skeleton-app/internal/options"
)

// Rules are the text substitutions applied to the copied template.
type Rules struct {
	loc Locator
}

// NewRules creates Rules backed by loc. A nil loc uses RegexpLocator.
func NewRules(loc Locator) *Rules {
	if loc == nil {
		loc = RegexpLocator{}
	}

	return &Rules{loc: loc}
}

// ThemeImport rewrites the last theme stylesheet import to theme.
func (r *Rules) ThemeImport(src, theme string) (string, bool) {
	span := r.loc.ThemeName(src)
	if span == nil {
		return src, false
	}

	return splice(src, span, theme), true
}

// ScriptTag rewrites the first opening script tag: lang="ts" when typed,
// bare otherwise.
func (r *Rules) ScriptTag(src string, typed bool) (string, bool) {
	span := r.loc.ScriptOpen(src)
	if span == nil {
		return src, false
	}

	tag := "<script>"
	if typed {
		tag = `<script lang="ts">`
	}

	return splice(src, span, tag), true
}

// Feature is an optional component feature with its layout import block.
type Feature struct {
	Name    string
	Enabled func(*options.Options) bool
	Block   string
}

// Features lists the injectable component features.
var Features = []Feature{
	{
		Name:    options.FeatureCodeBlocks,
		Enabled: func(o *options.Options) bool { return o.CodeBlocks },
		Block: `	// Highlight JS
	import hljs from 'highlight.js';
	import 'highlight.js/styles/github-dark.css';
	import { storeHighlightJs } from '@skeletonlabs/skeleton';
	storeHighlightJs.set(hljs);
`,
	},
	{
		Name:    options.FeaturePopups,
		Enabled: func(o *options.Options) bool { return o.Popups },
		Block: `	// Floating UI for Popups
	import { computePosition, autoUpdate, flip, shift, offset, arrow } from '@floating-ui/dom';
	import { storePopup } from '@skeletonlabs/skeleton';
	storePopup.set({ computePosition, autoUpdate, flip, shift, offset, arrow });
`,
	},
}

// FeatureImport inserts block immediately before the closing script tag.
// A block already present is not inserted again.
func (r *Rules) FeatureImport(src, block string) (string, bool) {
	if strings.Contains(src, block) {
		return src, true
	}

	span := r.loc.ScriptClose(src)
	if span == nil {
		return src, false
	}

	insert := block
	if span[0] > 0 && src[span[0]-1] != '\n' {
		insert = "\n" + block
	}

	return src[:span[0]] + insert + src[span[0]:], true
}

// BodyTag rewrites the opening body tag to carry the theme.
func (r *Rules) BodyTag(src, theme string) (string, bool) {
	span := r.loc.BodyOpen(src)
	if span == nil {
		return src, false
	}

	return splice(src, span, BodyOpenTag(theme)), true
}

// BodyOpenTag returns the body tag written into the document shell.
func BodyOpenTag(theme string) string {
	return fmt.Sprintf(`<body data-sveltekit-preload-data="hover" data-theme="%s">`, theme)
}

// FontFace returns the @font-face block for a bundled font.
func FontFace(f options.Font) string {
	return fmt.Sprintf(`
@font-face {
	font-family: '%s';
	src: url('/fonts/%s');
	font-display: swap;
}
`, f.Family, f.File)
}
