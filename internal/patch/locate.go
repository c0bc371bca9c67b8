// Package patch copies a catalog template over a freshly generated project
// and applies the text patches that make the user's choices win over the
// template's defaults.
package patch

import "regexp"

// Locator finds the text spans the patcher rewrites. Each method returns a
// [start, end) byte span into src, or nil when there is no match.
type Locator interface {
	// ThemeName locates the <name> in the last theme-<name>.css import.
	ThemeName(src string) []int
	// ScriptOpen locates the first opening <script> tag.
	ScriptOpen(src string) []int
	// ScriptClose locates the first closing </script> tag.
	ScriptClose(src string) []int
	// BodyOpen locates the opening <body> tag.
	BodyOpen(src string) []int
}

// RegexpLocator matches with regular expressions over the raw text. It
// relies on the generator producing one predictable tag or line per match.
type RegexpLocator struct{}

var (
	themeImportRe = regexp.MustCompile(`(?m)theme-([^/'"\s]*)\.css['"];?[ \t\r]*$`)
	scriptOpenRe  = regexp.MustCompile(`<script\b[^>]*>`)
	scriptCloseRe = regexp.MustCompile(`</script\s*>`)
	bodyOpenRe    = regexp.MustCompile(`<body\b[^>]*>`)
)

// ThemeName implements Locator.
func (RegexpLocator) ThemeName(src string) []int {
	matches := themeImportRe.FindAllStringSubmatchIndex(src, -1)
	if len(matches) == 0 {
		return nil
	}

	last := matches[len(matches)-1]

	return last[2:4]
}

// ScriptOpen implements Locator.
func (RegexpLocator) ScriptOpen(src string) []int {
	return scriptOpenRe.FindStringIndex(src)
}

// ScriptClose implements Locator.
func (RegexpLocator) ScriptClose(src string) []int {
	return scriptCloseRe.FindStringIndex(src)
}

// BodyOpen implements Locator.
func (RegexpLocator) BodyOpen(src string) []int {
	return bodyOpenRe.FindStringIndex(src)
}

func splice(src string, span []int, repl string) string {
	return src[:span[0]] + repl + src[span[1]:]
}
