package template

import (
	"encoding/json"
	"strings"
	"text/template"
	"unicode"
)

// FuncMap returns the functions available to project templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"kebabCase": kebabCase,
		"join":      join,
		"json":      jsonString,
	}
}

// kebabCase converts a string to kebab-case, splitting on separators and
// lower-to-upper case transitions.
func kebabCase(s string) string {
	var b strings.Builder

	prevLower := false
	pendingDash := false

	for _, r := range s {
		switch {
		case r == '_' || r == '-' || r == '.' || unicode.IsSpace(r):
			pendingDash = b.Len() > 0
			prevLower = false

			continue
		case unicode.IsUpper(r) && prevLower:
			pendingDash = true
		}

		if pendingDash {
			b.WriteByte('-')

			pendingDash = false
		}

		b.WriteRune(unicode.ToLower(r))
		prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
	}

	return b.String()
}

// join joins items with sep. Argument order supports piping:
// {{ .plugins | join ", " }}.
func join(sep string, items []string) string {
	return strings.Join(items, sep)
}

// jsonString quotes s as a JSON string literal.
func jsonString(s string) (string, error) {
	out, err := json.Marshal(s)
	if err != nil {
		return "", err
	}

	return string(out), nil
}
