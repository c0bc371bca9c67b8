package options

import "slices"

// Theme is an entry in the fixed theme catalog.
type Theme struct {
	Name  string
	Title string
}

// Font is a bundled font family shipped in a template's static/fonts directory.
type Font struct {
	Family string
	File   string
}

// Themes is the theme catalog in prompt order.
var Themes = []Theme{
	{Name: "skeleton", Title: "Skeleton"},
	{Name: "modern", Title: "Modern"},
	{Name: "hamlindigo", Title: "Hamlindigo"},
	{Name: "rocket", Title: "Rocket"},
	{Name: "sahara", Title: "Sahara"},
	{Name: "gold-nouveau", Title: "Gold Nouveau"},
	{Name: "vintage", Title: "Vintage"},
	{Name: "seafoam", Title: "Seafoam"},
	{Name: "crimson", Title: "Crimson"},
}

var themeFonts = map[string]Font{
	"modern":       {Family: "Quicksand", File: "Quicksand.ttf"},
	"gold-nouveau": {Family: "Quicksand", File: "Quicksand.ttf"},
	"rocket":       {Family: "Space Grotesk", File: "SpaceGrotesk.ttf"},
	"seafoam":      {Family: "Playfair Display", File: "PlayfairDisplay-Italic.ttf"},
	"vintage":      {Family: "Abril Fatface", File: "AbrilFatface.ttf"},
}

// KnownTheme reports whether name is in the theme catalog.
func KnownTheme(name string) bool {
	return slices.ContainsFunc(Themes, func(t Theme) bool { return t.Name == name })
}

// FontFor returns the font bundled with a theme. Unknown themes and themes
// without a bundled font report false.
func FontFor(theme string) (Font, bool) {
	f, ok := themeFonts[theme]

	return f, ok
}
