package patch_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/create-skeleton-app/internal/options"
	"github.com/donaldgifford/create-skeleton-app/internal/patch"
)

const templatesDir = "../../testdata/templates"

const document = `<!DOCTYPE html>
<html lang="en">
	<body>
		<div style="display: contents">%sveltekit.body%</div>
	</body>
</html>
`

// newProject lays out the files a freshly generated project has before the
// template is applied.
func newProject(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	writeFile(t, root, "src/app.html", document)
	writeFile(t, root, "src/app.postcss", "/* place global styles here */\n")
	writeFile(t, root, "src/routes/+page.svelte", "<h1>generated</h1>\n")

	return root
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, root, rel string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)

	return string(data)
}

func opts(theme string) *options.Options {
	o := options.Defaults()
	o.Theme = theme

	return &o
}

func TestApply_RocketTheme(t *testing.T) {
	t.Parallel()

	root := newProject(t)
	o := opts("rocket")
	o.Types = options.NoTypes

	warnings, err := patch.New(root, nil, nil).Apply(os.DirFS(filepath.Join(templatesDir, "bare")), o)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	layout := readFile(t, root, patch.LayoutFile)
	assert.Contains(t, layout, "theme-rocket.css")
	assert.True(t, strings.HasPrefix(layout, "<script>"))

	page := readFile(t, root, "src/routes/+page.svelte")
	assert.NotContains(t, page, "generated")

	assert.Contains(t, readFile(t, root, patch.DocumentFile), patch.BodyOpenTag("rocket"))

	css := readFile(t, root, patch.StylesheetFile)
	assert.Contains(t, css, "font-family: 'Space Grotesk';")

	entries, err := os.ReadDir(filepath.Join(root, "static", "fonts"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "SpaceGrotesk.ttf", entries[0].Name())
}

func TestApply_ThemeWithoutFontRemovesFonts(t *testing.T) {
	t.Parallel()

	root := newProject(t)

	warnings, err := patch.New(root, nil, nil).Apply(os.DirFS(filepath.Join(templatesDir, "bare")), opts("crimson"))
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.NoDirExists(t, filepath.Join(root, "static", "fonts"))
	assert.NotContains(t, readFile(t, root, patch.StylesheetFile), "@font-face")
	assert.Contains(t, readFile(t, root, patch.LayoutFile), `<script lang="ts">`)
}

func TestApply_MissingFontSkipsFontFace(t *testing.T) {
	t.Parallel()

	root := newProject(t)

	warnings, err := patch.New(root, nil, nil).Apply(os.DirFS(filepath.Join(templatesDir, "welcome")), opts("rocket"))
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	require.ErrorIs(t, warnings[0], patch.ErrNoMatch)
	assert.Contains(t, warnings[0].Error(), "SpaceGrotesk.ttf")

	assert.NotContains(t, readFile(t, root, patch.StylesheetFile), "@font-face")
	assert.Contains(t, readFile(t, root, patch.LayoutFile), "theme-rocket.css")
}

func TestApply_Idempotent(t *testing.T) {
	t.Parallel()

	root := newProject(t)
	o := opts("vintage")
	o.CodeBlocks = true
	o.Popups = true

	tpl := os.DirFS(filepath.Join(templatesDir, "bare"))
	p := patch.New(root, nil, nil)

	_, err := p.Apply(tpl, o)
	require.NoError(t, err)

	first := readFile(t, root, patch.LayoutFile)
	firstCSS := readFile(t, root, patch.StylesheetFile)

	// Only the template files are copied again; the stylesheet keeps its
	// single font-face block.
	_, err = p.Apply(tpl, o)
	require.NoError(t, err)

	assert.Equal(t, first, readFile(t, root, patch.LayoutFile))
	assert.Equal(t, firstCSS, readFile(t, root, patch.StylesheetFile))
	assert.Equal(t, 1, strings.Count(firstCSS, "@font-face"))
	assert.Equal(t, 1, strings.Count(first, "storeHighlightJs.set"))
	assert.Equal(t, 1, strings.Count(first, "storePopup.set"))
}

func TestApply_FeaturesBeforeClosingScript(t *testing.T) {
	t.Parallel()

	root := newProject(t)
	o := opts("skeleton")
	o.Popups = true

	_, err := patch.New(root, nil, nil).Apply(os.DirFS(filepath.Join(templatesDir, "welcome")), o)
	require.NoError(t, err)

	layout := readFile(t, root, patch.LayoutFile)
	assert.Contains(t, layout, patch.Features[1].Block+"</script>")
	assert.NotContains(t, layout, "highlight.js")
	assert.FileExists(t, filepath.Join(root, "static", "robots.txt"))
}

func TestApply_MissingFilesAreWarnings(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	warnings, err := patch.New(root, nil, nil).Apply(os.DirFS(filepath.Join(templatesDir, "legacy")), opts("modern"))
	require.NoError(t, err)
	require.NotEmpty(t, warnings)

	for _, w := range warnings {
		assert.True(t, errors.Is(w, patch.ErrNoMatch), w)
	}
}
