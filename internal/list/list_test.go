package list_test

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/create-skeleton-app/internal/catalog"
	"github.com/donaldgifford/create-skeleton-app/internal/list"
)

const testCatalogDir = "../../testdata/templates"

func testCatalog() *catalog.Catalog {
	return catalog.New(os.DirFS(testCatalogDir), testCatalogDir)
}

func TestTemplates_Table(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := list.Templates(testCatalog(), &list.Opts{OutputFormat: list.FormatTable, Writer: &buf})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "ID")
	assert.Contains(t, output, "welcome")
	assert.Contains(t, output, "bare")
	assert.NotContains(t, output, "legacy")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("welcome")), bytes.Index(buf.Bytes(), []byte("bare")))
}

func TestTemplates_JSONAll(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := list.Templates(testCatalog(), &list.Opts{OutputFormat: list.FormatJSON, All: true, Writer: &buf})
	require.NoError(t, err)

	var templates []catalog.Template
	require.NoError(t, json.Unmarshal(buf.Bytes(), &templates))

	ids := make([]string, 0, len(templates))
	for _, tpl := range templates {
		ids = append(ids, tpl.ID)
	}

	assert.ElementsMatch(t, []string{"welcome", "bare", "legacy"}, ids)
}

func TestThemes_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, list.Themes(&list.Opts{OutputFormat: list.FormatJSON, Writer: &buf}))

	var themes []list.ThemeInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &themes))

	require.Len(t, themes, 9)
	assert.Equal(t, "skeleton", themes[0].Name)
	assert.Empty(t, themes[0].FontFamily)

	for _, th := range themes {
		if th.Name == "rocket" {
			assert.Equal(t, "Space Grotesk", th.FontFamily)
			assert.Equal(t, "SpaceGrotesk.ttf", th.FontFile)
		}
	}
}

func TestThemes_Table(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, list.Themes(&list.Opts{Writer: &buf}))
	assert.Contains(t, buf.String(), "Gold Nouveau")
	assert.Contains(t, buf.String(), "Playfair Display")
}
