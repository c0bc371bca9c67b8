package getter_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/create-skeleton-app/internal/getter"
)

func TestNew(t *testing.T) {
	t.Parallel()

	g := getter.New(nil)
	assert.NotNil(t, g)
}

func TestFetchFile_HTTP(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"editor.tabSize": 2}`))
	}))
	t.Cleanup(srv.Close)

	dest := filepath.Join(t.TempDir(), ".vscode", "settings.json")

	err := getter.New(nil).FetchFile(t.Context(), srv.URL+"/settings.json", dest)
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.JSONEq(t, `{"editor.tabSize": 2}`, string(data))
}

func TestFetchFile_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	dest := filepath.Join(t.TempDir(), "settings.json")

	err := getter.New(nil).FetchFile(t.Context(), srv.URL+"/missing.json", dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching")
	assert.NoFileExists(t, dest)
}
