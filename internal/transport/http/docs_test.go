package httptransport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDocs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.md")
	require.NoError(t, os.WriteFile(path, []byte("# films-api\n\n| Path |\n|---|\n| /films |\n"), 0o644))

	html, err := RenderDocs(path)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<h1")
	assert.Contains(t, string(html), "<table>")
}

func TestRenderDocsMissingFile(t *testing.T) {
	_, err := RenderDocs(filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
}
