package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionFileAdapterListVersions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "versions.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o644))

	adapter := NewVersionFileAdapter(path)
	versions, err := adapter.ListVersions(t.Context(), "")
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, "1.0", versions[1].Version)

	// Second call hits the cache even if the file disappears.
	require.NoError(t, os.Remove(path))
	cached, err := adapter.ListVersions(t.Context(), "")
	require.NoError(t, err)
	assert.Len(t, cached, 2)
}

func TestVersionFileAdapterMissingFile(t *testing.T) {
	adapter := NewVersionFileAdapter(filepath.Join(t.TempDir(), "absent.json"))
	_, err := adapter.ListVersions(t.Context(), "")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestVersionFileAdapterInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "versions.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	adapter := NewVersionFileAdapter(path)
	_, err := adapter.ListVersions(t.Context(), "")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
