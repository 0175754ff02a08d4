package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/endpointops/cachereclaim/internal/cacheindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanEntries(t *testing.T) {
	dir := t.TempDir()

	cached := filepath.Join(dir, "app-1")
	require.NoError(t, os.MkdirAll(cached, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(cached, "f.bin"), make([]byte, 2048), 0o600))

	entries := []cacheindex.Entry{
		{ContentID: "app-1", Location: cached},
		{ContentID: "gone", Location: filepath.Join(dir, "gone")},
		{ContentID: "pinned", Location: cached, Persisted: true},
	}

	statuses := scanEntries(entries)
	require.Len(t, statuses, 3)

	assert.Equal(t, int64(2048), statuses[0].Size)
	assert.Equal(t, "2.0 KiB", statuses[0].SizeFmt)
	assert.False(t, statuses[0].Missing)

	assert.True(t, statuses[1].Missing)
	assert.Equal(t, "-", statuses[1].SizeFmt)

	assert.True(t, statuses[2].Persisted)
}

func TestStatus_EndToEnd(t *testing.T) {
	ws := newWorkspace(t)

	require.NoError(t, runStatusWithLoader(ws.loader, false))
	require.NoError(t, runStatusWithLoader(ws.loader, true))
}

func TestStatus_MissingIndex(t *testing.T) {
	ws := newWorkspace(t)
	cfg, err := ws.loader.Load()
	require.NoError(t, err)
	require.NoError(t, os.Remove(cfg.IndexPath))

	assert.Error(t, runStatusWithLoader(ws.loader, false))
}
