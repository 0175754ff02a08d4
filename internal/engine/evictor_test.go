package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/endpointops/cachereclaim/internal/cacheindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cacheFolder(t *testing.T, root, name string, bytes int) string {
	t.Helper()
	loc := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(loc, 0o750))
	if bytes > 0 {
		require.NoError(t, os.WriteFile(filepath.Join(loc, "content.bin"), make([]byte, bytes), 0o600))
	}
	return loc
}

func TestEvictor_Delete(t *testing.T) {
	root := t.TempDir()
	loc := cacheFolder(t, root, "app-1", 2*1024*1024)

	mgr := cacheindex.NewRecordingManager(map[string][]string{"app-1": {loc}})
	ev := NewEvictor([]cacheindex.Entry{{ContentID: "app-1", Location: loc}}, mgr, false)
	rc := NewRunContext()

	ev.Delete(rc, "app-1", "Browser")

	require.Len(t, rc.Records, 1)
	assert.Equal(t, "Browser", rc.Records[0].Name)
	assert.Equal(t, "app-1", rc.Records[0].ID)
	assert.Equal(t, StatusDeleted, rc.Records[0].Status)
	assert.InDelta(t, 2.0, rc.Records[0].SizeMB, 0.01)
	assert.Equal(t, []string{"app-1"}, mgr.Enumerated)
	assert.Equal(t, []string{loc}, mgr.Deleted)
}

func TestEvictor_AbsentContentID(t *testing.T) {
	mgr := cacheindex.NewRecordingManager(nil)
	ev := NewEvictor(nil, mgr, false)
	rc := NewRunContext()

	ev.Delete(rc, "ghost", "Ghost")

	assert.Empty(t, rc.Records)
	assert.Empty(t, mgr.Enumerated)
}

func TestEvictor_ZeroSizeSkip(t *testing.T) {
	root := t.TempDir()
	loc := cacheFolder(t, root, "empty-1", 0)

	mgr := cacheindex.NewRecordingManager(map[string][]string{"empty-1": {loc}})
	ev := NewEvictor([]cacheindex.Entry{{ContentID: "empty-1", Location: loc}}, mgr, false)
	rc := NewRunContext()

	ev.Delete(rc, "empty-1", "Empty")

	assert.Empty(t, rc.Records, "zero-size entries produce no record")
	assert.Empty(t, mgr.Enumerated, "zero-size entries trigger no manager call")
	assert.Contains(t, ev.entries, "empty-1", "entry stays in the index view")
}

func TestEvictor_AtMostOncePerRun(t *testing.T) {
	root := t.TempDir()
	loc := cacheFolder(t, root, "app-1", 1024*1024)

	mgr := cacheindex.NewRecordingManager(map[string][]string{"app-1": {loc}})
	ev := NewEvictor([]cacheindex.Entry{{ContentID: "app-1", Location: loc}}, mgr, false)
	rc := NewRunContext()

	ev.Delete(rc, "app-1", "Browser")
	ev.Delete(rc, "app-1", "Orphaned Cache Item")

	assert.Len(t, rc.Records, 1)
	assert.Len(t, mgr.Enumerated, 1)
}

func TestEvictor_ManagerFailureRecorded(t *testing.T) {
	root := t.TempDir()
	loc := cacheFolder(t, root, "app-1", 1024*1024)

	mgr := cacheindex.NewRecordingManager(map[string][]string{"app-1": {loc}})
	mgr.DeleteErr = errors.New("element locked")
	ev := NewEvictor([]cacheindex.Entry{{ContentID: "app-1", Location: loc}}, mgr, false)
	rc := NewRunContext()

	ev.Delete(rc, "app-1", "Browser")

	require.Len(t, rc.Records, 1)
	assert.Equal(t, StatusFailed, rc.Records[0].Status)
}

func TestEvictor_DryRun(t *testing.T) {
	root := t.TempDir()
	loc := cacheFolder(t, root, "app-1", 1024*1024)

	mgr := cacheindex.NewRecordingManager(map[string][]string{"app-1": {loc}})
	ev := NewEvictor([]cacheindex.Entry{{ContentID: "app-1", Location: loc}}, mgr, true)
	rc := NewRunContext()

	ev.Delete(rc, "app-1", "Browser")

	require.Len(t, rc.Records, 1)
	assert.Equal(t, StatusDeleted, rc.Records[0].Status)
	assert.Empty(t, mgr.Enumerated, "dry run never touches the manager")
	assert.DirExists(t, loc)
}
