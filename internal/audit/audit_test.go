package audit

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/endpointops/cachereclaim/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSummary() engine.Summary {
	return engine.Summary{
		Records: []engine.Record{
			{Name: "Browser", ID: "app-1", Location: "/cache/app-1", SizeMB: 2.5, Status: engine.StatusDeleted},
			{Name: "Tool", ID: "pkg-1", Location: "/cache/pkg-1", SizeMB: 1.25, Status: engine.StatusFailed},
		},
		Total:     engine.Total{MB: 2.5},
		Timestamp: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		Policy:    "fail-open",
	}
}

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestSink_Append(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "audit.csv")

	require.NoError(t, NewSink(path, 0).Append(sampleSummary()))

	rows := readRows(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Browser", "app-1", "/cache/app-1", "2.50", "Deleted"}, rows[0])
	assert.Equal(t, []string{"Tool", "pkg-1", "/cache/pkg-1", "1.25", "Failed"}, rows[1])
	assert.Equal(t, []string{"Total Reclaimed (MB)", "2026-08-31T12:00:00Z", "policy=fail-open", "2.50", "Summary"}, rows[2])
}

func TestSink_AppendAccumulates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.csv")
	sink := NewSink(path, 0)

	require.NoError(t, sink.Append(sampleSummary()))
	require.NoError(t, sink.Append(sampleSummary()))

	assert.Len(t, readRows(t, path), 6)
}

func TestSink_EmptyRunWritesNone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.csv")

	summary := engine.Summary{
		Total:     engine.Total{None: true},
		Timestamp: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		Policy:    "fail-open",
	}
	require.NoError(t, NewSink(path, 0).Append(summary))

	rows := readRows(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, "none", rows[0][3])
}

func TestSink_TruncatesOversizedLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.csv")
	require.NoError(t, os.WriteFile(path, make([]byte, 4096), 0o640))

	require.NoError(t, NewSink(path, 1024).Append(sampleSummary()))

	// Old content gone, only this run's rows remain.
	assert.Len(t, readRows(t, path), 3)
}

func TestSink_KeepsLogUnderThreshold(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.csv")
	sink := NewSink(path, 1<<20)

	require.NoError(t, sink.Append(sampleSummary()))
	require.NoError(t, sink.Append(sampleSummary()))

	assert.Len(t, readRows(t, path), 6)
}

func TestMarker_Lifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".reclaimed")
	m := NewMarker(path)

	require.NoError(t, m.Create())
	assert.DirExists(t, path)

	require.NoError(t, m.Clear())
	assert.NoDirExists(t, path)

	// Clearing an absent marker is fine.
	assert.NoError(t, m.Clear())
}

func TestRecorder_Persist(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "audit.csv")
	markerPath := filepath.Join(dir, ".reclaimed")

	r := NewRecorder(NewSink(logPath, 0), NewMarker(markerPath))
	require.NoError(t, r.Persist(sampleSummary()))

	assert.FileExists(t, logPath)
	assert.DirExists(t, markerPath)
}

func TestTrigger_Fire(t *testing.T) {
	assert.NoError(t, NewTrigger("").Fire())
	assert.NoError(t, NewTrigger("true").Fire())
	assert.Error(t, NewTrigger(`unbalanced "quote`).Fire())
	assert.Error(t, NewTrigger("/no/such/binary-xyz").Fire())
}
