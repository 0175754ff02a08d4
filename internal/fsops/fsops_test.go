package fsops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o600))
}

func TestTreeSize(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.bin"), 100)
	writeFile(t, filepath.Join(dir, "sub", "b.bin"), 250)
	writeFile(t, filepath.Join(dir, "sub", "deep", "c.bin"), 50)

	result, err := TreeSize(dir)
	require.NoError(t, err)
	assert.Equal(t, int64(400), result.Size)
	assert.Empty(t, result.Warnings)
}

func TestTreeSize_MissingRoot(t *testing.T) {
	result, err := TreeSize(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Size)
	assert.Empty(t, result.Warnings)
}

func TestTreeSize_EmptyDir(t *testing.T) {
	result, err := TreeSize(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Size)
}

func TestTreeSize_SkipsSymlinks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "real.bin"), 100)
	require.NoError(t, os.Symlink(filepath.Join(dir, "real.bin"), filepath.Join(dir, "link.bin")))

	result, err := TreeSize(dir)
	require.NoError(t, err)
	assert.Equal(t, int64(100), result.Size)
}

func TestListDirs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "one"), 0o750))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "two"), 0o750))
	writeFile(t, filepath.Join(dir, "file.txt"), 10)

	dirs, err := ListDirs(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"one", "two"}, dirs)
}

func TestListDirs_MissingRoot(t *testing.T) {
	_, err := ListDirs(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestRemoveTree(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "victim")
	writeFile(t, filepath.Join(target, "nested", "f.bin"), 10)

	require.NoError(t, RemoveTree(target))
	assert.NoDirExists(t, target)

	// Removing an absent tree is not an error.
	assert.NoError(t, RemoveTree(target))
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		reason string
	}{
		{"nil", nil, ReasonUnknown},
		{"not exist", os.ErrNotExist, ReasonNotFound},
		{"permission", os.ErrPermission, ReasonPermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyError("/some/path", tt.err)
			assert.Equal(t, tt.reason, got.Reason)
			assert.Equal(t, "/some/path", got.Path)
		})
	}
}
