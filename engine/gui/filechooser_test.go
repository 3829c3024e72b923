package gui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chooserDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"b.obj", "a.obj", "notes.txt", ".hidden.obj"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "models"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "models", "c.obj"), []byte("x"), 0o644))
	return dir
}

func TestFileChooserListsMatchingFiles(t *testing.T) {
	dir := chooserDir(t)
	fc := NewFileChooser("Load Object", dir, []string{".obj"})
	fc.Show()

	require.NoError(t, fc.Err())
	assert.True(t, fc.Open)
	assert.Equal(t, []FileEntry{
		{Name: "..", IsDir: true},
		{Name: "models", IsDir: true},
		{Name: "a.obj"},
		{Name: "b.obj"},
	}, fc.Entries())
}

func TestFileChooserNavigation(t *testing.T) {
	dir := chooserDir(t)
	fc := NewFileChooser("Load Object", dir, []string{".obj"})
	fc.Show()

	fc.Select(1)
	assert.Equal(t, filepath.Join(dir, "models"), fc.Dir)
	assert.Equal(t, []FileEntry{{Name: "..", IsDir: true}, {Name: "c.obj"}}, fc.Entries())

	fc.Select(1)
	assert.Equal(t, 1, fc.Selected())
	assert.Equal(t, filepath.Join(dir, "models", "c.obj"), fc.Chosen())

	fc.Select(0)
	assert.Equal(t, dir, fc.Dir)
	assert.Empty(t, fc.Chosen())
	assert.Equal(t, -1, fc.Selected())

	// out of range is ignored
	fc.Select(42)
	assert.Equal(t, dir, fc.Dir)
}

func TestFileChooserMissingDirectory(t *testing.T) {
	fc := NewFileChooser("Load Texture", filepath.Join(t.TempDir(), "missing"), nil)
	fc.Show()
	assert.Error(t, fc.Err())
	assert.Empty(t, fc.Entries())

	fc.Path = "/abs/file.png"
	assert.Equal(t, "/abs/file.png", fc.Chosen())
	fc.Close()
	assert.False(t, fc.Open)
}
