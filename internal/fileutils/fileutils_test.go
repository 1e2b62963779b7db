package fileutils_test

import (
	"os"
	"path/filepath"
	"testing"

	"gigbook/gig-import/internal/fileutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0644))

	assert.True(t, fileutils.FileExists(path))
	assert.False(t, fileutils.FileExists(filepath.Join(dir, "missing.csv")))
	assert.False(t, fileutils.FileExists(dir))
}

func TestDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0644))

	assert.True(t, fileutils.DirectoryExists(dir))
	assert.False(t, fileutils.DirectoryExists(path))
	assert.False(t, fileutils.DirectoryExists(filepath.Join(dir, "nope")))
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	require.NoError(t, fileutils.EnsureDirectoryExists(dir))
	assert.True(t, fileutils.DirectoryExists(dir))

	// Idempotent on an existing directory.
	require.NoError(t, fileutils.EnsureDirectoryExists(dir))
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0644))

	file, err := fileutils.OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, file.Close())

	_, err = fileutils.OpenFile(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}

func TestCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "preview.csv")

	file, err := fileutils.CreateFile(path)
	require.NoError(t, err)
	require.NoError(t, file.Close())

	assert.True(t, fileutils.FileExists(path))
}
