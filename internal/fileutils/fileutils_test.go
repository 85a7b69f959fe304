package fileutils_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/txlabel/internal/fileutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirectoryExists(t *testing.T) {
	tmpDir := t.TempDir()

	newDir := filepath.Join(tmpDir, "new", "nested", "dir")
	require.NoError(t, fileutils.EnsureDirectoryExists(newDir))
	assert.DirExists(t, newDir)

	assert.NoError(t, fileutils.EnsureDirectoryExists(newDir))
	assert.NoError(t, fileutils.EnsureDirectoryExists(""))
	assert.NoError(t, fileutils.EnsureDirectoryExists("."))

	file := filepath.Join(tmpDir, "file.csv")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))
	assert.Error(t, fileutils.EnsureDirectoryExists(file))
}

func TestReadFile_Missing(t *testing.T) {
	_, err := fileutils.ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestWriteFileAndReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "category_db.json")

	require.NoError(t, fileutils.WriteFile(path, []byte(`{"descriptions": []}`), 0600))

	data, err := fileutils.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"descriptions": []}`, string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestWriteFile_ReplacesWithoutLeftovers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "category_db.json")

	require.NoError(t, fileutils.WriteFile(path, []byte("first version, longer"), 0600))
	require.NoError(t, fileutils.WriteFile(path, []byte("second"), 0600))

	data, err := fileutils.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "transactions.csv")

	file, err := fileutils.CreateFile(path)
	require.NoError(t, err)
	_, err = file.WriteString("Status\n")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	assert.FileExists(t, path)
}
