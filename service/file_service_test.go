package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileServiceFindsNewestArchive(t *testing.T) {
	dir := t.TempDir()
	files, err := NewFileService(dir)
	require.NoError(t, err)

	clock := time.Unix(1700000000, 0)
	files.now = func() time.Time { return clock }
	_, err = files.Archive("UQ21CSE305B", []byte("old"))
	require.NoError(t, err)

	clock = clock.Add(time.Hour)
	newest, err := files.Archive("UQ21CSE305B", []byte("new"))
	require.NoError(t, err)
	_, err = files.Archive("UQ22MA101", []byte("other"))
	require.NoError(t, err)

	found, err := files.Find("UQ21CSE305B")
	require.NoError(t, err)
	assert.Equal(t, newest, found)
	assert.Equal(t, filepath.Join(dir, "UQ21CSE305B_1700003600.pdf"), found)
}

func TestFileServiceSanitizesNames(t *testing.T) {
	files, err := NewFileService(t.TempDir())
	require.NoError(t, err)

	path, err := files.Archive("../UQ1", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "___UQ1", filepath.Base(path)[:6])

	found, err := files.Find("../UQ1")
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFileServiceFindMissing(t *testing.T) {
	files, err := NewFileService(t.TempDir())
	require.NoError(t, err)

	_, err = files.Find("UQ21CSE305B")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
