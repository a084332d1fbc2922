package filestorage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	ls, err := NewLocalStorage(dir)
	require.NoError(t, err)

	path, err := ls.SaveFile("CapturedStudents.csv", []byte("Name,Student Number,Program,Timestamp"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "CapturedStudents.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Name,Student Number,Program,Timestamp", string(data))

	require.NoError(t, ls.DeleteFile("CapturedStudents.csv"))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, ls.DeleteFile("CapturedStudents.csv"), "deleting twice is fine")
}

func TestLocalStorage_StaysInBaseDir(t *testing.T) {
	dir := t.TempDir()
	ls, err := NewLocalStorage(dir)
	require.NoError(t, err)

	path, err := ls.SaveFile("../../escape.csv", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "escape.csv"), path)

	_, err = ls.SaveFile("..", []byte("x"))
	assert.Error(t, err)
}

func TestWriteFileAtomic_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "students.json")

	require.NoError(t, WriteFileAtomic(path, []byte("one"), 0o600))
	require.NoError(t, WriteFileAtomic(path, []byte("two"), 0o600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
