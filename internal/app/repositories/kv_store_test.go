package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/idscan/internal/db"
)

func newSQLiteKV(t *testing.T) *SQLiteKV {
	t.Helper()
	conn, err := db.OpenSQLite(filepath.Join(t.TempDir(), "idscan.db"))
	require.NoError(t, err)
	kv := NewSQLiteKV(conn)
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func newFileKV(t *testing.T) *FileKV {
	t.Helper()
	kv, err := NewFileKV(filepath.Join(t.TempDir(), "nested", "students.json"))
	require.NoError(t, err)
	return kv
}

func TestKeyValueStores(t *testing.T) {
	stores := map[string]func(t *testing.T) KeyValueStore{
		"memory": func(t *testing.T) KeyValueStore { return NewMemoryKV() },
		"file":   func(t *testing.T) KeyValueStore { return newFileKV(t) },
		"sqlite": func(t *testing.T) KeyValueStore { return newSQLiteKV(t) },
	}

	for name, open := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			kv := open(t)

			_, err := kv.Get(ctx, "students")
			assert.ErrorIs(t, err, ErrKeyNotFound)

			require.NoError(t, kv.Set(ctx, "students", `[{"id":"1"}]`))
			got, err := kv.Get(ctx, "students")
			require.NoError(t, err)
			assert.Equal(t, `[{"id":"1"}]`, got)

			require.NoError(t, kv.Set(ctx, "students", `[]`))
			require.NoError(t, kv.Set(ctx, "other", "x"))

			got, err = kv.Get(ctx, "students")
			require.NoError(t, err)
			assert.Equal(t, `[]`, got)

			got, err = kv.Get(ctx, "other")
			require.NoError(t, err)
			assert.Equal(t, "x", got)
		})
	}
}

func TestFileKV_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "students.json")

	first, err := NewFileKV(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "students", "value"))

	second, err := NewFileKV(path)
	require.NoError(t, err)
	got, err := second.Get(ctx, "students")
	require.NoError(t, err)
	assert.Equal(t, "value", got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileKV_CorruptFile(t *testing.T) {
	ctx := context.Background()
	kv := newFileKV(t)
	require.NoError(t, os.WriteFile(kv.Path(), []byte("{not json"), 0o644))

	_, err := kv.Get(ctx, "students")
	assert.Error(t, err)

	require.NoError(t, kv.Set(ctx, "students", "[]"))
	got, err := kv.Get(ctx, "students")
	require.NoError(t, err)
	assert.Equal(t, "[]", got)
}

func TestSQLiteKV_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "idscan.db")

	conn, err := db.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteKV(conn).Set(ctx, "students", "[1]"))
	require.NoError(t, conn.Close())

	conn, err = db.OpenSQLite(path)
	require.NoError(t, err)
	kv := NewSQLiteKV(conn)
	defer kv.Close()

	got, err := kv.Get(ctx, "students")
	require.NoError(t, err)
	assert.Equal(t, "[1]", got)
}
