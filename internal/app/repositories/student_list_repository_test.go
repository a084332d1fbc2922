package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/idscan/internal/app/models"
)

func TestStudentListRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentListRepository(newFileKV(t), "students")

	records := []models.StudentRecord{
		{ID: "a", Name: "Alice", StudentNumber: "001", Program: "CS", Timestamp: "t1"},
		{ID: "b", Name: "Bob", StudentNumber: "002", Program: "", Timestamp: "t2"},
		{ID: "c", Name: "Carol, Jr", StudentNumber: "003", Program: "EE", Timestamp: "t3"},
	}
	require.NoError(t, repo.Save(ctx, records))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func TestStudentListRepository_MissingKey(t *testing.T) {
	repo := NewStudentListRepository(NewMemoryKV(), "students")

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
}

func TestStudentListRepository_Corrupt(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(ctx, "students", "not-json"))

	_, err := NewStudentListRepository(kv, "students").Load(ctx)
	assert.ErrorIs(t, err, ErrCorruptList)
}

func TestStudentListRepository_SaveNil(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	repo := NewStudentListRepository(kv, "students")

	require.NoError(t, repo.Save(ctx, nil))
	raw, err := kv.Get(ctx, "students")
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestStudentListRepository_UsesKey(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	repo := NewStudentListRepository(kv, "custom")
	require.NoError(t, repo.Save(ctx, []models.StudentRecord{{ID: "x"}}))

	_, err := kv.Get(ctx, "students")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	raw, err := kv.Get(ctx, "custom")
	require.NoError(t, err)
	assert.Contains(t, raw, `"id":"x"`)
	assert.Equal(t, "custom", repo.Key())
}
