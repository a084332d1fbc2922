package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	assert.Equal(t, "001", Version("001_kv_store.sql"))
	assert.Equal(t, "002", Version("sql/002_add_index.sql"))
	assert.Equal(t, "plain.sql", Version("plain.sql"))
}

func TestPendingFiles_Bundled(t *testing.T) {
	m := &Migrator{files: embedded, dir: "sql"}

	files, err := m.PendingFiles()
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Equal(t, "001_kv_store.sql", files[0])
	assert.IsNonDecreasing(t, files)
}
