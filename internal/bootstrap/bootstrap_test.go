package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appRepos "github.com/yigit/idscan/internal/app/repositories"
	"github.com/yigit/idscan/internal/config"
)

func testConfig(t *testing.T, driver string) *config.Config {
	t.Helper()
	t.Setenv("STORAGE_DRIVER", driver)
	t.Setenv("STORAGE_PATH", filepath.Join(t.TempDir(), "students.db"))
	t.Setenv("REMOTE_BASE_URL", "")

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	return cfg
}

func TestOpenStorage_LocalDrivers(t *testing.T) {
	for _, driver := range []string{config.DriverMemory, config.DriverFile, config.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			ctx := context.Background()
			kv, err := OpenStorage(ctx, testConfig(t, driver), zerolog.Nop())
			require.NoError(t, err)
			defer kv.Close()

			require.NoError(t, kv.Set(ctx, "students", "[]"))
			got, err := kv.Get(ctx, "students")
			require.NoError(t, err)
			assert.Equal(t, "[]", got)
		})
	}
}

func TestOpenStorage_UnknownDriver(t *testing.T) {
	cfg := testConfig(t, config.DriverMemory)
	cfg.Storage.Driver = "floppy"

	_, err := OpenStorage(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestNewUploader(t *testing.T) {
	cfg := testConfig(t, config.DriverMemory)

	uploader, err := NewUploader(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Nil(t, uploader)

	cfg.Remote.BaseURL = "http://remote.example"
	uploader, err = NewUploader(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.NotNil(t, uploader)
}

func TestBuildCore_HydratesFromStorage(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.DriverMemory)

	kv := appRepos.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, cfg.Storage.Key,
		`[{"id":"a","name":"Alice","studentNumber":"3900001","program":"","timestamp":"1/2/2026, 3:04:05 PM"}]`))

	core, err := BuildCore(ctx, cfg, kv, zerolog.Nop())
	require.NoError(t, err)
	defer core.Close()

	require.Equal(t, 1, core.Store.Count())
	rec, err := core.Store.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "Alice", rec.Name)

	deps := BuildDependencies(cfg, core, zerolog.Nop())
	assert.NotNil(t, deps.FeedHandler)
	assert.NotNil(t, SetupRouter(cfg, deps, zerolog.Nop()))
}

func TestBuildCore_CorruptListStartsEmpty(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.DriverMemory)

	kv := appRepos.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, cfg.Storage.Key, "{not json"))

	core, err := BuildCore(ctx, cfg, kv, zerolog.Nop())
	require.NoError(t, err)
	defer core.Close()
	assert.Zero(t, core.Store.Count())
}
