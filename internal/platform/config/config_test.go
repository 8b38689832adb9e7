package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/srgjo27/movie_booking/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, config.StorePostgres, cfg.Store)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, 3*time.Second, cfg.Booking.LockWait)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoad_FromEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "STORE=memory\nREDIS_HOST=cache\nLOCK_WAIT=750ms\n# comment\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Cleanup(func() {
		os.Unsetenv("STORE")
		os.Unsetenv("REDIS_HOST")
		os.Unsetenv("LOCK_WAIT")
	})

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.StoreMemory, cfg.Store)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "cache:6379", cfg.Redis.Addr())
	assert.Equal(t, 750*time.Millisecond, cfg.Booking.LockWait)
}

func TestLoad_MissingEnvFileIsIgnored(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("LOCK_WAIT", "soon")
	t.Setenv("DB_MAX_CONNS", "many")
	t.Setenv("STORE", "sqlite")

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOCK_WAIT")
	assert.Contains(t, err.Error(), "DB_MAX_CONNS")
	assert.Contains(t, err.Error(), "STORE")
}
