package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"filestorage/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable the tests touch; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	for _, name := range []string{
		"SERVER_ADDRESS", "FILESTORAGE_ADDR", "SERVER_BODY_LIMIT",
		"STORAGE_ROOT", "FILESTORAGE_DATA_DIR",
		"LOG_LEVEL", "LOG_FORMAT",
		"REMOTE_BUCKET", "REMOTE_USE_SSL",
		"BACKUP_CONCURRENCY", "BACKUP_PREFIX",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Address)
	assert.Equal(t, 64<<20, cfg.Server.BodyLimit)
	assert.Equal(t, "data", cfg.Storage.Root)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "localhost:9000", cfg.Remote.Endpoint)
	assert.False(t, cfg.Remote.UseSSL)
	assert.Equal(t, 30, cfg.Remote.TimeoutSeconds)
	assert.Equal(t, 4, cfg.Backup.Concurrency)
	assert.Equal(t, 0.0, cfg.Backup.RatePerSecond)
}

func TestLoadConfig_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9090")
	t.Setenv("SERVER_BODY_LIMIT", "1024")
	t.Setenv("STORAGE_ROOT", "/srv/objects")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("REMOTE_USE_SSL", "true")
	t.Setenv("BACKUP_CONCURRENCY", "8")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Address)
	assert.Equal(t, 1024, cfg.Server.BodyLimit)
	assert.Equal(t, "/srv/objects", cfg.Storage.Root)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.True(t, cfg.Remote.UseSSL)
	assert.Equal(t, 8, cfg.Backup.Concurrency)
}

func TestLoadConfig_LegacyEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("FILESTORAGE_ADDR", "127.0.0.1:7000")
	t.Setenv("FILESTORAGE_DATA_DIR", "legacy-data")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.Address)
	assert.Equal(t, "legacy-data", cfg.Storage.Root)

	t.Run("CanonicalWins", func(t *testing.T) {
		t.Setenv("SERVER_ADDRESS", "127.0.0.1:7001")

		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:7001", cfg.Server.Address)
	})
}

func TestLoadConfig_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STORAGE_ROOT=from-dotenv\nBACKUP_PREFIX=nightly/\n"), 0o644))

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Storage.Root)
	assert.Equal(t, "nightly/", cfg.Backup.Prefix)
}
