package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "invite_tracker", cfg.Database.Name)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "invite-snapshots", cfg.Storage.Bucket)
	assert.Equal(t, "snapshots", cfg.Storage.Prefix)
	assert.Equal(t, 30, cfg.Discord.EventTimeoutSeconds)
	assert.Equal(t, 250*time.Millisecond, cfg.Tracker.PrefetchDelay)
	assert.True(t, cfg.Tracker.TrustCachedInviter)
	assert.False(t, cfg.Tracker.AttributeRevoked)
	assert.False(t, cfg.Tracker.FollowLatency)
	assert.Equal(t, 8, cfg.Tracker.LoadConcurrency)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("TRACKER_PREFETCH_DELAY", "1s")
	t.Setenv("TRACKER_TRUST_CACHED_INVITER", "false")
	t.Setenv("DISCORD_TOKEN", "secret")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.Tracker.PrefetchDelay)
	assert.False(t, cfg.Tracker.TrustCachedInviter)
	assert.Equal(t, "secret", cfg.Discord.Token)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\nSTORAGE_BUCKET=snapshots\n"), 0o600)
	require.NoError(t, err)
	t.Cleanup(func() {
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("STORAGE_BUCKET")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "snapshots", cfg.Storage.Bucket)
}
