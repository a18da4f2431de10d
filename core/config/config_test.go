package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yuanweize/BTtrackers-updater/core/config"
	"github.com/yuanweize/BTtrackers-updater/feature/sources"
	"github.com/yuanweize/BTtrackers-updater/feature/update"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "/opt/aria2/aria2.conf", cfg.Aria2.Path)
	assert.True(t, cfg.Aria2.BackupEnabled)
	assert.Equal(t, ".bak", cfg.Aria2.BackupSuffix)

	assert.Equal(t, sources.DefaultURLs, cfg.Sources.URLs)
	assert.Equal(t, 10, cfg.Sources.TimeoutSeconds)
	assert.Equal(t, 3, cfg.Sources.MaxRetries)
	assert.Equal(t, 2, cfg.Sources.RetryDelaySeconds)

	assert.False(t, cfg.RPC.Enabled)
	assert.Equal(t, "http://localhost:6800/jsonrpc", cfg.RPC.URL)
	assert.True(t, cfg.RPC.VerifySSL)

	assert.Equal(t, update.ModeConfig, cfg.Update.Mode)
	assert.True(t, cfg.Update.FallbackToConfig)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, update.ModeConfig, cfg.Update.Mode)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `aria2:
  path: /etc/aria2/aria2.conf
  backup_enabled: false
sources:
  urls:
    - https://example.com/trackers.txt
  max_retries: 5
rpc:
  enabled: true
  secret: hunter2
update:
  mode: hybrid
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/etc/aria2/aria2.conf", cfg.Aria2.Path)
	assert.False(t, cfg.Aria2.BackupEnabled)
	assert.Equal(t, []string{"https://example.com/trackers.txt"}, cfg.Sources.URLs)
	assert.Equal(t, 5, cfg.Sources.MaxRetries)
	assert.True(t, cfg.RPC.Enabled)
	assert.Equal(t, "hunter2", cfg.RPC.Secret)
	assert.Equal(t, update.ModeHybrid, cfg.Update.Mode)

	// untouched keys keep their defaults
	assert.Equal(t, ".bak", cfg.Aria2.BackupSuffix)
	assert.Equal(t, 10, cfg.Sources.TimeoutSeconds)
}

func TestLoadConfig_MalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("aria2: [unclosed"), 0o644))

	_, err := config.LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("UPDATE_MODE", "rpc")
	t.Setenv("RPC_SECRET", "from-env")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, update.ModeRPC, cfg.Update.Mode)
	assert.Equal(t, "from-env", cfg.RPC.Secret)
}
