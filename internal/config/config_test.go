package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimalConfig = `
server:
  hostname: "0.0.0.0"
  port: 8080

database:
  hostname: "localhost"
  database: "techresolve"
`

func TestLoad_ServerTimeoutDefaults(t *testing.T) {
	cfg, err := Load(writeConfigFile(t, minimalConfig))

	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)
}

func TestLoad_ServerTimeoutsFromFile(t *testing.T) {
	cfg, err := Load(writeConfigFile(t, `
server:
  hostname: "0.0.0.0"
  port: 8080
  readTimeout: 30s
  writeTimeout: 45s
  idleTimeout: 120s

database:
  hostname: "localhost"
  database: "techresolve"
`))

	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 45*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
}

func TestWebhookEnvKey(t *testing.T) {
	cfg := &DiscordConfig{EnvPrefix: "DISCORD", EnvSuffix: "WEBHOOK"}

	assert.Equal(t, "DISCORD_CC_LAB_WEBHOOK", cfg.WebhookEnvKey("CC Lab"))
	assert.Equal(t, "DISCORD_CCLAB_WEBHOOK", cfg.WebhookEnvKeyFallback("CC Lab"))
}
