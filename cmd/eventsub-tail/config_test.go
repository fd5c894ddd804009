package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "eventsub-tail.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
broadcaster: "1337"
user: "9001"
subscriptions:
  - channel.follow
  - channel.chat.message
metrics:
  enabled: true
  addr: "127.0.0.1:9999"
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "1337", cfg.Broadcaster)
	assert.Equal(t, "9001", cfg.User)
	assert.Equal(t, []string{"channel.follow", "channel.chat.message"}, cfg.Subscriptions)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "127.0.0.1:9999", cfg.Metrics.Addr)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `broadcaster: "1337"`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"channel.chat.message"}, cfg.Subscriptions)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "127.0.0.1:9120", cfg.Metrics.Addr)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
