package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datacube/topic-search/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "service:\n  name: topic-search\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "topic-search", cfg.Service.Name)
	assert.Equal(t, 8094, cfg.Service.Port)
	assert.Equal(t, 3, cfg.Topic.PageSize)
	assert.Equal(t, 6, cfg.Topic.MaxPeriods)
	assert.Equal(t, 12, cfg.Topic.MaxPeriodChips)
	assert.Equal(t, "de", cfg.Topic.DefaultLanguage)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, "data/weeks.json", cfg.Upstream.SnapshotPath)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `
service:
  port: 9000
upstream:
  base_url: https://hub.internal/api
  timeout: 3s
topic:
  page_size: 5
  default_language: en
logging:
  level: debug
  format: console
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Service.Port)
	assert.Equal(t, "https://hub.internal/api", cfg.Upstream.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 5, cfg.Topic.PageSize)
	assert.Equal(t, "en", cfg.Topic.DefaultLanguage)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TOPIC_SEARCH_PORT", "8200")
	t.Setenv("HUB_API_URL", "https://staging-hub/api")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")

	path := writeConfig(t, "service:\n  port: 9000\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	// Environment beats both file values and defaults.
	assert.Equal(t, 8200, cfg.Service.Port)
	assert.Equal(t, "https://staging-hub/api", cfg.Upstream.BaseURL)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Cache.Address)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad port", "service:\n  port: 99999\n", "service.port"},
		{"bad log level", "logging:\n  level: loud\n", "logging.level"},
		{"bad log format", "logging:\n  format: xml\n", "logging.format"},
		{"cache without address", "cache:\n  enabled: true\n", "cache.address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.yaml)
			_, err := config.Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetConfigPath(t *testing.T) {
	assert.Equal(t, "config.yml", config.GetConfigPath("config.yml"))

	t.Setenv("CONFIG_PATH", "/etc/topic-search/config.yml")
	assert.Equal(t, "/etc/topic-search/config.yml", config.GetConfigPath("config.yml"))
}
