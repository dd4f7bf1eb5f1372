package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server:\n  port: 9090\n"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 10.0, cfg.Server.RateLimitPerSec)
	assert.Equal(t, 5, cfg.Server.RateLimitBurst)
	assert.Equal(t, 30*time.Second, cfg.Server.CacheTTL)
	assert.Equal(t, SourceFixtures, cfg.Directory.Source)
	assert.Equal(t, time.Duration(0), cfg.Directory.RefreshInterval)
	assert.Equal(t, time.Second, cfg.Directory.RefreshDelay)
	assert.Equal(t, 50, cfg.Source.PageSize)
	assert.Equal(t, "postgres", cfg.Database.Driver)
}

func TestLoad_ExplicitValues(t *testing.T) {
	body := `
directory:
  source: http
  refresh_interval_seconds: 60
  refresh_delay_millis: 250
source:
  url: http://upstream.local/shops
  page_size: 20
  headers:
    Authorization: Bearer token
database:
  driver: sqlite
  dsn: "file::memory:"
`
	cfg, err := Load(writeConfig(t, body))
	require.NoError(t, err)

	assert.Equal(t, SourceHTTP, cfg.Directory.Source)
	assert.Equal(t, time.Minute, cfg.Directory.RefreshInterval)
	assert.Equal(t, 250*time.Millisecond, cfg.Directory.RefreshDelay)
	assert.Equal(t, "http://upstream.local/shops", cfg.Source.URL)
	assert.Equal(t, 20, cfg.Source.PageSize)
	assert.Equal(t, "Bearer token", cfg.Source.Headers["Authorization"])
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "file::memory:", cfg.Database.DSN)
}

func TestLoad_RefreshDelay(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected time.Duration
	}{
		{name: "absent uses default", body: "directory:\n  source: fixtures\n", expected: time.Second},
		{name: "zero disables the delay", body: "directory:\n  refresh_delay_millis: 0\n", expected: 0},
		{name: "explicit value", body: "directory:\n  refresh_delay_millis: 40\n", expected: 40 * time.Millisecond},
		{name: "negative uses default", body: "directory:\n  refresh_delay_millis: -5\n", expected: time.Second},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tc.body))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg.Directory.RefreshDelay)
		})
	}
}

func TestLoad_UnknownSourceFallsBack(t *testing.T) {
	cfg, err := Load(writeConfig(t, "directory:\n  source: carrier-pigeon\n"))
	require.NoError(t, err)
	assert.Equal(t, SourceFixtures, cfg.Directory.Source)
}

func TestLoad_EnvOverridesDSN(t *testing.T) {
	t.Setenv("DATABASE_DSN", "host=db user=laundry")
	cfg, err := Load(writeConfig(t, "database:\n  dsn: host=localhost\n"))
	require.NoError(t, err)
	assert.Equal(t, "host=db user=laundry", cfg.Database.DSN)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
