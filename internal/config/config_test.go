package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the developer's own config and environment out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{
		"ROVER_CONFIG", "ROVER_APP_START", "ROVER_APP_FALLBACK", "ROVER_APP_VERSION",
		"ROVER_LOG_FILE", "ROVER_LOG_LEVEL", "ROVER_OTEL_ENDPOINT", "ROVER_OTEL_SERVICE",
		"ROVER_OTEL_INSECURE", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_SERVICE_NAME",
		"OTEL_EXPORTER_OTLP_INSECURE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "/", cfg.App.StartPath)
	assert.Equal(t, "root", cfg.App.Fallback)
	assert.Equal(t, "v1.0.0", cfg.App.AppVersion)
	assert.Equal(t, "rover.log", cfg.Logging.FilePath)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "rover", cfg.Telemetry.ServiceName)
	assert.Empty(t, cfg.Telemetry.Endpoint)
	assert.Empty(t, cfg.File)
	assert.NoError(t, Validate(cfg))
}

func TestLoadFlags(t *testing.T) {
	isolate(t)
	cfg, err := Load([]string{
		"--start", "/reports",
		"--fallback", "not-found",
		"--app-version", "v2.3.4",
		"--log-file", "/tmp/rover-test.log",
		"--log-level", "debug",
	})
	require.NoError(t, err)
	assert.Equal(t, "/reports", cfg.App.StartPath)
	assert.Equal(t, "not-found", cfg.App.Fallback)
	assert.Equal(t, "v2.3.4", cfg.App.AppVersion)
	assert.Equal(t, "/tmp/rover-test.log", cfg.Logging.FilePath)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("ROVER_LOG_LEVEL", "warn")
	t.Setenv("ROVER_APP_START", "/settings")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")
	t.Setenv("OTEL_SERVICE_NAME", "rover-dev")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "/settings", cfg.App.StartPath)
	assert.Equal(t, "http://localhost:4318", cfg.Telemetry.Endpoint)
	assert.Equal(t, "rover-dev", cfg.Telemetry.ServiceName)
}

func TestLoadFlagsBeatEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("ROVER_APP_START", "/settings")
	cfg, err := Load([]string{"--start", "/dispatch"})
	require.NoError(t, err)
	assert.Equal(t, "/dispatch", cfg.App.StartPath)
}

func TestLoadConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "rover.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[app]
start = "/reports"
version = "v9"

[log]
level = "error"
`), 0o644))

	t.Setenv("ROVER_LOG_LEVEL", "debug")
	cfg, err := Load([]string{"--config", path})
	require.NoError(t, err)
	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "/reports", cfg.App.StartPath)
	assert.Equal(t, "v9", cfg.App.AppVersion)
	assert.Equal(t, "debug", cfg.Logging.Level, "environment beats the file")
}

func TestLoadConfigFileFromUserDir(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "rover"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rover", "rover.yaml"),
		[]byte("app:\n  fallback: not-found\n"), 0o644))

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "not-found", cfg.App.Fallback)
	assert.NotEmpty(t, cfg.File)
}

func TestLoadMissingExplicitConfig(t *testing.T) {
	isolate(t)
	_, err := Load([]string{"--config", filepath.Join(t.TempDir(), "absent.toml")})
	assert.Error(t, err)
}

func TestLoadBadFlag(t *testing.T) {
	isolate(t)
	_, err := Load([]string{"--no-such-flag"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, pflag.ErrHelp))
}

func TestLoadHelp(t *testing.T) {
	isolate(t)
	_, err := Load([]string{"--help"})
	assert.True(t, errors.Is(err, pflag.ErrHelp))
	assert.Contains(t, Usage(), "--fallback")
}

func TestValidate(t *testing.T) {
	isolate(t)
	base, err := Load(nil)
	require.NoError(t, err)

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"relative start", func(c *Config) { c.App.StartPath = "settings" }},
		{"bad fallback", func(c *Config) { c.App.Fallback = "elsewhere" }},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
		{"empty log file", func(c *Config) { c.Logging.FilePath = " " }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}
