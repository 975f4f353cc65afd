package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write test config file")
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.Seed.Enabled)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "localhost:3000", cfg.Address())
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ValidYAML(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 0.0.0.0
  port: 8080
  read_timeout: 3s
  write_timeout: 4s
  shutdown_timeout: 2s

log:
  level: debug
  format: text

metrics:
  enabled: false

cors:
  allow_origins: "https://example.com"

seed:
  enabled: true
`)

	cfg, err := Load(path)
	require.NoError(t, err, "Load should not return an error")

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 4*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "https://example.com", cfg.CORS.AllowOrigins)
	assert.True(t, cfg.Seed.Enabled)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
}

func TestLoad_PartialYAMLKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, `
server:
  port: [not a port
`)

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvHost, "127.0.0.1")
	t.Setenv(EnvPort, "4321")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFormat, "text")

	path := writeConfig(t, `
server:
  host: 0.0.0.0
  port: 8080
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 4321, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_InvalidEnvPort(t *testing.T) {
	t.Setenv(EnvPort, "eighty")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvPort)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "port too large", mutate: func(c *Config) { c.Server.Port = 70000 }},
		{name: "negative port", mutate: func(c *Config) { c.Server.Port = -1 }},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "loud" }},
		{name: "bad format", mutate: func(c *Config) { c.Log.Format = "xml" }},
		{name: "metrics without path", mutate: func(c *Config) { c.Metrics.Path = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewLogger(LogConfig{Level: "debug", Format: "json"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger.WithField("job_id", "abc").Debug("hello")
	assert.Contains(t, buf.String(), `"job_id":"abc"`)
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestNewLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewLogger(LogConfig{Format: "text"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	_, ok := logger.Formatter.(*logrus.TextFormatter)
	assert.True(t, ok)
}

func TestNewLogger_Invalid(t *testing.T) {
	_, err := NewLogger(LogConfig{Level: "loud"}, nil)
	assert.Error(t, err)

	_, err = NewLogger(LogConfig{Format: "xml"}, nil)
	assert.Error(t, err)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "error", Format: "json"}))
	require.NotNil(t, Log)
	assert.Equal(t, logrus.ErrorLevel, Log.GetLevel())
}
