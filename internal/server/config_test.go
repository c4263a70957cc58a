package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "localhost:5000", cfg.Addr())
	assert.Equal(t, 1000, cfg.Simulation.DefaultTrials)
	assert.Equal(t, 1, cfg.Simulation.DefaultOpponents)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout())
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
server {
  address      = "0.0.0.0"
  port         = 8080
  log_level    = "debug"
  cors_origins = ["http://localhost:3000"]
}

simulation {
  default_trials     = 5000
  max_trials         = 200000
  workers            = 4
  request_timeout_ms = 1500
}
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 5000, cfg.Simulation.DefaultTrials)
	assert.Equal(t, 200000, cfg.Simulation.MaxTrials)
	assert.Equal(t, 4, cfg.Simulation.Workers)
	assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout())

	// Unset values fall back to defaults
	assert.Equal(t, 512, cfg.Simulation.ChunkSize)
	assert.Equal(t, 1, cfg.Simulation.DefaultOpponents)
}

func TestLoadConfigPartialBlocks(t *testing.T) {
	path := writeConfig(t, `
simulation {
  max_trials = 50000
}
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Server.Address)
	assert.Equal(t, 50000, cfg.Simulation.MaxTrials)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `server {`))
	assert.ErrorContains(t, err, "failed to parse HCL file")

	_, err = LoadConfig(writeConfig(t, `server { port = "not a number" }`))
	assert.ErrorContains(t, err, "failed to decode HCL")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"valid", func(*Config) {}, ""},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, "invalid port"},
		{"bad log level", func(c *Config) { c.Server.LogLevel = "loud" }, "invalid log level"},
		{"max below default", func(c *Config) { c.Simulation.MaxTrials = 10 }, "max_trials"},
		{"negative trials", func(c *Config) { c.Simulation.DefaultTrials = -1 }, "default_trials"},
		{"negative workers", func(c *Config) { c.Simulation.Workers = -2 }, "workers"},
		{"negative opponents", func(c *Config) { c.Simulation.DefaultOpponents = -1 }, "default_opponents"},
		{"zero timeout", func(c *Config) { c.Simulation.RequestTimeoutMS = -5 }, "request_timeout_ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}
