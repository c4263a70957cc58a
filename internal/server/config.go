package server

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
)

// Config represents the complete server configuration
type Config struct {
	Server     Settings           `hcl:"server,block"`
	Simulation SimulationSettings `hcl:"simulation,block"`
}

// configFile mirrors Config with optional blocks
type configFile struct {
	Server     *Settings           `hcl:"server,block"`
	Simulation *SimulationSettings `hcl:"simulation,block"`
}

// Settings contains listener and logging configuration
type Settings struct {
	Address     string   `hcl:"address,optional"`
	Port        int      `hcl:"port,optional"`
	LogLevel    string   `hcl:"log_level,optional"`
	CORSOrigins []string `hcl:"cors_origins,optional"`
}

// SimulationSettings bounds the work a single request may ask for
type SimulationSettings struct {
	DefaultTrials    int `hcl:"default_trials,optional"`
	MaxTrials        int `hcl:"max_trials,optional"`
	DefaultOpponents int `hcl:"default_opponents,optional"`
	Workers          int `hcl:"workers,optional"`
	ChunkSize        int `hcl:"chunk_size,optional"`
	RequestTimeoutMS int `hcl:"request_timeout_ms,optional"`
}

const (
	defaultAddress          = "localhost"
	defaultPort             = 5000
	defaultLogLevel         = "info"
	defaultTrials           = 1000
	defaultMaxTrials        = 1_000_000
	defaultOpponents        = 1
	defaultChunkSize        = 512
	defaultRequestTimeoutMS = 30_000
)

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig loads server configuration from an HCL file. A missing file
// yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw configFile
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	var cfg Config
	if raw.Server != nil {
		cfg.Server = *raw.Server
	}
	if raw.Simulation != nil {
		cfg.Simulation = *raw.Simulation
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = defaultAddress
	}
	if c.Server.Port == 0 {
		c.Server.Port = defaultPort
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = defaultLogLevel
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"*"}
	}

	sim := &c.Simulation
	if sim.DefaultTrials == 0 {
		sim.DefaultTrials = defaultTrials
	}
	if sim.MaxTrials == 0 {
		sim.MaxTrials = defaultMaxTrials
	}
	if sim.DefaultOpponents == 0 {
		sim.DefaultOpponents = defaultOpponents
	}
	if sim.ChunkSize == 0 {
		sim.ChunkSize = defaultChunkSize
	}
	if sim.RequestTimeoutMS == 0 {
		sim.RequestTimeoutMS = defaultRequestTimeoutMS
	}
}

// Validate validates the server configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if _, err := zerolog.ParseLevel(c.Server.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Server.LogLevel, err)
	}

	sim := c.Simulation
	if sim.DefaultTrials <= 0 {
		return fmt.Errorf("default_trials must be positive, got %d", sim.DefaultTrials)
	}
	if sim.MaxTrials < sim.DefaultTrials {
		return fmt.Errorf("max_trials (%d) must be at least default_trials (%d)", sim.MaxTrials, sim.DefaultTrials)
	}
	if sim.DefaultOpponents < 0 {
		return fmt.Errorf("default_opponents must not be negative, got %d", sim.DefaultOpponents)
	}
	if sim.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", sim.Workers)
	}
	if sim.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be positive, got %d", sim.ChunkSize)
	}
	if sim.RequestTimeoutMS <= 0 {
		return fmt.Errorf("request_timeout_ms must be positive, got %d", sim.RequestTimeoutMS)
	}

	return nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// RequestTimeout returns the per-request simulation budget
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Simulation.RequestTimeoutMS) * time.Millisecond
}

// Level returns the configured log level, falling back to info
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Server.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
