package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/lox/pokerodds/cmd/poker-odds/shared"
	"github.com/lox/pokerodds/internal/server"
)

// ServeCmd runs the odds server
type ServeCmd struct {
	shared.LogFlags

	Config  string `short:"c" default:"poker-odds.hcl" env:"POKER_ODDS_CONFIG" help:"HCL configuration file (defaults apply when missing)"`
	Address string `env:"POKER_ODDS_ADDRESS" help:"Override the listen address"`
	Port    int    `env:"POKER_ODDS_PORT" help:"Override the listen port"`
	Workers int    `env:"POKER_ODDS_WORKERS" help:"Override the simulation worker count"`
}

func (c *ServeCmd) Run() error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	level := cfg.Level()
	if c.Debug {
		level = zerolog.DebugLevel
	}
	logger := shared.NewLogger(os.Stderr, level, c.JSONLogs)

	logger.Info().
		Str("config", c.Config).
		Str("address", cfg.Addr()).
		Int("default_trials", cfg.Simulation.DefaultTrials).
		Int("max_trials", cfg.Simulation.MaxTrials).
		Int("workers", cfg.Simulation.Workers).
		Dur("request_timeout", cfg.RequestTimeout()).
		Strs("cors_origins", cfg.Server.CORSOrigins).
		Msg("Starting poker-odds server")

	ctx, cancel := shared.SignalContext(context.Background(), logger)
	defer cancel()

	return server.NewServer(cfg, logger).Start(ctx)
}

// loadConfig reads the HCL file and applies flag overrides
func (c *ServeCmd) loadConfig() (*server.Config, error) {
	cfg, err := server.LoadConfig(c.Config)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", c.Config, err)
	}

	if c.Address != "" {
		cfg.Server.Address = c.Address
	}
	if c.Port != 0 {
		cfg.Server.Port = c.Port
	}
	if c.Workers != 0 {
		cfg.Simulation.Workers = c.Workers
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
