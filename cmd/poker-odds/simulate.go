package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/lox/pokerodds/cmd/poker-odds/shared"
	"github.com/lox/pokerodds/internal/fileutil"
	"github.com/lox/pokerodds/odds"
	"github.com/lox/pokerodds/poker"
)

// HandFlags are the inputs shared by the simulation commands
type HandFlags struct {
	Hand    string `arg:"" help:"Hero hole cards, e.g. 'AsKd' or 'As Kd'"`
	Board   string `short:"b" help:"Known community cards, e.g. 'Td7s8h'"`
	Trials  int    `short:"n" default:"100000" env:"POKER_ODDS_TRIALS" help:"Number of Monte Carlo trials"`
	Seed    *int64 `help:"Random seed for reproducible results"`
	Workers int    `short:"w" env:"POKER_ODDS_WORKERS" help:"Concurrent workers (default: CPUs, max 8)"`
	Out     string `short:"o" type:"path" help:"Also write the result as JSON to this file"`
}

func (f HandFlags) request() (odds.Request, error) {
	hole, err := poker.ParseCards(f.Hand)
	if err != nil {
		return odds.Request{}, fmt.Errorf("hand: %w", err)
	}

	var board []poker.Card
	if f.Board != "" {
		board, err = poker.ParseCards(f.Board)
		if err != nil {
			return odds.Request{}, fmt.Errorf("board: %w", err)
		}
	}

	return odds.Request{
		Hole:      hole,
		Community: board,
		Trials:    f.Trials,
		Seed:      f.Seed,
	}, nil
}

func (f HandFlags) simulator(logger zerolog.Logger) *odds.Simulator {
	return odds.New(odds.WithWorkers(f.Workers), odds.WithLogger(logger))
}

// CategoriesCmd estimates the final hand-category distribution
type CategoriesCmd struct {
	shared.LogFlags
	HandFlags

	All bool `short:"a" help:"Report all nine categories instead of the six legacy ones"`
}

func (c *CategoriesCmd) Run() error {
	logger := c.Logger()
	req, err := c.request()
	if err != nil {
		return err
	}

	ctx, cancel := shared.SignalContext(context.Background(), logger)
	defer cancel()

	dist, err := c.simulator(logger).CategoryDistribution(ctx, req)
	if err != nil {
		return err
	}

	renderCategories(os.Stdout, req, dist, c.All)

	if c.Out != "" {
		if err := fileutil.WriteJSONAtomic(c.Out, newCategoriesReport(req, dist, c.All)); err != nil {
			return err
		}
		logger.Info().Str("path", c.Out).Msg("Wrote result")
	}
	return nil
}

// WinCmd estimates the win probability against random opponents
type WinCmd struct {
	shared.LogFlags
	HandFlags

	Opponents int `short:"p" default:"1" env:"POKER_ODDS_OPPONENTS" help:"Number of random opponents"`
}

func (c *WinCmd) Run() error {
	logger := c.Logger()
	req, err := c.request()
	if err != nil {
		return err
	}
	req.Opponents = c.Opponents

	ctx, cancel := shared.SignalContext(context.Background(), logger)
	defer cancel()

	result, err := c.simulator(logger).WinProbability(ctx, req)
	if err != nil {
		return err
	}

	renderWin(os.Stdout, req, result)

	if c.Out != "" {
		if err := fileutil.WriteJSONAtomic(c.Out, newWinReport(req, result)); err != nil {
			return err
		}
		logger.Info().Str("path", c.Out).Msg("Wrote result")
	}
	return nil
}
