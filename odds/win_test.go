package odds

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerodds/poker"
)

func TestWinProbabilityPocketAces(t *testing.T) {
	result, err := New().WinProbability(context.Background(), Request{
		Hole:      poker.MustParseCards("AsAh"),
		Opponents: 1,
		Trials:    1000,
		Seed:      seed(42),
	})
	require.NoError(t, err)

	assert.Equal(t, 1000, result.Trials)
	assert.Equal(t, result.Trials, result.Wins+result.Ties+result.Losses)
	assert.GreaterOrEqual(t, result.WinProbability(), 75.0)
	assert.LessOrEqual(t, result.WinProbability(), 90.0)

	lower, upper := result.ConfidenceInterval()
	assert.Less(t, lower, result.WinProbability())
	assert.Greater(t, upper, result.WinProbability())
}

func TestWinProbabilityDefaultsTrials(t *testing.T) {
	result, err := New().WinProbability(context.Background(), Request{
		Hole:      poker.MustParseCards("7h2c"),
		Opponents: 2,
		Seed:      seed(9),
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultTrials, result.Trials)
}

func TestWinProbabilityNoOpponents(t *testing.T) {
	result, err := New().WinProbability(context.Background(), Request{
		Hole:   poker.MustParseCards("7h2c"),
		Trials: 200,
		Seed:   seed(1),
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.WinProbability())
	assert.Equal(t, 100.0, result.Equity())
}

func TestWinProbabilityTiePolicy(t *testing.T) {
	// A royal flush on the board plays for everyone, so every trial is a split.
	board := poker.MustParseCards("AsKsQsJsTs")

	tests := []struct {
		opponents int
		equity    float64
	}{
		{opponents: 1, equity: 50},
		{opponents: 3, equity: 25},
	}

	for _, tt := range tests {
		result, err := New().WinProbability(context.Background(), Request{
			Hole:      poker.MustParseCards("2c3d"),
			Community: board,
			Opponents: tt.opponents,
			Trials:    300,
			Seed:      seed(5),
		})
		require.NoError(t, err)

		assert.Equal(t, 300, result.Ties)
		assert.Zero(t, result.Wins)
		assert.Zero(t, result.WinProbability(), "ties are excluded from the win numerator")
		assert.Equal(t, 100.0, result.TieProbability())
		assert.InDelta(t, tt.equity, result.Equity(), 1e-9)
	}
}

func TestWinProbabilityNutsAlwaysWin(t *testing.T) {
	result, err := New().WinProbability(context.Background(), Request{
		Hole:      poker.MustParseCards("AsKs"),
		Community: poker.MustParseCards("QsJsTs2c3d"),
		Opponents: 5,
		Trials:    500,
		Seed:      seed(8),
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.WinProbability())
	assert.Zero(t, result.LossProbability())
}

func TestWinProbabilityDrawingDead(t *testing.T) {
	// Hero's best is a wheel straight while the board gives everyone a
	// higher straight.
	result, err := New().WinProbability(context.Background(), Request{
		Hole:      poker.MustParseCards("Ac2d"),
		Community: poker.MustParseCards("3h4s5c6d7h"),
		Opponents: 1,
		Trials:    200,
		Seed:      seed(4),
	})
	require.NoError(t, err)
	assert.Zero(t, result.Wins)
	assert.Equal(t, 200, result.Ties+result.Losses)
}

func TestWinProbabilityInsufficientDeck(t *testing.T) {
	_, err := New().WinProbability(context.Background(), Request{
		Hole:      poker.MustParseCards("AsAh"),
		Opponents: 23,
		Trials:    10,
	})
	assert.True(t, errors.Is(err, poker.ErrInsufficientDeck), "got %v", err)

	// 22 opponents plus a five-card board uses 49 of the 50 remaining cards.
	result, err := New().WinProbability(context.Background(), Request{
		Hole:      poker.MustParseCards("AsAh"),
		Opponents: 22,
		Trials:    10,
		Seed:      seed(2),
	})
	require.NoError(t, err)
	assert.Equal(t, 10, result.Wins+result.Ties+result.Losses)
}

func TestWinProbabilityErrors(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"negative opponents", Request{Hole: poker.MustParseCards("AsAh"), Opponents: -1}, ErrInvalidRequest},
		{"negative trials", Request{Hole: poker.MustParseCards("AsAh"), Opponents: 1, Trials: -1}, ErrInvalidRequest},
		{"three hole cards", Request{Hole: poker.MustParseCards("AsAhAd"), Opponents: 1}, poker.ErrInvalidHand},
		{"duplicate cards", Request{Hole: poker.MustParseCards("AsAs"), Opponents: 1}, poker.ErrInvalidCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := New().WinProbability(context.Background(), tt.req)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
			assert.Equal(t, WinResult{}, result)
		})
	}
}

func TestWinProbabilityReproducible(t *testing.T) {
	req := Request{
		Hole:      poker.MustParseCards("QhJh"),
		Community: poker.MustParseCards("Th9c2h"),
		Opponents: 3,
		Trials:    3000,
		Seed:      seed(31337),
	}

	a, err := New(WithWorkers(1)).WinProbability(context.Background(), req)
	require.NoError(t, err)
	b, err := New(WithWorkers(6)).WinProbability(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, a.Wins, b.Wins)
	assert.Equal(t, a.Ties, b.Ties)
	assert.Equal(t, a.Losses, b.Losses)
	assert.Equal(t, a.TieShare, b.TieShare)
}

func TestEstimateWinProbability(t *testing.T) {
	pct, err := EstimateWinProbability(context.Background(), poker.MustParseCards("AsAh"), nil, 1, 0)
	require.NoError(t, err)
	assert.Greater(t, pct, 70.0)

	_, err = EstimateWinProbability(context.Background(), poker.MustParseCards("AsAh"), nil, 30, 0)
	assert.ErrorIs(t, err, poker.ErrInsufficientDeck)
}

func TestWinProbabilityCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().WinProbability(ctx, Request{Hole: poker.MustParseCards("AsAh"), Opponents: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
