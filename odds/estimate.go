package odds

import (
	"context"

	"github.com/lox/pokerodds/poker"
)

// EstimateCategoryDistribution returns the legacy six-category distribution
// for the hero's hand as percentages keyed by category label.
func EstimateCategoryDistribution(ctx context.Context, hole, community []poker.Card, trials int) (map[string]float64, error) {
	dist, err := New().CategoryDistribution(ctx, Request{
		Hole:      hole,
		Community: community,
		Trials:    trials,
	})
	if err != nil {
		return nil, err
	}
	return dist.Legacy(), nil
}

// EstimateWinProbability returns the percentage of trials in which the hero
// beats every one of opponents random hands. Zero trials selects DefaultTrials.
func EstimateWinProbability(ctx context.Context, hole, community []poker.Card, opponents, trials int) (float64, error) {
	result, err := New().WinProbability(ctx, Request{
		Hole:      hole,
		Community: community,
		Opponents: opponents,
		Trials:    trials,
	})
	if err != nil {
		return 0, err
	}
	return result.WinProbability(), nil
}
