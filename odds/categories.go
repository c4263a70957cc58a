package odds

import (
	"context"
	"fmt"
	"math"
	rand "math/rand/v2"
	"time"

	"github.com/lox/pokerodds/poker"
)

// Distribution is the outcome of a category-distribution simulation
type Distribution struct {
	Trials  int
	Counts  [poker.NumCategories]int
	Seed    int64
	Elapsed time.Duration
}

// Percent returns the share of trials that finished in the category, 0-100
func (d Distribution) Percent(cat poker.HandCategory) float64 {
	if d.Trials == 0 || int(cat) >= poker.NumCategories {
		return 0
	}
	return float64(d.Counts[cat]) / float64(d.Trials) * 100
}

// StandardError returns the Monte Carlo standard error of Percent(cat), in
// percentage points.
func (d Distribution) StandardError(cat poker.HandCategory) float64 {
	if d.Trials == 0 {
		return 0
	}
	p := d.Percent(cat) / 100
	return math.Sqrt(p*(1-p)/float64(d.Trials)) * 100
}

// Legacy returns percentages for the categories in LegacyCategories, keyed
// by label. The remaining categories are left out, so the values sum to at
// most 100.
func (d Distribution) Legacy() map[string]float64 {
	out := make(map[string]float64, len(poker.LegacyCategories))
	for _, cat := range poker.LegacyCategories {
		out[cat.Label()] = d.Percent(cat)
	}
	return out
}

// All returns percentages for every category, keyed by label
func (d Distribution) All() map[string]float64 {
	out := make(map[string]float64, poker.NumCategories)
	for _, cat := range poker.Categories() {
		out[cat.Label()] = d.Percent(cat)
	}
	return out
}

type categoryTally [poker.NumCategories]int

// CategoryDistribution completes the board for the hero's hand Trials times
// and counts the final category of the best seven-card hand. Opponents is
// ignored.
func (s *Simulator) CategoryDistribution(ctx context.Context, req Request) (Distribution, error) {
	if req.Trials <= 0 {
		return Distribution{}, fmt.Errorf("%w: trials must be > 0, got %d", ErrInvalidRequest, req.Trials)
	}
	req.Opponents = 0

	p, err := prepare(req)
	if err != nil {
		return Distribution{}, err
	}

	start := s.clock.Now()
	tallies, err := runChunks(ctx, s, p.trials, p.seed, func(rng *rand.Rand, n int) categoryTally {
		return p.categoryChunk(rng, n)
	})
	if err != nil {
		return Distribution{}, err
	}

	dist := Distribution{Trials: p.trials, Seed: p.seed}
	for _, tally := range tallies {
		for cat, count := range tally {
			dist.Counts[cat] += count
		}
	}
	dist.Elapsed = s.clock.Since(start)

	s.logger.Debug().
		Int64("seed", dist.Seed).
		Int("trials", dist.Trials).
		Int("board_needed", p.needed).
		Dur("elapsed", dist.Elapsed).
		Msg("Category distribution complete")

	return dist, nil
}

func (p prepared) categoryChunk(rng *rand.Rand, n int) categoryTally {
	var tally categoryTally

	// Each chunk owns a scratch copy of the deck that stays a permutation
	// of it between trials.
	pool := make([]poker.Card, len(p.deck))
	copy(pool, p.deck)
	known := p.known()

	for i := 0; i < n; i++ {
		hand := known
		for _, card := range poker.PartialShuffle(pool, p.needed, rng) {
			hand.Add(card)
		}
		tally[poker.EvaluateSet(hand).Category]++
	}

	return tally
}
