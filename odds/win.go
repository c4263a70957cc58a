package odds

import (
	"context"
	"fmt"
	"math"
	rand "math/rand/v2"
	"time"

	"github.com/lox/pokerodds/poker"
)

// WinResult is the outcome of a win-probability simulation.
//
// A trial is a win when the hero's hand is strictly stronger than every
// opponent's, a tie when it shares the best hand with at least one
// opponent, and a loss otherwise. WinProbability counts wins only; ties are
// reported on their own and as a fractional pot share in Equity.
type WinResult struct {
	Trials    int
	Opponents int
	Wins      int
	Ties      int
	Losses    int

	// TieShare sums 1/(players sharing the pot) over tied trials
	TieShare float64

	Seed    int64
	Elapsed time.Duration
}

func (r WinResult) percent(v float64) float64 {
	if r.Trials == 0 {
		return 0
	}
	return v / float64(r.Trials) * 100
}

// WinProbability returns the percentage of trials won outright
func (r WinResult) WinProbability() float64 {
	return r.percent(float64(r.Wins))
}

// TieProbability returns the percentage of trials that ended in a split
func (r WinResult) TieProbability() float64 {
	return r.percent(float64(r.Ties))
}

// LossProbability returns the percentage of trials lost
func (r WinResult) LossProbability() float64 {
	return r.percent(float64(r.Losses))
}

// Equity returns the expected share of the pot: wins count fully and each
// tie counts as an equal split among the tied players.
func (r WinResult) Equity() float64 {
	return r.percent(float64(r.Wins) + r.TieShare)
}

// ConfidenceInterval returns the 95% confidence interval for WinProbability
func (r WinResult) ConfidenceInterval() (lower, upper float64) {
	if r.Trials == 0 {
		return 0, 0
	}

	p := r.WinProbability() / 100
	// Standard error for binomial proportion
	margin := 1.96 * math.Sqrt(p*(1-p)/float64(r.Trials))

	lower = math.Max(0, p-margin) * 100
	upper = math.Min(1, p+margin) * 100
	return lower, upper
}

type winTally struct {
	wins, ties, losses int
	tieShare           float64
}

// WinProbability deals random hole cards to Opponents players and completes
// the board from one shared deck per trial, then compares the hero's best
// hand with every opponent's. Trials defaults to DefaultTrials when zero.
func (s *Simulator) WinProbability(ctx context.Context, req Request) (WinResult, error) {
	if req.Trials < 0 {
		return WinResult{}, fmt.Errorf("%w: trials must be > 0, got %d", ErrInvalidRequest, req.Trials)
	}
	if req.Trials == 0 {
		req.Trials = DefaultTrials
	}

	p, err := prepare(req)
	if err != nil {
		return WinResult{}, err
	}

	start := s.clock.Now()
	tallies, err := runChunks(ctx, s, p.trials, p.seed, func(rng *rand.Rand, n int) winTally {
		return p.winChunk(rng, n)
	})
	if err != nil {
		return WinResult{}, err
	}

	result := WinResult{Trials: p.trials, Opponents: p.opponents, Seed: p.seed}
	for _, tally := range tallies {
		result.Wins += tally.wins
		result.Ties += tally.ties
		result.Losses += tally.losses
		result.TieShare += tally.tieShare
	}
	result.Elapsed = s.clock.Since(start)

	s.logger.Debug().
		Int64("seed", result.Seed).
		Int("trials", result.Trials).
		Int("opponents", result.Opponents).
		Int("wins", result.Wins).
		Int("ties", result.Ties).
		Dur("elapsed", result.Elapsed).
		Msg("Win probability complete")

	return result, nil
}

func (p prepared) winChunk(rng *rand.Rand, n int) winTally {
	var tally winTally

	pool := make([]poker.Card, len(p.deck))
	copy(pool, p.deck)
	draws := p.needed + holeCards*p.opponents

	for i := 0; i < n; i++ {
		drawn := poker.PartialShuffle(pool, draws, rng)

		board := p.community
		for _, card := range drawn[:p.needed] {
			board.Add(card)
		}
		hero := poker.EvaluateSet(p.hole | board).Strength()

		beaten := false
		tied := 0
		for opp := drawn[p.needed:]; len(opp) >= holeCards; opp = opp[holeCards:] {
			hand := board
			hand.Add(opp[0])
			hand.Add(opp[1])

			strength := poker.EvaluateSet(hand).Strength()
			if strength > hero {
				beaten = true
				break
			}
			if strength == hero {
				tied++
			}
		}

		switch {
		case beaten:
			tally.losses++
		case tied > 0:
			tally.ties++
			tally.tieShare += 1 / float64(tied+1)
		default:
			tally.wins++
		}
	}

	return tally
}
