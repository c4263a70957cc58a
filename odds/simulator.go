// Package odds estimates hand-category distributions and win probabilities
// with Monte Carlo simulation on top of the poker evaluator.
//
// Trials are grouped into fixed-size chunks. Every chunk draws from its own
// random stream derived from the request seed, so a seeded request returns
// the same numbers whatever the worker count or scheduling order. Chunks run
// on a bounded errgroup and write their tallies into disjoint slots that are
// summed once all workers have joined.
package odds

import (
	"context"
	rand "math/rand/v2"
	"runtime"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerodds/internal/randutil"
)

const (
	// DefaultTrials is used by WinProbability when a request leaves Trials at zero.
	DefaultTrials = 1000

	// DefaultChunkSize is the number of trials that share one random stream.
	DefaultChunkSize = 512

	maxDefaultWorkers = 8
)

// Simulator runs Monte Carlo simulations. It holds no per-request state and
// is safe for concurrent use.
type Simulator struct {
	workers   int
	chunkSize int
	logger    zerolog.Logger
	clock     quartz.Clock
}

// Option configures a Simulator
type Option func(*Simulator)

// WithWorkers bounds how many chunks run concurrently. Values below one
// select the default.
func WithWorkers(n int) Option {
	return func(s *Simulator) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithChunkSize sets how many trials share one random stream. Changing it
// changes the numbers a given seed produces.
func WithChunkSize(n int) Option {
	return func(s *Simulator) {
		if n > 0 {
			s.chunkSize = n
		}
	}
}

// WithLogger sets the logger used for per-request debug output
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Simulator) {
		s.logger = logger
	}
}

// WithClock sets the clock used to time simulations
func WithClock(clock quartz.Clock) Option {
	return func(s *Simulator) {
		s.clock = clock
	}
}

// New creates a Simulator. By default it uses one worker per CPU, capped at 8.
func New(opts ...Option) *Simulator {
	workers := runtime.NumCPU()
	if workers > maxDefaultWorkers {
		workers = maxDefaultWorkers // Cap at 8 for diminishing returns
	}

	s := &Simulator{
		workers:   workers,
		chunkSize: DefaultChunkSize,
		logger:    zerolog.Nop(),
		clock:     quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Workers returns the concurrency limit
func (s *Simulator) Workers() int {
	return s.workers
}

// runChunks splits trials into chunks, runs each chunk with its own random
// stream and returns the per-chunk results in chunk order. A cancelled
// context aborts the run and the partial results are dropped.
func runChunks[T any](ctx context.Context, s *Simulator, trials int, seed int64, run func(rng *rand.Rand, n int) T) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	chunks := (trials + s.chunkSize - 1) / s.chunkSize
	results := make([]T, chunks)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for c := 0; c < chunks; c++ {
		n := min(s.chunkSize, trials-c*s.chunkSize)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[c] = run(randutil.NewStream(seed, uint64(c)), n)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
