package poker

import "fmt"

// Source is the random source used for sampling. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Draw returns n distinct cards drawn uniformly at random without
// replacement from deck. The deck itself is left untouched.
func Draw(deck []Card, n int, src Source) ([]Card, error) {
	if n < 0 || n > len(deck) {
		return nil, fmt.Errorf("%w: cannot draw %d cards from %d", ErrInsufficientDeck, n, len(deck))
	}
	if n == 0 {
		return []Card{}, nil
	}

	pool := make([]Card, len(deck))
	copy(pool, deck)
	drawn := PartialShuffle(pool, n, src)
	return drawn[:n:n], nil
}

// PartialShuffle moves n uniformly chosen cards to the front of pool using a
// partial Fisher-Yates pass and returns that prefix. pool stays a
// permutation of its original contents, so it can be reused for the next
// draw without rebuilding. The caller guarantees 0 <= n <= len(pool).
func PartialShuffle(pool []Card, n int, src Source) []Card {
	for i := 0; i < n; i++ {
		j := i + src.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
