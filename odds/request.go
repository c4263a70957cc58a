package odds

import (
	"errors"
	"fmt"

	"github.com/lox/pokerodds/internal/randutil"
	"github.com/lox/pokerodds/poker"
)

// ErrInvalidRequest reports simulation parameters outside their allowed
// range, such as a non-positive trial count or a negative opponent count.
var ErrInvalidRequest = errors.New("invalid simulation request")

const (
	holeCards  = 2
	boardCards = 5
)

// Request describes one simulation. It is never modified by the simulator.
type Request struct {
	// Hole holds the hero's two hole cards
	Hole []poker.Card

	// Community holds the 0-5 known board cards
	Community []poker.Card

	// Trials is the number of simulated board completions
	Trials int

	// Opponents is the number of random opponents (win probability only)
	Opponents int

	// Seed makes the run reproducible; nil picks a fresh seed
	Seed *int64
}

// prepared is the validated form of a Request
type prepared struct {
	hole      poker.CardSet
	community poker.CardSet
	deck      []poker.Card
	needed    int // board cards to deal per trial
	opponents int
	trials    int
	seed      int64
}

// known returns the cards fixed for every trial
func (p prepared) known() poker.CardSet {
	return p.hole | p.community
}

// prepare validates the request and builds the remaining deck. All input
// errors surface here, before any trial runs.
func prepare(req Request) (prepared, error) {
	if len(req.Hole) != holeCards {
		return prepared{}, fmt.Errorf("%w: need exactly %d hole cards, got %d", poker.ErrInvalidHand, holeCards, len(req.Hole))
	}
	if len(req.Community) > boardCards {
		return prepared{}, fmt.Errorf("%w: at most %d community cards, got %d", poker.ErrInvalidHand, boardCards, len(req.Community))
	}
	if req.Opponents < 0 {
		return prepared{}, fmt.Errorf("%w: opponents must be >= 0, got %d", ErrInvalidRequest, req.Opponents)
	}

	used := make([]poker.Card, 0, len(req.Hole)+len(req.Community))
	used = append(used, req.Hole...)
	used = append(used, req.Community...)
	deck, err := poker.RemainingDeck(used)
	if err != nil {
		return prepared{}, err
	}

	p := prepared{
		hole:      poker.NewCardSet(req.Hole...),
		community: poker.NewCardSet(req.Community...),
		deck:      deck,
		needed:    boardCards - len(req.Community),
		opponents: req.Opponents,
		trials:    req.Trials,
	}

	if draws := p.needed + holeCards*p.opponents; draws > len(deck) {
		return prepared{}, fmt.Errorf("%w: %d opponents need %d cards but only %d remain",
			poker.ErrInsufficientDeck, p.opponents, draws, len(deck))
	}

	if req.Seed != nil {
		p.seed = *req.Seed
	} else {
		p.seed = randutil.RandomSeed()
	}

	return p, nil
}
