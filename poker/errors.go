package poker

import "errors"

var (
	// ErrInvalidCard reports a malformed card code, a value outside the
	// 52-card universe, or a card used twice.
	ErrInvalidCard = errors.New("invalid card")

	// ErrInvalidHand reports a hand of the wrong size or with duplicate cards.
	ErrInvalidHand = errors.New("invalid hand")

	// ErrInsufficientDeck reports a draw larger than the remaining deck.
	ErrInsufficientDeck = errors.New("insufficient deck")
)
