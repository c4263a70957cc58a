package poker

import "fmt"

// DeckSize is the number of cards in the universe
const DeckSize = 52

var fullDeck = func() [DeckSize]Card {
	var cards [DeckSize]Card
	i := 0
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards[i] = NewCard(rank, suit)
			i++
		}
	}
	return cards
}()

// FullDeck returns the 52 canonical cards, suit-major
func FullDeck() []Card {
	cards := make([]Card, DeckSize)
	copy(cards, fullDeck[:])
	return cards
}

// UsedSet validates used cards and collects them into a CardSet. It fails
// with ErrInvalidCard on a card outside the universe or a repeated card.
func UsedSet(used []Card) (CardSet, error) {
	var set CardSet
	for _, card := range used {
		if !card.Valid() {
			return 0, fmt.Errorf("%w: rank %d suit %d is not a playing card", ErrInvalidCard, card.Rank, card.Suit)
		}
		if set.Contains(card) {
			return 0, fmt.Errorf("%w: %s appears more than once", ErrInvalidCard, card)
		}
		set.Add(card)
	}
	return set, nil
}

// RemainingDeck returns exactly the canonical cards not present in used.
func RemainingDeck(used []Card) ([]Card, error) {
	set, err := UsedSet(used)
	if err != nil {
		return nil, err
	}
	return set.Remaining(), nil
}

// Remaining returns the canonical cards that are not in the set
func (cs CardSet) Remaining() []Card {
	cards := make([]Card, 0, DeckSize-cs.Len())
	for _, card := range fullDeck {
		if !cs.Contains(card) {
			cards = append(cards, card)
		}
	}
	return cards
}
