package poker

import "math/bits"

// CardSet is a set of cards stored as a bitset. Each suit owns a 16-bit
// lane and a card occupies bit (rank-2) within its suit's lane, so the
// lanes double as per-suit rank masks for the evaluator.
type CardSet uint64

const rankLaneMask = 0x1FFF

// NewCardSet creates a CardSet from a slice of cards
func NewCardSet(cards ...Card) CardSet {
	var cs CardSet
	for _, card := range cards {
		cs.Add(card)
	}
	return cs
}

// Add adds a card to the set
func (cs *CardSet) Add(card Card) {
	*cs |= 1 << card.index()
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(card Card) bool {
	return cs&(1<<card.index()) != 0
}

// Len returns the number of cards in the set
func (cs CardSet) Len() int {
	return bits.OnesCount64(uint64(cs))
}

// SuitMask returns the rank mask of the cards held in one suit
func (cs CardSet) SuitMask(suit Suit) uint16 {
	return uint16(cs>>(uint(suit)*16)) & rankLaneMask
}

// RankMask returns the union of ranks present in any suit
func (cs CardSet) RankMask() uint16 {
	return cs.SuitMask(Clubs) | cs.SuitMask(Diamonds) | cs.SuitMask(Hearts) | cs.SuitMask(Spades)
}

// Cards lists the set's cards in suit-major, rank-ascending order
func (cs CardSet) Cards() []Card {
	cards := make([]Card, 0, cs.Len())
	for suit := Clubs; suit <= Spades; suit++ {
		mask := cs.SuitMask(suit)
		for mask != 0 {
			low := bits.TrailingZeros16(mask)
			cards = append(cards, Card{Rank: Rank(low) + Two, Suit: suit})
			mask &= mask - 1
		}
	}
	return cards
}
