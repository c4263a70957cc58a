package poker

import (
	"fmt"
	"math/bits"
	"strings"
)

// Evaluation is the best five-card reading of a 5-7 card set. Key holds the
// ranks that decide strength within the category, most significant first,
// zero-padded.
type Evaluation struct {
	Category HandCategory
	Key      [5]Rank
}

// Strength packs the category and key into one comparable value: the
// category sits above bit 20 and each key rank takes a nibble below it.
// Higher is stronger.
func (e Evaluation) Strength() uint32 {
	return uint32(e.Category)<<20 | packKey(e.Key)
}

func packKey(key [5]Rank) uint32 {
	var s uint32
	for i, r := range key {
		s |= uint32(r) << (16 - 4*i)
	}
	return s
}

// String returns a hand description such as "Full House [K 9]"
func (e Evaluation) String() string {
	var ranks []string
	for _, r := range e.Key {
		if r == 0 {
			break
		}
		ranks = append(ranks, r.String())
	}
	return fmt.Sprintf("%s [%s]", e.Category, strings.Join(ranks, " "))
}

// Compare compares two evaluations and returns 1 if a wins, -1 if b wins, 0 for tie
func Compare(a, b Evaluation) int {
	sa, sb := a.Strength(), b.Strength()
	switch {
	case sa > sb:
		return 1
	case sa < sb:
		return -1
	}
	return 0
}

// Evaluate returns the best five-card hand reachable from 5, 6 or 7 cards.
// Malformed input fails before any counting: a wrong card count or a
// repeated card yields ErrInvalidHand, a card outside the universe yields
// ErrInvalidCard.
func Evaluate(cards []Card) (Evaluation, error) {
	if n := len(cards); n < 5 || n > 7 {
		return Evaluation{}, fmt.Errorf("%w: need 5 to 7 cards, got %d", ErrInvalidHand, n)
	}

	var set CardSet
	for _, card := range cards {
		if !card.Valid() {
			return Evaluation{}, fmt.Errorf("%w: rank %d suit %d is not a playing card", ErrInvalidCard, card.Rank, card.Suit)
		}
		if set.Contains(card) {
			return Evaluation{}, fmt.Errorf("%w: duplicate card %s", ErrInvalidHand, card)
		}
		set.Add(card)
	}

	return EvaluateSet(set), nil
}

// EvaluateSet evaluates a set that is already known to hold 5 to 7 valid
// cards. Simulation loops use it after validating their inputs once.
func EvaluateSet(cs CardSet) Evaluation {
	s0, s1, s2, s3 := cs.SuitMask(Clubs), cs.SuitMask(Diamonds), cs.SuitMask(Hearts), cs.SuitMask(Spades)
	rankMask := s0 | s1 | s2 | s3

	// A straight flush must be found inside a single suit's ranks.
	var flushMask uint16
	var straightFlushHigh Rank
	for _, suitMask := range [4]uint16{s0, s1, s2, s3} {
		if bits.OnesCount16(suitMask) < 5 {
			continue
		}
		if high := straightHigh(suitMask); high > straightFlushHigh {
			straightFlushHigh = high
		}
		if flushMask == 0 || packKey(topRanks(suitMask, 5)) > packKey(topRanks(flushMask, 5)) {
			flushMask = suitMask
		}
	}
	if straightFlushHigh != 0 {
		return Evaluation{Category: StraightFlush, Key: [5]Rank{straightFlushHigh}}
	}

	quadsMask := s0 & s1 & s2 & s3
	tripCandidates := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	tripsMask := tripCandidates &^ quadsMask
	pairsMask := ((s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)) &^ tripCandidates

	if quad := highestBit(quadsMask); quad >= 0 {
		kicker := highestBit(rankMask &^ (1 << quad))
		return Evaluation{Category: FourOfAKind, Key: [5]Rank{bitRank(quad), bitRank(kicker)}}
	}

	if trip := highestBit(tripsMask); trip >= 0 {
		// A second set of trips plays as the pair.
		if pair := highestBit(pairsMask | (tripsMask &^ (1 << trip))); pair >= 0 {
			return Evaluation{Category: FullHouse, Key: [5]Rank{bitRank(trip), bitRank(pair)}}
		}
	}

	if flushMask != 0 {
		return Evaluation{Category: Flush, Key: topRanks(flushMask, 5)}
	}

	if high := straightHigh(rankMask); high != 0 {
		return Evaluation{Category: Straight, Key: [5]Rank{high}}
	}

	if trip := highestBit(tripsMask); trip >= 0 {
		kickers := topRanks(rankMask&^(1<<trip), 2)
		return Evaluation{Category: ThreeOfAKind, Key: [5]Rank{bitRank(trip), kickers[0], kickers[1]}}
	}

	if high := highestBit(pairsMask); high >= 0 {
		if low := highestBit(pairsMask &^ (1 << high)); low >= 0 {
			kicker := highestBit(rankMask &^ (1 << high) &^ (1 << low))
			return Evaluation{Category: TwoPair, Key: [5]Rank{bitRank(high), bitRank(low), bitRank(kicker)}}
		}
		kickers := topRanks(rankMask&^(1<<high), 3)
		return Evaluation{Category: OnePair, Key: [5]Rank{bitRank(high), kickers[0], kickers[1], kickers[2]}}
	}

	return Evaluation{Category: HighCard, Key: topRanks(rankMask, 5)}
}

// highestBit returns the highest set bit in the mask (or -1 when empty).
func highestBit(mask uint16) int {
	if mask == 0 {
		return -1
	}
	return bits.Len16(mask) - 1
}

// bitRank converts a rank-mask bit position to a Rank; -1 maps to the zero rank.
func bitRank(bit int) Rank {
	if bit < 0 {
		return 0
	}
	return Rank(bit) + Two
}

// topRanks returns up to n of the highest ranks in the mask, descending.
func topRanks(mask uint16, n int) [5]Rank {
	var ranks [5]Rank
	for i := 0; i < n && mask != 0; i++ {
		top := bits.Len16(mask) - 1
		ranks[i] = bitRank(top)
		mask &^= 1 << top
	}
	return ranks
}

// straightHigh returns the top rank of the best straight in the mask, or 0.
// The wheel (A-2-3-4-5) counts as five-high.
func straightHigh(mask uint16) Rank {
	const wheelMask = 0x100F // Ace + 2-3-4-5
	mask &= rankLaneMask

	// Bitwise cascade identifies consecutive sequences in one pass.
	if seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4); seq != 0 {
		low := bits.Len16(seq) - 1
		return bitRank(low + 4)
	}

	if mask&wheelMask == wheelMask {
		return Five
	}
	return 0
}
