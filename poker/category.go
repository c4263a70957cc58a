package poker

// HandCategory enumerates the poker hand categories ordered from weakest to strongest.
type HandCategory uint8

const (
	HighCard HandCategory = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// NumCategories is the number of hand categories
const NumCategories = int(StraightFlush) + 1

// LegacyCategories are the six categories the hand-odds endpoint reports by
// default, weakest first.
var LegacyCategories = []HandCategory{OnePair, TwoPair, ThreeOfAKind, Straight, Flush, FullHouse}

// Categories returns every category, weakest first
func Categories() []HandCategory {
	cats := make([]HandCategory, NumCategories)
	for i := range cats {
		cats[i] = HandCategory(i)
	}
	return cats
}

// String returns a human-readable category name
func (c HandCategory) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Label returns the snake_case label used on the wire
func (c HandCategory) Label() string {
	switch c {
	case HighCard:
		return "high_card"
	case OnePair:
		return "one_pair"
	case TwoPair:
		return "two_pair"
	case ThreeOfAKind:
		return "three_of_a_kind"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full_house"
	case FourOfAKind:
		return "four_of_a_kind"
	case StraightFlush:
		return "straight_flush"
	default:
		return "unknown"
	}
}
