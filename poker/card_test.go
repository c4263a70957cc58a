package poker

import (
	"errors"
	"testing"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()
	aceSpades := NewCard(Ace, Spades)
	if aceSpades.Rank != Ace {
		t.Errorf("Expected rank Ace, got %d", aceSpades.Rank)
	}
	if aceSpades.Suit != Spades {
		t.Errorf("Expected suit Spades, got %d", aceSpades.Suit)
	}
	if aceSpades.String() != "AS" {
		t.Errorf("Expected 'AS', got %s", aceSpades.String())
	}
	if aceSpades.Symbol() != "A♠" {
		t.Errorf("Expected 'A♠', got %s", aceSpades.Symbol())
	}

	twoClubs := NewCard(Two, Clubs)
	if twoClubs.String() != "2C" {
		t.Errorf("Expected '2C', got %s", twoClubs.String())
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{name: "ace of spades", input: "AS", wantCard: NewCard(Ace, Spades)},
		{name: "lower case", input: "as", wantCard: NewCard(Ace, Spades)},
		{name: "mixed case", input: "tD", wantCard: NewCard(Ten, Diamonds)},
		{name: "two of hearts", input: "2h", wantCard: NewCard(Two, Hearts)},
		{name: "king of clubs", input: "KC", wantCard: NewCard(King, Clubs)},
		{name: "nine of diamonds", input: "9d", wantCard: NewCard(Nine, Diamonds)},
		{name: "invalid rank", input: "XS", wantErr: true},
		{name: "one is not a rank", input: "1S", wantErr: true},
		{name: "invalid suit", input: "AX", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "too short", input: "A", wantErr: true},
		{name: "ten spelled out", input: "10S", wantErr: true},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tc.input)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidCard) {
					t.Fatalf("ParseCard(%q) error = %v, want ErrInvalidCard", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCard(%q) unexpected error: %v", tc.input, err)
			}
			if card != tc.wantCard {
				t.Errorf("ParseCard(%q) = %v, want %v", tc.input, card, tc.wantCard)
			}
		})
	}
}

func TestAll52Cards(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)

	for _, card := range FullDeck() {
		str := card.String()
		if seen[str] {
			t.Errorf("Duplicate card: %s", str)
		}
		seen[str] = true

		parsed, err := ParseCard(str)
		if err != nil {
			t.Errorf("Failed to parse %s: %v", str, err)
		}
		if parsed != card {
			t.Errorf("Round-trip failed for %s", str)
		}
	}

	if len(seen) != DeckSize {
		t.Errorf("Expected %d distinct cards, got %d", DeckSize, len(seen))
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
		err   bool
	}{
		{input: "AsKd", want: "AS KD"},
		{input: "AS KD QH", want: "AS KD QH"},
		{input: "4d,Td", want: "4D TD"},
		{input: "", want: ""},
		{input: "AsK", err: true},
		{input: "AsXx", err: true},
	}

	for _, tc := range tests {
		cards, err := ParseCards(tc.input)
		if tc.err {
			if err == nil {
				t.Errorf("ParseCards(%q) expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCards(%q) unexpected error: %v", tc.input, err)
			continue
		}
		if got := FormatCards(cards); got != tc.want {
			t.Errorf("ParseCards(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestCardValid(t *testing.T) {
	t.Parallel()
	if (Card{}).Valid() {
		t.Error("zero card should not be valid")
	}
	if (Card{Rank: 15, Suit: Clubs}).Valid() {
		t.Error("rank 15 should not be valid")
	}
	if (Card{Rank: Ace, Suit: 4}).Valid() {
		t.Error("suit 4 should not be valid")
	}
	if !NewCard(Two, Clubs).Valid() {
		t.Error("2C should be valid")
	}
}

func TestCardSet(t *testing.T) {
	t.Parallel()
	cs := NewCardSet(MustParseCards("AsKsQs2c")...)

	if cs.Len() != 4 {
		t.Errorf("Len() = %d, want 4", cs.Len())
	}
	if !cs.Contains(NewCard(Queen, Spades)) {
		t.Error("set should contain QS")
	}
	if cs.Contains(NewCard(Queen, Hearts)) {
		t.Error("set should not contain QH")
	}
	if got := cs.SuitMask(Spades); got != 1<<12|1<<11|1<<10 {
		t.Errorf("SuitMask(Spades) = %b", got)
	}
	if got := cs.RankMask(); got != 1<<12|1<<11|1<<10|1 {
		t.Errorf("RankMask() = %b", got)
	}
	if got := FormatCards(cs.Cards()); got != "2C QS KS AS" {
		t.Errorf("Cards() = %q", got)
	}
}
