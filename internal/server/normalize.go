package server

import (
	"fmt"
	"strings"

	"github.com/lox/pokerodds/poker"
)

// NormalizeCard accepts the loose card spellings browser clients send and
// returns the parsed card. Accepted forms include canonical codes ("Ah",
// "TD"), a ten written as "10", a doubled suit letter ("4dd", "10hh") and
// suit-first codes ("D4").
func NormalizeCard(raw string) (poker.Card, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))

	// "4DD" -> "4D"
	if n := len(code); n >= 3 && code[n-1] == code[n-2] && isSuit(code[n-1]) {
		code = code[:n-1]
	}
	code = strings.Replace(code, "10", "T", 1)

	if card, err := poker.ParseCard(code); err == nil {
		return card, nil
	}
	if len(code) == 2 && isSuit(code[0]) {
		if card, err := poker.ParseCard(code[1:] + code[:1]); err == nil {
			return card, nil
		}
	}

	return poker.Card{}, fmt.Errorf("%w: %q", poker.ErrInvalidCard, raw)
}

// NormalizeCards normalizes every entry of a client card list
func NormalizeCards(raw []string) ([]poker.Card, error) {
	cards := make([]poker.Card, 0, len(raw))
	for _, r := range raw {
		card, err := NormalizeCard(r)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func isSuit(b byte) bool {
	switch b {
	case 'C', 'D', 'H', 'S':
		return true
	}
	return false
}
