package poker

import "testing"

func TestCategorizeHoleCards(t *testing.T) {
	tests := []struct {
		hole string
		want HoleCardCategory
	}{
		{"AsAh", CategoryPremium},
		{"JcJd", CategoryPremium},
		{"AsKd", CategoryPremium},
		{"TsTh", CategoryStrong},
		{"AhQc", CategoryStrong},
		{"AdJs", CategoryStrong},
		{"8s8h", CategoryMedium},
		{"KsQs", CategoryMedium},
		{"2s2h", CategoryWeak},
		{"7h6h", CategoryWeak},
		{"7h2c", CategoryTrash},
		{"4dTd", CategoryTrash},
		{"AsAs", CategoryUnknown},
	}

	for _, tt := range tests {
		cards := MustParseCards(tt.hole)
		if got := CategorizeHoleCards(cards[0], cards[1]); got != tt.want {
			t.Errorf("CategorizeHoleCards(%s) = %s, want %s", tt.hole, got, tt.want)
		}
	}
}
