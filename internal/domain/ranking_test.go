package domain

import "testing"

func TestCardValueTotalOrder(t *testing.T) {
	deck := NewDeck()
	seen := make(map[int32]Card, 52)
	for _, c := range deck {
		v := CardValue(c)
		if prev, dup := seen[v]; dup {
			t.Fatalf("cards %v and %v share value %d", prev, c, v)
		}
		seen[v] = c
	}

	// The 2 of spades is the unique maximum.
	maxCard := deck[0]
	for _, c := range deck {
		if CardValue(c) > CardValue(maxCard) {
			maxCard = c
		}
	}
	if maxCard != (Card{Suit: Spades, Rank: RankTwo}) {
		t.Errorf("expected 2♠ as maximum, got %v", maxCard)
	}
}

func TestHandValueTierOrdering(t *testing.T) {
	// Deliberately weak representatives of strong tiers against strong
	// representatives of weak tiers.
	straightFlush := []Card{mk(3, Clubs), mk(4, Clubs), mk(5, Clubs), mk(6, Clubs), mk(7, Clubs)}
	fourPlusOne := []Card{mk(3, Diamonds), mk(3, Clubs), mk(3, Hearts), mk(3, Spades), mk(4, Diamonds)}
	fullHouse := []Card{mk(RankTwo, Diamonds), mk(RankTwo, Clubs), mk(RankTwo, Hearts), mk(RankAce, Spades), mk(RankAce, Diamonds)}
	flush := []Card{mk(4, Spades), mk(7, Spades), mk(9, Spades), mk(RankKing, Spades), mk(RankTwo, Spades)}
	straight := []Card{mk(10, Diamonds), mk(RankJack, Clubs), mk(RankQueen, Hearts), mk(RankKing, Spades), mk(RankAce, Spades)}

	ladder := [][]Card{straight, flush, fullHouse, fourPlusOne, straightFlush}
	for i := 1; i < len(ladder); i++ {
		lower, higher := ladder[i-1], ladder[i]
		if HandValue(higher) <= HandValue(lower) {
			t.Errorf("tier %d (value %d) should outrank tier %d (value %d)",
				i, HandValue(higher), i-1, HandValue(lower))
		}
	}
}

func TestLowStraightRanksByItsFive(t *testing.T) {
	low := []Card{mk(3, Diamonds), mk(4, Clubs), mk(5, Hearts), mk(6, Spades), mk(7, Spades)}
	next := []Card{mk(4, Diamonds), mk(5, Clubs), mk(6, Hearts), mk(7, Clubs), mk(8, Diamonds)}

	if !IsHigherCombination(next, low) {
		t.Errorf("4-5-6-7-8 should beat 3-4-5-6-7: %d vs %d", HandValue(next), HandValue(low))
	}
	// The 3-4-5-6-7 straight carries the value of its 5, not its 7.
	want := tierStraight + CardValue(mk(5, Hearts))
	if got := HandValue(low); got != want {
		t.Errorf("HandValue(3-4-5-6-7) = %d, want %d", got, want)
	}
}

func TestIsHigherCombination(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []Card
		expected bool
	}{
		{
			name:     "Higher single by suit",
			a:        []Card{mk(8, Spades)},
			b:        []Card{mk(8, Hearts)},
			expected: true,
		},
		{
			name:     "Lower single",
			a:        []Card{mk(7, Spades)},
			b:        []Card{mk(8, Diamonds)},
			expected: false,
		},
		{
			name:     "Pair compared by top card",
			a:        []Card{mk(9, Diamonds), mk(9, Spades)},
			b:        []Card{mk(9, Clubs), mk(9, Hearts)},
			expected: true,
		},
		{
			name:     "Triple by rank",
			a:        []Card{mk(10, Diamonds), mk(10, Clubs), mk(10, Hearts)},
			b:        []Card{mk(9, Diamonds), mk(9, Clubs), mk(9, Spades)},
			expected: true,
		},
		{
			name:     "Flush beats straight",
			a:        []Card{mk(4, Spades), mk(7, Spades), mk(9, Spades), mk(RankKing, Spades), mk(RankAce, Spades)},
			b:        []Card{mk(10, Diamonds), mk(RankJack, Clubs), mk(RankQueen, Hearts), mk(RankKing, Hearts), mk(RankAce, Hearts)},
			expected: true,
		},
		{
			name:     "Length mismatch is never higher",
			a:        []Card{mk(RankTwo, Spades)},
			b:        []Card{mk(3, Diamonds), mk(3, Clubs)},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHigherCombination(tt.a, tt.b); got != tt.expected {
				t.Errorf("IsHigherCombination() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestHandValueFallback(t *testing.T) {
	// Not a valid five-card shape: falls back to the highest card value.
	cards := []Card{mk(3, Diamonds), mk(4, Clubs), mk(9, Hearts), mk(RankJack, Spades), mk(RankTwo, Hearts)}
	if got, want := HandValue(cards), CardValue(mk(RankTwo, Hearts)); got != want {
		t.Errorf("HandValue() = %d, want %d", got, want)
	}
}
