package domain

import "testing"

func TestIsValidPlay(t *testing.T) {
	tests := []struct {
		name        string
		cards       []Card
		lastPlay    []Card
		playerCount int
		remaining   []Card
		expected    bool
	}{
		{
			name:        "Empty play is rejected",
			cards:       nil,
			lastPlay:    nil,
			playerCount: 4,
			expected:    false,
		},
		{
			name:        "Opening with 3 players requires the 3 of diamonds",
			cards:       []Card{mk(3, Clubs)},
			lastPlay:    nil,
			playerCount: 3,
			expected:    false,
		},
		{
			name:        "Opening with 3 players and the 3 of diamonds",
			cards:       []Card{mk(3, Diamonds)},
			lastPlay:    nil,
			playerCount: 3,
			expected:    true,
		},
		{
			name:        "Opening straight carrying the 3 of diamonds",
			cards:       []Card{mk(3, Diamonds), mk(4, Clubs), mk(5, Hearts), mk(6, Spades), mk(7, Diamonds)},
			lastPlay:    nil,
			playerCount: 2,
			expected:    true,
		},
		{
			name:        "Opening with 4 players allows any valid combination",
			cards:       []Card{mk(9, Hearts)},
			lastPlay:    nil,
			playerCount: 4,
			expected:    true,
		},
		{
			name:        "Opening with an invalid shape",
			cards:       []Card{mk(3, Diamonds), mk(5, Clubs)},
			lastPlay:    nil,
			playerCount: 4,
			expected:    false,
		},
		{
			name:        "Length mismatch against last play",
			cards:       []Card{mk(9, Hearts), mk(9, Spades)},
			lastPlay:    []Card{mk(5, Diamonds)},
			playerCount: 4,
			expected:    false,
		},
		{
			name:        "Responding shape must be valid",
			cards:       []Card{mk(9, Hearts), mk(10, Spades)},
			lastPlay:    []Card{mk(5, Diamonds), mk(5, Clubs)},
			playerCount: 4,
			expected:    false,
		},
		{
			name:        "Must outrank the last play",
			cards:       []Card{mk(5, Hearts)},
			lastPlay:    []Card{mk(9, Diamonds)},
			playerCount: 4,
			remaining:   []Card{mk(3, Clubs), mk(4, Clubs)},
			expected:    false,
		},
		{
			name:        "Higher single is accepted",
			cards:       []Card{mk(10, Hearts)},
			lastPlay:    []Card{mk(9, Diamonds)},
			playerCount: 4,
			remaining:   []Card{mk(3, Clubs), mk(4, Clubs)},
			expected:    true,
		},
		{
			name:        "Play that strands a lone spade is rejected",
			cards:       []Card{mk(10, Hearts)},
			lastPlay:    []Card{mk(9, Diamonds)},
			playerCount: 4,
			remaining:   []Card{mk(RankAce, Spades)},
			expected:    false,
		},
		{
			name:        "Stranding a lone non-spade is fine",
			cards:       []Card{mk(10, Hearts)},
			lastPlay:    []Card{mk(9, Diamonds)},
			playerCount: 4,
			remaining:   []Card{mk(RankAce, Hearts)},
			expected:    true,
		},
		{
			name:        "Five-card hand beaten by a stronger shape",
			cards:       []Card{mk(4, Spades), mk(7, Spades), mk(9, Spades), mk(RankKing, Spades), mk(RankAce, Spades)},
			lastPlay:    []Card{mk(10, Diamonds), mk(RankJack, Clubs), mk(RankQueen, Hearts), mk(RankKing, Hearts), mk(RankAce, Hearts)},
			playerCount: 4,
			remaining:   []Card{mk(3, Clubs), mk(4, Clubs)},
			expected:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsValidPlay(tt.cards, tt.lastPlay, tt.playerCount, tt.remaining)
			if got != tt.expected {
				t.Errorf("IsValidPlay() = %v, want %v", got, tt.expected)
			}
		})
	}
}
