package domain

import "fmt"

// Suit identifies one of the four suits, in ascending strength order.
type Suit int32

const (
	Diamonds Suit = iota
	Clubs
	Hearts
	Spades
)

// Named ranks. Ranks run 3..15 where J=11, Q=12, K=13, A=14 and the 2 is
// encoded as 15 so it sorts above the ace.
const (
	RankThree int32 = 3
	RankJack  int32 = 11
	RankQueen int32 = 12
	RankKing  int32 = 13
	RankAce   int32 = 14
	RankTwo   int32 = 15
)

// Card is a single playing card.
type Card struct {
	Suit Suit  `json:"suit"`
	Rank int32 `json:"rank"` // 3..15
}

var suitSymbols = [4]string{"♦", "♣", "♥", "♠"}

// String renders the card for logs and UI, e.g. "A♠" or "10♥".
func (c Card) String() string {
	var rank string
	switch c.Rank {
	case RankJack:
		rank = "J"
	case RankQueen:
		rank = "Q"
	case RankKing:
		rank = "K"
	case RankAce:
		rank = "A"
	case RankTwo:
		rank = "2"
	default:
		rank = fmt.Sprintf("%d", c.Rank)
	}
	if c.Suit < Diamonds || c.Suit > Spades {
		return rank + "?"
	}
	return rank + suitSymbols[c.Suit]
}

// RankIndex maps a rank onto 0..13 with the 2 on top.
func RankIndex(rank int32) int32 {
	if rank == RankTwo {
		return 13
	}
	return rank - 3
}

// CardValue is the canonical ordinal of a card: rank index times four plus
// suit. It is a strict total order over the deck with no ties; every "higher
// card" comparison in the engine goes through it.
func CardValue(c Card) int32 {
	return RankIndex(c.Rank)*4 + int32(c.Suit)
}

// rankStrength is the tie-break value used for full houses and four-plus-one
// hands: the value a card of the given rank would have as a spade. No
// placeholder Card is constructed for this.
func rankStrength(rank int32) int32 {
	return RankIndex(rank)*4 + int32(Spades)
}
