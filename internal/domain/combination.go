package domain

// CombinationType represents the shape of a played set of cards.
type CombinationType int

const (
	Invalid CombinationType = iota
	Single
	Pair
	Triple
	// Quad is a display-only classification: four of a kind is never playable
	// on its own, it only exists embedded in a five-card FourPlusOne.
	Quad
	Straight
	Flush
	FullHouse
	FourPlusOne
	StraightFlush
)

var combinationNames = map[CombinationType]string{
	Invalid:       "Unknown",
	Single:        "Single",
	Pair:          "Pair",
	Triple:        "Triple",
	Quad:          "Four of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourPlusOne:   "Four Plus One",
	StraightFlush: "Straight Flush",
}

func (t CombinationType) String() string {
	if name, ok := combinationNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Combination is a classified set of cards. It is produced once by Classify
// and pattern-matched everywhere else instead of re-deriving the shape at
// each call site.
type Combination struct {
	Type  CombinationType
	Cards []Card // sorted ascending by card value
	Value int32  // comparison strength: card value or tiered hand value
	Count int
}

// Playable reports whether the combination may be offered as a turn action.
func (c Combination) Playable() bool {
	return c.Type != Invalid && c.Type != Quad
}

// Classify analyzes a set of cards and returns the strongest matching
// combination. Five-card hands pick the strongest applicable label:
// straight flush > four-plus-one > full house > flush > straight.
func Classify(cards []Card) Combination {
	n := len(cards)
	if n == 0 {
		return Combination{Type: Invalid}
	}

	sorted := make([]Card, n)
	copy(sorted, cards)
	SortHand(sorted)

	switch n {
	case 1:
		return Combination{Type: Single, Cards: sorted, Value: CardValue(sorted[0]), Count: 1}
	case 2:
		if allSameRank(sorted) {
			return Combination{Type: Pair, Cards: sorted, Value: CardValue(sorted[1]), Count: 2}
		}
	case 3:
		if allSameRank(sorted) {
			return Combination{Type: Triple, Cards: sorted, Value: CardValue(sorted[2]), Count: 3}
		}
	case 4:
		if allSameRank(sorted) {
			return Combination{Type: Quad, Cards: sorted, Value: CardValue(sorted[3]), Count: 4}
		}
	case 5:
		return classifyFive(sorted)
	}

	return Combination{Type: Invalid}
}

// IsValidCombination reports whether the cards form a playable shape:
// any single, a pair, a triple, or a legal five-card hand.
func IsValidCombination(cards []Card) bool {
	return Classify(cards).Playable()
}

// PlayTypeName maps a set of cards to its display label.
func PlayTypeName(cards []Card) string {
	if len(cards) == 0 {
		return "Pass"
	}
	return Classify(cards).Type.String()
}

// Hand value tiers for five-card shapes. The gaps guarantee that any straight
// flush outranks any four-plus-one, which outranks any full house, and so on,
// regardless of the specific cards.
const (
	tierStraight      int32 = 5000
	tierFlush         int32 = 6000
	tierFullHouse     int32 = 7000
	tierFourPlusOne   int32 = 8000
	tierStraightFlush int32 = 9000
)

func classifyFive(sorted []Card) Combination {
	flush := allSameSuit(sorted)
	straight := isStraightRanks(sorted)

	counts := make(map[int32]int, 5)
	for _, c := range sorted {
		counts[c.Rank]++
	}

	var quadRank, tripleRank, pairRank int32 = -1, -1, -1
	for rank, n := range counts {
		switch n {
		case 4:
			quadRank = rank
		case 3:
			tripleRank = rank
		case 2:
			pairRank = rank
		}
	}

	combo := Combination{Cards: sorted, Count: 5}
	switch {
	case straight && flush:
		combo.Type = StraightFlush
		combo.Value = tierStraightFlush + CardValue(straightHighCard(sorted))
	case quadRank >= 0:
		combo.Type = FourPlusOne
		combo.Value = tierFourPlusOne + rankStrength(quadRank)
	case tripleRank >= 0 && pairRank >= 0:
		combo.Type = FullHouse
		combo.Value = tierFullHouse + rankStrength(tripleRank)
	case flush:
		combo.Type = Flush
		combo.Value = tierFlush + CardValue(sorted[4])
	case straight:
		combo.Type = Straight
		combo.Value = tierStraight + CardValue(straightHighCard(sorted))
	default:
		return Combination{Type: Invalid}
	}
	return combo
}

func allSameRank(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	r := cards[0].Rank
	for _, c := range cards {
		if c.Rank != r {
			return false
		}
	}
	return true
}

func allSameSuit(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	s := cards[0].Suit
	for _, c := range cards {
		if c.Suit != s {
			return false
		}
	}
	return true
}

// isStraightRanks expects the cards sorted ascending. Five consecutive ranks
// form a straight; the 2 (rank 15) can never be part of one, so 10-J-Q-K-A is
// the highest straight and anything wrapping through the 2 is rejected.
func isStraightRanks(sorted []Card) bool {
	if len(sorted) != 5 {
		return false
	}
	for _, c := range sorted {
		if c.Rank == RankTwo {
			return false
		}
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Rank != sorted[i-1].Rank+1 {
			return false
		}
	}
	return true
}

// straightHighCard returns the card a straight is ranked by. That is the top
// card, except for the lowest straight 3-4-5-6-7 which ranks by its 5, making
// it deliberately weaker than 4-5-6-7-8.
func straightHighCard(sorted []Card) Card {
	if sorted[0].Rank == RankThree && sorted[4].Rank == 7 {
		return sorted[2]
	}
	return sorted[4]
}
