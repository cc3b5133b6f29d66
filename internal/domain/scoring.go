package domain

// FinishBonuses are the flat bonuses awarded for finishing position under the
// complex scoring policy.
type FinishBonuses struct {
	First  int `json:"first"`
	Second int `json:"second"`
}

// ScoringRules carries the tunable values for end-of-round scoring.
type ScoringRules struct {
	Base                int           `json:"base"`
	Multiplier          int           `json:"multiplier"`
	FinishBonuses       FinishBonuses `json:"finish_bonuses"`
	LastPlacePenalty    int           `json:"last_place_penalty"`
	TooManyCardsPenalty int           `json:"too_many_cards_penalty"`
}

// tooManyCardsThreshold is the remaining-hand size at which the extra card
// penalty kicks in, independent of finishing position.
const tooManyCardsThreshold = 10

// CalculateScore is the simple policy: the score is the number of cards left
// in hand. Lower is better; the winner scores zero.
func CalculateScore(remainingCards, position, totalPlayers int, rules ScoringRules) int {
	return remainingCards
}

// CalculateComplexScore is the weighted policy with position bonuses and
// penalties. The second-place bonus only applies in four-player games, the
// last-place penalty only to the final position, and the card penalty
// whenever ten or more cards remain. Scores may go negative; nothing clamps.
func CalculateComplexScore(remainingCards, position, totalPlayers int, rules ScoringRules) int {
	score := rules.Base

	switch {
	case position == 1:
		score += rules.FinishBonuses.First
	case position == 2 && totalPlayers == 4:
		score += rules.FinishBonuses.Second
	}

	score -= remainingCards * rules.Multiplier

	if position == totalPlayers {
		score -= rules.LastPlacePenalty
	}
	if remainingCards >= tooManyCardsThreshold {
		score -= rules.TooManyCardsPenalty
	}
	return score
}
