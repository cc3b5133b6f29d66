package domain

// LowestCard is the card that must be part of the opening play in games with
// fewer than four players.
var LowestCard = Card{Suit: Diamonds, Rank: RankThree}

// IsValidPlay decides whether cards may legally be placed over lastPlay.
//
// An empty lastPlay means the play opens the round: any playable combination
// is accepted, and with fewer than four players it must additionally contain
// the 3 of diamonds. A responding play must match the previous play's length,
// form a playable combination, not strand a lone spade as the player's entire
// remaining hand, and outrank lastPlay.
//
// remainingAfterPlay is the acting player's hand after removing cards; the
// caller owns that bookkeeping, as well as the possession check itself.
// Malformed input yields false, never a panic.
func IsValidPlay(cards, lastPlay []Card, playerCount int, remainingAfterPlay []Card) bool {
	if len(cards) == 0 {
		return false
	}

	if len(lastPlay) == 0 {
		if !IsValidCombination(cards) {
			return false
		}
		if playerCount < 4 {
			return containsCard(cards, LowestCard)
		}
		return true
	}

	if len(cards) != len(lastPlay) {
		return false
	}
	if !IsValidCombination(cards) {
		return false
	}
	// Lone-spade house rule: a play may not leave exactly one spade as the
	// whole remaining hand.
	if len(remainingAfterPlay) == 1 && remainingAfterPlay[0].Suit == Spades {
		return false
	}
	return IsHigherCombination(cards, lastPlay)
}

func containsCard(cards []Card, target Card) bool {
	for _, c := range cards {
		if c == target {
			return true
		}
	}
	return false
}
