package bot

import (
	"bigtwo/internal/advisor"
	"bigtwo/internal/domain"
)

// GreedyBot always plays the advisor's weakest legal suggestion and passes
// only when no legal play exists.
type GreedyBot struct{}

func (b *GreedyBot) CalculateMove(game *domain.Game, player *domain.Player) (Move, error) {
	if player == nil || len(player.Hand) == 0 {
		return Move{Pass: true}, nil
	}

	cards := advisor.AutoPlaySuggestion(player.Hand, game.LastPlay, game.PlayerCount())
	if cards == nil {
		return Move{Pass: true}, nil
	}
	if !legalResponse(game, player, cards) {
		// The weakest candidate would strand a lone spade; look for the
		// next ranked play instead.
		for _, h := range advisor.CardHints(player.Hand, game.LastPlay, game.PlayerCount()) {
			if legalResponse(game, player, h.Cards) {
				return Move{Cards: h.Cards}, nil
			}
		}
		return Move{Pass: true}, nil
	}
	return Move{Cards: cards}, nil
}

func (b *GreedyBot) OnEvent(event interface{}) {}

// holdThreshold is the hand size above which HoldingBot refuses to spend 2s.
const holdThreshold = 8

// HoldingBot plays like GreedyBot but keeps its 2s back while the hand is
// still large, preferring the weakest hint that spends no 2.
type HoldingBot struct{}

func (b *HoldingBot) CalculateMove(game *domain.Game, player *domain.Player) (Move, error) {
	if player == nil || len(player.Hand) == 0 {
		return Move{Pass: true}, nil
	}

	lastPlay := game.LastPlay
	playerCount := game.PlayerCount()

	if len(player.Hand) <= holdThreshold {
		return (&GreedyBot{}).CalculateMove(game, player)
	}

	hints := advisor.CardHints(player.Hand, lastPlay, playerCount)
	for _, h := range hints {
		if !containsTwo(h.Cards) && legalResponse(game, player, h.Cards) {
			return Move{Cards: h.Cards}, nil
		}
	}

	// Only 2-spending plays remain. Lead with one anyway on an open table;
	// otherwise hold and pass.
	if len(lastPlay) == 0 {
		if cards := advisor.AutoPlaySuggestion(player.Hand, lastPlay, playerCount); cards != nil {
			return Move{Cards: cards}, nil
		}
	}
	return Move{Pass: true}, nil
}

func (b *HoldingBot) OnEvent(event interface{}) {}

// legalResponse re-checks an advisor candidate against the full play
// validator. The advisor does not know about stranded lone spades, so a
// responding candidate can still be illegal for this particular hand.
func legalResponse(game *domain.Game, player *domain.Player, cards []domain.Card) bool {
	if len(game.LastPlay) == 0 {
		return true
	}
	remaining := domain.RemoveCards(player.Hand, cards)
	return domain.IsValidPlay(cards, game.LastPlay, game.PlayerCount(), remaining)
}

func containsTwo(cards []domain.Card) bool {
	for _, c := range cards {
		if c.Rank == domain.RankTwo {
			return true
		}
	}
	return false
}
