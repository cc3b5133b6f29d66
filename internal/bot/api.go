package bot

import (
	"bigtwo/internal/domain"
)

// Move represents the decision made by a bot for its turn.
type Move struct {
	Pass  bool
	Cards []domain.Card
}

// Brain is the interface all bot strategies implement.
type Brain interface {
	CalculateMove(game *domain.Game, player *domain.Player) (Move, error)
	OnEvent(event interface{})
}
