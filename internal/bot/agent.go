package bot

import (
	"strings"

	"bigtwo/internal/domain"
)

// botIDPrefix marks seats occupied by bots rather than connected users.
const botIDPrefix = "bot:"

// IsBot reports whether the given user id represents a bot seat.
func IsBot(userID string) bool {
	return strings.HasPrefix(userID, botIDPrefix)
}

// BotUserID derives the user id for a bot occupying the given seat.
func BotUserID(seat int) string {
	return botIDPrefix + string(rune('a'+seat))
}

// Agent is an autonomous bot player bound to a strategy.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// NewAgent constructs an agent for the given bot user id.
func NewAgent(userID string, level BotLevel) (*Agent, error) {
	brain, err := NewBrain(level)
	if err != nil {
		return nil, err
	}
	return &Agent{ID: userID, Name: userID, Strategy: brain}, nil
}

// Play asks the agent to calculate its move for the current game state.
func (a *Agent) Play(game *domain.Game) (Move, error) {
	player := game.PlayerByID(a.ID)
	if player == nil {
		return Move{Pass: true}, nil
	}

	move, err := a.Strategy.CalculateMove(game, player)
	if err != nil {
		return Move{Pass: true}, err
	}
	return move, nil
}

// PlayAtSeat calculates a move for the player at the given seat.
func (a *Agent) PlayAtSeat(game *domain.Game, seat int) (Move, error) {
	player := game.PlayerAtSeat(seat)
	if player == nil {
		return Move{Pass: true}, nil
	}
	return a.Strategy.CalculateMove(game, player)
}

// OnGameEvent notifies the agent of a game event.
func (a *Agent) OnGameEvent(event interface{}) {
	a.Strategy.OnEvent(event)
}
