package app

import "bigtwo/internal/domain"

// EventKind identifies emitted game events for dispatch to the port layer.
type EventKind string

const (
	EventGameStarted EventKind = "game_started"
	EventHandDealt   EventKind = "hand_dealt"
	EventCardPlayed  EventKind = "card_played"
	EventTurnPassed  EventKind = "turn_passed"
	EventRoundReset  EventKind = "round_reset"
	EventGameEnded   EventKind = "game_ended"
)

// Event is a game event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type GameStartedPayload struct {
	GameID        string `json:"game_id"`
	FirstTurnSeat int    `json:"first_turn_seat"`
	PlayerCount   int    `json:"player_count"`
}

type HandDealtPayload struct {
	Seat   int           `json:"seat"`
	UserID string        `json:"user_id"`
	Hand   []domain.Card `json:"hand"`
}

type CardPlayedPayload struct {
	Seat         int           `json:"seat"`
	Cards        []domain.Card `json:"cards"`
	PlayType     string        `json:"play_type"`
	NextTurnSeat int           `json:"next_turn_seat"`
	NewRound     bool          `json:"new_round"`
}

type TurnPassedPayload struct {
	Seat         int  `json:"seat"`
	NextTurnSeat int  `json:"next_turn_seat"`
	NewRound     bool `json:"new_round"`
}

type RoundResetPayload struct {
	LeaderSeat int `json:"leader_seat"`
}

// ScoreLine reports one player's end-of-round result under both scoring
// policies.
type ScoreLine struct {
	Seat         int    `json:"seat"`
	UserID       string `json:"user_id"`
	Position     int    `json:"position"`
	CardsLeft    int    `json:"cards_left"`
	Score        int    `json:"score"`
	ComplexScore int    `json:"complex_score"`
}

type GameEndedPayload struct {
	GameID           string      `json:"game_id"`
	FinishOrderSeats []int       `json:"finish_order_seats"`
	Scores           []ScoreLine `json:"scores"`
}
