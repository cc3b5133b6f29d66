package app

import (
	"errors"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"bigtwo/internal/advisor"
	"bigtwo/internal/domain"
)

// MinPlayersToStartGame is the smallest lobby that can start a round.
const MinPlayersToStartGame = 2

// MaxPlayers is the seat capacity.
const MaxPlayers = 4

var (
	ErrNotPlaying     = errors.New("game not in playing phase")
	ErrTooFewPlayers  = errors.New("not enough players to start")
	ErrTooManyPlayers = errors.New("too many players")
	ErrUnknownPlayer  = errors.New("player not found")
	ErrNotYourTurn    = errors.New("not this player's turn")
	ErrPlayerFinished = errors.New("player already finished")
	ErrCardsNotHeld   = errors.New("cards not in player's hand")
	ErrIllegalPlay    = errors.New("play is not legal")
	ErrMustPlay       = errors.New("round leader cannot pass an open table")
)

// Service contains the game use-cases operating on domain state. All rule
// decisions are delegated to the domain and advisor packages.
type Service struct {
	rng   *rand.Rand
	rules domain.ScoringRules
}

// NewService constructs a Service with the provided rng (or a time-seeded
// default) and scoring rules.
func NewService(rng *rand.Rand, rules domain.ScoringRules) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng, rules: rules}
}

// StartGame deals a fresh round to the given users (in seat order, empty
// strings skipped). The first turn goes to the holder of the 3 of diamonds.
func (s *Service) StartGame(userIDs []string) (*domain.Game, []Event, error) {
	seated := make([]string, 0, MaxPlayers)
	for _, userID := range userIDs {
		if userID == "" {
			continue
		}
		seated = append(seated, userID)
	}
	if len(seated) < MinPlayersToStartGame {
		return nil, nil, ErrTooFewPlayers
	}
	if len(seated) > MaxPlayers {
		return nil, nil, ErrTooManyPlayers
	}

	// Short deals (2-3 players) can leave the 3 of diamonds undealt, which
	// would make a legal opening play impossible. Redeal until someone holds it.
	var hands [][]domain.Card
	for {
		hands = domain.DealCards(domain.NewShuffledDeck(s.rng), len(seated))
		if holderOfLowestCard(hands) >= 0 {
			break
		}
	}

	game := &domain.Game{
		ID:           uuid.NewString(),
		Phase:        domain.PhasePlaying,
		LastPlaySeat: -1,
	}

	events := make([]Event, 0, len(seated)+1)
	firstTurn := 0
	for seat, userID := range seated {
		player := &domain.Player{
			UserID: userID,
			Seat:   seat,
			Hand:   hands[seat],
		}
		game.Players = append(game.Players, player)

		if domain.ContainsAll(player.Hand, []domain.Card{domain.LowestCard}) {
			firstTurn = seat
		}

		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{Seat: seat, UserID: userID, Hand: player.Hand},
			Recipients: []string{userID},
		})
	}

	game.CurrentTurn = firstTurn
	game.RoundLeader = firstTurn

	events = append(events, Event{
		Kind: EventGameStarted,
		Payload: GameStartedPayload{
			GameID:        game.ID,
			FirstTurnSeat: firstTurn,
			PlayerCount:   len(seated),
		},
	})
	return game, events, nil
}

// PlayCards processes a play action for the player at the given seat and
// emits the resulting events.
func (s *Service) PlayCards(game *domain.Game, seat int, cards []domain.Card) ([]Event, error) {
	player, err := s.actingPlayer(game, seat)
	if err != nil {
		return nil, err
	}

	if !domain.ContainsAll(player.Hand, cards) {
		return nil, ErrCardsNotHeld
	}
	remaining := domain.RemoveCards(player.Hand, cards)
	// The short-deal opening constraint (play must contain the 3 of
	// diamonds) only applies to the first play of the game; once the card
	// is on the table, later round leads are free.
	playerCount := game.PlayerCount()
	if game.OpeningDone {
		playerCount = MaxPlayers
	}
	if !domain.IsValidPlay(cards, game.LastPlay, playerCount, remaining) {
		return nil, ErrIllegalPlay
	}

	player.Hand = remaining
	game.OpeningDone = true
	game.LastPlay = domain.SortCards(cards, domain.SortByRank)
	game.LastPlaySeat = seat

	played := CardPlayedPayload{
		Seat:     seat,
		Cards:    game.LastPlay,
		PlayType: domain.PlayTypeName(game.LastPlay),
	}

	if len(remaining) == 0 {
		player.Finished = true
		game.FinishOrder = append(game.FinishOrder, seat)

		played.NextTurnSeat = -1
		events := []Event{{Kind: EventCardPlayed, Payload: played}}
		return append(events, s.endGame(game)...), nil
	}

	events := []Event{}
	next := game.NextActiveSeat(seat)
	if next == seat || next == -1 {
		// Everyone else already passed; the table resets with this player
		// leading the new round.
		s.resetRound(game, seat)
		played.NewRound = true
		played.NextTurnSeat = seat
		events = append(events,
			Event{Kind: EventCardPlayed, Payload: played},
			Event{Kind: EventRoundReset, Payload: RoundResetPayload{LeaderSeat: seat}},
		)
		return events, nil
	}

	game.CurrentTurn = next
	played.NextTurnSeat = next
	return append(events, Event{Kind: EventCardPlayed, Payload: played}), nil
}

// PassTurn marks a pass for the player at the given seat. When every other
// active player has passed, the round resets and the last player to have
// played leads again.
func (s *Service) PassTurn(game *domain.Game, seat int) ([]Event, error) {
	player, err := s.actingPlayer(game, seat)
	if err != nil {
		return nil, err
	}
	if len(game.LastPlay) == 0 {
		return nil, ErrMustPlay
	}

	player.HasPassed = true
	passed := TurnPassedPayload{Seat: seat}

	next := game.NextActiveSeat(seat)
	if next == game.LastPlaySeat || next == -1 {
		leader := game.LastPlaySeat
		if leader < 0 {
			leader = game.RoundLeader
		}
		s.resetRound(game, leader)
		passed.NewRound = true
		passed.NextTurnSeat = leader
		return []Event{
			{Kind: EventTurnPassed, Payload: passed},
			{Kind: EventRoundReset, Payload: RoundResetPayload{LeaderSeat: leader}},
		}, nil
	}

	game.CurrentTurn = next
	passed.NextTurnSeat = next
	return []Event{{Kind: EventTurnPassed, Payload: passed}}, nil
}

// Hints returns ranked hint candidates, the auto-play suggestion and the
// pass decision for the player at the given seat.
func (s *Service) Hints(game *domain.Game, seat int) ([]advisor.Hint, []domain.Card, bool, error) {
	if game == nil || game.Phase != domain.PhasePlaying {
		return nil, nil, false, ErrNotPlaying
	}
	player := game.PlayerAtSeat(seat)
	if player == nil {
		return nil, nil, false, ErrUnknownPlayer
	}

	hints := advisor.CardHints(player.Hand, game.LastPlay, game.PlayerCount())
	suggestion := advisor.AutoPlaySuggestion(player.Hand, game.LastPlay, game.PlayerCount())
	pass := advisor.ShouldAutoPass(player.Hand, game.LastPlay, game.PlayerCount())
	return hints, suggestion, pass, nil
}

func holderOfLowestCard(hands [][]domain.Card) int {
	for seat, hand := range hands {
		if domain.ContainsAll(hand, []domain.Card{domain.LowestCard}) {
			return seat
		}
	}
	return -1
}

func (s *Service) actingPlayer(game *domain.Game, seat int) (*domain.Player, error) {
	if game == nil || game.Phase != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	player := game.PlayerAtSeat(seat)
	if player == nil {
		return nil, ErrUnknownPlayer
	}
	if game.CurrentTurn != seat {
		return nil, ErrNotYourTurn
	}
	if player.Finished {
		return nil, ErrPlayerFinished
	}
	return player, nil
}

func (s *Service) resetRound(game *domain.Game, leader int) {
	for _, p := range game.Players {
		p.HasPassed = false
	}
	game.LastPlay = nil
	game.LastPlaySeat = -1
	game.RoundLeader = leader
	game.CurrentTurn = leader
}

// endGame closes the round once the first player goes out, ranks the rest by
// ascending hand size and emits the score table.
func (s *Service) endGame(game *domain.Game) []Event {
	game.Phase = domain.PhaseEnded

	type standing struct {
		player *domain.Player
		seat   int
	}
	var rest []standing
	for seat, p := range game.Players {
		if !p.Finished {
			rest = append(rest, standing{player: p, seat: seat})
		}
	}
	sort.SliceStable(rest, func(i, j int) bool {
		return len(rest[i].player.Hand) < len(rest[j].player.Hand)
	})

	total := game.PlayerCount()
	scores := make([]ScoreLine, 0, total)

	winnerSeat := game.FinishOrder[0]
	winner := game.PlayerAtSeat(winnerSeat)
	scores = append(scores, ScoreLine{
		Seat:         winnerSeat,
		UserID:       winner.UserID,
		Position:     1,
		CardsLeft:    0,
		Score:        domain.CalculateScore(0, 1, total, s.rules),
		ComplexScore: domain.CalculateComplexScore(0, 1, total, s.rules),
	})

	for i, st := range rest {
		position := i + 2
		left := len(st.player.Hand)
		scores = append(scores, ScoreLine{
			Seat:         st.seat,
			UserID:       st.player.UserID,
			Position:     position,
			CardsLeft:    left,
			Score:        domain.CalculateScore(left, position, total, s.rules),
			ComplexScore: domain.CalculateComplexScore(left, position, total, s.rules),
		})
	}

	return []Event{{
		Kind: EventGameEnded,
		Payload: GameEndedPayload{
			GameID:           game.ID,
			FinishOrderSeats: append([]int(nil), game.FinishOrder...),
			Scores:           scores,
		},
	}}
}
