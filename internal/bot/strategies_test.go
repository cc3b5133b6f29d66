package bot

import (
	"testing"

	"bigtwo/internal/domain"
)

func mk(rank int32, suit domain.Suit) domain.Card {
	return domain.Card{Suit: suit, Rank: rank}
}

func newTestGame(hands ...[]domain.Card) *domain.Game {
	game := &domain.Game{Phase: domain.PhasePlaying, LastPlaySeat: -1}
	for i, hand := range hands {
		game.Players = append(game.Players, &domain.Player{
			UserID: BotUserID(i),
			Seat:   i,
			Hand:   hand,
		})
	}
	return game
}

func TestGreedyBotPlaysWeakestBeat(t *testing.T) {
	game := newTestGame(
		[]domain.Card{mk(5, domain.Diamonds), mk(10, domain.Clubs), mk(domain.RankAce, domain.Hearts)},
		[]domain.Card{mk(3, domain.Clubs)},
	)
	game.LastPlay = []domain.Card{mk(9, domain.Spades)}
	game.LastPlaySeat = 1

	move, err := (&GreedyBot{}).CalculateMove(game, game.Players[0])
	if err != nil {
		t.Fatal(err)
	}
	if move.Pass {
		t.Fatal("expected a play, got pass")
	}
	if len(move.Cards) != 1 || move.Cards[0] != mk(10, domain.Clubs) {
		t.Errorf("move = %v, want 10♣", move.Cards)
	}
}

func TestGreedyBotPassesWhenBeaten(t *testing.T) {
	game := newTestGame(
		[]domain.Card{mk(5, domain.Diamonds), mk(10, domain.Clubs)},
		[]domain.Card{mk(3, domain.Clubs)},
	)
	game.LastPlay = []domain.Card{mk(domain.RankTwo, domain.Spades)}
	game.LastPlaySeat = 1

	move, err := (&GreedyBot{}).CalculateMove(game, game.Players[0])
	if err != nil {
		t.Fatal(err)
	}
	if !move.Pass {
		t.Errorf("expected pass, got %v", move.Cards)
	}
}

func TestHoldingBotKeepsTwosEarly(t *testing.T) {
	hand := []domain.Card{
		mk(4, domain.Diamonds), mk(5, domain.Clubs), mk(6, domain.Hearts),
		mk(7, domain.Spades), mk(8, domain.Diamonds), mk(9, domain.Clubs),
		mk(10, domain.Hearts), mk(domain.RankJack, domain.Spades),
		mk(domain.RankTwo, domain.Diamonds),
	}
	game := newTestGame(hand, []domain.Card{mk(3, domain.Clubs)})
	game.LastPlay = []domain.Card{mk(3, domain.Hearts)}
	game.LastPlaySeat = 1

	move, err := (&HoldingBot{}).CalculateMove(game, game.Players[0])
	if err != nil {
		t.Fatal(err)
	}
	if move.Pass {
		t.Fatal("expected a play, got pass")
	}
	for _, c := range move.Cards {
		if c.Rank == domain.RankTwo {
			t.Errorf("holding bot spent a 2 with %d cards in hand", len(hand))
		}
	}
}

func TestHoldingBotSpendsTwosLate(t *testing.T) {
	hand := []domain.Card{mk(domain.RankTwo, domain.Diamonds), mk(domain.RankTwo, domain.Hearts)}
	game := newTestGame(hand, []domain.Card{mk(3, domain.Clubs)})
	game.LastPlay = []domain.Card{mk(domain.RankAce, domain.Spades)}
	game.LastPlaySeat = 1

	move, err := (&HoldingBot{}).CalculateMove(game, game.Players[0])
	if err != nil {
		t.Fatal(err)
	}
	if move.Pass {
		t.Fatal("expected the bot to spend a 2 near the end")
	}
}

func TestGreedyBotAvoidsStrandingLoneSpade(t *testing.T) {
	game := newTestGame(
		[]domain.Card{mk(5, domain.Clubs), mk(domain.RankAce, domain.Spades)},
		[]domain.Card{mk(3, domain.Clubs)},
	)
	game.LastPlay = []domain.Card{mk(4, domain.Diamonds)}
	game.LastPlaySeat = 1

	// Playing the 5♣ would leave only the A♠, which the validator rejects.
	// The bot must step up to the ace instead.
	move, err := (&GreedyBot{}).CalculateMove(game, game.Players[0])
	if err != nil {
		t.Fatal(err)
	}
	if move.Pass {
		t.Fatal("expected a play, got pass")
	}
	if len(move.Cards) != 1 || move.Cards[0] != mk(domain.RankAce, domain.Spades) {
		t.Errorf("move = %v, want A♠", move.Cards)
	}
}

func TestAgentPlay(t *testing.T) {
	game := newTestGame(
		[]domain.Card{mk(5, domain.Diamonds)},
		[]domain.Card{mk(3, domain.Clubs)},
	)

	agent, err := NewAgent(BotUserID(0), BotLevelGreedy)
	if err != nil {
		t.Fatal(err)
	}
	move, err := agent.Play(game)
	if err != nil {
		t.Fatal(err)
	}
	if move.Pass {
		t.Error("expected an opening play")
	}

	// Unknown agent passes quietly.
	stranger, err := NewAgent("bot:z", BotLevelGreedy)
	if err != nil {
		t.Fatal(err)
	}
	move, err = stranger.Play(game)
	if err != nil {
		t.Fatal(err)
	}
	if !move.Pass {
		t.Error("agent outside the game should pass")
	}
}

func TestNewBrain(t *testing.T) {
	if _, err := NewBrain(BotLevelGreedy); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := NewBrain(BotLevel(99)); err == nil {
		t.Error("expected error for unknown level")
	}
}
