package domain

// Phase represents the lifecycle stage of a game.
type Phase string

const (
	// PhaseLobby indicates the match is waiting for players.
	PhaseLobby Phase = "lobby"
	// PhasePlaying indicates the game is actively in progress.
	PhasePlaying Phase = "playing"
	// PhaseEnded indicates the game has finished.
	PhaseEnded Phase = "ended"
)

// Player holds the domain state for one seated player.
type Player struct {
	UserID    string
	Seat      int // index into Game.Players
	Hand      []Card
	HasPassed bool
	Finished  bool
}

// Game captures the authoritative state of a single round, from deal to the
// first player going out. Players are stored in seat order.
type Game struct {
	ID      string
	Phase   Phase
	Players []*Player

	// CurrentTurn and RoundLeader are seat indices. LastPlaySeat is the seat
	// that placed LastPlay, or -1 when a fresh round is open.
	CurrentTurn  int
	RoundLeader  int
	LastPlay     []Card
	LastPlaySeat int

	// OpeningDone flips after the game's very first play. The 3-of-diamonds
	// opening requirement only binds while it is false; later round leads
	// are unconstrained.
	OpeningDone bool

	FinishOrder []int // seat indices in the order players went out
}

// PlayerCount returns the number of seated players.
func (g *Game) PlayerCount() int {
	return len(g.Players)
}

// PlayerAtSeat returns the player at the given seat, or nil.
func (g *Game) PlayerAtSeat(seat int) *Player {
	if seat < 0 || seat >= len(g.Players) {
		return nil
	}
	return g.Players[seat]
}

// PlayerByID returns the player with the given user ID, or nil.
func (g *Game) PlayerByID(userID string) *Player {
	for _, p := range g.Players {
		if p.UserID == userID {
			return p
		}
	}
	return nil
}

// CountPlayersWithCards returns the number of active players still holding
// cards.
func CountPlayersWithCards(g *Game) int {
	count := 0
	for _, p := range g.Players {
		if !p.Finished && len(p.Hand) > 0 {
			count++
		}
	}
	return count
}

// NextActiveSeat returns the next seat after from, skipping finished players
// and players who passed this round. Returns -1 when no such seat exists.
func (g *Game) NextActiveSeat(from int) int {
	n := len(g.Players)
	for step := 1; step <= n; step++ {
		seat := (from + step) % n
		p := g.Players[seat]
		if p.Finished || p.HasPassed {
			continue
		}
		return seat
	}
	return -1
}
