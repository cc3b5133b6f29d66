package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a
	// lobby-capable match.
	RpcQuickMatch = "quick_match"

	// MatchNameBigTwo is the authoritative match handler name registered
	// with Nakama.
	MatchNameBigTwo = "bigtwo_match"

	// LeaderboardID is the leaderboard that collects finished-game scores.
	LeaderboardID = "bigtwo_scores"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame    int64 = 1
	OpPlayCards    int64 = 2
	OpPassTurn     int64 = 3
	OpRequestHints int64 = 4

	// Server -> Client events
	OpPlayerJoined int64 = 101
	OpPlayerLeft   int64 = 102
	OpGameStarted  int64 = 103
	OpHandDealt    int64 = 104 // send privately
	OpCardPlayed   int64 = 105
	OpTurnPassed   int64 = 106
	OpRoundReset   int64 = 107
	OpGameEnded    int64 = 108
	OpGameError    int64 = 109
	OpHints        int64 = 110 // send privately
)
