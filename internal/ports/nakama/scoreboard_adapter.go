package nakama

import (
	"context"
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"

	"bigtwo/internal/ports"
)

// NakamaScoreboardAdapter publishes finished-game scores to a Nakama
// leaderboard.
type NakamaScoreboardAdapter struct {
	nk runtime.NakamaModule
}

var _ ports.ScoreboardPort = (*NakamaScoreboardAdapter)(nil)

func NewNakamaScoreboardAdapter(nk runtime.NakamaModule) *NakamaScoreboardAdapter {
	return &NakamaScoreboardAdapter{nk: nk}
}

// SubmitScores writes one leaderboard record per entry. Negative totals are
// clamped to zero because leaderboard scores are unsigned.
func (a *NakamaScoreboardAdapter) SubmitScores(ctx context.Context, gameID string, entries []ports.ScoreEntry) error {
	for _, entry := range entries {
		score := entry.Score
		if score < 0 {
			score = 0
		}
		metadata := map[string]interface{}{"game_id": gameID}
		if _, err := a.nk.LeaderboardRecordWrite(ctx, LeaderboardID, entry.UserID, "", score, 0, metadata, nil); err != nil {
			return fmt.Errorf("failed to write leaderboard record for %s: %w", entry.UserID, err)
		}
	}
	return nil
}
