// Package ports declares the outbound interfaces the application layer
// depends on. Concrete adapters live in subpackages.
package ports

import "context"

// ScoreEntry is one player's result reported to an external scoreboard.
type ScoreEntry struct {
	UserID string
	Score  int64
}

// ScoreboardPort publishes finished-game results.
type ScoreboardPort interface {
	SubmitScores(ctx context.Context, gameID string, entries []ScoreEntry) error
}
