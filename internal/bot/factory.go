package bot

import (
	"fmt"
)

// BotLevel selects a bot strategy.
type BotLevel int

const (
	BotLevelGreedy BotLevel = iota
	BotLevelHolding
)

// NewBrain creates a bot brain for the specified level.
func NewBrain(level BotLevel) (Brain, error) {
	switch level {
	case BotLevelGreedy:
		return &GreedyBot{}, nil
	case BotLevelHolding:
		return &HoldingBot{}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}
