package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"bigtwo/internal/domain"
)

// ScoringPolicy selects the end-of-round score formula.
type ScoringPolicy string

const (
	PolicySimple  ScoringPolicy = "simple"
	PolicyComplex ScoringPolicy = "complex"
)

// GameConfig holds the tunable match settings loaded at module startup.
type GameConfig struct {
	Scoring             domain.ScoringRules `json:"scoring"`
	Policy              ScoringPolicy       `json:"policy"`
	TurnDurationSeconds int                 `json:"turn_duration_seconds"`
	// BotAutoFillDelaySeconds configures how long to wait before adding bots
	// to a solo human lobby.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// defaultConfig is used when no config file is present.
func defaultConfig() *GameConfig {
	return &GameConfig{
		Scoring: domain.ScoringRules{
			Base:                100,
			Multiplier:          5,
			FinishBonuses:       domain.FinishBonuses{First: 50, Second: 20},
			LastPlacePenalty:    30,
			TooManyCardsPenalty: 25,
		},
		Policy:                  PolicyComplex,
		TurnDurationSeconds:     30,
		BotAutoFillDelaySeconds: 5,
	}
}

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the loaded configuration, or defaults when loading
// never happened or failed.
func GetGameConfig() *GameConfig {
	if cfg == nil {
		return defaultConfig()
	}
	return cfg
}

// GetScoringRules returns the configured scoring rules.
func GetScoringRules() domain.ScoringRules {
	return GetGameConfig().Scoring
}

// GetScoringPolicy returns the configured scoring policy, defaulting to the
// complex formula for unknown values.
func GetScoringPolicy() ScoringPolicy {
	switch p := GetGameConfig().Policy; p {
	case PolicySimple, PolicyComplex:
		return p
	default:
		return PolicyComplex
	}
}
