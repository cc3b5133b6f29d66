package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGameConfig(t *testing.T) {
	// Before anything is loaded the defaults apply.
	def := GetGameConfig()
	if def.Scoring.Multiplier == 0 {
		t.Error("default scoring multiplier should be non-zero")
	}
	if GetScoringPolicy() != PolicyComplex {
		t.Errorf("default policy = %q, want complex", GetScoringPolicy())
	}

	path := filepath.Join(t.TempDir(), "game_config.json")
	body := `{
		"scoring": {
			"base": 200,
			"multiplier": 3,
			"finish_bonuses": {"first": 40, "second": 10},
			"last_place_penalty": 20,
			"too_many_cards_penalty": 15
		},
		"policy": "simple",
		"turn_duration_seconds": 45,
		"bot_auto_fill_delay_seconds": 7
	}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := LoadGameConfig(path); err != nil {
		t.Fatalf("LoadGameConfig: %v", err)
	}

	got := GetGameConfig()
	if got.Scoring.Base != 200 || got.Scoring.Multiplier != 3 {
		t.Errorf("scoring = %+v", got.Scoring)
	}
	if got.Scoring.FinishBonuses.First != 40 {
		t.Errorf("first bonus = %d, want 40", got.Scoring.FinishBonuses.First)
	}
	if GetScoringPolicy() != PolicySimple {
		t.Errorf("policy = %q, want simple", GetScoringPolicy())
	}
	if got.TurnDurationSeconds != 45 || got.BotAutoFillDelaySeconds != 7 {
		t.Errorf("timing config = %+v", got)
	}
}
