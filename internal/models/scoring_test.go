package models

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/hoopdeck/fantasy-tracker/backend/internal/analytics"
)

func TestScoringConfigurationWeights(t *testing.T) {
	config := ScoringConfiguration{
		Points:     1,
		Rebounds:   1.25,
		Assists:    1.5,
		Steals:     2,
		Blocks:     2,
		ThreesMade: 0.5,
		Turnovers:  -1,
	}

	weights := config.Weights()
	if weights[analytics.CategoryRebounds] != 1.25 {
		t.Errorf("rebounds weight = %v, want 1.25", weights[analytics.CategoryRebounds])
	}
	if weights[analytics.CategoryTurnovers] != -1 {
		t.Errorf("turnovers weight = %v, want -1", weights[analytics.CategoryTurnovers])
	}
	if len(weights) != len(analytics.Categories) {
		t.Errorf("weights has %d categories, want %d", len(weights), len(analytics.Categories))
	}
}

func TestScoringConfigurationValidate(t *testing.T) {
	config := ScoringConfiguration{Points: 1}
	if err := config.Validate(); err != nil {
		t.Errorf("zero multipliers are valid, got %v", err)
	}

	config.Blocks = math.NaN()
	if err := config.Validate(); !errors.Is(err, analytics.ErrInvalidConfiguration) {
		t.Errorf("err = %v, want ErrInvalidConfiguration", err)
	}
}

func TestPlayerGameStatLineConversion(t *testing.T) {
	line := PlayerGameStatLine{
		PlayerID:   "p1",
		GameID:     "g1",
		GameDate:   time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC),
		Opponent:   "DET",
		Points:     20,
		Rebounds:   10,
		Assists:    5,
		Steals:     2,
		Blocks:     1,
		ThreesMade: 2,
		Turnovers:  3,
	}

	stats := line.StatLine()
	if stats[analytics.CategoryPoints] != 20 || stats[analytics.CategoryTurnovers] != 3 {
		t.Errorf("stat line conversion wrong: %+v", stats)
	}

	game := line.GameLine()
	if game.GameID != "g1" || game.Opponent != "DET" {
		t.Errorf("game line conversion wrong: %+v", game)
	}

	standard := ScoringConfiguration{
		Points: 1, Rebounds: 1.25, Assists: 1.5, Steals: 2, Blocks: 2, ThreesMade: 0.5, Turnovers: -1,
	}
	pts, err := analytics.FantasyPoints(stats, standard.Weights())
	if err != nil {
		t.Fatalf("FantasyPoints returned error: %v", err)
	}
	if pts != 44.0 {
		t.Errorf("fantasy points = %v, want 44.0", pts)
	}
}
