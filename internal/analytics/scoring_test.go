package analytics

import (
	"errors"
	"math"
	"testing"
)

func standardWeights() ScoringWeights {
	return ScoringWeights{
		CategoryPoints:     1,
		CategoryRebounds:   1.25,
		CategoryAssists:    1.5,
		CategorySteals:     2,
		CategoryBlocks:     2,
		CategoryThreesMade: 0.5,
		CategoryTurnovers:  -1,
	}
}

func TestFantasyPointsStandardLine(t *testing.T) {
	line := StatLine{
		CategoryPoints:     20,
		CategoryRebounds:   10,
		CategoryAssists:    5,
		CategorySteals:     2,
		CategoryBlocks:     1,
		CategoryThreesMade: 2,
		CategoryTurnovers:  3,
	}

	got, err := FantasyPoints(line, standardWeights())
	if err != nil {
		t.Fatalf("FantasyPoints returned error: %v", err)
	}
	// 20 + 12.5 + 7.5 + 4 + 2 + 1 - 3
	if got != 44.0 {
		t.Errorf("FantasyPoints = %v, want 44.0", got)
	}
}

func TestFantasyPointsDeterministic(t *testing.T) {
	line := StatLine{
		CategoryPoints:     31,
		CategoryRebounds:   7,
		CategoryAssists:    11,
		CategorySteals:     1,
		CategoryBlocks:     0,
		CategoryThreesMade: 4,
		CategoryTurnovers:  5,
	}
	weights := ScoringWeights{
		CategoryPoints:     0.7,
		CategoryRebounds:   1.1,
		CategoryAssists:    1.3,
		CategorySteals:     2.9,
		CategoryBlocks:     3.1,
		CategoryThreesMade: 0.3,
		CategoryTurnovers:  -1.7,
	}

	first, err := FantasyPoints(line, weights)
	if err != nil {
		t.Fatalf("FantasyPoints returned error: %v", err)
	}
	for i := 0; i < 100; i++ {
		again, err := FantasyPoints(line, weights)
		if err != nil {
			t.Fatalf("FantasyPoints returned error on call %d: %v", i, err)
		}
		if math.Float64bits(again) != math.Float64bits(first) {
			t.Fatalf("call %d produced %v, want bit-identical %v", i, again, first)
		}
	}
}

func TestFantasyPointsMissingCategoriesCountZero(t *testing.T) {
	got, err := FantasyPoints(StatLine{CategoryPoints: 10}, standardWeights())
	if err != nil {
		t.Fatalf("FantasyPoints returned error: %v", err)
	}
	if got != 10 {
		t.Errorf("FantasyPoints = %v, want 10", got)
	}
}

func TestFantasyPointsInvalidInputs(t *testing.T) {
	tests := []struct {
		name    string
		line    StatLine
		weights ScoringWeights
	}{
		{
			name: "MissingMultiplier",
			line: StatLine{CategoryPoints: 10},
			weights: ScoringWeights{
				CategoryPoints: 1,
			},
		},
		{
			name: "NaNMultiplier",
			line: StatLine{CategoryPoints: 10},
			weights: func() ScoringWeights {
				w := standardWeights()
				w[CategoryBlocks] = math.NaN()
				return w
			}(),
		},
		{
			name: "InfMultiplier",
			line: StatLine{CategoryPoints: 10},
			weights: func() ScoringWeights {
				w := standardWeights()
				w[CategoryAssists] = math.Inf(1)
				return w
			}(),
		},
		{
			name:    "NegativeCount",
			line:    StatLine{CategoryPoints: -2},
			weights: standardWeights(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FantasyPoints(tc.line, tc.weights)
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("err = %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestFantasyPointsScalesLinearly(t *testing.T) {
	line := StatLine{
		CategoryPoints:     18,
		CategoryRebounds:   6,
		CategoryAssists:    9,
		CategorySteals:     3,
		CategoryThreesMade: 1,
		CategoryTurnovers:  2,
	}
	weights := standardWeights()

	base, err := FantasyPoints(line, weights)
	if err != nil {
		t.Fatalf("FantasyPoints returned error: %v", err)
	}

	const k = 2.5
	scaled := ScoringWeights{}
	for cat, m := range weights {
		scaled[cat] = m * k
	}
	got, err := FantasyPoints(line, scaled)
	if err != nil {
		t.Fatalf("FantasyPoints returned error: %v", err)
	}
	if math.Abs(got-base*k) > 1e-9 {
		t.Errorf("scaled value = %v, want %v", got, base*k)
	}
}
