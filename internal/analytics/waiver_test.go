package analytics

import (
	"errors"
	"math"
	"testing"
)

func waiverInputs() WaiverInputs {
	return WaiverInputs{
		Date: "2026-01-15",
		Candidates: []WaiverCandidate{
			{PlayerID: "p1", Team: "BOS", ProjectedPoints: 30},
			{PlayerID: "p2", Team: "LAL", ProjectedPoints: 28},
			{PlayerID: "p3", Team: "MIA", ProjectedPoints: 35},
		},
		Games: []ScheduledGame{
			{HomeTeam: "BOS", AwayTeam: "DET"},
			{HomeTeam: "LAL", AwayTeam: "OKC"},
		},
		DefensiveRatings: map[string]float64{
			"DET": 95,  // weak defense, favorable
			"OKC": 115, // strong defense
		},
		LeagueAverageRating: 110,
	}
}

func TestRecommendWaiversScoresAndRanks(t *testing.T) {
	recs, err := RecommendWaivers(waiverInputs())
	if err != nil {
		t.Fatalf("RecommendWaivers returned error: %v", err)
	}

	// p3 (MIA) has no game and must be excluded, not scored zero.
	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}

	// p1: 30 * 110/95 ~ 34.7 beats p2: 28 * 110/115 ~ 26.8.
	if recs[0].PlayerID != "p1" || recs[1].PlayerID != "p2" {
		t.Errorf("order = %s,%s, want p1,p2", recs[0].PlayerID, recs[1].PlayerID)
	}
	if recs[0].Opponent != "DET" {
		t.Errorf("opponent = %s, want DET", recs[0].Opponent)
	}
	if want := 110.0 / 95.0; math.Abs(recs[0].MatchupFavorability-want) > 1e-12 {
		t.Errorf("favorability = %v, want %v", recs[0].MatchupFavorability, want)
	}
	if want := 30 * 110.0 / 95.0; math.Abs(recs[0].CompositeScore-want) > 1e-12 {
		t.Errorf("composite = %v, want %v", recs[0].CompositeScore, want)
	}
}

func TestRecommendWaiversWeakerOpponentMoreFavorable(t *testing.T) {
	in := waiverInputs()
	recs, err := RecommendWaivers(in)
	if err != nil {
		t.Fatalf("RecommendWaivers returned error: %v", err)
	}

	var vsWeak, vsStrong float64
	for _, r := range recs {
		switch r.Opponent {
		case "DET":
			vsWeak = r.MatchupFavorability
		case "OKC":
			vsStrong = r.MatchupFavorability
		}
	}
	if vsWeak <= 1.0 || vsStrong >= 1.0 {
		t.Errorf("favorability vs weak = %v (want >1), vs strong = %v (want <1)", vsWeak, vsStrong)
	}
}

func TestRecommendWaiversNoGamesOnDate(t *testing.T) {
	in := waiverInputs()
	in.Games = nil

	_, err := RecommendWaivers(in)
	if !errors.Is(err, ErrNoGamesOnDate) {
		t.Errorf("err = %v, want ErrNoGamesOnDate", err)
	}
}

func TestRecommendWaiversAllExcludedIsEmptySuccess(t *testing.T) {
	in := waiverInputs()
	in.Excluded = map[string]bool{"p1": true, "p2": true, "p3": true}

	recs, err := RecommendWaivers(in)
	if err != nil {
		t.Fatalf("RecommendWaivers returned error: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("got %d recommendations, want 0", len(recs))
	}
}

func TestRecommendWaiversAvailabilityPredicate(t *testing.T) {
	in := waiverInputs()
	in.Available = func(playerID string) bool { return playerID != "p1" }

	recs, err := RecommendWaivers(in)
	if err != nil {
		t.Fatalf("RecommendWaivers returned error: %v", err)
	}
	for _, r := range recs {
		if r.PlayerID == "p1" {
			t.Error("unavailable player p1 should not be recommended")
		}
	}
}

func TestRecommendWaiversTieBreaks(t *testing.T) {
	in := WaiverInputs{
		Date: "2026-01-15",
		Candidates: []WaiverCandidate{
			{PlayerID: "zeta", Team: "BOS", ProjectedPoints: 20},
			{PlayerID: "alpha", Team: "DET", ProjectedPoints: 20},
		},
		Games:               []ScheduledGame{{HomeTeam: "BOS", AwayTeam: "DET"}},
		LeagueAverageRating: 110,
	}

	// No ratings: both neutral favorability, identical composite and
	// projection, so ID ascending decides.
	recs, err := RecommendWaivers(in)
	if err != nil {
		t.Fatalf("RecommendWaivers returned error: %v", err)
	}
	if recs[0].PlayerID != "alpha" || recs[1].PlayerID != "zeta" {
		t.Errorf("order = %s,%s, want alpha,zeta", recs[0].PlayerID, recs[1].PlayerID)
	}
}

func TestRecommendWaiversMissingRatingNeutral(t *testing.T) {
	in := waiverInputs()
	in.DefensiveRatings = nil

	recs, err := RecommendWaivers(in)
	if err != nil {
		t.Fatalf("RecommendWaivers returned error: %v", err)
	}
	for _, r := range recs {
		if r.MatchupFavorability != 1.0 {
			t.Errorf("favorability = %v, want neutral 1.0", r.MatchupFavorability)
		}
	}
}
