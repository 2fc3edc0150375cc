package analytics

import "sort"

// WaiverCandidate is one available player considered for pickup.
type WaiverCandidate struct {
	PlayerID        string
	Team            string
	ProjectedPoints float64
}

// ScheduledGame is one league game on the target date.
type ScheduledGame struct {
	HomeTeam string
	AwayTeam string
}

// WaiverInputs carries everything the engine needs, already resolved by the
// caller: candidates, the day's schedule, defensive ratings and exclusions.
type WaiverInputs struct {
	Date       string
	Candidates []WaiverCandidate
	// Games is the league-wide schedule for Date. Empty means no games,
	// which is an error, not an empty recommendation list.
	Games []ScheduledGame
	// DefensiveRatings maps team to defensive strength rating; below league
	// average means a weaker defense. Teams without a rating score neutral.
	DefensiveRatings    map[string]float64
	LeagueAverageRating float64
	// Excluded removes players from consideration (owned, top-N protected,
	// or user-excluded).
	Excluded map[string]bool
	// Available reports whether a player is on the waiver wire. Nil means
	// every candidate is available.
	Available func(playerID string) bool
}

// WaiverRecommendation is one ranked pickup suggestion.
type WaiverRecommendation struct {
	PlayerID            string  `json:"player_id"`
	Date                string  `json:"date"`
	Opponent            string  `json:"opponent"`
	ProjectedPoints     float64 `json:"projected_points"`
	MatchupFavorability float64 `json:"matchup_favorability"`
	CompositeScore      float64 `json:"composite_score"`
}

// RecommendWaivers scores each eligible candidate by projected fantasy points
// adjusted for how easy their opponent is to score against, and ranks the
// result. Players with no game on the date are excluded, not scored as zero.
// Returns ErrNoGamesOnDate when the schedule itself is empty; all candidates
// being excluded is an empty successful result.
func RecommendWaivers(in WaiverInputs) ([]WaiverRecommendation, error) {
	if len(in.Games) == 0 {
		return nil, ErrNoGamesOnDate
	}

	opponents := make(map[string]string, len(in.Games)*2)
	for _, g := range in.Games {
		opponents[g.HomeTeam] = g.AwayTeam
		opponents[g.AwayTeam] = g.HomeTeam
	}

	recs := make([]WaiverRecommendation, 0, len(in.Candidates))
	for _, c := range in.Candidates {
		if in.Excluded[c.PlayerID] {
			continue
		}
		if in.Available != nil && !in.Available(c.PlayerID) {
			continue
		}
		opponent, plays := opponents[c.Team]
		if !plays {
			continue
		}

		favorability := matchupFavorability(opponent, in.DefensiveRatings, in.LeagueAverageRating)
		recs = append(recs, WaiverRecommendation{
			PlayerID:            c.PlayerID,
			Date:                in.Date,
			Opponent:            opponent,
			ProjectedPoints:     c.ProjectedPoints,
			MatchupFavorability: favorability,
			CompositeScore:      c.ProjectedPoints * favorability,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if a.CompositeScore != b.CompositeScore {
			return a.CompositeScore > b.CompositeScore
		}
		if a.ProjectedPoints != b.ProjectedPoints {
			return a.ProjectedPoints > b.ProjectedPoints
		}
		return a.PlayerID < b.PlayerID
	})
	return recs, nil
}

// matchupFavorability rises above 1.0 as the opponent's defensive strength
// rating falls below league average (a weaker defense is easier to score
// against), and drops below 1.0 against strong defenses. Unknown ratings are
// neutral.
func matchupFavorability(opponent string, ratings map[string]float64, leagueAvg float64) float64 {
	rating, ok := ratings[opponent]
	if !ok || rating <= 0 || leagueAvg <= 0 {
		return 1.0
	}
	return leagueAvg / rating
}
