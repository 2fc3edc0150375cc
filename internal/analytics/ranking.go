package analytics

import (
	"sort"
	"time"
)

// Metric selects how a player's ranking value is derived from their game log.
type Metric string

const (
	// MetricTotal ranks by total fantasy points over the counted games.
	MetricTotal Metric = "total"
	// MetricAverage ranks by per-game average over the window.
	MetricAverage Metric = "average"
	// MetricProjection ranks by a recency-weighted per-game average: the most
	// recent game in the window carries the highest linear weight.
	MetricProjection Metric = "projection"
)

// GameLine is one game's stat line with enough context to order a player's
// log chronologically.
type GameLine struct {
	GameID   string
	Date     time.Time
	Opponent string
	Stats    StatLine
}

// PlayerStats is a player's full game log for ranking purposes.
type PlayerStats struct {
	PlayerID string
	Position string
	Lines    []GameLine
}

// RankOptions controls metric, window and filtering for Rank.
type RankOptions struct {
	Metric Metric
	// Window limits the series to the last N games. Zero means all games.
	Window int
	// Position, when set, restricts the ranking to players at that position.
	Position string
	// Limit truncates the output. Zero means unlimited. Truncation never
	// changes relative order.
	Limit int
}

// RankingEntry is one row of a ranking: a player and their metric value.
type RankingEntry struct {
	PlayerID     string  `json:"player_id"`
	Value        float64 `json:"value"`
	GamesCounted int     `json:"games_counted"`
}

// Ranking is an ordered ranking plus the players that could not be ranked
// because they had no eligible games. Excluded players are never assigned a
// sentinel value.
type Ranking struct {
	Entries          []RankingEntry `json:"entries"`
	InsufficientData []string       `json:"insufficient_data,omitempty"`
}

// FantasySeries converts a player's game log into a chronologically ordered
// fantasy-point series under the given weights, truncated to the last
// `window` games when window > 0.
func FantasySeries(p PlayerStats, weights ScoringWeights, window int) ([]float64, error) {
	lines := make([]GameLine, len(p.Lines))
	copy(lines, p.Lines)
	sort.SliceStable(lines, func(i, j int) bool {
		if !lines[i].Date.Equal(lines[j].Date) {
			return lines[i].Date.Before(lines[j].Date)
		}
		return lines[i].GameID < lines[j].GameID
	})

	if window > 0 && len(lines) > window {
		lines = lines[len(lines)-window:]
	}

	series := make([]float64, 0, len(lines))
	for _, line := range lines {
		pts, err := FantasyPoints(line.Stats, weights)
		if err != nil {
			return nil, err
		}
		series = append(series, pts)
	}
	return series, nil
}

// metricValue reduces a non-empty series to a single ranking value.
func metricValue(series []float64, metric Metric) float64 {
	switch metric {
	case MetricAverage:
		return mean(series)
	case MetricProjection:
		// Linear recency weights: oldest game weight 1, newest weight n.
		var weighted, weightSum float64
		for i, v := range series {
			w := float64(i + 1)
			weighted += v * w
			weightSum += w
		}
		return weighted / weightSum
	default: // MetricTotal
		var total float64
		for _, v := range series {
			total += v
		}
		return total
	}
}

// Rank orders a player set by the chosen metric, descending. Ties break on
// games counted (descending, more data preferred) then player ID (ascending)
// for full determinism. Players with zero eligible games are reported under
// InsufficientData, sorted by ID.
func Rank(players []PlayerStats, weights ScoringWeights, opts RankOptions) (Ranking, error) {
	if err := ValidateWeights(weights); err != nil {
		return Ranking{}, err
	}

	var ranking Ranking
	for _, p := range players {
		if opts.Position != "" && p.Position != opts.Position {
			continue
		}

		series, err := FantasySeries(p, weights, opts.Window)
		if err != nil {
			return Ranking{}, err
		}
		if len(series) == 0 {
			ranking.InsufficientData = append(ranking.InsufficientData, p.PlayerID)
			continue
		}

		ranking.Entries = append(ranking.Entries, RankingEntry{
			PlayerID:     p.PlayerID,
			Value:        metricValue(series, opts.Metric),
			GamesCounted: len(series),
		})
	}

	sort.SliceStable(ranking.Entries, func(i, j int) bool {
		a, b := ranking.Entries[i], ranking.Entries[j]
		if a.Value != b.Value {
			return a.Value > b.Value
		}
		if a.GamesCounted != b.GamesCounted {
			return a.GamesCounted > b.GamesCounted
		}
		return a.PlayerID < b.PlayerID
	})
	sort.Strings(ranking.InsufficientData)

	if opts.Limit > 0 && len(ranking.Entries) > opts.Limit {
		ranking.Entries = ranking.Entries[:opts.Limit]
	}
	return ranking, nil
}

func mean(series []float64) float64 {
	var total float64
	for _, v := range series {
		total += v
	}
	return total / float64(len(series))
}
