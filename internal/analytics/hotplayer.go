package analytics

// HotOptions tunes hot-player detection.
type HotOptions struct {
	// Margin above 1.0 that the trend ratio must exceed to flag hot.
	Margin float64
	// MinRecentGames is the minimum recent-window size; keeps a single big
	// game from qualifying as a trend.
	MinRecentGames int
}

// DefaultHotOptions returns the standard detection thresholds: recent average
// at least 15% above baseline, over at least 3 games.
func DefaultHotOptions() HotOptions {
	return HotOptions{Margin: 0.15, MinRecentGames: 3}
}

// HotPlayerResult reports a player's recent form against their baseline. The
// averages and ratio are always populated so callers can apply their own
// secondary sort.
type HotPlayerResult struct {
	RecentAverage   float64 `json:"recent_average"`
	BaselineAverage float64 `json:"baseline_average"`
	Delta           float64 `json:"delta"`
	TrendRatio      float64 `json:"trend_ratio"`
	IsHot           bool    `json:"is_hot"`
}

// DetectHot compares a short recent fantasy-point window against a longer
// baseline. An empty window on either side returns ErrInsufficientSample. A
// baseline averaging zero returns ErrNotEvaluable rather than an artificially
// infinite ratio.
func DetectHot(recent, baseline []float64, opts HotOptions) (HotPlayerResult, error) {
	if len(recent) == 0 || len(baseline) == 0 {
		return HotPlayerResult{}, ErrInsufficientSample
	}

	recentAvg := mean(recent)
	baselineAvg := mean(baseline)
	if baselineAvg <= 0 {
		return HotPlayerResult{}, ErrNotEvaluable
	}

	ratio := recentAvg / baselineAvg
	return HotPlayerResult{
		RecentAverage:   recentAvg,
		BaselineAverage: baselineAvg,
		Delta:           recentAvg - baselineAvg,
		TrendRatio:      ratio,
		IsHot:           ratio > 1.0+opts.Margin && len(recent) >= opts.MinRecentGames,
	}, nil
}
