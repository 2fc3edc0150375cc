// Package analytics is the pure computation layer: fantasy scoring, rankings,
// consistency grading, hot-player detection, trade valuation and waiver
// recommendations. Every function is deterministic over its inputs; nothing
// in this package reads the clock, performs I/O or touches the database.
package analytics

import (
	"fmt"
	"math"
)

// StatCategory identifies one box-score scoring category.
type StatCategory string

const (
	CategoryPoints     StatCategory = "points"
	CategoryRebounds   StatCategory = "rebounds"
	CategoryAssists    StatCategory = "assists"
	CategorySteals     StatCategory = "steals"
	CategoryBlocks     StatCategory = "blocks"
	CategoryThreesMade StatCategory = "threes_made"
	CategoryTurnovers  StatCategory = "turnovers"
)

// Categories is the canonical category ordering. Fantasy points are always
// summed in this order so repeated calls produce bit-identical floats.
var Categories = []StatCategory{
	CategoryPoints,
	CategoryRebounds,
	CategoryAssists,
	CategorySteals,
	CategoryBlocks,
	CategoryThreesMade,
	CategoryTurnovers,
}

// StatLine holds one player's raw counts for one game. Missing categories
// count as zero.
type StatLine map[StatCategory]float64

// ScoringWeights maps each category to its point multiplier. A valid weight
// set has a finite multiplier for every canonical category.
type ScoringWeights map[StatCategory]float64

// ValidateWeights checks that every canonical category has a finite
// multiplier.
func ValidateWeights(weights ScoringWeights) error {
	for _, cat := range Categories {
		mult, ok := weights[cat]
		if !ok {
			return fmt.Errorf("%w: missing multiplier for %s", ErrInvalidConfiguration, cat)
		}
		if math.IsNaN(mult) || math.IsInf(mult, 0) {
			return fmt.Errorf("%w: non-finite multiplier for %s", ErrInvalidConfiguration, cat)
		}
	}
	return nil
}

// FantasyPoints computes the weighted sum of a stat line under a weight set.
// Summation follows the canonical category order, never map iteration order.
func FantasyPoints(line StatLine, weights ScoringWeights) (float64, error) {
	if err := ValidateWeights(weights); err != nil {
		return 0, err
	}

	var total float64
	for _, cat := range Categories {
		count := line[cat]
		if count < 0 {
			return 0, fmt.Errorf("%w: negative count %g for %s", ErrInvalidConfiguration, count, cat)
		}
		total += count * weights[cat]
	}
	return total, nil
}
