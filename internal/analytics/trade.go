package analytics

import (
	"fmt"
	"math"
)

// Recommendation labels which side of a trade gains value.
type Recommendation string

const (
	RecommendFavorsA Recommendation = "favorsA"
	RecommendFavorsB Recommendation = "favorsB"
	RecommendFair    Recommendation = "fair"
)

// defaultTradeTolerance is the symmetric fair band: trades within 5% of the
// larger side's value are labeled fair. Relative rather than absolute, so a
// 0.1-point edge on a high-value trade is not mislabeled one-sided and a
// low-value trade is not judged too leniently.
const defaultTradeTolerance = 0.05

// TradeProposal is two disjoint, non-empty sets of player IDs to value under
// one scoring configuration.
type TradeProposal struct {
	SideA []string `json:"side_a"`
	SideB []string `json:"side_b"`
}

// PlayerValue is a player's current ranking value plus an optional
// consistency grade used for weighting.
type PlayerValue struct {
	Value    float64
	Grade    Grade
	HasGrade bool
}

// TradeOptions tunes trade valuation.
type TradeOptions struct {
	// WeightByConsistency scales each player's value by their grade weight,
	// rewarding steady producers over volatile ones.
	WeightByConsistency bool
	// Tolerance overrides the fair band. Zero means the default.
	Tolerance float64
}

// TradeAnalysis is the valuation of a proposal. NetValue is sideB minus
// sideA: the value side A gains by accepting.
type TradeAnalysis struct {
	SideAValue     float64        `json:"side_a_value"`
	SideBValue     float64        `json:"side_b_value"`
	NetValue       float64        `json:"net_value"`
	Recommendation Recommendation `json:"recommendation"`
}

// gradeWeights scales a player's value by consistency. Steady players carry a
// modest premium, volatile ones a discount.
var gradeWeights = map[Grade]float64{
	GradeAPlus:  1.10,
	GradeA:      1.08,
	GradeAMinus: 1.06,
	GradeBPlus:  1.04,
	GradeB:      1.02,
	GradeBMinus: 1.00,
	GradeCPlus:  0.98,
	GradeC:      0.96,
	GradeCMinus: 0.93,
	GradeD:      0.88,
	GradeF:      0.82,
}

// AnalyzeTrade values both sides of a proposal and labels the outcome. It
// fails with ErrInvalidTradeProposal when either side is empty, the sides
// overlap, or a referenced player has no entry in values. The computation is
// side-effect-free; persisting the result is the caller's concern. Swapping
// sides negates NetValue and flips the favors labels.
func AnalyzeTrade(proposal TradeProposal, values map[string]PlayerValue, opts TradeOptions) (TradeAnalysis, error) {
	if len(proposal.SideA) == 0 || len(proposal.SideB) == 0 {
		return TradeAnalysis{}, fmt.Errorf("%w: both sides must include at least one player", ErrInvalidTradeProposal)
	}

	seen := make(map[string]bool, len(proposal.SideA))
	for _, id := range proposal.SideA {
		seen[id] = true
	}
	for _, id := range proposal.SideB {
		if seen[id] {
			return TradeAnalysis{}, fmt.Errorf("%w: player %s appears on both sides", ErrInvalidTradeProposal, id)
		}
	}

	sideA, err := sideValue(proposal.SideA, values, opts)
	if err != nil {
		return TradeAnalysis{}, err
	}
	sideB, err := sideValue(proposal.SideB, values, opts)
	if err != nil {
		return TradeAnalysis{}, err
	}

	tolerance := opts.Tolerance
	if tolerance <= 0 {
		tolerance = defaultTradeTolerance
	}

	net := sideB - sideA
	analysis := TradeAnalysis{
		SideAValue: sideA,
		SideBValue: sideB,
		NetValue:   net,
	}

	switch {
	case math.Abs(net) <= tolerance*math.Max(sideA, sideB):
		analysis.Recommendation = RecommendFair
	case net < 0:
		analysis.Recommendation = RecommendFavorsA
	default:
		analysis.Recommendation = RecommendFavorsB
	}
	return analysis, nil
}

// sideValue sums player values in slice order, deterministically.
func sideValue(ids []string, values map[string]PlayerValue, opts TradeOptions) (float64, error) {
	var total float64
	for _, id := range ids {
		pv, ok := values[id]
		if !ok {
			return 0, fmt.Errorf("%w: no computable value for player %s", ErrInvalidTradeProposal, id)
		}
		v := pv.Value
		if opts.WeightByConsistency && pv.HasGrade {
			if w, ok := gradeWeights[pv.Grade]; ok {
				v *= w
			}
		}
		total += v
	}
	return total, nil
}
