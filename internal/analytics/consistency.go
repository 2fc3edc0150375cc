package analytics

import "math"

// Grade is a letter grade for scoring consistency, "A+" (steadiest) to "F".
type Grade string

const (
	GradeAPlus  Grade = "A+"
	GradeA      Grade = "A"
	GradeAMinus Grade = "A-"
	GradeBPlus  Grade = "B+"
	GradeB      Grade = "B"
	GradeBMinus Grade = "B-"
	GradeCPlus  Grade = "C+"
	GradeC      Grade = "C"
	GradeCMinus Grade = "C-"
	GradeD      Grade = "D"
	GradeF      Grade = "F"
)

// gradeBands maps coefficient-of-variation upper bounds to grades. The table
// is monotonic: lower variation earns a better grade. Bounds are tunable
// constants, never derived from the surrounding player pool, so identical
// series always grade identically.
var gradeBands = []struct {
	maxCV float64
	grade Grade
}{
	{0.10, GradeAPlus},
	{0.15, GradeA},
	{0.20, GradeAMinus},
	{0.25, GradeBPlus},
	{0.30, GradeB},
	{0.35, GradeBMinus},
	{0.42, GradeCPlus},
	{0.50, GradeC},
	{0.60, GradeCMinus},
	{0.75, GradeD},
}

// ConsistencyResult is a player's variability score and its letter grade.
type ConsistencyResult struct {
	CoefficientOfVariation float64 `json:"coefficient_of_variation"`
	Grade                  Grade   `json:"grade"`
}

// GradeForCV maps a coefficient of variation onto the banding table.
func GradeForCV(cv float64) Grade {
	for _, band := range gradeBands {
		if cv <= band.maxCV {
			return band.grade
		}
	}
	return GradeF
}

// Consistency computes the coefficient of variation (population standard
// deviation over mean) of a fantasy-point series and grades it. Series
// shorter than 2 points, or with a non-positive mean, return
// ErrInsufficientSample; the function never divides by zero. A constant
// positive series has CV 0 and grades A+.
func Consistency(series []float64) (ConsistencyResult, error) {
	if len(series) < 2 {
		return ConsistencyResult{}, ErrInsufficientSample
	}

	avg := mean(series)
	if avg <= 0 {
		return ConsistencyResult{}, ErrInsufficientSample
	}

	var sumSq float64
	for _, v := range series {
		d := v - avg
		sumSq += d * d
	}
	cv := math.Sqrt(sumSq/float64(len(series))) / avg

	return ConsistencyResult{
		CoefficientOfVariation: cv,
		Grade:                  GradeForCV(cv),
	}, nil
}
