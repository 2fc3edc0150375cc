package analytics

import (
	"errors"
	"math"
	"testing"
)

func TestConsistencyConstantSeriesIsTopGrade(t *testing.T) {
	result, err := Consistency([]float64{30, 30, 30, 30, 30})
	if err != nil {
		t.Fatalf("Consistency returned error: %v", err)
	}
	if result.CoefficientOfVariation != 0 {
		t.Errorf("CV = %v, want 0", result.CoefficientOfVariation)
	}
	if result.Grade != GradeAPlus {
		t.Errorf("grade = %s, want A+", result.Grade)
	}
}

func TestConsistencyInsufficientSample(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
	}{
		{name: "Empty", series: nil},
		{name: "SingleGame", series: []float64{42}},
		{name: "ZeroMean", series: []float64{0, 0, 0}},
		{name: "NegativeMean", series: []float64{-5, -5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Consistency(tc.series)
			if !errors.Is(err, ErrInsufficientSample) {
				t.Errorf("err = %v, want ErrInsufficientSample", err)
			}
		})
	}
}

func TestConsistencyKnownValue(t *testing.T) {
	// Mean 20, population stddev sqrt(50), CV ~0.3536.
	result, err := Consistency([]float64{10, 20, 30, 20})
	if err != nil {
		t.Fatalf("Consistency returned error: %v", err)
	}
	want := math.Sqrt(50) / 20
	if math.Abs(result.CoefficientOfVariation-want) > 1e-12 {
		t.Errorf("CV = %v, want %v", result.CoefficientOfVariation, want)
	}
	if result.Grade != GradeCPlus {
		t.Errorf("grade = %s, want C+ for CV %v", result.Grade, want)
	}
}

func TestGradeForCVMonotonic(t *testing.T) {
	order := []Grade{
		GradeAPlus, GradeA, GradeAMinus, GradeBPlus, GradeB, GradeBMinus,
		GradeCPlus, GradeC, GradeCMinus, GradeD, GradeF,
	}
	rank := make(map[Grade]int, len(order))
	for i, g := range order {
		rank[g] = i
	}

	prev := GradeAPlus
	for cv := 0.0; cv <= 1.5; cv += 0.01 {
		grade := GradeForCV(cv)
		if rank[grade] < rank[prev] {
			t.Fatalf("grade improved from %s to %s as CV rose to %v", prev, grade, cv)
		}
		prev = grade
	}
	if GradeForCV(0) != GradeAPlus {
		t.Errorf("GradeForCV(0) = %s, want A+", GradeForCV(0))
	}
	if GradeForCV(2.0) != GradeF {
		t.Errorf("GradeForCV(2.0) = %s, want F", GradeForCV(2.0))
	}
}
