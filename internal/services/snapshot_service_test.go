package services

import (
	"testing"
	"time"
)

func TestPeriodCutoff(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		period  string
		want    time.Time
		bounded bool
	}{
		{"week", time.Date(2026, time.March, 8, 12, 0, 0, 0, time.UTC), true},
		{"month", time.Date(2026, time.February, 15, 12, 0, 0, 0, time.UTC), true},
		{"season", time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC), true},
		{"all", time.Time{}, false},
		{"", time.Time{}, false},
		{"decade", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			got, bounded := periodCutoff(tt.period, now)
			if bounded != tt.bounded {
				t.Fatalf("periodCutoff(%q) bounded = %v, want %v", tt.period, bounded, tt.bounded)
			}
			if bounded && !got.Equal(tt.want) {
				t.Errorf("periodCutoff(%q) = %v, want %v", tt.period, got, tt.want)
			}
		})
	}
}
