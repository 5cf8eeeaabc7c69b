// ABOUTME: Tests for exponential backoff calculation
// ABOUTME: Validates bounds, capping, and jitter behavior

package util

import (
	"testing"
	"time"
)

func TestCalculateBackoff_Bounds(t *testing.T) {
	base := 100 * time.Millisecond

	tests := []struct {
		name    string
		attempt int
		min     time.Duration
		max     time.Duration
	}{
		{"zero attempt", 0, 0, 0},
		{"negative attempt", -3, 0, 0},
		// 2^n * base, with ±25% jitter
		{"first attempt", 1, 150 * time.Millisecond, 250 * time.Millisecond},
		{"third attempt", 3, 600 * time.Millisecond, 1000 * time.Millisecond},
		// 2^10 * 100ms would be 102s; capped at 30s + 25% jitter
		{"capped attempt", 10, 0, 37500 * time.Millisecond},
		{"overflow-prone attempt", 100, 0, 37500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateBackoff(base, tt.attempt)
			if got < tt.min || got > tt.max {
				t.Errorf("CalculateBackoff(%v, %d) = %v, want between %v and %v",
					base, tt.attempt, got, tt.min, tt.max)
			}
		})
	}
}

func TestCalculateBackoff_Jitter(t *testing.T) {
	base := time.Second
	seen := make(map[time.Duration]bool)
	for i := 0; i < 100; i++ {
		d := CalculateBackoff(base, 2)
		// 4s base, ±25%
		if d < 3*time.Second || d > 5*time.Second {
			t.Fatalf("sample %d out of bounds: %v", i, d)
		}
		seen[d] = true
	}
	if len(seen) == 1 {
		t.Error("jitter should produce varying results, all 100 samples were identical")
	}
}
