// ABOUTME: Tests for tone clamping and style guide structures
// ABOUTME: Verifies the 0-100 invariant on tone sliders

package models

import "testing"

func TestClampTone(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"below range", -10, 0},
		{"at minimum", 0, 0},
		{"in range", 50, 50},
		{"at maximum", 100, 100},
		{"above range", 150, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampTone(tt.in); got != tt.want {
				t.Errorf("ClampTone(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestToneSettings_Clamped(t *testing.T) {
	ts := ToneSettings{Formality: 180, Enthusiasm: -5, Technicality: 42}
	got := ts.Clamped()

	if got.Formality != 100 {
		t.Errorf("Formality = %d, want 100", got.Formality)
	}
	if got.Enthusiasm != 0 {
		t.Errorf("Enthusiasm = %d, want 0", got.Enthusiasm)
	}
	if got.Technicality != 42 {
		t.Errorf("Technicality = %d, want 42", got.Technicality)
	}

	// Original is untouched
	if ts.Formality != 180 {
		t.Error("Clamped() should not mutate the receiver")
	}
}
