// ABOUTME: StyleGuide profile and StyleDelta partial override structures
// ABOUTME: Tone settings are always clamped to the 0-100 range
package models

// Tone slider bounds
const (
	ToneMin = 0
	ToneMax = 100
)

// ToneSettings are the three 0-100 tone sliders
type ToneSettings struct {
	Formality    int `json:"formality"`
	Enthusiasm   int `json:"enthusiasm"`
	Technicality int `json:"technicality"`
}

// Clamped returns a copy with every slider forced into [0,100]
func (t ToneSettings) Clamped() ToneSettings {
	return ToneSettings{
		Formality:    ClampTone(t.Formality),
		Enthusiasm:   ClampTone(t.Enthusiasm),
		Technicality: ClampTone(t.Technicality),
	}
}

// ClampTone forces a tone value into [0,100]
func ClampTone(v int) int {
	if v < ToneMin {
		return ToneMin
	}
	if v > ToneMax {
		return ToneMax
	}
	return v
}

// ExamplePhrases are the phrase banks that steer generation
type ExamplePhrases struct {
	PreferredOpenings    []string `json:"preferred_openings"`
	PreferredTransitions []string `json:"preferred_transitions"`
	PreferredConclusions []string `json:"preferred_conclusions"`
	AvoidPhrases         []string `json:"avoid_phrases"`
}

// StyleGuide parameterizes one generation pass
type StyleGuide struct {
	Instructions   string         `json:"instructions"`
	ToneSettings   ToneSettings   `json:"tone_settings"`
	Keywords       []string       `json:"keywords"`
	ExamplePhrases ExamplePhrases `json:"example_phrases"`
}

// DefaultStyleGuide is the neutral base profile callers start from
func DefaultStyleGuide() StyleGuide {
	return StyleGuide{
		Instructions: "Stay faithful to the source material. Prefer concrete statements over generalities.",
		ToneSettings: ToneSettings{
			Formality:    50,
			Enthusiasm:   50,
			Technicality: 50,
		},
	}
}

// StyleDelta is a partial StyleGuide override. Nil fields mean "keep the
// base value"; present phrase lists replace the base lists wholesale.
type StyleDelta struct {
	Instructions         *string   `json:"instructions,omitempty"`
	Formality            *int      `json:"formality,omitempty"`
	Enthusiasm           *int      `json:"enthusiasm,omitempty"`
	Technicality         *int      `json:"technicality,omitempty"`
	Keywords             *[]string `json:"keywords,omitempty"`
	PreferredOpenings    *[]string `json:"preferred_openings,omitempty"`
	PreferredTransitions *[]string `json:"preferred_transitions,omitempty"`
	PreferredConclusions *[]string `json:"preferred_conclusions,omitempty"`
	AvoidPhrases         *[]string `json:"avoid_phrases,omitempty"`
}
