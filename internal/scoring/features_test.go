package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestNormalizeDefaults(t *testing.T) {
	ranges := DefaultRanges()

	got := Normalize(RawFeatures{}, ranges)

	assert.Equal(t, 0.0, got.Quality)
	assert.Equal(t, 0.0, got.Aesthetics)
	assert.Equal(t, ranges.SmileNeutral, got.SmileProb, "missing smile defaults to the neutral constant")
	assert.Equal(t, ranges.GazeMax, got.GazeDeg, "missing gaze defaults to the worst-case angle")
	assert.False(t, got.RedFlag)
	assert.False(t, got.PetFlag)
	assert.Equal(t, 0.0, got.FilterStrength)
	assert.Equal(t, 1, got.NumFaces)
	assert.Equal(t, 0.0, got.PostureScore)
}

func TestNormalizePartialVector(t *testing.T) {
	ranges := DefaultRanges()

	got := Normalize(RawFeatures{
		Quality:  floatPtr(85),
		PetFlag:  boolPtr(true),
		NumFaces: intPtr(3),
	}, ranges)

	assert.Equal(t, 85.0, got.Quality)
	assert.True(t, got.PetFlag)
	assert.Equal(t, 3, got.NumFaces)
	// Untouched fields still get their defaults.
	assert.Equal(t, ranges.SmileNeutral, got.SmileProb)
	assert.Equal(t, ranges.GazeMax, got.GazeDeg)
}

func TestNormalizeCompleteVectorUnchanged(t *testing.T) {
	ranges := DefaultRanges()
	raw := RawFeatures{
		Quality:        floatPtr(72.5),
		Aesthetics:     floatPtr(64),
		SmileProb:      floatPtr(-12),
		GazeDeg:        floatPtr(22),
		RedFlag:        boolPtr(true),
		PetFlag:        boolPtr(false),
		FilterStrength: floatPtr(0.4),
		NumFaces:       intPtr(2),
		PostureScore:   floatPtr(-0.3),
	}

	want := PhotoFeatures{
		Quality:        72.5,
		Aesthetics:     64,
		SmileProb:      -12,
		GazeDeg:        22,
		RedFlag:        true,
		PetFlag:        false,
		FilterStrength: 0.4,
		NumFaces:       2,
		PostureScore:   -0.3,
	}

	assert.Equal(t, want, Normalize(raw, ranges), "a complete vector passes through untouched")
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Role
	}{
		{name: "known role", input: "primary_headshot", expected: RolePrimaryHeadshot},
		{name: "pet role", input: "pet", expected: RolePet},
		{name: "unknown role falls back", input: "selfie", expected: RoleGeneric},
		{name: "empty role falls back", input: "", expected: RoleGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseRole(tt.input))
		})
	}
}
