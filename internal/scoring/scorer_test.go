package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// midFeatures returns a comfortable mid-range vector that scores well inside
// (0.2, 1.0), so penalty arithmetic is observable without clamping.
func midFeatures() PhotoFeatures {
	return PhotoFeatures{
		Quality:      80,
		Aesthetics:   80,
		SmileProb:    90,
		GazeDeg:      10,
		NumFaces:     1,
		PostureScore: 0.5,
	}
}

func TestCompositeDeterminism(t *testing.T) {
	table := DefaultWeightTable()
	ranges := DefaultRanges()
	f := midFeatures()

	first := Composite(f, RolePrimaryHeadshot, table, ranges)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Composite(f, RolePrimaryHeadshot, table, ranges))
	}
}

func TestCompositeClamping(t *testing.T) {
	table := DefaultWeightTable()
	ranges := DefaultRanges()

	tests := []struct {
		name     string
		features PhotoFeatures
		role     Role
	}{
		{
			name: "worst case floors at 0.2",
			features: PhotoFeatures{
				SmileProb:      -50,
				GazeDeg:        90,
				RedFlag:        true,
				FilterStrength: 1,
				NumFaces:       5,
				PostureScore:   -1,
			},
			role: RoleGeneric,
		},
		{
			name: "best case caps at 1.0",
			features: PhotoFeatures{
				Quality:      100,
				Aesthetics:   100,
				SmileProb:    120,
				GazeDeg:      0,
				PetFlag:      true,
				NumFaces:     1,
				PostureScore: 1,
			},
			role: RoleGeneric,
		},
		{
			name: "out-of-range oracle values stay bounded",
			features: PhotoFeatures{
				Quality:      10000,
				Aesthetics:   -500,
				SmileProb:    9999,
				GazeDeg:      400,
				NumFaces:     1,
				PostureScore: 0,
			},
			role: RoleFullBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Composite(tt.features, tt.role, table, ranges)
			assert.GreaterOrEqual(t, score, 0.2)
			assert.LessOrEqual(t, score, 1.0)
		})
	}

	// The worst case hits the floor exactly, the best case the cap.
	assert.Equal(t, 0.2, Composite(tests[0].features, tests[0].role, table, ranges))
	assert.Equal(t, 1.0, Composite(tests[1].features, tests[1].role, table, ranges))
}

func TestGroupPenaltyRoleExemption(t *testing.T) {
	table := DefaultWeightTable()
	ranges := DefaultRanges()

	crowd := midFeatures()
	crowd.NumFaces = 5
	solo := midFeatures()
	solo.NumFaces = 1

	// A social photo is expected to contain several people: no penalty.
	assert.Equal(t,
		Composite(solo, RoleGroupSocial, table, ranges),
		Composite(crowd, RoleGroupSocial, table, ranges))

	// The same crowd under a generic role pays exactly the group weight.
	diff := Composite(solo, RoleGeneric, table, ranges) - Composite(crowd, RoleGeneric, table, ranges)
	assert.InDelta(t, table[RoleGeneric].GroupPenalty, diff, 1e-12)
}

func TestGazeLadderIsDiscrete(t *testing.T) {
	tests := []struct {
		name     string
		gazeDeg  float64
		expected float64
	}{
		{name: "direct gaze", gazeDeg: 0, expected: 1.0},
		{name: "ladder edge at 15", gazeDeg: 15, expected: 1.0},
		{name: "near gaze", gazeDeg: 16, expected: 0.6},
		{name: "ladder edge at 45", gazeDeg: 45, expected: 0.6},
		{name: "averted gaze", gazeDeg: 46, expected: 0.3},
		{name: "fully averted", gazeDeg: 90, expected: 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, gazeScore(tt.gazeDeg))
		})
	}

	// Same ladder step means the same score: no interpolation.
	table := DefaultWeightTable()
	ranges := DefaultRanges()
	a := midFeatures()
	a.GazeDeg = 35
	b := midFeatures()
	b.GazeDeg = 44
	assert.Equal(t,
		Composite(a, RoleGeneric, table, ranges),
		Composite(b, RoleGeneric, table, ranges))
}

func TestRoleAwareGazePenalty(t *testing.T) {
	table := DefaultWeightTable()
	ranges := DefaultRanges()

	away := midFeatures()
	away.GazeDeg = 40
	direct := midFeatures()
	direct.GazeDeg = 25 // same ladder step as 40, below the strict limit

	// Strict roles penalize beyond 30 degrees.
	diff := Composite(direct, RoleGeneric, table, ranges) - Composite(away, RoleGeneric, table, ranges)
	assert.InDelta(t, gazePenaltyStrict, diff, 1e-12)

	// Hobby shots tolerate the same deviation.
	assert.Equal(t,
		Composite(away, RoleHobbyActivity, table, ranges),
		Composite(direct, RoleHobbyActivity, table, ranges))
}

func TestDisengagedPenaltyIsConjunctive(t *testing.T) {
	table := DefaultWeightTable()
	ranges := DefaultRanges()

	base := midFeatures() // smiling, direct gaze
	notSmiling := base
	notSmiling.SmileProb = -10
	lookingAway := base
	lookingAway.GazeDeg = 40
	both := base
	both.SmileProb = -10
	both.GazeDeg = 40

	score := func(f PhotoFeatures) float64 { return Composite(f, RoleGeneric, table, ranges) }

	smileCost := score(base) - score(notSmiling)
	gazeCost := score(base) - score(lookingAway)
	bothCost := score(base) - score(both)

	// Disengagement costs more than the sum of its parts.
	assert.InDelta(t, smileCost+gazeCost+disengagedPenalty, bothCost, 1e-12)
}

func TestUnknownRoleUsesGenericWeights(t *testing.T) {
	table := DefaultWeightTable()
	ranges := DefaultRanges()
	f := midFeatures()

	assert.Equal(t,
		Composite(f, RoleGeneric, table, ranges),
		Composite(f, Role("holiday_card"), table, ranges))
}

func TestDisplayScore(t *testing.T) {
	assert.Equal(t, 20, DisplayScore(0.2))
	assert.Equal(t, 100, DisplayScore(1.0))
	assert.Equal(t, 73, DisplayScore(0.734))
}
