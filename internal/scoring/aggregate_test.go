package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateProfileSkipsFailedPhotos(t *testing.T) {
	scores := []*int{intPtr(80), nil, intPtr(60)}
	roles := []Role{RolePrimaryHeadshot, RoleFullBody, RoleGeneric}

	// Only the two scored photos contribute: (1.2*80 + 0.8*60) / (1.2 + 0.8).
	want := int(math.Round((1.2*80 + 0.8*60) / 2.0))
	assert.Equal(t, want, AggregateProfile(scores, roles))
}

func TestAggregateProfileNoScoredPhotos(t *testing.T) {
	assert.Equal(t, 0, AggregateProfile(nil, nil))
	assert.Equal(t, 0, AggregateProfile([]*int{nil, nil}, []Role{RolePet, RoleGeneric}))
}

func TestAggregateProfileBonuses(t *testing.T) {
	tests := []struct {
		name     string
		scores   []*int
		roles    []Role
		expected int
	}{
		{
			name:   "count bonus at four scored photos",
			scores: []*int{intPtr(70), intPtr(70), intPtr(70), intPtr(70)},
			roles:  []Role{RoleGeneric, RoleGeneric, RoleGeneric, RoleGeneric},
			// base 70, +5 count bonus, only one distinct role
			expected: 75,
		},
		{
			name:   "variety bonus at three distinct roles",
			scores: []*int{intPtr(70), intPtr(70), intPtr(70)},
			roles:  []Role{RolePrimaryHeadshot, RoleFullBody, RoleHobbyActivity},
			// base 70, +5 variety bonus, below count threshold
			expected: 75,
		},
		{
			name:   "both bonuses stack",
			scores: []*int{intPtr(70), intPtr(70), intPtr(70), intPtr(70)},
			roles:  []Role{RolePrimaryHeadshot, RoleFullBody, RoleHobbyActivity, RolePet},
			// base 70, +5 count, +5 variety
			expected: 80,
		},
		{
			name:     "clamped at 100",
			scores:   []*int{intPtr(98), intPtr(99), intPtr(97), intPtr(99)},
			roles:    []Role{RolePrimaryHeadshot, RoleFullBody, RoleHobbyActivity, RolePet},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AggregateProfile(tt.scores, tt.roles))
		})
	}
}

func TestAggregateProfileUnknownRoleWeight(t *testing.T) {
	// An unrecognized role contributes with the default 0.8 weight, same as
	// generic.
	known := AggregateProfile([]*int{intPtr(64)}, []Role{RoleGeneric})
	unknown := AggregateProfile([]*int{intPtr(64)}, []Role{Role("mirror_selfie")})
	assert.Equal(t, known, unknown)
}

func TestAggregateProfileMissingRoleDefaults(t *testing.T) {
	// A scores slice longer than the roles slice treats the overflow as
	// generic rather than panicking.
	got := AggregateProfile([]*int{intPtr(60), intPtr(80)}, []Role{RolePrimaryHeadshot})
	want := int(math.Round((1.2*60 + 0.8*80) / 2.0))
	assert.Equal(t, want, got)
}
