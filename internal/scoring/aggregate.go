package scoring

import "math"

// Bonuses applied on top of the weighted per-photo average: having enough
// photos, and having enough variety, each earn a small boost.
const (
	countBonus        = 5
	countBonusMinimum = 4
	varietyBonus      = 5
	varietyMinimum    = 3
)

// profileRoleWeight returns the contribution weight of a role toward the
// overall profile score. A strong headshot moves the needle more than a
// group shot.
func profileRoleWeight(r Role) float64 {
	switch r {
	case RolePrimaryHeadshot:
		return 1.2
	case RoleFullBody:
		return 1.1
	case RoleHobbyActivity:
		return 1.0
	case RolePet, RoleGroupSocial:
		return 0.9
	default:
		return 0.8
	}
}

// AggregateProfile computes the single 0-100 profile score from parallel
// per-photo score and role slices. A nil score marks a failed analysis and
// contributes neither numerator nor denominator. Returns 0 when no photo
// scored at all.
func AggregateProfile(scores []*int, roles []Role) int {
	var weightedSum, weightTotal float64
	scoredCount := 0
	distinctRoles := make(map[Role]bool)

	for i, s := range scores {
		if s == nil {
			continue
		}
		role := RoleGeneric
		if i < len(roles) {
			role = roles[i]
		}
		w := profileRoleWeight(role)
		weightedSum += w * float64(*s)
		weightTotal += w
		scoredCount++
		distinctRoles[role] = true
	}

	if scoredCount == 0 {
		return 0
	}

	total := int(math.Round(weightedSum / weightTotal))
	if scoredCount >= countBonusMinimum {
		total += countBonus
	}
	if len(distinctRoles) >= varietyMinimum {
		total += varietyBonus
	}
	if total > 100 {
		total = 100
	}
	return total
}
