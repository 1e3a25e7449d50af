package scoring

// Role describes a photo's intended function in a dating profile. The
// classification comes from the vision oracle; anything unrecognized
// collapses to RoleGeneric.
type Role string

const (
	RolePrimaryHeadshot Role = "primary_headshot"
	RoleFullBody        Role = "full_body"
	RoleHobbyActivity   Role = "hobby_activity"
	RolePet             Role = "pet"
	RoleGroupSocial     Role = "group_social"
	RoleGeneric         Role = "generic"
)

// ParseRole resolves a raw role string from the oracle. Unknown or empty
// values fall back to RoleGeneric rather than failing.
func ParseRole(s string) Role {
	switch Role(s) {
	case RolePrimaryHeadshot, RoleFullBody, RoleHobbyActivity, RolePet, RoleGroupSocial, RoleGeneric:
		return Role(s)
	default:
		return RoleGeneric
	}
}

// DefaultRolePriority is the slot-fill order used when selecting photos for
// display: a profile leads with a clear headshot, then variety.
func DefaultRolePriority() []Role {
	return []Role{
		RolePrimaryHeadshot,
		RoleFullBody,
		RoleHobbyActivity,
		RolePet,
		RoleGroupSocial,
	}
}

// relaxedGazeRole reports whether the role tolerates looking away from the
// camera. Hobby and pet shots are usually candid, so averted gaze is fine.
func relaxedGazeRole(r Role) bool {
	return r == RoleHobbyActivity || r == RolePet
}
