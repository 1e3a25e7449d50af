package scoring

// Weights holds the per-role blend of feature contributions and penalties.
// Positive weights conventionally sum near 1.0 so composite scores stay
// comparable across roles.
type Weights struct {
	Quality       float64 `json:"quality" koanf:"quality"`
	Aesthetics    float64 `json:"aesthetics" koanf:"aesthetics"`
	Smile         float64 `json:"smile" koanf:"smile"`
	GazeBonus     float64 `json:"gazeBonus" koanf:"gaze_bonus"`
	RedFlag       float64 `json:"redFlag" koanf:"red_flag"`
	PetFlag       float64 `json:"petFlag" koanf:"pet_flag"`
	FilterPenalty float64 `json:"filterPenalty" koanf:"filter_penalty"`
	GroupPenalty  float64 `json:"groupPenalty" koanf:"group_penalty"`
	PostureBonus  float64 `json:"postureBonus" koanf:"posture_bonus"`
}

// WeightTable maps each role to its weight record. Treat the table as
// immutable once built; it is injected into the scorer rather than held as
// process-wide mutable state.
type WeightTable map[Role]Weights

// DefaultWeightTable returns the reference weight table. The generic row
// carries the original research-based blend; the role rows shift emphasis
// toward what that kind of photo is for (posture for full-body shots, the
// animal for pet shots, and so on).
func DefaultWeightTable() WeightTable {
	return WeightTable{
		RolePrimaryHeadshot: {
			Quality:       0.25,
			Aesthetics:    0.25,
			Smile:         0.20,
			GazeBonus:     0.15,
			RedFlag:       0.15,
			PetFlag:       0.00,
			FilterPenalty: 0.15,
			GroupPenalty:  0.10,
			PostureBonus:  0.05,
		},
		RoleFullBody: {
			Quality:       0.25,
			Aesthetics:    0.20,
			Smile:         0.10,
			GazeBonus:     0.05,
			RedFlag:       0.15,
			PetFlag:       0.00,
			FilterPenalty: 0.10,
			GroupPenalty:  0.10,
			PostureBonus:  0.25,
		},
		RoleHobbyActivity: {
			Quality:       0.30,
			Aesthetics:    0.25,
			Smile:         0.10,
			GazeBonus:     0.05,
			RedFlag:       0.10,
			PetFlag:       0.05,
			FilterPenalty: 0.10,
			GroupPenalty:  0.05,
			PostureBonus:  0.15,
		},
		RolePet: {
			Quality:       0.25,
			Aesthetics:    0.20,
			Smile:         0.15,
			GazeBonus:     0.05,
			RedFlag:       0.10,
			PetFlag:       0.25,
			FilterPenalty: 0.10,
			GroupPenalty:  0.05,
			PostureBonus:  0.05,
		},
		RoleGroupSocial: {
			Quality:       0.25,
			Aesthetics:    0.25,
			Smile:         0.15,
			GazeBonus:     0.05,
			RedFlag:       0.10,
			PetFlag:       0.00,
			FilterPenalty: 0.10,
			GroupPenalty:  0.00,
			PostureBonus:  0.10,
		},
		RoleGeneric: {
			Quality:       0.25,
			Aesthetics:    0.25,
			Smile:         0.15,
			GazeBonus:     0.10,
			RedFlag:       0.05,
			PetFlag:       0.05,
			FilterPenalty: 0.10,
			GroupPenalty:  0.05,
			PostureBonus:  0.05,
		},
	}
}

// forRole returns the weight record for a role, falling back to the generic
// row. The generic row always exists in a table built by DefaultWeightTable,
// so the zero-value return is a defensive invariant, not an expected path.
func (t WeightTable) forRole(r Role) Weights {
	if w, ok := t[r]; ok {
		return w
	}
	return t[RoleGeneric]
}
