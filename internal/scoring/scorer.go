package scoring

import "math"

// Fixed scoring constants. The floor guarantees no photo lands at an absolute
// zero, which keeps the downstream coaching feedback constructive while still
// differentiating quality.
const (
	scoreFloor  = 0.2
	floorOffset = 0.2

	// Gaze ladder steps: deviation from direct camera gaze in degrees.
	gazeDirectDeg = 15.0
	gazeNearDeg   = 45.0

	// Penalty thresholds and magnitudes. Hobby and pet shots get the
	// relaxed threshold; everything else is judged strictly.
	strictGazeLimitDeg  = 30.0
	relaxedGazeLimitDeg = 45.0
	gazePenaltyStrict   = 0.06
	gazePenaltyRelaxed  = 0.03
	notSmilingPenalty   = 0.08
	disengagedPenalty   = 0.05
)

// Composite computes the per-photo composite score in [0.2, 1.0] from a
// normalized feature vector and its role. Multiply by 100 and round for the
// display score. Deterministic: fixed inputs always produce the same float.
func Composite(f PhotoFeatures, role Role, table WeightTable, ranges FeatureRanges) float64 {
	w := table.forRole(role)

	normQuality := minMax(f.Quality, ranges.Quality)
	normAesthetics := minMax(f.Aesthetics, ranges.Aesthetics)
	normSmile := minMax(f.SmileProb, ranges.Smile)

	positive := w.Quality*normQuality +
		w.Aesthetics*normAesthetics +
		w.Smile*normSmile +
		w.GazeBonus*gazeScore(f.GazeDeg) +
		w.PetFlag*boolUnit(f.PetFlag) +
		w.PostureBonus*f.PostureScore

	penalty := w.RedFlag * boolUnit(f.RedFlag)
	penalty += w.FilterPenalty * f.FilterStrength
	if f.NumFaces > 2 && role != RoleGroupSocial {
		penalty += w.GroupPenalty
	}

	notSmiling := f.SmileProb < 0
	if notSmiling {
		penalty += notSmilingPenalty
	}

	gazeLimit, gazePenalty := strictGazeLimitDeg, gazePenaltyStrict
	if relaxedGazeRole(role) {
		gazeLimit, gazePenalty = relaxedGazeLimitDeg, gazePenaltyRelaxed
	}
	lookingAway := f.GazeDeg > gazeLimit
	if lookingAway {
		penalty += gazePenalty
	}
	// A photo that is neither smiling nor looking at the camera reads as
	// disengaged; that combination costs more than the sum of its parts.
	if notSmiling && lookingAway {
		penalty += disengagedPenalty
	}

	return clamp(positive-penalty+floorOffset, scoreFloor, 1.0)
}

// DisplayScore converts a composite score into the 0-100 integer shown to
// the user.
func DisplayScore(composite float64) int {
	return int(math.Round(composite * 100))
}

// gazeScore discretizes gaze deviation into a three-step ladder. The steps
// are deliberate: a near-direct gaze is as good as direct, and anything past
// 45 degrees reads the same no matter how far off it is. Do not interpolate.
func gazeScore(gazeDeg float64) float64 {
	switch {
	case gazeDeg <= gazeDirectDeg:
		return 1.0
	case gazeDeg <= gazeNearDeg:
		return 0.6
	default:
		return 0.3
	}
}

// minMax normalizes a value into [0,1] over the configured range, clamping
// out-of-range oracle output instead of letting it distort the blend.
func minMax(v float64, r Range) float64 {
	if r.Max == r.Min {
		return 0
	}
	return clamp((v-r.Min)/(r.Max-r.Min), 0, 1)
}

func boolUnit(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
