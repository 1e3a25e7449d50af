package scoring

// RawFeatures is the possibly-partial feature vector returned by the vision
// oracle. Pointer fields distinguish "absent" from zero so normalization can
// default omissions without penalizing the photo.
type RawFeatures struct {
	Quality        *float64 `json:"quality,omitempty"`
	Aesthetics     *float64 `json:"aesthetics,omitempty"`
	SmileProb      *float64 `json:"smileProb,omitempty"`
	GazeDeg        *float64 `json:"gazeDeg,omitempty"`
	RedFlag        *bool    `json:"redFlag,omitempty"`
	PetFlag        *bool    `json:"petFlag,omitempty"`
	FilterStrength *float64 `json:"filterStrength,omitempty"`
	NumFaces       *int     `json:"numFaces,omitempty"`
	PostureScore   *float64 `json:"postureScore,omitempty"`
}

// PhotoFeatures is a fully populated feature vector ready for scoring.
type PhotoFeatures struct {
	Quality        float64 `json:"quality"`
	Aesthetics     float64 `json:"aesthetics"`
	SmileProb      float64 `json:"smileProb"`
	GazeDeg        float64 `json:"gazeDeg"`
	RedFlag        bool    `json:"redFlag"`
	PetFlag        bool    `json:"petFlag"`
	FilterStrength float64 `json:"filterStrength"`
	NumFaces       int     `json:"numFaces"`
	PostureScore   float64 `json:"postureScore"`
}

// Range is a configured [min,max] interval for a numeric feature.
type Range struct {
	Min float64 `json:"min" koanf:"min"`
	Max float64 `json:"max" koanf:"max"`
}

// FeatureRanges declares the numeric ranges the oracle reports features in.
// Different oracle generations use different scales, so the ranges are
// configuration, never hardcoded into the scorer.
type FeatureRanges struct {
	Quality    Range `json:"quality" koanf:"quality"`
	Aesthetics Range `json:"aesthetics" koanf:"aesthetics"`
	Smile      Range `json:"smile" koanf:"smile"`

	// SmileNeutral is the sentinel smile value meaning "face not visible";
	// it is also the default when the oracle omits the field.
	SmileNeutral float64 `json:"smileNeutral" koanf:"smile_neutral"`

	// GazeMax is the worst-case gaze deviation in degrees, used as the
	// default when gaze is missing.
	GazeMax float64 `json:"gazeMax" koanf:"gaze_max"`
}

// DefaultRanges matches the current oracle generation: 0-100 quality and
// aesthetics, signed smile in -50..120 with 60 meaning "not visible".
func DefaultRanges() FeatureRanges {
	return FeatureRanges{
		Quality:      Range{Min: 0, Max: 100},
		Aesthetics:   Range{Min: 0, Max: 100},
		Smile:        Range{Min: -50, Max: 120},
		SmileNeutral: 60,
		GazeMax:      90,
	}
}

// Normalize fills every absent field of a raw vector with its documented
// default. Defaulting never fails and is idempotent: a complete vector passes
// through unchanged.
//
// Policy: quality and aesthetics default to the bottom of their range (no
// evidence, no credit), smile defaults to the neutral "not visible" constant,
// gaze defaults to the worst-case angle, flags default to false, filter
// strength to 0, face count to 1 (the subject), posture to neutral 0.
func Normalize(raw RawFeatures, ranges FeatureRanges) PhotoFeatures {
	f := PhotoFeatures{
		Quality:        0,
		Aesthetics:     0,
		SmileProb:      ranges.SmileNeutral,
		GazeDeg:        ranges.GazeMax,
		NumFaces:       1,
		FilterStrength: 0,
		PostureScore:   0,
	}
	if raw.Quality != nil {
		f.Quality = *raw.Quality
	}
	if raw.Aesthetics != nil {
		f.Aesthetics = *raw.Aesthetics
	}
	if raw.SmileProb != nil {
		f.SmileProb = *raw.SmileProb
	}
	if raw.GazeDeg != nil {
		f.GazeDeg = *raw.GazeDeg
	}
	if raw.RedFlag != nil {
		f.RedFlag = *raw.RedFlag
	}
	if raw.PetFlag != nil {
		f.PetFlag = *raw.PetFlag
	}
	if raw.FilterStrength != nil {
		f.FilterStrength = *raw.FilterStrength
	}
	if raw.NumFaces != nil {
		f.NumFaces = *raw.NumFaces
	}
	if raw.PostureScore != nil {
		f.PostureScore = *raw.PostureScore
	}
	return f
}
