package types

// AnalyzeRequest is the analyze endpoint payload: base64-encoded images,
// with or without a data-URI prefix.
type AnalyzeRequest struct {
	Images []string `json:"images" binding:"required"`
}

// PhotoReport is the per-photo slice of the response. Score is null when the
// photo's analysis failed; Error then says why. Index always matches the
// photo's position in the request.
type PhotoReport struct {
	Index             int      `json:"index"`
	Score             *int     `json:"score"`
	Role              string   `json:"role"`
	Assessment        string   `json:"assessment,omitempty"`
	GoodPoints        []string `json:"good_points,omitempty"`
	ImprovementPoints []string `json:"improvement_points,omitempty"`
	Error             string   `json:"error,omitempty"`
}

// AnalyzeResponse carries per-photo reports plus the profile-level results.
// Scores is a parallel array by original index for callers that only want
// the numbers; Order is the recommended display sequence of original
// indices.
type AnalyzeResponse struct {
	Photos       []PhotoReport `json:"photos"`
	Scores       []*int        `json:"scores"`
	Order        []int         `json:"order"`
	ProfileScore int           `json:"profileScore"`
}
