package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeExtractionPlainJSON(t *testing.T) {
	text := `{"features":{"quality":82,"smileProb":-10,"petFlag":true},"assessment":"Sharp outdoor shot.","photoType":"hobby_activity"}`

	ex, err := DecodeExtraction(text)
	require.NoError(t, err)

	require.NotNil(t, ex.Features.Quality)
	assert.Equal(t, 82.0, *ex.Features.Quality)
	require.NotNil(t, ex.Features.SmileProb)
	assert.Equal(t, -10.0, *ex.Features.SmileProb)
	require.NotNil(t, ex.Features.PetFlag)
	assert.True(t, *ex.Features.PetFlag)
	assert.Nil(t, ex.Features.GazeDeg, "omitted fields stay nil for the normalizer")
	assert.Equal(t, "Sharp outdoor shot.", ex.Assessment)
	assert.Equal(t, "hobby_activity", ex.Role)
}

func TestDecodeExtractionFencedWithProse(t *testing.T) {
	text := "Here is the analysis you asked for:\n```json\n{\"features\":{\"quality\":55},\"assessment\":\"ok\",\"photoType\":\"generic\"}\n```\nLet me know if you need more."

	ex, err := DecodeExtraction(text)
	require.NoError(t, err)
	require.NotNil(t, ex.Features.Quality)
	assert.Equal(t, 55.0, *ex.Features.Quality)
}

func TestDecodeExtractionNestedBraces(t *testing.T) {
	// The balanced-brace scan must not stop at the inner object.
	text := `noise {"features":{"numFaces":2},"assessment":"a {weird} one","photoType":"group_social"} trailing`

	ex, err := DecodeExtraction(text)
	require.NoError(t, err)
	require.NotNil(t, ex.Features.NumFaces)
	assert.Equal(t, 2, *ex.Features.NumFaces)
	assert.Equal(t, "a {weird} one", ex.Assessment)
}

func TestDecodeExtractionFailures(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "no JSON at all", text: "I could not analyze this image."},
		{name: "unbalanced object", text: `{"features":{"quality":50`},
		{name: "wrong types", text: `{"features":{"quality":"high"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeExtraction(tt.text)
			assert.Error(t, err)
		})
	}
}

func TestDecodeFeedbackStructured(t *testing.T) {
	text := "```json\n{\"good_points\":[\"Nice light\"],\"improvement_points\":[\"Look at the camera\"]}\n```"

	fb, err := DecodeFeedback(text)
	require.NoError(t, err)
	assert.Equal(t, []string{"Nice light"}, fb.GoodPoints)
	assert.Equal(t, []string{"Look at the camera"}, fb.ImprovementPoints)
}

func TestDecodeFeedbackPlainLines(t *testing.T) {
	// Models sometimes ignore the format and answer in prose; keep the lines.
	fb, err := DecodeFeedback("Great colors.\n\nTry a wider crop.")
	require.NoError(t, err)
	assert.Equal(t, []string{"Great colors.", "Try a wider crop."}, fb.GoodPoints)
}

func TestDecodeFeedbackEmpty(t *testing.T) {
	_, err := DecodeFeedback("   \n  ")
	assert.Error(t, err)
}
