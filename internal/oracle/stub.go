package oracle

import (
	"context"
	"fmt"
	"math"

	"github.com/profilepilot/photo-coach/internal/scoring"
)

// Stub is a deterministic heuristic oracle: plausible pseudo-features derived
// from the image bytes. It keeps the full pipeline runnable without
// credentials and gives tests stable inputs.
type Stub struct{}

func NewStub() *Stub { return &Stub{} }

func (s *Stub) Name() string { return "stub" }

// ExtractFeatures derives pseudo-features from a byte hash of the image.
// Identical bytes always produce identical features.
func (s *Stub) ExtractFeatures(_ context.Context, image []byte) (Extraction, error) {
	if len(image) == 0 {
		return Extraction{}, fmt.Errorf("empty image")
	}

	hash := 0.0
	for i := 0; i < len(image) && i < 16; i++ {
		hash += float64(image[i])
	}
	// Sine of a scaled seed, shifted into [0,1]: cheap, stable, well spread.
	pseudo := func(seed, scale float64) float64 {
		return (math.Sin(seed) + 1) / 2 * scale
	}

	quality := 40 + pseudo(hash, 60)
	aesthetics := 30 + pseudo(hash*1.3, 65)
	smile := pseudo(hash*2.1, 170) - 50
	gaze := pseudo(hash*3.7, 90)
	redFlag := pseudo(hash*4.2, 1) > 0.9
	petFlag := pseudo(hash*5.4, 1) > 0.8
	filter := pseudo(hash*6.0, 1)
	numFaces := int(pseudo(hash*7.7, 4))
	posture := pseudo(hash*8.3, 2) - 1

	roles := []scoring.Role{
		scoring.RolePrimaryHeadshot,
		scoring.RoleFullBody,
		scoring.RoleHobbyActivity,
		scoring.RolePet,
		scoring.RoleGroupSocial,
		scoring.RoleGeneric,
	}
	role := roles[int(pseudo(hash*9.1, float64(len(roles))))%len(roles)]

	return Extraction{
		Features: scoring.RawFeatures{
			Quality:        &quality,
			Aesthetics:     &aesthetics,
			SmileProb:      &smile,
			GazeDeg:        &gaze,
			RedFlag:        &redFlag,
			PetFlag:        &petFlag,
			FilterStrength: &filter,
			NumFaces:       &numFaces,
			PostureScore:   &posture,
		},
		Assessment: fmt.Sprintf("Heuristic assessment: quality %.0f, aesthetics %.0f.", quality, aesthetics),
		Role:       string(role),
	}, nil
}

// GenerateFeedback produces canned coaching lines from the scored features.
func (s *Stub) GenerateFeedback(_ context.Context, in FeedbackInput) (Feedback, error) {
	var fb Feedback

	if in.Features.SmileProb > 0 {
		fb.GoodPoints = append(fb.GoodPoints, "Your smile reads as warm and genuine.")
	} else {
		fb.ImprovementPoints = append(fb.ImprovementPoints, "Try a relaxed, natural smile; it lifts response rates.")
	}
	if in.Features.GazeDeg <= 15 {
		fb.GoodPoints = append(fb.GoodPoints, "Direct eye contact with the camera works well here.")
	} else if in.Features.GazeDeg > 45 {
		fb.ImprovementPoints = append(fb.ImprovementPoints, "Look toward the camera for a stronger connection.")
	}
	if in.Features.FilterStrength > 0.5 {
		fb.ImprovementPoints = append(fb.ImprovementPoints, "Heavy filters undermine trust; prefer a lightly edited shot.")
	}
	if in.Features.PetFlag {
		fb.GoodPoints = append(fb.GoodPoints, "The pet adds approachability.")
	}
	if in.Score >= 80 {
		fb.GoodPoints = append(fb.GoodPoints, "Strong photo overall, good candidate for an early slot.")
	}
	if len(fb.GoodPoints) == 0 && len(fb.ImprovementPoints) == 0 {
		fb.GoodPoints = append(fb.GoodPoints, "Solid baseline photo.")
	}
	return fb, nil
}
