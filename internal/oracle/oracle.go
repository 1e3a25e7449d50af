// Package oracle isolates the external vision/language providers behind
// typed interfaces. The scoring core only ever sees validated feature
// vectors; all transport, prompting, and response-repair concerns live here.
package oracle

import (
	"context"
	"fmt"

	"github.com/profilepilot/photo-coach/internal/scoring"
)

// Extraction is the validated result of a vision oracle call: a
// possibly-partial feature vector, a free-text assessment, and the photo's
// classified role (may be empty; the normalizer resolves it to generic).
type Extraction struct {
	Features   scoring.RawFeatures `json:"features"`
	Assessment string              `json:"assessment"`
	Role       string              `json:"photoType"`
}

// FeedbackInput carries everything the feedback oracle needs to coach one
// photo.
type FeedbackInput struct {
	Features   scoring.PhotoFeatures `json:"features"`
	Role       scoring.Role          `json:"role"`
	Score      int                   `json:"score"`
	Assessment string                `json:"assessment"`
}

// Feedback is the structured coaching output for one photo.
type Feedback struct {
	GoodPoints        []string `json:"good_points"`
	ImprovementPoints []string `json:"improvement_points"`
}

// FeatureOracle extracts a feature vector and role classification from an
// encoded image. Implementations may fail per call; callers treat a failure
// as "photo excluded from this run", never as a fatal condition.
type FeatureOracle interface {
	Name() string
	ExtractFeatures(ctx context.Context, image []byte) (Extraction, error)
}

// FeedbackOracle turns a scored photo into coaching text. Purely
// presentational; scoring and selection never depend on it.
type FeedbackOracle interface {
	GenerateFeedback(ctx context.Context, in FeedbackInput) (Feedback, error)
}

// Config selects and authenticates a provider.
type Config struct {
	Provider string `koanf:"provider"`
	APIKey   string `koanf:"api_key"`
	Model    string `koanf:"model"`
}

// New builds the feature and feedback oracles for the configured provider.
// The stub provider needs no credentials and backs local development and
// tests.
func New(cfg Config) (FeatureOracle, FeedbackOracle, error) {
	switch cfg.Provider {
	case "", "stub":
		s := NewStub()
		return s, s, nil
	case "openai":
		o := NewOpenAI(cfg.APIKey, cfg.Model)
		return o, o, nil
	case "anthropic":
		a := NewAnthropic(cfg.APIKey, cfg.Model)
		return a, a, nil
	case "gemini":
		g := NewGemini(cfg.APIKey, cfg.Model)
		return g, g, nil
	default:
		return nil, nil, fmt.Errorf("unknown oracle provider %q", cfg.Provider)
	}
}
