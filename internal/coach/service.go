// Package coach orchestrates the analysis pipeline: resize, feature
// extraction, scoring, selection, feedback, and profile aggregation.
package coach

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/profilepilot/photo-coach/internal/imaging"
	"github.com/profilepilot/photo-coach/internal/monitoring"
	"github.com/profilepilot/photo-coach/internal/oracle"
	"github.com/profilepilot/photo-coach/internal/scoring"
)

// PhotoResult is one photo's outcome. A nil Score means the oracle failed
// for this photo; Err carries the reason and the photo keeps its original
// index so response arrays stay aligned.
type PhotoResult struct {
	Index      int
	Score      *int
	Role       scoring.Role
	Features   scoring.PhotoFeatures
	Assessment string
	Feedback   *oracle.Feedback
	Err        string
}

// Analysis is the full pipeline output for one request.
type Analysis struct {
	Photos       []PhotoResult
	Order        []int
	ProfileScore int
}

// Service runs the pipeline with an injected oracle pair and immutable
// scoring configuration.
type Service struct {
	features oracle.FeatureOracle
	feedback oracle.FeedbackOracle

	table    scoring.WeightTable
	ranges   scoring.FeatureRanges
	priority []scoring.Role

	maxSelection  int
	maxImageWidth int

	logger  *monitoring.Logger
	metrics *monitoring.Metrics
}

// Option configures a Service.
type Option func(*Service)

// WithSelection overrides the display capacity and role priority.
func WithSelection(maxSelection int, priority []scoring.Role) Option {
	return func(s *Service) {
		if maxSelection > 0 {
			s.maxSelection = maxSelection
		}
		if len(priority) > 0 {
			s.priority = priority
		}
	}
}

// WithRanges overrides the oracle feature ranges.
func WithRanges(ranges scoring.FeatureRanges) Option {
	return func(s *Service) { s.ranges = ranges }
}

// WithMaxImageWidth overrides the downscale bound.
func WithMaxImageWidth(width int) Option {
	return func(s *Service) {
		if width > 0 {
			s.maxImageWidth = width
		}
	}
}

// NewService builds a Service with the default weight table, ranges, and
// selection policy.
func NewService(features oracle.FeatureOracle, feedback oracle.FeedbackOracle, logger *monitoring.Logger, metrics *monitoring.Metrics, opts ...Option) *Service {
	s := &Service{
		features:      features,
		feedback:      feedback,
		table:         scoring.DefaultWeightTable(),
		ranges:        scoring.DefaultRanges(),
		priority:      scoring.DefaultRolePriority(),
		maxSelection:  scoring.MaxSelection,
		maxImageWidth: imaging.DefaultMaxWidth,
		logger:        logger,
		metrics:       metrics,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze runs the full pipeline over a batch of decoded images. Photos are
// processed concurrently; one photo's oracle failure never affects the
// others or the request as a whole.
func (s *Service) Analyze(ctx context.Context, images [][]byte) (Analysis, error) {
	if len(images) == 0 {
		return Analysis{}, fmt.Errorf("no images provided")
	}

	start := time.Now()
	results := make([]PhotoResult, len(images))

	var wg sync.WaitGroup
	for i, img := range images {
		wg.Add(1)
		go func(idx int, data []byte) {
			defer wg.Done()
			results[idx] = s.analyzePhoto(ctx, idx, data)
		}(i, img)
	}
	wg.Wait()

	scored := make([]scoring.ScoredPhoto, len(results))
	scores := make([]*int, len(results))
	roles := make([]scoring.Role, len(results))
	failed := 0
	for i, r := range results {
		scored[i] = scoring.ScoredPhoto{
			Index:    r.Index,
			Features: r.Features,
			Role:     r.Role,
			Score:    r.Score,
		}
		scores[i] = r.Score
		roles[i] = r.Role
		if r.Score == nil {
			failed++
		}
	}

	analysis := Analysis{
		Photos:       results,
		Order:        scoring.SelectAndOrder(scored, s.maxSelection, s.priority),
		ProfileScore: scoring.AggregateProfile(scores, roles),
	}

	if s.metrics != nil {
		s.metrics.ProfileScores.Observe(float64(analysis.ProfileScore))
	}
	if s.logger != nil {
		s.logger.AnalysisLogger(len(images), failed, analysis.ProfileScore, s.features.Name(), time.Since(start))
	}
	return analysis, nil
}

// analyzePhoto runs the per-photo leg of the pipeline. Every failure path
// returns a null-scored result instead of an error: isolation is the
// contract.
func (s *Service) analyzePhoto(ctx context.Context, index int, image []byte) PhotoResult {
	result := PhotoResult{Index: index, Role: scoring.RoleGeneric}

	if len(image) == 0 {
		if s.metrics != nil {
			s.metrics.PhotosFailed.Inc()
		}
		result.Err = "invalid or empty image payload"
		return result
	}

	// A resize failure is not fatal; the oracle sees the original bytes.
	submission := image
	if resized, err := imaging.Downscale(image, s.maxImageWidth); err == nil {
		submission = resized
	}

	extraction, err := s.features.ExtractFeatures(ctx, submission)
	if s.metrics != nil {
		s.metrics.ObserveOracleCall(s.features.Name(), err)
	}
	if err != nil {
		if s.metrics != nil {
			s.metrics.PhotosFailed.Inc()
		}
		result.Err = fmt.Sprintf("feature extraction failed: %v", err)
		return result
	}

	result.Role = scoring.ParseRole(extraction.Role)
	result.Features = scoring.Normalize(extraction.Features, s.ranges)
	result.Assessment = extraction.Assessment

	score := scoring.DisplayScore(scoring.Composite(result.Features, result.Role, s.table, s.ranges))
	result.Score = &score
	if s.metrics != nil {
		s.metrics.PhotosAnalyzed.Inc()
	}

	// Feedback is presentational; losing it does not lose the score.
	fb, err := s.feedback.GenerateFeedback(ctx, oracle.FeedbackInput{
		Features:   result.Features,
		Role:       result.Role,
		Score:      score,
		Assessment: result.Assessment,
	})
	if err == nil {
		result.Feedback = &fb
	}
	return result
}
