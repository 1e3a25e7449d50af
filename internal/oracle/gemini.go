package oracle

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/profilepilot/photo-coach/internal/errors"
	"github.com/profilepilot/photo-coach/internal/resilience"
)

const (
	geminiEndpointFmt   = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"
	geminiDefaultModel  = "gemini-1.5-flash"
	geminiAPIKeyHeader  = "x-goog-api-key"
	geminiAnalyzePrompt = "Analyze this photo."
)

// Gemini calls the generateContent API with inline image data for feature
// extraction and plain text for feedback.
type Gemini struct {
	apiKey  string
	model   string
	client  *http.Client
	breaker *resilience.CircuitBreaker
}

func NewGemini(apiKey, model string) *Gemini {
	if model == "" {
		model = geminiDefaultModel
	}
	return &Gemini{
		apiKey:  apiKey,
		model:   model,
		client:  newHTTPClient(),
		breaker: resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{}),
	}
}

func (g *Gemini) Name() string { return "gemini" }

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []map[string]any `json:"parts"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *Gemini) ExtractFeatures(ctx context.Context, image []byte) (Extraction, error) {
	parts := []map[string]any{
		{"inline_data": map[string]string{
			"mime_type": "image/jpeg",
			"data":      base64.StdEncoding.EncodeToString(image),
		}},
		{"text": geminiAnalyzePrompt},
	}

	text, err := g.generate(ctx, extractionPrompt, parts)
	if err != nil {
		return Extraction{}, err
	}
	ex, err := DecodeExtraction(text)
	if err != nil {
		return Extraction{}, errors.NewOracleError(g.Name(), err)
	}
	return ex, nil
}

func (g *Gemini) GenerateFeedback(ctx context.Context, in FeedbackInput) (Feedback, error) {
	parts := []map[string]any{{"text": feedbackPayload(in)}}

	text, err := g.generate(ctx, feedbackPrompt, parts)
	if err != nil {
		return Feedback{}, err
	}
	fb, err := DecodeFeedback(text)
	if err != nil {
		return Feedback{}, errors.NewOracleError(g.Name(), err)
	}
	return fb, nil
}

func (g *Gemini) generate(ctx context.Context, system string, parts []map[string]any) (string, error) {
	payload := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []map[string]any{{"text": system}}},
		Contents:          []geminiContent{{Parts: parts}},
	}
	url := fmt.Sprintf(geminiEndpointFmt, g.model)
	headers := map[string]string{geminiAPIKeyHeader: g.apiKey}

	var out geminiResponse
	err := resilience.Retry(ctx, func() error {
		return g.breaker.Call(func() error {
			if err := postJSON(ctx, g.client, url, headers, payload, &out); err != nil {
				return errors.NewOracleError(g.Name(), err)
			}
			return nil
		})
	})
	if err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.NewOracleError(g.Name(), fmt.Errorf("no candidates in reply"))
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
