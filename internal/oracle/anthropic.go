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
	anthropicEndpoint     = "https://api.anthropic.com/v1/messages"
	anthropicVersion      = "2023-06-01"
	anthropicDefaultModel = "claude-3-5-haiku-latest"
)

// Anthropic calls the Claude messages API with a base64 image block for
// feature extraction and a text-only message for feedback.
type Anthropic struct {
	apiKey  string
	model   string
	client  *http.Client
	breaker *resilience.CircuitBreaker
}

func NewAnthropic(apiKey, model string) *Anthropic {
	if model == "" {
		model = anthropicDefaultModel
	}
	return &Anthropic{
		apiKey:  apiKey,
		model:   model,
		client:  newHTTPClient(),
		breaker: resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{}),
	}
}

func (a *Anthropic) Name() string { return "anthropic" }

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (a *Anthropic) ExtractFeatures(ctx context.Context, image []byte) (Extraction, error) {
	blocks := []map[string]any{
		{
			"type": "image",
			"source": map[string]string{
				"type":       "base64",
				"media_type": "image/jpeg",
				"data":       base64.StdEncoding.EncodeToString(image),
			},
		},
		{"type": "text", "text": "Analyze this photo."},
	}

	text, err := a.message(ctx, extractionPrompt, blocks, 400)
	if err != nil {
		return Extraction{}, err
	}
	ex, err := DecodeExtraction(text)
	if err != nil {
		return Extraction{}, errors.NewOracleError(a.Name(), err)
	}
	return ex, nil
}

func (a *Anthropic) GenerateFeedback(ctx context.Context, in FeedbackInput) (Feedback, error) {
	text, err := a.message(ctx, feedbackPrompt, feedbackPayload(in), 240)
	if err != nil {
		return Feedback{}, err
	}
	fb, err := DecodeFeedback(text)
	if err != nil {
		return Feedback{}, errors.NewOracleError(a.Name(), err)
	}
	return fb, nil
}

func (a *Anthropic) message(ctx context.Context, system string, content any, maxTokens int) (string, error) {
	payload := anthropicRequest{
		Model:     a.model,
		MaxTokens: maxTokens,
		System:    system,
		Messages:  []anthropicMessage{{Role: "user", Content: content}},
	}
	headers := map[string]string{
		"x-api-key":         a.apiKey,
		"anthropic-version": anthropicVersion,
	}

	var out anthropicResponse
	err := resilience.Retry(ctx, func() error {
		return a.breaker.Call(func() error {
			if err := postJSON(ctx, a.client, anthropicEndpoint, headers, payload, &out); err != nil {
				return errors.NewOracleError(a.Name(), err)
			}
			return nil
		})
	})
	if err != nil {
		return "", err
	}
	for _, block := range out.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", errors.NewOracleError(a.Name(), fmt.Errorf("no text block in reply"))
}
