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
	openAIEndpoint     = "https://api.openai.com/v1/chat/completions"
	openAIDefaultModel = "gpt-4o-mini"
)

// OpenAI calls the chat completions API with an inline image for feature
// extraction and plain chat for feedback.
type OpenAI struct {
	apiKey  string
	model   string
	client  *http.Client
	breaker *resilience.CircuitBreaker
}

func NewOpenAI(apiKey, model string) *OpenAI {
	if model == "" {
		model = openAIDefaultModel
	}
	return &OpenAI{
		apiKey:  apiKey,
		model:   model,
		client:  newHTTPClient(),
		breaker: resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{}),
	}
}

func (o *OpenAI) Name() string { return "openai" }

type openAIRequest struct {
	Model       string          `json:"model"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens"`
	Messages    []openAIMessage `json:"messages"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (o *OpenAI) ExtractFeatures(ctx context.Context, image []byte) (Extraction, error) {
	dataURI := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image)
	messages := []openAIMessage{
		{Role: "system", Content: extractionPrompt},
		{Role: "user", Content: []map[string]any{
			{"type": "image_url", "image_url": map[string]string{"url": dataURI}},
		}},
	}

	text, err := o.complete(ctx, messages, 400)
	if err != nil {
		return Extraction{}, err
	}
	ex, err := DecodeExtraction(text)
	if err != nil {
		return Extraction{}, errors.NewOracleError(o.Name(), err)
	}
	return ex, nil
}

func (o *OpenAI) GenerateFeedback(ctx context.Context, in FeedbackInput) (Feedback, error) {
	messages := []openAIMessage{
		{Role: "system", Content: feedbackPrompt},
		{Role: "user", Content: feedbackPayload(in)},
	}

	text, err := o.complete(ctx, messages, 240)
	if err != nil {
		return Feedback{}, err
	}
	fb, err := DecodeFeedback(text)
	if err != nil {
		return Feedback{}, errors.NewOracleError(o.Name(), err)
	}
	return fb, nil
}

// complete runs one chat completion under retry and circuit breaker
// protection and returns the reply text.
func (o *OpenAI) complete(ctx context.Context, messages []openAIMessage, maxTokens int) (string, error) {
	payload := openAIRequest{
		Model:       o.model,
		Temperature: 0.2,
		MaxTokens:   maxTokens,
		Messages:    messages,
	}
	headers := map[string]string{"Authorization": "Bearer " + o.apiKey}

	var out openAIResponse
	err := resilience.Retry(ctx, func() error {
		return o.breaker.Call(func() error {
			if err := postJSON(ctx, o.client, openAIEndpoint, headers, payload, &out); err != nil {
				return errors.NewOracleError(o.Name(), err)
			}
			return nil
		})
	})
	if err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", errors.NewOracleError(o.Name(), fmt.Errorf("empty choices in reply"))
	}
	return out.Choices[0].Message.Content, nil
}
