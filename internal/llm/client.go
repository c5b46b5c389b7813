// Package llm provides the text-generation client used for advisory bullet
// rewrites. The scoring pipeline never depends on its output.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ModelTier selects how much model capability a generation call needs.
type ModelTier string

const (
	// TierLite is for short single-sentence rewrites.
	TierLite ModelTier = "lite"
	// TierAdvanced is for nuanced rewriting that must preserve facts.
	TierAdvanced ModelTier = "advanced"
)

// defaultModels maps tiers to Gemini model names.
var defaultModels = map[ModelTier]string{
	TierLite:     "gemini-2.5-flash-lite",
	TierAdvanced: "gemini-2.5-flash",
}

// Client is the abstraction the rewriter depends on; tests substitute fakes.
type Client interface {
	GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error)
	Close() error
}

// GeminiClient implements Client on Google Gemini.
type GeminiClient struct {
	client *genai.Client
	models map[ModelTier]string
}

// NewGeminiClient creates a Gemini-backed client.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, models: defaultModels}, nil
}

// GenerateContent generates text using the model for the given tier.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	modelName, ok := c.models[tier]
	if !ok {
		modelName = c.models[TierLite]
	}
	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(0.2) // rewrites should stay close to the source text

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return extractText(resp)
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractText pulls the plain text out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}
	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.TrimSpace(strings.Join(parts, "")), nil
}
