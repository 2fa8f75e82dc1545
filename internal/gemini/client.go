// Package gemini wraps the Google GenAI SDK behind the domain.Generator
// interface.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is the generation model used when none is configured
const DefaultModel = "gemini-1.5-flash"

// Client generates advice text through the Gemini API
type Client struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
}

// NewClient creates a Gemini-backed generator. The API key is required;
// callers representing an unconfigured deployment should not construct
// a client at all.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{
		client: client,
		model:  model,
		config: &genai.GenerateContentConfig{
			Temperature:     f32(0.7),
			TopP:            f32(0.95),
			TopK:            f32(40),
			MaxOutputTokens: 4096,
		},
	}, nil
}

// Generate sends one prompt and returns the model's text response
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), c.config)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

func f32(v float32) *float32 {
	return &v
}
