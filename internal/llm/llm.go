// Package llm wraps the Gemini text-completion service behind a small client.
// It is the only boundary in the pipeline that can fail: missing credentials
// surface before any network attempt, transport failures are wrapped with
// their cause, and a blank-but-successful response is returned as-is so the
// normalizer can turn it into a valid empty result.
package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"google.golang.org/genai"
)

// DefaultModel is the default Gemini model for hashtag generation.
const DefaultModel = "gemini-2.5-flash"

// Client represents a client for the Gemini text-completion API.
type Client struct {
	apiKey    string
	modelName string
	gClient   *genai.Client
}

// NewClient creates a new LLM client.
// It supports multiple ways to get the API key (in order of preference):
// 1. Environment variables: GEMINI_API_KEY (or alternatives)
// 2. Viper configuration: ai.gemini.api_key
func NewClient(modelName string) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		if apiKey = os.Getenv("GOOGLE_GEMINI_API_KEY"); apiKey == "" {
			if apiKey = os.Getenv("GOOGLE_AI_API_KEY"); apiKey == "" {
				apiKey = viper.GetString("ai.gemini.api_key")
			}
		}
	}
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required. Set GEMINI_API_KEY environment variable or ai.gemini.api_key in config file.\nGet your API key from: https://makersuite.google.com/app/apikey")
	}

	if modelName == "" {
		modelName = viper.GetString("ai.gemini.model")
		if modelName == "" {
			modelName = DefaultModel
		}
	}

	ctx := context.Background()
	gClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		apiKey:    apiKey,
		modelName: modelName,
		gClient:   gClient,
	}, nil
}

// Complete sends a prompt and returns the model's raw text response. An empty
// response is not an error: the model produced nothing usable, which callers
// treat as a zero-hashtag outcome.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: prompt}},
		Role:  "user",
	}}

	resp, err := c.gClient.Models.GenerateContent(ctx, c.modelName, contents, nil)
	if err != nil {
		return "", fmt.Errorf("hashtag generation failed: %w", err)
	}

	return resp.Text(), nil
}

// ModelName returns the model name used by this client.
func (c *Client) ModelName() string {
	return c.modelName
}

// Close releases client resources.
func (c *Client) Close() {
	// New SDK client doesn't require explicit close
}
