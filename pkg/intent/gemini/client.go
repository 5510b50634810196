package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"hrdesk/pkg/intent"
)

// Client classifies utterances with the Gemini API. The response is forced
// to JSON via the response MIME type, so extraction rarely has to scrape.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini classifier client for one model and API key.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

func (c *Client) Name() string {
	return "gemini/" + c.model
}

// Classify implements intent.Provider.
func (c *Client) Classify(ctx context.Context, utterance string) (intent.Intent, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: intent.PromptFor(utterance)}},
		},
		ResponseMIMEType: "application/json",
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(utterance), cfg)
	if err != nil {
		return intent.Unknown(), fmt.Errorf("gemini generate: %w", err)
	}

	return intent.Decode(resp.Text(), utterance)
}

// IsTransientError implements intent.Provider.
func (c *Client) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "context deadline exceeded") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "429") ||
		strings.Contains(msg, "resource_exhausted") ||
		strings.Contains(msg, "500") ||
		strings.Contains(msg, "503") ||
		strings.Contains(msg, "unavailable") ||
		strings.Contains(msg, "overloaded")
}
