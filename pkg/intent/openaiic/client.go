// Package openaiic provides the OpenAI-compatible intent classifier
// provider, built on the Responses API.
package openaiic

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"

	"hrdesk/pkg/intent"
)

// Client wraps the official OpenAI Go SDK for single-shot classification.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates an OpenAI classifier client. baseURL may point at any
// OpenAI-compatible endpoint.
func NewClient(apiKey, model, baseURL string) (*Client, error) {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(opts...)

	return &Client{
		client: &client,
		model:  model,
	}, nil
}

func (c *Client) Name() string {
	return "openai/" + c.model
}

// Classify implements intent.Provider.
func (c *Client) Classify(ctx context.Context, utterance string) (intent.Intent, error) {
	params := responses.ResponseNewParams{
		Model:        c.model,
		Instructions: openai.String(intent.PromptFor(utterance)),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(utterance),
		},
	}

	resp, err := c.client.Responses.New(ctx, params)
	if err != nil {
		return intent.Unknown(), fmt.Errorf("openai responses: %w", err)
	}

	return intent.Decode(resp.OutputText(), utterance)
}

// IsTransientError implements intent.Provider.
func (c *Client) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())

	if strings.Contains(msg, "context deadline exceeded") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "timeout") {
		return true
	}

	if strings.Contains(msg, "500 internal") ||
		strings.Contains(msg, "502 bad gateway") ||
		strings.Contains(msg, "503 service unavailable") ||
		strings.Contains(msg, "429") ||
		strings.Contains(msg, "overloaded") {
		return true
	}

	// Everything else (400 Bad Request, 401 Unauthorized, etc.) is non-transient
	return false
}
