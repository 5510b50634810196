package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"

	"hrdesk/pkg/intent"
)

// Client classifies utterances with a local Ollama model. Classification is
// a single non-streaming chat call with JSON format mode enabled.
type Client struct {
	client  *api.Client
	model   string
	options map[string]any
}

// NewClient creates an Ollama classifier client for one model.
func NewClient(model string, baseURL string, options map[string]any) (*Client, error) {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	httpClient := &http.Client{
		Transport: transport,
	}

	var (
		client *api.Client
		err    error
	)
	if baseURL != "" {
		u, parseErr := url.Parse(baseURL)
		if parseErr != nil {
			return nil, fmt.Errorf("invalid base URL: %w", parseErr)
		}
		client = api.NewClient(u, httpClient)
	} else {
		client, err = api.ClientFromEnvironment()
		if err != nil {
			return nil, err
		}
	}

	slog.Info("Ollama classifier initialized", "model", model, "base_url", baseURL)

	return &Client{
		client:  client,
		model:   model,
		options: options,
	}, nil
}

func (c *Client) Name() string {
	return "ollama/" + c.model
}

// Classify implements intent.Provider.
func (c *Client) Classify(ctx context.Context, utterance string) (intent.Intent, error) {
	stream := false
	req := &api.ChatRequest{
		Model: c.model,
		Messages: []api.Message{
			{Role: "system", Content: intent.PromptFor(utterance)},
			{Role: "user", Content: utterance},
		},
		Stream:  &stream,
		Format:  json.RawMessage(`"json"`),
		Options: c.options,
	}

	var sb strings.Builder
	err := c.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		sb.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return intent.Unknown(), fmt.Errorf("ollama chat: %w", err)
	}

	return intent.Decode(sb.String(), utterance)
}

// IsTransientError implements intent.Provider.
func (c *Client) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())

	// Network-level issues and server-side temporary failures are worth a retry.
	return strings.Contains(msg, "context deadline exceeded") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "500 internal") ||
		strings.Contains(msg, "502 bad gateway") ||
		strings.Contains(msg, "503 service unavailable") ||
		strings.Contains(msg, "overloaded")
}
