package intent

import (
	"context"
	"log/slog"
	"time"
)

// Classifier is the contract the dialog engine consumes: one utterance in,
// one best-effort guess out. Implementations must never fail; on any
// internal problem they answer the unknown sentinel with no fields.
type Classifier interface {
	Classify(ctx context.Context, utterance string) Intent
}

// Provider is one classification backend. Unlike Classifier, providers may
// fail; the Chain turns their failures into fallbacks.
type Provider interface {
	Name() string
	Classify(ctx context.Context, utterance string) (Intent, error)

	// IsTransientError reports whether the error is worth retrying on the
	// same provider (rate limits, timeouts) rather than falling through.
	IsTransientError(err error) bool
}

// Chain tries providers in order, retrying transient errors per provider,
// and degrades to the unknown sentinel when every provider fails. It is the
// Classifier implementation assembled from configuration.
type Chain struct {
	Providers  []Provider
	MaxRetries int
	RetryDelay time.Duration
}

// Classify implements Classifier.
func (c *Chain) Classify(ctx context.Context, utterance string) Intent {
	for i, provider := range c.Providers {
		if i > 0 {
			slog.Warn("Classifier provider failed, trying fallback", "next", provider.Name())
		}

		maxRetries := c.MaxRetries
		if maxRetries <= 0 {
			maxRetries = 1
		}

		for retry := 1; retry <= maxRetries; retry++ {
			if retry > 1 {
				slog.Info("Retrying classifier provider",
					"provider", provider.Name(), "attempt", retry, "max", maxRetries)
				select {
				case <-ctx.Done():
					return Unknown()
				case <-time.After(time.Duration(retry-1) * c.RetryDelay):
				}
			}

			guess, err := provider.Classify(ctx, utterance)
			if err == nil {
				slog.Debug("Utterance classified",
					"provider", provider.Name(), "operation", guess.Operation, "fields", len(guess.Fields))
				return guess
			}

			if provider.IsTransientError(err) && retry < maxRetries {
				slog.Warn("Transient classifier error, retrying",
					"provider", provider.Name(), "error", err)
				continue
			}

			slog.Error("Classifier provider failed",
				"provider", provider.Name(), "error", err)
			break
		}
	}

	// The unknown sentinel is a domain outcome, never a fault.
	return Unknown()
}
