package intent

import (
	"log/slog"
	"time"

	jsoniter "github.com/json-iterator/go"

	"hrdesk/pkg/config"
)

// NewFromConfig assembles the classifier chain from the raw 'classifier'
// config section. Provider groups that fail to initialize are skipped, and
// the offline rule-based classifier is always appended as the terminal
// fallback, so the returned Classifier is usable even with no language model
// configured at all.
func NewFromConfig(rawClassifier jsoniter.RawMessage, system *config.SystemConfig) Classifier {
	var providers []Provider

	if len(rawClassifier) > 0 {
		var groups []ProviderGroupConfig
		if err := json.Unmarshal(rawClassifier, &groups); err != nil {
			slog.Error("Failed to parse 'classifier' config, using rules only", "error", err)
			groups = nil
		}

		for _, group := range groups {
			slog.Info("Loading classifier group", "type", group.Type, "models", len(group.Models))

			factory, ok := GetProviderFactory(group.Type)
			if !ok {
				slog.Warn("Unknown classifier provider type", "type", group.Type)
				continue
			}

			created, err := factory.Create(group, system)
			if err != nil {
				slog.Warn("Failed to create classifier providers", "type", group.Type, "error", err)
				continue
			}

			providers = append(providers, created...)
		}
	}

	providers = append(providers, NewRules())

	slog.Info("Classifier chain assembled", "providers", len(providers))

	return &Chain{
		Providers:  providers,
		MaxRetries: system.MaxRetries,
		RetryDelay: time.Duration(system.RetryDelayMs) * time.Millisecond,
	}
}
