package ollama

import (
	"log/slog"

	"hrdesk/pkg/config"
	"hrdesk/pkg/intent"
)

// Factory handles creation of Ollama classifier providers.
type Factory struct{}

// Create implements intent.ProviderFactory.
func (f *Factory) Create(cfg intent.ProviderGroupConfig, sys *config.SystemConfig) ([]intent.Provider, error) {
	var providers []intent.Provider

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = sys.OllamaDefaultURL
	}

	for _, model := range cfg.Models {
		client, err := NewClient(model, baseURL, cfg.Options)
		if err != nil {
			slog.Warn("Failed to create Ollama classifier", "model", model, "error", err)
			continue
		}
		providers = append(providers, client)
	}
	return providers, nil
}

func init() {
	intent.RegisterProvider("ollama", &Factory{})
}
