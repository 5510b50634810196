package openaiic

import (
	"fmt"
	"log/slog"

	"hrdesk/pkg/config"
	"hrdesk/pkg/intent"
)

// Factory handles creation of OpenAI-compatible classifier providers.
type Factory struct{}

// Create implements intent.ProviderFactory. Every (api key, model) pair
// becomes one atomic provider in the chain.
func (f *Factory) Create(cfg intent.ProviderGroupConfig, sys *config.SystemConfig) ([]intent.Provider, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, fmt.Errorf("openai classifier group requires api_keys")
	}

	var providers []intent.Provider
	for _, key := range cfg.APIKeys {
		for _, model := range cfg.Models {
			client, err := NewClient(key, model, cfg.BaseURL)
			if err != nil {
				slog.Warn("Failed to create OpenAI classifier", "model", model, "error", err)
				continue
			}
			providers = append(providers, client)
		}
	}
	return providers, nil
}

func init() {
	intent.RegisterProvider("openai", &Factory{})
}
