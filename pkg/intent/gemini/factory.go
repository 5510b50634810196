package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"hrdesk/pkg/config"
	"hrdesk/pkg/intent"
)

// Factory handles creation of Gemini classifier providers.
type Factory struct{}

// Create implements intent.ProviderFactory.
func (f *Factory) Create(cfg intent.ProviderGroupConfig, sys *config.SystemConfig) ([]intent.Provider, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, fmt.Errorf("gemini classifier group requires api_keys")
	}

	var providers []intent.Provider
	for _, key := range cfg.APIKeys {
		for _, model := range cfg.Models {
			client, err := NewClient(context.Background(), key, model)
			if err != nil {
				slog.Warn("Failed to create Gemini classifier", "model", model, "error", err)
				continue
			}
			providers = append(providers, client)
		}
	}
	return providers, nil
}

func init() {
	intent.RegisterProvider("gemini", &Factory{})
}
