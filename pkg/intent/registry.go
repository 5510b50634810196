package intent

import (
	"hrdesk/pkg/config"
)

// ProviderGroupConfig defines the configuration of one group of classifier
// models of the same type. It is the standard input to a ProviderFactory.
type ProviderGroupConfig struct {
	Type    string         `json:"type"`
	APIKeys []string       `json:"api_keys,omitempty"`
	Models  []string       `json:"models"`
	BaseURL string         `json:"base_url,omitempty"`
	Options map[string]any `json:"options,omitempty"`
}

// ProviderFactory builds the atomic classifier providers for one group.
type ProviderFactory interface {
	Create(groupConfig ProviderGroupConfig, systemConfig *config.SystemConfig) ([]Provider, error)
}

// Global provider registry, populated by provider packages at init() time.
var providerRegistry = make(map[string]ProviderFactory)

// RegisterProvider registers a ProviderFactory under a type name.
func RegisterProvider(name string, factory ProviderFactory) {
	providerRegistry[name] = factory
}

// GetProviderFactory looks up the ProviderFactory for a type name.
func GetProviderFactory(name string) (ProviderFactory, bool) {
	f, ok := providerRegistry[name]
	return f, ok
}
