// Package channels holds the channel factory registry and the config-driven
// loader. Concrete channels live in subpackages and register themselves at
// init time; blank-import the autoload package to pull them all in.
package channels

import (
	"sync"

	jsoniter "github.com/json-iterator/go"

	"hrdesk/pkg/api"
	"hrdesk/pkg/config"
)

// ChannelFactory builds one channel instance from its raw JSON config block.
type ChannelFactory interface {
	Create(rawConfig jsoniter.RawMessage, system *config.SystemConfig) (api.Channel, error)
}

var (
	registryMu sync.RWMutex
	factories  = make(map[string]ChannelFactory)
)

// RegisterChannel makes a factory available under the given config key.
// Intended to be called from init functions of channel subpackages.
func RegisterChannel(name string, factory ChannelFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = factory
}

// GetChannelFactory returns the factory registered under name.
func GetChannelFactory(name string) (ChannelFactory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := factories[name]
	return f, ok
}
