package channels

import (
	"fmt"
	"log/slog"

	jsoniter "github.com/json-iterator/go"

	"hrdesk/pkg/api"
	"hrdesk/pkg/config"
)

// LoadFromConfig instantiates every enabled channel from the config's
// channels map. An unknown channel key is a warning, not an error, so a
// config can carry entries for channels this build does not include.
func LoadFromConfig(cfg *config.Config, system *config.SystemConfig) ([]api.Channel, error) {
	var built []api.Channel
	for name, raw := range cfg.Channels {
		var probe struct {
			Enabled *bool `json:"enabled"`
		}
		if err := jsoniter.Unmarshal(raw, &probe); err != nil {
			return nil, fmt.Errorf("channel %s: bad config block: %w", name, err)
		}
		if probe.Enabled != nil && !*probe.Enabled {
			slog.Info("Channel disabled by config", "channel", name)
			continue
		}

		factory, ok := GetChannelFactory(name)
		if !ok {
			slog.Warn("No factory registered for channel", "channel", name)
			continue
		}
		ch, err := factory.Create(raw, system)
		if err != nil {
			return nil, fmt.Errorf("channel %s: %w", name, err)
		}
		built = append(built, ch)
	}
	if len(built) == 0 {
		return nil, fmt.Errorf("no channels enabled")
	}
	return built, nil
}
