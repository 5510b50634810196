package telegram

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"hrdesk/pkg/api"
	"hrdesk/pkg/channels"
	"hrdesk/pkg/config"
)

type channelConfig struct {
	Token string `json:"token"`
}

type Factory struct{}

func (Factory) Create(raw jsoniter.RawMessage, system *config.SystemConfig) (api.Channel, error) {
	var cfg channelConfig
	if err := jsoniter.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse telegram config: %w", err)
	}
	if cfg.Token == "" {
		cfg.Token = os.Getenv("TELEGRAM_BOT_TOKEN")
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("telegram token missing (config or TELEGRAM_BOT_TOKEN)")
	}
	return New(cfg.Token, system.TelegramMessageLimit)
}

func init() {
	channels.RegisterChannel(channelID, Factory{})
}
