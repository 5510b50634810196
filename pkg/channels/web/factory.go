package web

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"hrdesk/pkg/api"
	"hrdesk/pkg/channels"
	"hrdesk/pkg/config"
)

type channelConfig struct {
	Addr string `json:"addr"`
}

type Factory struct{}

func (Factory) Create(raw jsoniter.RawMessage, _ *config.SystemConfig) (api.Channel, error) {
	var cfg channelConfig
	if err := jsoniter.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse web config: %w", err)
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	return New(cfg.Addr), nil
}

func init() {
	channels.RegisterChannel(channelID, Factory{})
}
