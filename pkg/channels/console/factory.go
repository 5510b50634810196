package console

import (
	jsoniter "github.com/json-iterator/go"

	"hrdesk/pkg/api"
	"hrdesk/pkg/channels"
	"hrdesk/pkg/config"
)

type Factory struct{}

func (Factory) Create(_ jsoniter.RawMessage, _ *config.SystemConfig) (api.Channel, error) {
	return New(), nil
}

func init() {
	channels.RegisterChannel(channelID, Factory{})
}
