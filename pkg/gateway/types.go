package gateway

import (
	"hrdesk/pkg/api"
)

// Re-export types from the api package via aliases so channel and handler
// code can keep referring to them through the gateway package.
type Channel = api.Channel
type SignalingChannel = api.SignalingChannel
type MessageResponder = api.MessageResponder
type ChannelContext = api.ChannelContext
type UnifiedMessage = api.UnifiedMessage
type SessionContext = api.SessionContext

// MessageHandler is still defined here as a function type alias.
type MessageHandler = api.MessageHandler
