// Package handler bridges the gateway and the dialog engine: it owns the
// per-session state map, applies cancellation words, and renders engine
// replies into channel messages.
package handler

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"hrdesk/pkg/api"
	"hrdesk/pkg/config"
	"hrdesk/pkg/dialog"
	"hrdesk/pkg/monitor"
	"hrdesk/pkg/utils"
)

// cancelWords reset the conversation regardless of what is in progress.
var cancelWords = map[string]struct{}{
	"exit":   {},
	"quit":   {},
	"cancel": {},
}

// DialogHandler processes every unified message arriving from the gateway.
// It implements api.MessageProcessor and api.ResponderAware.
type DialogHandler struct {
	engine   *dialog.Engine
	sessions *dialog.Manager
	present  Presentation
	timeout  time.Duration

	responder api.MessageResponder

	// locks serializes turns per session; engine state is not safe for
	// concurrent use within one session.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewDialogHandler(engine *dialog.Engine, sessions *dialog.Manager, system *config.SystemConfig) *DialogHandler {
	return &DialogHandler{
		engine:   engine,
		sessions: sessions,
		timeout:  time.Duration(system.ClassifyTimeoutMs) * time.Millisecond,
		locks:    map[string]*sync.Mutex{},
	}
}

func (h *DialogHandler) SetResponder(responder api.MessageResponder) {
	h.responder = responder
}

// OnMessage handles one utterance end to end: lock the session, run the
// engine under a per-turn deadline and reply through the gateway.
func (h *DialogHandler) OnMessage(msg *api.UnifiedMessage) {
	text := strings.TrimSpace(msg.Content)
	if text == "" {
		return
	}

	trace := msg.TraceID
	if trace == "" {
		trace = utils.GenerateID()
	}
	ctx := context.WithValue(context.Background(), monitor.SessionIDContextKey, trace)
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	key := msg.Session.Key()
	lock := h.sessionLock(key)
	lock.Lock()
	defer lock.Unlock()

	if _, ok := cancelWords[strings.ToLower(text)]; ok {
		h.sessions.Reset(key)
		h.reply(ctx, msg.Session, h.present.Goodbye())
		return
	}

	if err := h.responder.SendSignal(msg.Session, "typing"); err != nil {
		slog.DebugContext(ctx, "send signal failed", "channel", msg.Session.ChannelID, "error", err)
	}

	st := h.sessions.Get(key)
	reply := h.engine.HandleUtterance(ctx, st, text)
	h.reply(ctx, msg.Session, h.present.Render(reply))
}

func (h *DialogHandler) reply(ctx context.Context, session api.SessionContext, content string) {
	if err := h.responder.SendReply(session, content); err != nil {
		slog.ErrorContext(ctx, "send reply failed", "channel", session.ChannelID, "error", err)
	}
}

func (h *DialogHandler) sessionLock(key string) *sync.Mutex {
	h.mu.Lock()
	defer h.mu.Unlock()
	lock, ok := h.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		h.locks[key] = lock
	}
	return lock
}
