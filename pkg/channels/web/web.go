// Package web implements the browser channel: a WebSocket endpoint carrying
// JSON text frames in both directions.
package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"

	"hrdesk/pkg/api"
	"hrdesk/pkg/utils"
)

const channelID = "web"

type inboundFrame struct {
	Content string `json:"content"`
}

type outboundFrame struct {
	Type    string `json:"type"` // "message" or "signal"
	Content string `json:"content,omitempty"`
	Signal  string `json:"signal,omitempty"`
}

// safeConn serializes writes; gorilla connections allow one concurrent
// writer only.
type safeConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (s *safeConn) WriteJSON(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(v)
}

func (s *safeConn) Close() error {
	return s.conn.Close()
}

type Channel struct {
	addr     string
	server   *http.Server
	upgrader websocket.Upgrader

	mu    sync.RWMutex
	conns map[string]*safeConn // keyed by client id
}

func New(addr string) *Channel {
	return &Channel{
		addr: addr,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		conns: map[string]*safeConn{},
	}
}

func (c *Channel) ID() string { return channelID }

func (c *Channel) Start(ctx api.ChannelContext) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		c.handleWS(ctx, w, r)
	})
	c.server = &http.Server{Addr: c.addr, Handler: mux}

	go func() {
		if err := c.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Web channel server stopped", "error", err)
		}
	}()
	return nil
}

func (c *Channel) Stop() error {
	c.mu.Lock()
	for id, conn := range c.conns {
		_ = conn.Close()
		delete(c.conns, id)
	}
	c.mu.Unlock()

	if c.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.server.Shutdown(ctx)
}

func (c *Channel) handleWS(ctx api.ChannelContext, w http.ResponseWriter, r *http.Request) {
	conn, err := c.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("WebSocket upgrade failed", "error", err)
		return
	}

	clientID := r.URL.Query().Get("client_id")
	if clientID == "" {
		clientID = utils.GenerateID()
	}
	sc := &safeConn{conn: conn}
	c.mu.Lock()
	c.conns[clientID] = sc
	c.mu.Unlock()

	session := api.SessionContext{
		ChannelID: channelID,
		UserID:    clientID,
		ChatID:    clientID,
		Username:  clientID,
	}

	defer func() {
		c.mu.Lock()
		delete(c.conns, clientID)
		c.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("WebSocket read failed", "client", clientID, "error", err)
			}
			return
		}
		var frame inboundFrame
		if err := jsoniter.Unmarshal(data, &frame); err != nil || frame.Content == "" {
			continue
		}
		ctx.OnMessage(channelID, &api.UnifiedMessage{
			Session: session,
			Content: frame.Content,
			TraceID: utils.GenerateID(),
		})
	}
}

func (c *Channel) Send(session api.SessionContext, message string) error {
	sc, ok := c.lookup(session.UserID)
	if !ok {
		return fmt.Errorf("client %s not connected", session.UserID)
	}
	return sc.WriteJSON(outboundFrame{Type: "message", Content: message})
}

func (c *Channel) SendSignal(session api.SessionContext, signal string) error {
	sc, ok := c.lookup(session.UserID)
	if !ok {
		return nil
	}
	return sc.WriteJSON(outboundFrame{Type: "signal", Signal: signal})
}

func (c *Channel) lookup(clientID string) (*safeConn, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	sc, ok := c.conns[clientID]
	return sc, ok
}
