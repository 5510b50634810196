package handler

import (
	"context"
	"strings"
	"sync"
	"testing"

	"hrdesk/pkg/api"
	"hrdesk/pkg/config"
	"hrdesk/pkg/dialog"
	"hrdesk/pkg/intent"
	"hrdesk/pkg/ops"
)

type fixedClassifier struct {
	guess intent.Intent
}

func (c fixedClassifier) Classify(context.Context, string) intent.Intent {
	return c.guess
}

// recordingResponder collects everything the handler sends back.
type recordingResponder struct {
	mu      sync.Mutex
	replies []string
	signals []string
}

func (r *recordingResponder) SendReply(_ api.SessionContext, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replies = append(r.replies, content)
	return nil
}

func (r *recordingResponder) SendSignal(_ api.SessionContext, signal string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.signals = append(r.signals, signal)
	return nil
}

func newTestHandler(t *testing.T, guess intent.Intent) (*DialogHandler, *recordingResponder) {
	t.Helper()
	reg := dialog.NewRegistry()
	err := reg.Register(&dialog.Descriptor{
		Name:     intent.OpRegisterEmployee,
		Required: []string{intent.FieldName, intent.FieldEmail, intent.FieldDepartment},
		Handler: func(context.Context, map[string]string) (*ops.Outcome, error) {
			return &ops.Outcome{Status: ops.StatusSuccess, Message: "registered"}, nil
		},
	})
	if err != nil {
		t.Fatalf("register descriptor: %v", err)
	}

	engine := dialog.NewEngine(fixedClassifier{guess: guess}, reg)
	h := NewDialogHandler(engine, dialog.NewManager(), config.DefaultSystemConfig())
	responder := &recordingResponder{}
	h.SetResponder(responder)
	return h, responder
}

func message(text string) *api.UnifiedMessage {
	return &api.UnifiedMessage{
		Session: api.SessionContext{ChannelID: "console", UserID: "local", ChatID: "local"},
		Content: text,
	}
}

func TestOnMessagePromptsAndSignalsTyping(t *testing.T) {
	h, responder := newTestHandler(t, intent.New(intent.OpRegisterEmployee, nil))

	h.OnMessage(message("register a new employee"))
	if len(responder.replies) != 1 {
		t.Fatalf("replies = %v", responder.replies)
	}
	if !strings.Contains(responder.replies[0], "- name") {
		t.Fatalf("reply = %q, want a field prompt", responder.replies[0])
	}
	if len(responder.signals) != 1 || responder.signals[0] != "typing" {
		t.Fatalf("signals = %v", responder.signals)
	}
}

func TestCancelWordResetsConversation(t *testing.T) {
	h, responder := newTestHandler(t, intent.New(intent.OpRegisterEmployee, nil))

	h.OnMessage(message("register a new employee"))
	h.OnMessage(message("cancel"))
	// A fresh turn classifies again instead of treating input as a field.
	h.OnMessage(message("register a new employee"))

	if len(responder.replies) != 3 {
		t.Fatalf("replies = %v", responder.replies)
	}
	if !strings.Contains(responder.replies[2], "- name") {
		t.Fatalf("post-cancel reply = %q, want a fresh prompt", responder.replies[2])
	}
}

func TestBlankMessagesAreIgnored(t *testing.T) {
	h, responder := newTestHandler(t, intent.Unknown())
	h.OnMessage(message("   "))
	if len(responder.replies) != 0 {
		t.Fatalf("replies = %v, want none", responder.replies)
	}
}
