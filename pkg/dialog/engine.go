package dialog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"hrdesk/pkg/intent"
	"hrdesk/pkg/ops"
)

// ReplyKind tells the caller what the engine produced for this turn.
type ReplyKind int

const (
	// ReplyClarify means the utterance started no operation and none was in
	// progress; the user should rephrase.
	ReplyClarify ReplyKind = iota
	// ReplyPrompt means fields are still missing; Missing lists them in the
	// order they should be supplied.
	ReplyPrompt
	// ReplyOutcome means an operation completed and Outcome carries its
	// result. The session is idle again.
	ReplyOutcome
)

// Reply is the engine's answer for one utterance.
type Reply struct {
	Kind      ReplyKind
	Operation string
	Missing   []string
	Prompt    string // descriptor prompt override, empty for the default
	Outcome   *ops.Outcome
}

// Engine drives the per-turn decision: classify fresh utterances, merge
// follow-up answers into the operation in progress, and dispatch handlers
// once the field set is complete. The engine itself is stateless; all
// conversation state lives in the State passed per call, so one engine
// serves every session.
type Engine struct {
	classifier intent.Classifier
	registry   *Registry
}

func NewEngine(classifier intent.Classifier, registry *Registry) *Engine {
	return &Engine{classifier: classifier, registry: registry}
}

// HandleUtterance advances one session by one turn. The caller must not use
// the same State concurrently.
func (e *Engine) HandleUtterance(ctx context.Context, st *State, utterance string) *Reply {
	if st.Idle() {
		return e.startOperation(ctx, st, utterance)
	}
	return e.continueOperation(ctx, st, utterance)
}

// startOperation classifies a fresh utterance. An unknown intent leaves the
// state untouched, so repeated unrecognized input stays idle.
func (e *Engine) startOperation(ctx context.Context, st *State, utterance string) *Reply {
	guess := e.classifier.Classify(ctx, utterance)
	if guess.IsUnknown() {
		return &Reply{Kind: ReplyClarify}
	}
	d, ok := e.registry.Get(guess.Operation)
	if !ok {
		slog.WarnContext(ctx, "classifier produced an unregistered operation", "operation", guess.Operation)
		return &Reply{Kind: ReplyClarify}
	}

	st.Active = d.Name
	for field, value := range guess.Fields {
		value = strings.TrimSpace(value)
		if value != "" && d.Allows(field) {
			st.Fields[field] = value
		}
	}
	return e.checkCompletion(ctx, st, d)
}

// continueOperation merges a follow-up answer into the fields gathered so
// far. With exactly one field outstanding the whole utterance is its value,
// commas included. With several outstanding the utterance is split on commas
// and the pieces fill the missing fields positionally; extra pieces are
// dropped. Already-set fields are never overwritten.
func (e *Engine) continueOperation(ctx context.Context, st *State, utterance string) *Reply {
	d, ok := e.registry.Get(st.Active)
	if !ok {
		op := st.Active
		st.Reset()
		slog.ErrorContext(ctx, "operation in progress is no longer registered", "operation", op)
		return &Reply{
			Kind:      ReplyOutcome,
			Operation: op,
			Outcome:   faultOutcome(),
		}
	}

	missing := d.Missing(st.Fields)
	if len(missing) == 1 && st.Awaiting != "" {
		st.Fields[st.Awaiting] = strings.TrimSpace(utterance)
	} else {
		values := splitValues(utterance)
		for i, v := range values {
			if i >= len(missing) {
				break
			}
			st.Fields[missing[i]] = v
		}
	}
	return e.checkCompletion(ctx, st, d)
}

// checkCompletion either prompts for what is still missing or dispatches the
// handler. Dispatch always resets the state, whatever the handler does.
func (e *Engine) checkCompletion(ctx context.Context, st *State, d *Descriptor) *Reply {
	missing := d.Missing(st.Fields)
	if len(missing) > 0 {
		st.Awaiting = missing[0]
		return &Reply{
			Kind:      ReplyPrompt,
			Operation: d.Name,
			Missing:   missing,
			Prompt:    d.Prompt,
		}
	}

	fields := make(map[string]string, len(st.Fields))
	for k, v := range st.Fields {
		fields[k] = v
	}
	st.Reset()

	outcome, err := e.dispatch(ctx, d, fields)
	if err != nil {
		slog.ErrorContext(ctx, "operation handler failed", "operation", d.Name, "error", err)
		outcome = faultOutcome()
	}
	return &Reply{
		Kind:      ReplyOutcome,
		Operation: d.Name,
		Outcome:   outcome,
	}
}

// dispatch runs the handler, converting a panic into an error so a broken
// handler cannot take the session down with it.
func (e *Engine) dispatch(ctx context.Context, d *Descriptor, fields map[string]string) (outcome *ops.Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return d.Handler(ctx, fields)
}

func faultOutcome() *ops.Outcome {
	return &ops.Outcome{
		Status:  ops.StatusFault,
		Message: "Something went wrong while processing your request. Please try again.",
	}
}

// splitValues splits a comma-separated answer into trimmed, non-empty
// pieces.
func splitValues(text string) []string {
	parts := strings.Split(text, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}
