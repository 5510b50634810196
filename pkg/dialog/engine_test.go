package dialog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hrdesk/pkg/intent"
	"hrdesk/pkg/ops"
)

// scriptedClassifier returns a fixed intent per utterance and Unknown for
// everything else.
type scriptedClassifier struct {
	script map[string]intent.Intent
}

func (c *scriptedClassifier) Classify(_ context.Context, utterance string) intent.Intent {
	if guess, ok := c.script[utterance]; ok {
		return guess
	}
	return intent.Unknown()
}

// capturingHandler records the field set it was dispatched with.
type capturingHandler struct {
	fields map[string]string
	calls  int
	err    error
}

func (h *capturingHandler) handle(_ context.Context, fields map[string]string) (*ops.Outcome, error) {
	h.calls++
	h.fields = fields
	if h.err != nil {
		return nil, h.err
	}
	return &ops.Outcome{Status: ops.StatusSuccess, Message: "done"}, nil
}

func newTestEngine(t *testing.T, script map[string]intent.Intent) (*Engine, *capturingHandler, *capturingHandler) {
	t.Helper()
	register := &capturingHandler{}
	assign := &capturingHandler{}
	reg := NewRegistry()
	descriptors := []*Descriptor{
		{
			Name:     intent.OpRegisterEmployee,
			Required: []string{intent.FieldName, intent.FieldEmail, intent.FieldDepartment},
			Handler:  register.handle,
		},
		{
			Name: intent.OpAssignWorkingHours,
			Required: []string{
				intent.FieldEmployeeID, intent.FieldDate,
				intent.FieldStartTime, intent.FieldEndTime,
			},
			Handler: assign.handle,
		},
		{
			Name:     intent.OpFindEmployee,
			Optional: []string{intent.FieldEmployeeID, intent.FieldName},
			MissingFunc: func(fields map[string]string) []string {
				if strings.TrimSpace(fields[intent.FieldEmployeeID]) != "" ||
					strings.TrimSpace(fields[intent.FieldName]) != "" {
					return nil
				}
				return []string{intent.FieldName}
			},
			Prompt:  "Please provide an employee ID or a name.",
			Handler: register.handle,
		},
	}
	for _, d := range descriptors {
		if err := reg.Register(d); err != nil {
			t.Fatalf("register descriptor %s: %v", d.Name, err)
		}
	}
	return NewEngine(&scriptedClassifier{script: script}, reg), register, assign
}

func TestUnknownUtteranceLeavesStateIdle(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)
	st := NewState()

	for i := 0; i < 3; i++ {
		reply := e.HandleUtterance(context.Background(), st, "mumble")
		if reply.Kind != ReplyClarify {
			t.Fatalf("turn %d: got kind %v, want ReplyClarify", i, reply.Kind)
		}
		if !st.Idle() || len(st.Fields) != 0 || st.Awaiting != "" {
			t.Fatalf("turn %d: state not idle: %+v", i, st)
		}
	}
}

func TestFreshIntentSeedsFieldsAndPromptsInOrder(t *testing.T) {
	e, _, _ := newTestEngine(t, map[string]intent.Intent{
		"register alice": intent.New(intent.OpRegisterEmployee,
			map[string]string{intent.FieldName: "Alice"}),
	})
	st := NewState()

	reply := e.HandleUtterance(context.Background(), st, "register alice")
	if reply.Kind != ReplyPrompt {
		t.Fatalf("got kind %v, want ReplyPrompt", reply.Kind)
	}
	want := []string{intent.FieldEmail, intent.FieldDepartment}
	if len(reply.Missing) != len(want) {
		t.Fatalf("missing = %v, want %v", reply.Missing, want)
	}
	for i, f := range want {
		if reply.Missing[i] != f {
			t.Fatalf("missing = %v, want %v", reply.Missing, want)
		}
	}
	if st.Awaiting != intent.FieldEmail {
		t.Fatalf("awaiting = %q, want %q", st.Awaiting, intent.FieldEmail)
	}
	if st.Fields[intent.FieldName] != "Alice" {
		t.Fatalf("seeded fields = %v", st.Fields)
	}
}

func TestCommaSeparatedAnswerFillsMissingPositionally(t *testing.T) {
	e, register, _ := newTestEngine(t, map[string]intent.Intent{
		"register someone": intent.New(intent.OpRegisterEmployee, nil),
	})
	st := NewState()
	ctx := context.Background()

	e.HandleUtterance(ctx, st, "register someone")
	reply := e.HandleUtterance(ctx, st, "Alice, alice@example.com")
	if reply.Kind != ReplyPrompt {
		t.Fatalf("got kind %v, want ReplyPrompt", reply.Kind)
	}
	if len(reply.Missing) != 1 || reply.Missing[0] != intent.FieldDepartment {
		t.Fatalf("missing = %v, want [department]", reply.Missing)
	}

	reply = e.HandleUtterance(ctx, st, "IT")
	if reply.Kind != ReplyOutcome {
		t.Fatalf("got kind %v, want ReplyOutcome", reply.Kind)
	}
	if register.calls != 1 {
		t.Fatalf("handler calls = %d, want 1", register.calls)
	}
	got := register.fields
	if got[intent.FieldName] != "Alice" ||
		got[intent.FieldEmail] != "alice@example.com" ||
		got[intent.FieldDepartment] != "IT" {
		t.Fatalf("dispatched fields = %v", got)
	}
	if !st.Idle() {
		t.Fatalf("state not reset after dispatch: %+v", st)
	}
}

func TestMultiStepFillAcrossSeveralTurns(t *testing.T) {
	e, _, assign := newTestEngine(t, map[string]intent.Intent{
		"assign hours": intent.New(intent.OpAssignWorkingHours, nil),
	})
	st := NewState()
	ctx := context.Background()

	e.HandleUtterance(ctx, st, "assign hours")
	e.HandleUtterance(ctx, st, "5, 2024-01-01")
	reply := e.HandleUtterance(ctx, st, "09:00, 17:00")
	if reply.Kind != ReplyOutcome {
		t.Fatalf("got kind %v, want ReplyOutcome", reply.Kind)
	}
	got := assign.fields
	if got[intent.FieldEmployeeID] != "5" || got[intent.FieldDate] != "2024-01-01" ||
		got[intent.FieldStartTime] != "09:00" || got[intent.FieldEndTime] != "17:00" {
		t.Fatalf("dispatched fields = %v", got)
	}
}

func TestSingleMissingFieldTakesWholeUtterance(t *testing.T) {
	e, register, _ := newTestEngine(t, map[string]intent.Intent{
		"register partial": intent.New(intent.OpRegisterEmployee, map[string]string{
			intent.FieldEmail:      "smith@example.com",
			intent.FieldDepartment: "HR",
		}),
	})
	st := NewState()
	ctx := context.Background()

	e.HandleUtterance(ctx, st, "register partial")
	// Only name is missing; the comma belongs to the value.
	e.HandleUtterance(ctx, st, "Smith, John")
	if register.calls != 1 {
		t.Fatalf("handler calls = %d, want 1", register.calls)
	}
	if register.fields[intent.FieldName] != "Smith, John" {
		t.Fatalf("name = %q, want %q", register.fields[intent.FieldName], "Smith, John")
	}
}

func TestExtraAnswerPiecesAreDropped(t *testing.T) {
	e, register, _ := newTestEngine(t, map[string]intent.Intent{
		"register someone": intent.New(intent.OpRegisterEmployee, nil),
	})
	st := NewState()
	ctx := context.Background()

	e.HandleUtterance(ctx, st, "register someone")
	reply := e.HandleUtterance(ctx, st, "Alice, alice@example.com, IT, extra, more")
	if reply.Kind != ReplyOutcome {
		t.Fatalf("got kind %v, want ReplyOutcome", reply.Kind)
	}
	if register.fields[intent.FieldDepartment] != "IT" {
		t.Fatalf("department = %q, want IT", register.fields[intent.FieldDepartment])
	}
	if len(register.fields) != 3 {
		t.Fatalf("dispatched fields = %v, want exactly 3", register.fields)
	}
}

func TestDisjunctiveCompletionDispatchesOnEitherField(t *testing.T) {
	e, find, _ := newTestEngine(t, map[string]intent.Intent{
		"find someone": intent.New(intent.OpFindEmployee, nil),
		"find by id": intent.New(intent.OpFindEmployee,
			map[string]string{intent.FieldEmployeeID: "7"}),
	})
	ctx := context.Background()

	st := NewState()
	reply := e.HandleUtterance(ctx, st, "find by id")
	if reply.Kind != ReplyOutcome {
		t.Fatalf("id-only start: got kind %v, want ReplyOutcome", reply.Kind)
	}

	st = NewState()
	reply = e.HandleUtterance(ctx, st, "find someone")
	if reply.Kind != ReplyPrompt || reply.Prompt == "" {
		t.Fatalf("got kind %v prompt %q, want prompt override", reply.Kind, reply.Prompt)
	}
	reply = e.HandleUtterance(ctx, st, "Ravi")
	if reply.Kind != ReplyOutcome {
		t.Fatalf("after name supplied: got kind %v, want ReplyOutcome", reply.Kind)
	}
	if find.fields[intent.FieldName] != "Ravi" {
		t.Fatalf("dispatched fields = %v", find.fields)
	}
}

func TestHandlerErrorYieldsFaultAndResets(t *testing.T) {
	e, register, _ := newTestEngine(t, map[string]intent.Intent{
		"register broken": intent.New(intent.OpRegisterEmployee, map[string]string{
			intent.FieldName:       "Alice",
			intent.FieldEmail:      "alice@example.com",
			intent.FieldDepartment: "IT",
		}),
	})
	register.err = errors.New("db is down")
	st := NewState()

	reply := e.HandleUtterance(context.Background(), st, "register broken")
	if reply.Kind != ReplyOutcome {
		t.Fatalf("got kind %v, want ReplyOutcome", reply.Kind)
	}
	if reply.Outcome.Status != ops.StatusFault {
		t.Fatalf("status = %v, want StatusFault", reply.Outcome.Status)
	}
	if !st.Idle() {
		t.Fatalf("state not reset after fault: %+v", st)
	}
}

func TestHandlerPanicBecomesFault(t *testing.T) {
	reg := NewRegistry()
	err := reg.Register(&Descriptor{
		Name: intent.OpGreeting,
		Handler: func(context.Context, map[string]string) (*ops.Outcome, error) {
			panic("boom")
		},
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	e := NewEngine(&scriptedClassifier{script: map[string]intent.Intent{
		"hi": intent.New(intent.OpGreeting, nil),
	}}, reg)
	st := NewState()

	reply := e.HandleUtterance(context.Background(), st, "hi")
	if reply.Kind != ReplyOutcome || reply.Outcome.Status != ops.StatusFault {
		t.Fatalf("reply = %+v, want fault outcome", reply)
	}
	if !st.Idle() {
		t.Fatalf("state not reset after panic: %+v", st)
	}
}

func TestFollowupDoesNotReclassify(t *testing.T) {
	// "register someone" is classified as an intent, but once an operation is
	// in progress the same words must be taken as a field value.
	e, register, _ := newTestEngine(t, map[string]intent.Intent{
		"register someone": intent.New(intent.OpRegisterEmployee, nil),
	})
	st := NewState()
	ctx := context.Background()

	e.HandleUtterance(ctx, st, "register someone")
	e.HandleUtterance(ctx, st, "register someone")
	if st.Fields[intent.FieldName] != "register someone" {
		t.Fatalf("follow-up was not treated as a value: %v", st.Fields)
	}
	if register.calls != 0 {
		t.Fatalf("handler ran early, calls = %d", register.calls)
	}
}
