package intent

import (
	"strings"
	"testing"
	"time"
)

func TestHint(t *testing.T) {
	cases := []struct {
		utterance string
		want      string
	}{
		{"hi", OpGreeting},
		{"Hello", OpGreeting},
		{"hi there", ""}, // greetings match whole utterances only
		{"what can you do", OpHelp},
		{"register a new employee", OpRegisterEmployee},
		{"find employee 5", OpFindEmployee},
		{"who is employee 5", OpFindEmployee},
		{"assign working hours for tomorrow", OpAssignWorkingHours},
		{"show attendance record of employee 2", OpAttendanceInfo},
		{"generate report for employee 3", OpDailyReport},
		{"what is the leave policy", OpHRPolicy},
		{"order a pizza", ""},
	}
	for _, c := range cases {
		if got := Hint(c.utterance); got != c.want {
			t.Errorf("Hint(%q) = %q, want %q", c.utterance, got, c.want)
		}
	}
}

func TestExtractJSON(t *testing.T) {
	raw := "Sure! Here is the result:\n```json\n{\"intent\": \"find_employee\"}\n```"
	got, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got != `{"intent": "find_employee"}` {
		t.Fatalf("got %q", got)
	}

	if _, err := ExtractJSON("no json here"); err == nil {
		t.Fatal("expected error for output without JSON")
	}
}

func TestDecodeModelOutput(t *testing.T) {
	raw := `{"intent": "register_employee", "name": "Alice", "email": "alice@example.com",
		"department": null, "employee_id": null}`
	guess, err := Decode(raw, "please register employee alice")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if guess.Operation != OpRegisterEmployee {
		t.Fatalf("operation = %q", guess.Operation)
	}
	if guess.Fields[FieldName] != "Alice" || guess.Fields[FieldEmail] != "alice@example.com" {
		t.Fatalf("fields = %v", guess.Fields)
	}
	if _, ok := guess.Fields[FieldDepartment]; ok {
		t.Fatal("null field survived decode")
	}
}

func TestDecodeNumericEmployeeID(t *testing.T) {
	raw := `{"intent": "find_employee", "employee_id": 7}`
	guess, err := Decode(raw, "find employee 7")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if guess.Fields[FieldEmployeeID] != "7" {
		t.Fatalf("employee_id = %q, want 7", guess.Fields[FieldEmployeeID])
	}
}

func TestNormalizeHintOverridesModelIntent(t *testing.T) {
	// The model answered the wrong operation; the keyword rules know better.
	guess := Normalize("generate report for employee 3", OpFindEmployee,
		map[string]string{FieldEmployeeID: "3"})
	if guess.Operation != OpDailyReport {
		t.Fatalf("operation = %q, want %q", guess.Operation, OpDailyReport)
	}
}

func TestNormalizeResolvesToday(t *testing.T) {
	guess := Normalize("attendance record of employee 2 for today", OpAttendanceInfo,
		map[string]string{FieldEmployeeID: "2", FieldDate: "today"})
	want := time.Now().Format("2006-01-02")
	if guess.Fields[FieldDate] != want {
		t.Fatalf("date = %q, want %q", guess.Fields[FieldDate], want)
	}
}

func TestNormalizePolicyQueryFallsBackToUtterance(t *testing.T) {
	utterance := "what is the sick leave policy"
	guess := Normalize(utterance, OpHRPolicy, map[string]string{})
	if guess.Fields[FieldQuery] != utterance {
		t.Fatalf("query = %q, want the raw utterance", guess.Fields[FieldQuery])
	}
}

func TestNormalizeDropsFieldsUnknownToOperation(t *testing.T) {
	guess := Normalize("find employee alice", OpFindEmployee, map[string]string{
		FieldName:      "alice",
		FieldStartTime: "09:00", // not a find_employee field
	})
	if _, ok := guess.Fields[FieldStartTime]; ok {
		t.Fatalf("foreign field survived: %v", guess.Fields)
	}
}

func TestPromptForMentionsHint(t *testing.T) {
	p := PromptFor("find employee 5")
	if !strings.Contains(p, OpFindEmployee) {
		t.Fatal("prompt is missing the rule hint")
	}
	if PromptFor("order a pizza") != BaseSystemPrompt {
		t.Fatal("hintless prompt should be the base prompt")
	}
}
