package intent

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// BaseSystemPrompt instructs a language model to answer with exactly one
// JSON object matching the guess schema. Models are told not to invent
// values; the HR flow is driven by explicit user input, never guessed times.
const BaseSystemPrompt = `Extract intent and entities from the user message.
Return ONLY valid JSON.
Do NOT explain anything.
Do NOT guess missing values.

Schema:
{
  "intent": null,
  "employee_id": null,
  "name": null,
  "email": null,
  "department": null,
  "date": null,
  "start_time": null,
  "end_time": null,
  "query": null
}

Valid intents:
register_employee
find_employee
assign_working_hours
attendance_info
daily_report
hr_policy
`

// PromptFor builds the system prompt for one utterance, appending the rule
// hint when there is one so small local models converge faster.
func PromptFor(utterance string) string {
	prompt := BaseSystemPrompt
	if hint := Hint(utterance); hint != "" {
		prompt += fmt.Sprintf("\nHint: intent is likely '%s'.", hint)
	}
	return prompt
}

// ExtractJSON cuts the first top-level JSON object out of noisy model output
// (leading prose, trailing markdown fences).
func ExtractJSON(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON object found in model output")
	}
	return text[start : end+1], nil
}

// Decode turns raw model output into a normalized Intent. The utterance is
// needed for normalization: hint override and the hr_policy query fallback.
func Decode(raw, utterance string) (Intent, error) {
	clean, err := ExtractJSON(raw)
	if err != nil {
		return Unknown(), err
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
		return Unknown(), fmt.Errorf("parse model JSON: %w", err)
	}

	op, _ := parsed["intent"].(string)

	fields := make(map[string]string)
	for key, val := range parsed {
		if key == "intent" {
			continue
		}
		if s := stringify(val); s != "" {
			fields[key] = s
		}
	}

	return Normalize(utterance, op, fields), nil
}

// Normalize applies the construction rules shared by every classifier
// provider: hint override, unknown-field rejection (via New), "today"
// resolution, and the hr_policy query fallback to the raw utterance.
func Normalize(utterance, op string, fields map[string]string) Intent {
	if hint := Hint(utterance); hint != "" {
		op = hint
	}

	if fields[FieldDate] == "today" {
		fields[FieldDate] = time.Now().Format("2006-01-02")
	}

	if op == OpHRPolicy && fields[FieldQuery] == "" {
		fields[FieldQuery] = utterance
	}

	return New(op, fields)
}

// stringify flattens a decoded JSON value to the string form the dialog core
// works with. Models frequently answer employee_id as a number.
func stringify(val any) string {
	switch v := val.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
