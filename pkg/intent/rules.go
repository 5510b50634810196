package intent

import (
	"context"
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	dateRegex  = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
	timeRegex  = regexp.MustCompile(`\b(\d{1,2}:\d{2})\b`)
	idRegex    = regexp.MustCompile(`(?i)\b(?:employee|id)\s*#?\s*(\d+)\b`)
)

// Rules is the offline classifier: keyword rules for the operation, regular
// expressions for the obvious entities. It never needs a network and is the
// terminal fallback of every classifier chain, which keeps the system
// conversational when all language-model providers are down.
type Rules struct{}

// NewRules creates the rule-based classifier.
func NewRules() *Rules {
	return &Rules{}
}

func (r *Rules) Name() string {
	return "rules"
}

// IsTransientError implements Provider; rule evaluation never has transient
// failures.
func (r *Rules) IsTransientError(err error) bool {
	return false
}

// Classify implements Provider. It only answers when the keyword rules
// recognize an operation; entities are lifted opportunistically.
func (r *Rules) Classify(ctx context.Context, utterance string) (Intent, error) {
	op := Hint(utterance)
	if op == "" {
		return Unknown(), nil
	}

	fields := map[string]string{}

	if m := emailRegex.FindString(utterance); m != "" {
		fields[FieldEmail] = m
	}
	if m := dateRegex.FindStringSubmatch(utterance); m != nil {
		fields[FieldDate] = m[1]
	} else if strings.Contains(strings.ToLower(utterance), "today") {
		fields[FieldDate] = "today"
	}
	if m := idRegex.FindStringSubmatch(utterance); m != nil {
		fields[FieldEmployeeID] = m[1]
	}

	// First clock time is the start, second the end.
	if times := timeRegex.FindAllStringSubmatch(utterance, 2); len(times) > 0 {
		fields[FieldStartTime] = times[0][1]
		if len(times) > 1 {
			fields[FieldEndTime] = times[1][1]
		}
	}

	return Normalize(utterance, op, fields), nil
}
