package intent

import "strings"

// Hint applies light keyword rules to an utterance and returns the operation
// it most likely asks for, or "" when the rules are silent. Hints serve two
// masters: they steer the language-model prompt, and a non-empty hint
// overrides whatever operation the model answers with. Order matters.
func Hint(utterance string) string {
	text := strings.ToLower(strings.TrimSpace(utterance))

	switch text {
	case "hi", "hello", "hey", "hii":
		return OpGreeting
	}

	if containsAny(text, "service", "help", "what can you do") {
		return OpHelp
	}

	if strings.Contains(text, "register") && strings.Contains(text, "employee") {
		return OpRegisterEmployee
	}

	if containsAny(text,
		"find employee",
		"search employee",
		"look up employee",
		"who is employee",
	) {
		return OpFindEmployee
	}

	if containsAny(text,
		"start work",
		"worked on",
		"will work",
		"working hours",
		"set working",
		"assign working",
		"work from",
		"work at",
	) {
		return OpAssignWorkingHours
	}

	if containsAny(text,
		"attendance record",
		"attendance info",
		"working hour of",
		"work hours of",
	) {
		return OpAttendanceInfo
	}

	if containsAny(text,
		"daily report",
		"work report",
		"generate report",
		"show report",
	) {
		return OpDailyReport
	}

	if strings.Contains(text, "policy") {
		return OpHRPolicy
	}

	return ""
}

func containsAny(text string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
