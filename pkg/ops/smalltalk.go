package ops

import "context"

const helpText = `I can help you with the following:
- Register a new employee (name, email, department)
- Find an employee by ID or name
- Assign working hours for a date
- Show attendance for a date
- Generate a daily work report
- Answer HR policy questions

Just tell me what you need, for example "register a new employee" or
"what is the leave policy".`

// Greeting and Help have no fields to collect; they complete immediately
// with a canned reply.

func Greeting(ctx context.Context, fields map[string]string) (*Outcome, error) {
	return &Outcome{
		Status:  StatusSuccess,
		Message: "Hello! I am the HR assistant. How can I help you today?",
	}, nil
}

func Help(ctx context.Context, fields map[string]string) (*Outcome, error) {
	return &Outcome{Status: StatusSuccess, Message: helpText}, nil
}
