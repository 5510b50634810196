package handler

import (
	"fmt"
	"strings"

	"hrdesk/pkg/dialog"
	"hrdesk/pkg/intent"
	"hrdesk/pkg/ops"
)

// Presentation turns engine replies into the text a channel delivers. All
// user-visible wording lives here; the engine and the handlers stay
// presentation-free.
type Presentation struct{}

// Render flattens one engine reply into a message.
func (p Presentation) Render(reply *dialog.Reply) string {
	switch reply.Kind {
	case dialog.ReplyClarify:
		return p.Clarify()
	case dialog.ReplyPrompt:
		return p.Prompt(reply)
	default:
		return p.Outcome(reply)
	}
}

func (Presentation) Clarify() string {
	return "Sorry, I did not understand that. Say \"help\" to see what I can do."
}

// Prompt lists every field still missing, so the user can answer them all at
// once with comma-separated values or one at a time.
func (Presentation) Prompt(reply *dialog.Reply) string {
	if reply.Prompt != "" {
		return reply.Prompt
	}
	var b strings.Builder
	b.WriteString("Please provide the following details:\n")
	for _, field := range reply.Missing {
		b.WriteString("- ")
		b.WriteString(fieldLabel(field))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Outcome renders the handler result. Most outcomes are their message; a few
// carry structured payloads worth expanding.
func (Presentation) Outcome(reply *dialog.Reply) string {
	o := reply.Outcome
	if o == nil {
		return "Something went wrong while processing your request. Please try again."
	}
	switch {
	case o.Status == ops.StatusAmbiguous && len(o.Candidates) > 0:
		var b strings.Builder
		b.WriteString(o.Message)
		for _, c := range o.Candidates {
			fmt.Fprintf(&b, "\n- ID %d: %s (%s, %s)", c.ID, c.Name, c.Email, c.Department)
		}
		return b.String()
	case o.Ok() && reply.Operation == intent.OpFindEmployee && o.Employee != nil:
		e := o.Employee
		return fmt.Sprintf("Employee details:\n- ID: %d\n- Name: %s\n- Email: %s\n- Department: %s",
			e.ID, e.Name, e.Email, e.Department)
	default:
		return o.Message
	}
}

func (Presentation) Goodbye() string {
	return "Okay, request cancelled. Let me know if you need anything else."
}

func fieldLabel(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}
