// Package dialog implements the multi-turn conversation engine. A session
// holds one State; each utterance either starts an operation, supplies
// missing fields for the one in progress, or completes it and dispatches
// the handler. State always returns to idle after dispatch.
package dialog

// State is the per-session conversation state. Idle means no operation is in
// progress: Active is empty, Fields is empty and Awaiting is empty. While an
// operation is collecting fields, Active names it, Fields holds what has been
// gathered so far and Awaiting names the field the last prompt asked for.
type State struct {
	Active   string
	Fields   map[string]string
	Awaiting string
}

func NewState() *State {
	return &State{Fields: map[string]string{}}
}

func (s *State) Idle() bool {
	return s.Active == ""
}

// Reset returns the state to idle. Called unconditionally after every
// dispatch, successful or not, and on explicit cancellation.
func (s *State) Reset() {
	s.Active = ""
	s.Fields = map[string]string{}
	s.Awaiting = ""
}
