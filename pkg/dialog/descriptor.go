package dialog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"hrdesk/pkg/ops"
)

// HandlerFunc runs an operation once all its fields are gathered. A returned
// error is a system fault; expected rejections travel inside the Outcome.
type HandlerFunc func(ctx context.Context, fields map[string]string) (*ops.Outcome, error)

// Descriptor declares one operation the engine can drive: which fields it
// needs, in which order to ask for them, and the handler to run when the set
// is complete.
type Descriptor struct {
	Name     string
	Required []string // asked for in this order
	Optional []string // accepted from the classifier, never prompted for

	// MissingFunc overrides the default required-minus-present computation
	// for operations whose completion rule is not a plain conjunction.
	MissingFunc func(fields map[string]string) []string

	// Prompt replaces the generated missing-field prompt when set.
	Prompt string

	Handler HandlerFunc
}

// Missing returns the fields still needed before dispatch, in prompt order.
// An empty result means the operation is ready to run.
func (d *Descriptor) Missing(fields map[string]string) []string {
	if d.MissingFunc != nil {
		return d.MissingFunc(fields)
	}
	var missing []string
	for _, f := range d.Required {
		if strings.TrimSpace(fields[f]) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// Allows reports whether the descriptor accepts a value for the given field.
func (d *Descriptor) Allows(field string) bool {
	for _, f := range d.Required {
		if f == field {
			return true
		}
	}
	for _, f := range d.Optional {
		if f == field {
			return true
		}
	}
	return false
}

// Registry maps operation names to descriptors.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[string]*Descriptor
}

func NewRegistry() *Registry {
	return &Registry{descriptors: map[string]*Descriptor{}}
}

func (r *Registry) Register(d *Descriptor) error {
	if d.Name == "" {
		return fmt.Errorf("descriptor has no name")
	}
	if d.Handler == nil {
		return fmt.Errorf("descriptor %s has no handler", d.Name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.descriptors[d.Name]; ok {
		return fmt.Errorf("descriptor %s already registered", d.Name)
	}
	r.descriptors[d.Name] = d
	return nil
}

func (r *Registry) Get(name string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.descriptors[name]
	return d, ok
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.descriptors))
	for name := range r.descriptors {
		names = append(names, name)
	}
	return names
}
