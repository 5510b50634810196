package dialog

import "sync"

// Manager hands out per-session state, creating it on first use. Session
// keys come from api.SessionContext.Key, so every channel/user pair gets its
// own independent conversation.
type Manager struct {
	mu     sync.RWMutex
	states map[string]*State
}

func NewManager() *Manager {
	return &Manager{states: map[string]*State{}}
}

func (m *Manager) Get(key string) *State {
	m.mu.RLock()
	st, ok := m.states[key]
	m.mu.RUnlock()
	if ok {
		return st
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if st, ok = m.states[key]; ok {
		return st
	}
	st = NewState()
	m.states[key] = st
	return st
}

// Reset drops a session's state entirely.
func (m *Manager) Reset(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, key)
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.states)
}
