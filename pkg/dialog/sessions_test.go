package dialog

import (
	"sync"
	"testing"
)

func TestManagerCreatesOneStatePerKey(t *testing.T) {
	m := NewManager()
	a := m.Get("console:local")
	b := m.Get("console:local")
	if a != b {
		t.Fatal("same key returned different states")
	}
	if m.Get("telegram:42") == a {
		t.Fatal("different keys share a state")
	}
	if m.Len() != 2 {
		t.Fatalf("len = %d, want 2", m.Len())
	}
}

func TestManagerResetDropsState(t *testing.T) {
	m := NewManager()
	st := m.Get("web:abc")
	st.Active = "register_employee"
	m.Reset("web:abc")
	if !m.Get("web:abc").Idle() {
		t.Fatal("state survived reset")
	}
}

func TestManagerConcurrentGet(t *testing.T) {
	m := NewManager()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Get("shared:key")
		}()
	}
	wg.Wait()
	if m.Len() != 1 {
		t.Fatalf("len = %d, want 1", m.Len())
	}
}
