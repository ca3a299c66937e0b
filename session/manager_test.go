package session

import (
	"testing"
	"time"
)

func TestManagerAddGetRemove(t *testing.T) {
	m := NewManager(time.Minute)
	s := New("I1", "C1", &fakeStore{}, nil, 300*time.Millisecond)

	m.Add(s)
	got, ok := m.Get("C1")
	if !ok || got != s {
		t.Fatalf("expected to get back the registered session")
	}

	m.Remove("C1")
	if _, ok := m.Get("C1"); ok {
		t.Fatalf("session should be gone after Remove")
	}
}

func TestManagerSweepFinalizesIdleSessions(t *testing.T) {
	store := &fakeStore{}
	m := NewManager(time.Nanosecond)
	s := New("I1", "C1", store, nil, 300*time.Millisecond)
	s.HandleStarted()
	m.Add(s)

	time.Sleep(time.Millisecond)
	m.sweepOnce()

	if s.Status() != StatusEnded {
		t.Fatalf("idle session should be finalized, got %s", s.Status())
	}
	if len(store.records()) != 1 {
		t.Fatalf("finalized session should report its summary")
	}
	if _, ok := m.Get("C1"); ok {
		t.Fatalf("finalized session should leave the registry")
	}
}

func TestManagerSweepKeepsFreshSessions(t *testing.T) {
	m := NewManager(time.Hour)
	s := New("I1", "C1", &fakeStore{}, nil, 300*time.Millisecond)
	s.HandleStarted()
	m.Add(s)

	m.sweepOnce()

	if s.Status() != StatusActive {
		t.Fatalf("fresh session must survive the sweep, got %s", s.Status())
	}
}
