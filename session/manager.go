package session

import (
	"context"
	"log"
	"sync"
	"time"
)

// Manager is the registry of live sessions keyed by call id. Only one
// session exists per call; stale sessions that stopped receiving events
// are finalized by a periodic sweep so their summaries are not lost.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	idleTimeout time.Duration
	stop        chan struct{}
	stopOnce    sync.Once
}

func NewManager(idleTimeout time.Duration) *Manager {
	return &Manager{
		sessions:    make(map[string]*Session),
		idleTimeout: idleTimeout,
		stop:        make(chan struct{}),
	}
}

func (m *Manager) Add(s *Session) {
	m.mu.Lock()
	m.sessions[s.CallID] = s
	m.mu.Unlock()
}

func (m *Manager) Get(callID string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[callID]
	return s, ok
}

func (m *Manager) Remove(callID string) {
	m.mu.Lock()
	delete(m.sessions, callID)
	m.mu.Unlock()
}

// Sweep periodically finalizes sessions idle past the threshold. Run on
// its own goroutine; returns when Stop is called.
func (m *Manager) Sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.sweepOnce()
		}
	}
}

func (m *Manager) sweepOnce() {
	threshold := time.Now().Add(-m.idleTimeout)

	m.mu.Lock()
	var stale []*Session
	for id, s := range m.sessions {
		if s.IdleSince().Before(threshold) {
			stale = append(stale, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range stale {
		log.Printf("finalizing idle call %s", s.CallID)
		s.HandleEnded(context.Background())
	}
}

// Stop halts the sweep loop and tears down every remaining session.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })

	m.mu.Lock()
	remaining := make([]*Session, 0, len(m.sessions))
	for id, s := range m.sessions {
		remaining = append(remaining, s)
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	for _, s := range remaining {
		s.DetachVideo()
	}
}
