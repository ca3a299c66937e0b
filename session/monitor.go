package session

import (
	"sync"

	"github.com/Aman-parjapati/Ai-interview-platform/models"
)

// TabSwitchMonitor counts visible-to-hidden transitions of the hosting
// browser tab. It only counts while armed, i.e. between the Active and
// Ended transitions of the owning session.
type TabSwitchMonitor struct {
	mu    sync.Mutex
	armed bool
	count int
}

func NewTabSwitchMonitor() *TabSwitchMonitor {
	return &TabSwitchMonitor{}
}

func (m *TabSwitchMonitor) Arm() {
	m.mu.Lock()
	m.armed = true
	m.mu.Unlock()
}

func (m *TabSwitchMonitor) Disarm() {
	m.mu.Lock()
	m.armed = false
	m.mu.Unlock()
}

// Observe processes a visibility state reported by the browser. Only the
// hidden transition increments the count; shown transitions and any
// events outside the armed window are ignored.
func (m *TabSwitchMonitor) Observe(state string) {
	if state != models.VisibilityHidden {
		return
	}
	m.mu.Lock()
	if m.armed {
		m.count++
	}
	m.mu.Unlock()
}

func (m *TabSwitchMonitor) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}

func (m *TabSwitchMonitor) Reset() {
	m.mu.Lock()
	m.count = 0
	m.mu.Unlock()
}
