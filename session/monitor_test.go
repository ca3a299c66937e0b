package session

import (
	"testing"

	"github.com/Aman-parjapati/Ai-interview-platform/models"
)

func TestMonitorCountsHiddenTransitionsOnly(t *testing.T) {
	m := NewTabSwitchMonitor()
	m.Arm()

	m.Observe(models.VisibilityHidden)
	m.Observe(models.VisibilityVisible)
	m.Observe(models.VisibilityHidden)
	m.Observe(models.VisibilityVisible)

	if got := m.Count(); got != 2 {
		t.Fatalf("expected 2 tab switches, got %d", got)
	}
}

func TestMonitorIgnoresEventsWhileDisarmed(t *testing.T) {
	m := NewTabSwitchMonitor()

	m.Observe(models.VisibilityHidden)
	if got := m.Count(); got != 0 {
		t.Fatalf("expected 0 before arming, got %d", got)
	}

	m.Arm()
	m.Observe(models.VisibilityHidden)
	m.Disarm()
	m.Observe(models.VisibilityHidden)

	if got := m.Count(); got != 1 {
		t.Fatalf("expected 1 after disarm, got %d", got)
	}
}

func TestMonitorReset(t *testing.T) {
	m := NewTabSwitchMonitor()
	m.Arm()
	m.Observe(models.VisibilityHidden)
	m.Reset()

	if got := m.Count(); got != 0 {
		t.Fatalf("expected 0 after reset, got %d", got)
	}
}
