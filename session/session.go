package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Aman-parjapati/Ai-interview-platform/models"
)

// Status is the lifecycle state of a call session. Ended is terminal.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusActive     Status = "active"
	StatusEnded      Status = "ended"
)

// ResponseStore persists the terminal summary of a finished call.
type ResponseStore interface {
	SaveResponse(ctx context.Context, rec models.ResponseRecord) (string, error)
}

// Session tracks one interview call from registration to completion. All
// external inputs (webhook events, browser frames, visibility changes)
// funnel through its methods; the terminal summary is written exactly
// once, on the Active -> Ended transition.
type Session struct {
	InterviewID string
	CallID      string

	mu           sync.Mutex
	status       Status
	startedAt    time.Time
	endedAt      time.Time
	lastActivity time.Time

	lastAgentText  string
	lastUserText   string
	currentEmotion string

	emotions *EmotionSet
	monitor  *TabSwitchMonitor
	frames   *FrameBuffer

	classifier     Classifier
	sampleInterval time.Duration
	sampler        *Sampler

	store    ResponseStore
	reported bool

	onUpdate func(models.SessionUpdate)
}

// New creates a session in the NotStarted state. classifier may be nil,
// in which case no emotion sampling happens and the summary carries an
// empty emotion list.
func New(interviewID, callID string, store ResponseStore, classifier Classifier, sampleInterval time.Duration) *Session {
	return &Session{
		InterviewID:    interviewID,
		CallID:         callID,
		status:         StatusNotStarted,
		lastActivity:   time.Now(),
		emotions:       NewEmotionSet(),
		monitor:        NewTabSwitchMonitor(),
		frames:         NewFrameBuffer(),
		classifier:     classifier,
		sampleInterval: sampleInterval,
		store:          store,
	}
}

// SetUpdateFunc registers the callback invoked with a fresh snapshot
// after every observable state change. Must be set before events flow.
func (s *Session) SetUpdateFunc(f func(models.SessionUpdate)) {
	s.mu.Lock()
	s.onUpdate = f
	s.mu.Unlock()
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// HandleStarted moves the session to Active and arms the tab-switch
// monitor. Any other starting state is ignored.
func (s *Session) HandleStarted() {
	s.mu.Lock()
	if s.status != StatusNotStarted {
		s.mu.Unlock()
		return
	}
	s.status = StatusActive
	s.startedAt = time.Now()
	s.lastActivity = s.startedAt
	s.mu.Unlock()

	s.monitor.Arm()
	s.broadcast()
}

// HandleTranscript overwrites the per-speaker "last text" slots from a
// transcript update. An update carrying only one speaker leaves the
// other slot untouched.
func (s *Session) HandleTranscript(turns []models.Turn) {
	s.mu.Lock()
	if s.status != StatusActive {
		s.mu.Unlock()
		return
	}
	for _, t := range turns {
		switch t.Role {
		case models.RoleAgent:
			s.lastAgentText = t.Content
		case models.RoleUser:
			s.lastUserText = t.Content
		}
	}
	s.lastActivity = time.Now()
	s.mu.Unlock()

	s.broadcast()
}

// HandleEnded moves the session to its terminal state, releases the
// sampler and monitor, and submits the summary. Idempotent: a second end
// signal is a no-op and nothing is ever submitted twice. Store failures
// are logged, not retried; the session stays Ended.
func (s *Session) HandleEnded(ctx context.Context) {
	s.mu.Lock()
	if s.status == StatusEnded {
		s.mu.Unlock()
		return
	}
	s.status = StatusEnded
	s.endedAt = time.Now()

	report := !s.reported && s.CallID != ""
	if report {
		s.reported = true
	}
	rec := models.ResponseRecord{
		InterviewID:    s.InterviewID,
		CallID:         s.CallID,
		TabSwitchCount: s.monitor.Count(),
		Emotion:        s.emotions.Joined(),
		IsEnded:        true,
	}
	noCallID := s.CallID == ""
	s.mu.Unlock()

	s.monitor.Disarm()
	s.DetachVideo()

	if noCallID {
		log.Printf("[ERROR] call ended for interview %s with no call id, summary not reported", s.InterviewID)
	} else if report {
		if _, err := s.store.SaveResponse(ctx, rec); err != nil {
			log.Printf("[ERROR] saving response for call %s: %v", s.CallID, err)
		}
	}

	s.broadcast()
}

// ObserveEmotion receives the sampler output for one tick. An empty
// label clears the current-emotion display; distinct non-empty labels
// accumulate for the summary.
func (s *Session) ObserveEmotion(label string) {
	s.emotions.Add(label)

	s.mu.Lock()
	changed := s.currentEmotion != label
	s.currentEmotion = label
	s.mu.Unlock()

	if changed {
		s.broadcast()
	}
}

// ObserveVisibility forwards a browser visibility event to the monitor.
func (s *Session) ObserveVisibility(state string) {
	s.monitor.Observe(state)
	if state == models.VisibilityHidden {
		s.broadcast()
	}
}

// SubmitFrame stores the newest video frame for the sampler.
func (s *Session) SubmitFrame(frame []byte) {
	s.frames.Set(frame)
	s.mu.Lock()
	s.lastActivity = time.Now()
	s.mu.Unlock()
}

// AttachVideo starts the emotion sampler. Called when the browser opens
// its WebSocket; a reconnect gets a fresh sampler.
func (s *Session) AttachVideo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.classifier == nil || s.sampler != nil || s.status == StatusEnded {
		return
	}
	s.sampler = NewSampler(s.sampleInterval, s.frames, s.classifier, s.ObserveEmotion)
	go s.sampler.Run()
}

// DetachVideo stops the sampler if it is running.
func (s *Session) DetachVideo() {
	s.mu.Lock()
	sampler := s.sampler
	s.sampler = nil
	s.mu.Unlock()

	if sampler != nil {
		sampler.Stop()
	}
}

// TabSwitchCount exposes the monitor count for the current session.
func (s *Session) TabSwitchCount() int {
	return s.monitor.Count()
}

// Emotions exposes the accumulated distinct labels in first-seen order.
func (s *Session) Emotions() []string {
	return s.emotions.Labels()
}

// IdleSince reports the last time any activity touched the session.
func (s *Session) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// Snapshot renders the state pushed to frontend clients.
func (s *Session) Snapshot() models.SessionUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.SessionUpdate{
		Type:           "session_update",
		CallID:         s.CallID,
		Status:         string(s.status),
		LastAgentText:  s.lastAgentText,
		LastUserText:   s.lastUserText,
		Emotion:        s.currentEmotion,
		TabSwitchCount: s.monitor.Count(),
	}
}

func (s *Session) broadcast() {
	s.mu.Lock()
	f := s.onUpdate
	s.mu.Unlock()
	if f != nil {
		f(s.Snapshot())
	}
}
