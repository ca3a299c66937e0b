package session

import (
	"strings"
	"sync"

	"github.com/Aman-parjapati/Ai-interview-platform/models"
)

// DominantEmotion reduces a classifier distribution to the single label
// with the strictly greatest score. The accumulator starts at
// ("neutral", 0), so an all-zero distribution yields "neutral" and ties
// are resolved by label enumeration order.
func DominantEmotion(e models.Expressions) string {
	best := "neutral"
	bestScore := 0.0
	for i, score := range e.Scores() {
		if score > bestScore {
			best = models.EmotionLabels[i]
			bestScore = score
		}
	}
	return best
}

// EmotionSet records every distinct dominant emotion observed during a
// session, in first-occurrence order. Append-only until Reset.
type EmotionSet struct {
	mu     sync.Mutex
	seen   map[string]bool
	labels []string
}

func NewEmotionSet() *EmotionSet {
	return &EmotionSet{seen: make(map[string]bool)}
}

// Add records a label if it has not been seen this session. Empty labels
// ("no sample" ticks) are ignored.
func (s *EmotionSet) Add(label string) {
	if label == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seen[label] {
		return
	}
	s.seen[label] = true
	s.labels = append(s.labels, label)
}

// Labels returns a copy of the accumulated labels in insertion order.
func (s *EmotionSet) Labels() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

// Joined renders the set for the final summary record.
func (s *EmotionSet) Joined() string {
	return strings.Join(s.Labels(), ", ")
}

func (s *EmotionSet) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen = make(map[string]bool)
	s.labels = nil
}
