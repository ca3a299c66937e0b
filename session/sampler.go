package session

import (
	"context"
	"log"
	"time"

	"github.com/Aman-parjapati/Ai-interview-platform/models"
)

// Classifier runs face detection plus expression classification on a
// single frame. ok is false when no face was found.
type Classifier interface {
	Classify(ctx context.Context, frame []byte) (expr models.Expressions, ok bool, err error)
}

// Sampler polls the frame source at a fixed cadence, classifies the
// current frame and reports the dominant emotion (or "" for a tick with
// no face or a failed classification). Classification runs inline on the
// ticker loop, so a slow classifier drops ticks instead of stacking
// overlapping requests.
type Sampler struct {
	interval   time.Duration
	frames     FrameSource
	classifier Classifier
	onSample   func(label string)

	stop chan struct{}
	done chan struct{}
}

func NewSampler(interval time.Duration, frames FrameSource, classifier Classifier, onSample func(label string)) *Sampler {
	return &Sampler{
		interval:   interval,
		frames:     frames,
		classifier: classifier,
		onSample:   onSample,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Run blocks until Stop is called. Callers run it on its own goroutine.
func (s *Sampler) Run() {
	defer close(s.done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sampleOnce()
		}
	}
}

// Stop cancels the sampler and waits for the loop to exit. Safe to call
// at most once; Session guards re-entry.
func (s *Sampler) Stop() {
	close(s.stop)
	<-s.done
}

func (s *Sampler) sampleOnce() {
	frame := s.frames.Latest()
	if frame == nil {
		s.onSample("")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.interval*4)
	defer cancel()

	expr, ok, err := s.classifier.Classify(ctx, frame)
	if err != nil {
		// Classifier failures must never take down the call.
		log.Printf("emotion classification failed: %v", err)
		s.onSample("")
		return
	}
	if !ok {
		s.onSample("")
		return
	}
	s.onSample(DominantEmotion(expr))
}
