package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Call event names pushed by the call service.
const (
	EventCallStarted      = "call_started"
	EventCallEnded        = "call_ended"
	EventTranscriptUpdate = "transcript_update"
)

// Speaker roles in a transcript turn.
const (
	RoleAgent = "agent"
	RoleUser  = "user"
)

// Turn is a single message in the conversation.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CallEvent is a lifecycle event pushed by the call service webhook.
// Events are validated at the boundary; see ParseCallEvent.
type CallEvent struct {
	Event      string `json:"event"`
	CallID     string `json:"call_id"`
	Transcript []Turn `json:"transcript,omitempty"`
}

var ErrMalformedEvent = errors.New("malformed call event")

// ParseCallEvent decodes and validates a webhook payload. Unknown event
// names, missing call ids and transcript updates without turns are all
// rejected rather than probed around.
func ParseCallEvent(data []byte) (*CallEvent, error) {
	var ev CallEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if ev.CallID == "" {
		return nil, fmt.Errorf("%w: missing call_id", ErrMalformedEvent)
	}
	switch ev.Event {
	case EventCallStarted, EventCallEnded:
	case EventTranscriptUpdate:
		if len(ev.Transcript) == 0 {
			return nil, fmt.Errorf("%w: transcript_update without turns", ErrMalformedEvent)
		}
		for _, t := range ev.Transcript {
			if t.Role != RoleAgent && t.Role != RoleUser {
				return nil, fmt.Errorf("%w: unknown role %q", ErrMalformedEvent, t.Role)
			}
		}
	default:
		return nil, fmt.Errorf("%w: unknown event %q", ErrMalformedEvent, ev.Event)
	}
	return &ev, nil
}
