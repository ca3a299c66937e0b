package models

import (
	"errors"
	"testing"
)

func TestParseCallEvent(t *testing.T) {
	ev, err := ParseCallEvent([]byte(`{"event":"call_started","call_id":"C1"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Event != EventCallStarted || ev.CallID != "C1" {
		t.Fatalf("unexpected event: %+v", ev)
	}

	ev, err = ParseCallEvent([]byte(`{"event":"transcript_update","call_id":"C1","transcript":[{"role":"user","content":"hi"}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ev.Transcript) != 1 || ev.Transcript[0].Role != RoleUser {
		t.Fatalf("unexpected transcript: %+v", ev.Transcript)
	}
}

func TestParseCallEventRejectsMalformedPayloads(t *testing.T) {
	cases := []string{
		`not json`,
		`{"event":"call_started"}`,
		`{"event":"warp_drive","call_id":"C1"}`,
		`{"event":"transcript_update","call_id":"C1"}`,
		`{"event":"transcript_update","call_id":"C1","transcript":[{"role":"narrator","content":"x"}]}`,
	}
	for _, payload := range cases {
		if _, err := ParseCallEvent([]byte(payload)); err == nil {
			t.Fatalf("expected error for %s", payload)
		} else if !errors.Is(err, ErrMalformedEvent) {
			t.Fatalf("expected ErrMalformedEvent for %s, got %v", payload, err)
		}
	}
}
