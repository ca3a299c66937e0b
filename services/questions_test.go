package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type chatMockReply struct {
	content string
	status  int
}

func newChatMock(t *testing.T, reply chatMockReply, lastPrompt *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding completion request: %v", err)
		}
		if lastPrompt != nil && len(req.Messages) > 0 {
			*lastPrompt = req.Messages[0].Content
		}

		if reply.status != 0 && reply.status != http.StatusOK {
			w.WriteHeader(reply.status)
			w.Write([]byte(`{"error":{"message":"upstream error"}}`))
			return
		}

		resp := map[string]interface{}{
			"id":     "cmpl-1",
			"object": "chat.completion",
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"message":       map[string]string{"role": "assistant", "content": reply.content},
					"finish_reason": "stop",
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestGenerateQuestions(t *testing.T) {
	var prompt string
	ts := newChatMock(t, chatMockReply{content: "1. Tell me about Go interfaces."}, &prompt)
	defer ts.Close()

	gen := NewQuestionGenerator("test-key", ts.URL+"/v1", "llama-3.1-8b-instant")
	text, err := gen.Generate(context.Background(), GenerateQuestionsRequest{
		NumberOfQuestions: 3,
		Role:              "backend",
		Objective:         "Assess Go knowledge",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text == "" {
		t.Fatalf("expected non-empty text")
	}

	if !strings.Contains(prompt, "Generate 3 interview questions for a backend role.") {
		t.Fatalf("prompt missing count/role: %q", prompt)
	}
	if !strings.Contains(prompt, "Assess Go knowledge") {
		t.Fatalf("prompt missing objective: %q", prompt)
	}
}

func TestGenerateQuestionsDefaults(t *testing.T) {
	var prompt string
	ts := newChatMock(t, chatMockReply{content: "1. What is a goroutine?"}, &prompt)
	defer ts.Close()

	gen := NewQuestionGenerator("test-key", ts.URL+"/v1", "llama-3.1-8b-instant")
	if _, err := gen.Generate(context.Background(), GenerateQuestionsRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(prompt, "Generate 5 interview questions for a software role.") {
		t.Fatalf("defaults not applied: %q", prompt)
	}
	if !strings.Contains(prompt, "Assess candidate skills") {
		t.Fatalf("default objective not applied: %q", prompt)
	}
}

func TestGenerateQuestionsEmptyCompletionIsError(t *testing.T) {
	ts := newChatMock(t, chatMockReply{content: "   "}, nil)
	defer ts.Close()

	gen := NewQuestionGenerator("test-key", ts.URL+"/v1", "llama-3.1-8b-instant")
	if _, err := gen.Generate(context.Background(), GenerateQuestionsRequest{}); err == nil {
		t.Fatalf("expected error for empty completion")
	}
}

func TestGenerateQuestionsUpstreamFailure(t *testing.T) {
	ts := newChatMock(t, chatMockReply{status: http.StatusInternalServerError}, nil)
	defer ts.Close()

	gen := NewQuestionGenerator("test-key", ts.URL+"/v1", "llama-3.1-8b-instant")
	if _, err := gen.Generate(context.Background(), GenerateQuestionsRequest{}); err == nil {
		t.Fatalf("expected error on upstream failure")
	}
}
