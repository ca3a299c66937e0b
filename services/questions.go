package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// QuestionGenerator produces interview questions through an
// OpenAI-compatible chat-completions API (Groq in production).
type QuestionGenerator struct {
	client *openai.Client
	model  string
}

func NewQuestionGenerator(apiKey, baseURL, model string) *QuestionGenerator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &QuestionGenerator{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// GenerateQuestionsRequest is the inbound body of the generation
// endpoint. Zero values fall back to the documented defaults.
type GenerateQuestionsRequest struct {
	NumberOfQuestions int    `json:"numberOfQuestions"`
	Role              string `json:"role"`
	Objective         string `json:"objective"`
}

func (r *GenerateQuestionsRequest) applyDefaults() {
	if r.NumberOfQuestions <= 0 {
		r.NumberOfQuestions = 5
	}
	if r.Role == "" {
		r.Role = "software"
	}
	if r.Objective == "" {
		r.Objective = "Assess candidate skills"
	}
}

// Generate builds the interviewer prompt and returns the raw completion
// text. An empty completion is an error, not a success.
func (g *QuestionGenerator) Generate(ctx context.Context, req GenerateQuestionsRequest) (string, error) {
	req.applyDefaults()

	prompt := fmt.Sprintf(`You are an AI interviewer.

Generate %d interview questions for a %s role.

Objective:
%s

Return ONLY a numbered list of questions.`, req.NumberOfQuestions, req.Role, req.Objective)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: prompt}},
		Temperature: 0.7,
		MaxTokens:   400,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("empty AI response")
	}
	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return "", errors.New("empty AI response")
	}

	return text, nil
}
