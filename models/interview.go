package models

import "time"

// Question is a single interview question shown to the candidate.
type Question struct {
	ID       string `json:"id" firestore:"id"`
	Question string `json:"question" firestore:"question"`
}

// Interview represents an interview definition created ahead of time.
type Interview struct {
	ID            string     `json:"id" firestore:"id"`
	Name          string     `json:"name" firestore:"name"`
	Objective     string     `json:"objective,omitempty" firestore:"objective,omitempty"`
	InterviewerID string     `json:"interviewer_id" firestore:"interviewer_id"`
	Questions     []Question `json:"questions" firestore:"questions"`
	CreatedAt     time.Time  `json:"created_at,omitempty" firestore:"created_at,omitempty"`
}
