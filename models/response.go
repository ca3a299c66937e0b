package models

// ResponseRecord is the terminal summary persisted once an interview call
// ends. It is written at most once per call session.
type ResponseRecord struct {
	InterviewID    string `json:"interview_id" firestore:"interview_id"`
	CallID         string `json:"call_id" firestore:"call_id"`
	TabSwitchCount int    `json:"tab_switch_count" firestore:"tab_switch_count"`
	Emotion        string `json:"emotion" firestore:"emotion"`
	IsEnded        bool   `json:"is_ended" firestore:"is_ended"`
}
