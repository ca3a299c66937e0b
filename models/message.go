package models

// SessionUpdate is pushed to frontend clients whenever the call session
// state changes (status, latest transcript slots, current emotion).
type SessionUpdate struct {
	Type           string `json:"type"`
	CallID         string `json:"call_id"`
	Status         string `json:"status"`
	LastAgentText  string `json:"last_agent_text"`
	LastUserText   string `json:"last_user_text"`
	Emotion        string `json:"emotion"`
	TabSwitchCount int    `json:"tab_switch_count"`
}

// ClientEvent is a text message sent by the browser over the session
// WebSocket. Currently only visibility changes are delivered this way;
// video frames arrive as binary messages.
type ClientEvent struct {
	Type  string `json:"type"`
	State string `json:"state,omitempty"`
}

// Visibility states reported by the browser.
const (
	VisibilityHidden  = "hidden"
	VisibilityVisible = "visible"
)
