package services

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/Aman-parjapati/Ai-interview-platform/models"
)

// WatcherClient is one browser connection watching a call. Outbound
// session updates are queued on Send and drained by WritePump.
type WatcherClient struct {
	CallID string
	Conn   *websocket.Conn
	Send   chan []byte
}

// SessionHub fans session updates out to the browser connections
// watching each call.
type SessionHub struct {
	mu      sync.RWMutex
	byCall  map[string][]*WatcherClient
	clients map[*WatcherClient]bool
}

func NewSessionHub() *SessionHub {
	return &SessionHub{
		byCall:  make(map[string][]*WatcherClient),
		clients: make(map[*WatcherClient]bool),
	}
}

// Attach registers a connection for a call and returns the client whose
// WritePump the caller must run.
func (h *SessionHub) Attach(callID string, conn *websocket.Conn) *WatcherClient {
	client := &WatcherClient{
		CallID: callID,
		Conn:   conn,
		Send:   make(chan []byte, 16),
	}

	h.mu.Lock()
	h.clients[client] = true
	h.byCall[callID] = append(h.byCall[callID], client)
	h.mu.Unlock()

	return client
}

// Detach removes a connection and closes its send queue.
func (h *SessionHub) Detach(client *WatcherClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.detachLocked(client)
}

func (h *SessionHub) detachLocked(client *WatcherClient) {
	if !h.clients[client] {
		return
	}
	delete(h.clients, client)
	close(client.Send)

	watchers := h.byCall[client.CallID]
	for i, c := range watchers {
		if c == client {
			h.byCall[client.CallID] = append(watchers[:i], watchers[i+1:]...)
			break
		}
	}
	if len(h.byCall[client.CallID]) == 0 {
		delete(h.byCall, client.CallID)
	}
}

// Broadcast pushes a session update to every watcher of the call. A
// watcher with a full queue is dropped rather than blocking the session.
func (h *SessionHub) Broadcast(update models.SessionUpdate) {
	data, err := json.Marshal(update)
	if err != nil {
		log.Printf("Error marshaling session update: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	var stalled []*WatcherClient
	for _, client := range h.byCall[update.CallID] {
		select {
		case client.Send <- data:
		default:
			stalled = append(stalled, client)
		}
	}
	for _, client := range stalled {
		log.Printf("Dropping slow watcher for call %s", client.CallID)
		h.detachLocked(client)
	}
}

// WritePump drains the send queue onto the websocket connection. Runs on
// its own goroutine per client.
func (c *WatcherClient) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			// The hub closed the channel
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("Error writing to WebSocket: %v", err)
			return
		}
	}
}
