package session

import "sync"

// FrameSource supplies the most recent video frame, or nil when no frame
// is available yet.
type FrameSource interface {
	Latest() []byte
}

// FrameBuffer is a newest-wins frame slot fed by the browser WebSocket.
// Older frames are simply overwritten; the sampler only ever wants the
// current one.
type FrameBuffer struct {
	mu    sync.Mutex
	frame []byte
}

func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{}
}

func (b *FrameBuffer) Set(frame []byte) {
	b.mu.Lock()
	b.frame = frame
	b.mu.Unlock()
}

func (b *FrameBuffer) Latest() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frame
}
