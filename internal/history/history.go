// Package history keeps the most recent submitted sentences in memory.
package history

import "sync"

// DefaultCapacity is the number of sentences kept when no capacity is given.
const DefaultCapacity = 5

// History is a fixed-capacity FIFO of sentences. Adding to a full History
// evicts the oldest entry. It is safe for concurrent use.
type History struct {
	mu    sync.Mutex
	buf   []string
	start int
	size  int
}

// New returns an empty History holding at most capacity entries.
// A capacity below 1 selects DefaultCapacity.
func New(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &History{buf: make([]string, capacity)}
}

// Add appends s, evicting the oldest entry when full.
func (h *History) Add(s string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.size < len(h.buf) {
		h.buf[(h.start+h.size)%len(h.buf)] = s
		h.size++
		return
	}
	h.buf[h.start] = s
	h.start = (h.start + 1) % len(h.buf)
}

// Snapshot returns a copy of the entries, oldest first.
func (h *History) Snapshot() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]string, h.size)
	for i := range h.size {
		out[i] = h.buf[(h.start+i)%len(h.buf)]
	}
	return out
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.size
}

func (h *History) Cap() int {
	return len(h.buf)
}
