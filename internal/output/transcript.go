package output

import "sync"

// DefaultTranscriptLines is the on-screen transcript capacity when none is configured.
const DefaultTranscriptLines = 200

// Transcript is the bounded on-screen line buffer. When full, the oldest
// line is evicted first.
type Transcript struct {
	mu       sync.RWMutex
	lines    []string
	capacity int
}

// NewTranscript creates a transcript holding at most capacity lines.
func NewTranscript(capacity int) *Transcript {
	if capacity <= 0 {
		capacity = DefaultTranscriptLines
	}
	return &Transcript{
		lines:    make([]string, 0, capacity),
		capacity: capacity,
	}
}

// Append adds a line, evicting the oldest when at capacity.
func (t *Transcript) Append(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.lines) == t.capacity {
		copy(t.lines, t.lines[1:])
		t.lines = t.lines[:len(t.lines)-1]
	}
	t.lines = append(t.lines, line)
}

// Lines returns a copy of all lines, oldest first.
func (t *Transcript) Lines() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]string(nil), t.lines...)
}

// Tail returns up to n of the most recent lines, oldest first.
func (t *Transcript) Tail(n int) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n <= 0 || n > len(t.lines) {
		n = len(t.lines)
	}
	return append([]string(nil), t.lines[len(t.lines)-n:]...)
}

// Len returns the number of stored lines.
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.lines)
}

// Capacity returns the maximum number of lines kept.
func (t *Transcript) Capacity() int {
	return t.capacity
}

// Clear drops every line.
func (t *Transcript) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = t.lines[:0]
}
