package state

import "fmt"

const defaultTraceCapacity = 200

// TraceRing keeps the most recent event descriptions for the trace pane.
// Oldest entries fall off once the fixed capacity is reached.
type TraceRing struct {
	entries []string
	cap     int
}

// NewTraceRing returns a ring holding at most capacity entries.
func NewTraceRing(capacity int) *TraceRing {
	if capacity < 1 {
		capacity = 1
	}
	return &TraceRing{cap: capacity}
}

// Addf appends a formatted entry, evicting the oldest when full.
func (t *TraceRing) Addf(format string, args ...interface{}) {
	if t == nil {
		return
	}
	t.entries = append(t.entries, fmt.Sprintf(format, args...))
	if len(t.entries) > t.cap {
		t.entries = t.entries[len(t.entries)-t.cap:]
	}
}

// Tail returns the newest n entries, oldest first.
func (t *TraceRing) Tail(n int) []string {
	if t == nil || n <= 0 {
		return nil
	}
	if n > len(t.entries) {
		n = len(t.entries)
	}
	return t.entries[len(t.entries)-n:]
}

// Len reports how many entries are held.
func (t *TraceRing) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}
