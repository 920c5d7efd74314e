package engine

import (
	"github.com/primal100/pool-stats/internal/scoring"
)

// DefaultHistoryDepth is the number of undo snapshots retained when no
// explicit depth is configured.
const DefaultHistoryDepth = 5

// Snapshot is an immutable bundle of all undoable state, captured
// immediately before a mutation. Counters, turn state and log text are held
// in a single composite entry so the three streams can never diverge in
// depth.
type Snapshot struct {
	Stats scoring.Stats
	Turn  TurnState
	Log   string
}

// History is a bounded LIFO of snapshots. When full, a push evicts the
// oldest entry.
type History struct {
	entries  []Snapshot
	capacity int
}

// NewHistory creates a history bounded to the given depth. Depths below one
// fall back to DefaultHistoryDepth.
func NewHistory(depth int) *History {
	if depth < 1 {
		depth = DefaultHistoryDepth
	}
	return &History{
		entries:  make([]Snapshot, 0, depth),
		capacity: depth,
	}
}

// Push retains a snapshot, evicting the oldest entry when at capacity.
func (h *History) Push(s Snapshot) {
	if len(h.entries) >= h.capacity {
		h.entries = h.entries[1:]
	}
	h.entries = append(h.entries, s)
}

// Pop removes and returns the most recent snapshot. The second return is
// false when nothing is retained; callers treat that as a soft warning.
func (h *History) Pop() (Snapshot, bool) {
	if len(h.entries) == 0 {
		return Snapshot{}, false
	}
	s := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return s, true
}

// Peek returns the most recent snapshot without removing it.
func (h *History) Peek() (Snapshot, bool) {
	if len(h.entries) == 0 {
		return Snapshot{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Len returns the number of retained snapshots.
func (h *History) Len() int { return len(h.entries) }

// Capacity returns the configured depth bound.
func (h *History) Capacity() int { return h.capacity }
