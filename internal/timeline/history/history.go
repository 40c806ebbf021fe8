// Package history provides snapshot-based undo/redo state for a timeline.
package history

import (
	"errors"
	"sync"
	"time"

	"github.com/framefold/timecraft/internal/timeline"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Snapshot is an immutable deep copy of the timeline state at a point in
// time. Snapshots are taken before every committed mutation and restored
// wholesale on undo/redo.
type Snapshot struct {
	Clips       []timeline.Clip
	Transitions []timeline.Transition
	Timestamp   time.Time
}

// Capture deep-copies the given state into a snapshot.
func Capture(clips []timeline.Clip, transitions []timeline.Transition) Snapshot {
	return Snapshot{
		Clips:       timeline.CloneClips(clips),
		Transitions: timeline.CloneTransitions(transitions),
		Timestamp:   time.Now(),
	}
}

// History manages the undo and redo stacks for a timeline store.
type History struct {
	mu sync.Mutex

	past   []Snapshot
	future []Snapshot

	maxEntries int
}

// New creates a history with the given capacity. Capacities at or below
// zero fall back to the default of 1000 entries.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = 1000 // Default
	}
	return &History{maxEntries: maxEntries}
}

// Push records a pre-mutation snapshot and clears the redo stack.
// Oldest entries are evicted once the capacity is exceeded.
func (h *History) Push(s Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.past = append(h.past, s)
	h.future = nil

	if len(h.past) > h.maxEntries {
		excess := len(h.past) - h.maxEntries
		h.past = h.past[excess:]
	}
}

// Undo exchanges the current state for the most recent past snapshot.
// The caller passes a capture of the live state, which becomes the redo
// candidate; the returned snapshot is the state to restore.
func (h *History) Undo(current Snapshot) (Snapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.past) == 0 {
		return Snapshot{}, ErrNothingToUndo
	}

	restored := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, current)
	return restored, nil
}

// Redo exchanges the current state for the most recent undone snapshot.
func (h *History) Redo(current Snapshot) (Snapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.future) == 0 {
		return Snapshot{}, ErrNothingToRedo
	}

	restored := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, current)
	return restored, nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.past) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.future) > 0
}

// UndoCount returns the number of undo steps available.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.past)
}

// RedoCount returns the number of redo steps available.
func (h *History) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.future)
}

// Clear removes all undo/redo state.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.past = nil
	h.future = nil
}

// MaxEntries returns the history capacity.
func (h *History) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}
