package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/framefold/timecraft/internal/timeline"
	"github.com/framefold/timecraft/internal/timeline/history"
)

// Listener receives the full timeline state after every committed
// mutation. Listeners are invoked synchronously, outside the store lock,
// with copies they are free to retain.
type Listener func(clips []timeline.Clip, transitions []timeline.Transition)

// Store is the single owner of the authoritative (clips, transitions)
// collection. See the package documentation for the mutation contract.
type Store struct {
	mu sync.Mutex

	clips       []timeline.Clip
	transitions []timeline.Transition

	hist       *history.History
	batchDepth int

	listeners  map[int]Listener
	nextListen int

	historyLimit int
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.hist = history.New(s.historyLimit)
	return s
}

// Clips returns a deep copy of the current clips in stable insertion
// order.
func (s *Store) Clips() []timeline.Clip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return timeline.CloneClips(s.clips)
}

// Transitions returns a copy of the current transitions.
func (s *Store) Transitions() []timeline.Transition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return timeline.CloneTransitions(s.transitions)
}

// FindClip returns a copy of the clip with the given id. This is the
// fallible companion to the silent no-op mutation primitives, for callers
// that must distinguish "updated" from "no such clip".
func (s *Store) FindClip(id string) (timeline.Clip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOfLocked(id); i >= 0 {
		return s.clips[i].Clone(), true
	}
	return timeline.Clip{}, false
}

// Subscribe registers a listener and immediately invokes it with the
// current state. The returned function removes the subscription.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	id := s.nextListen
	s.nextListen++
	s.listeners[id] = l
	clips := timeline.CloneClips(s.clips)
	transitions := timeline.CloneTransitions(s.transitions)
	s.mu.Unlock()

	l(clips, transitions)

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// SetClips replaces the entire clip collection.
func (s *Store) SetClips(clips []timeline.Clip) {
	s.mutate(func() {
		s.clips = timeline.CloneClips(clips)
	})
}

// AddClip appends a clip. Clips without an id are assigned a fresh one.
func (s *Store) AddClip(c timeline.Clip) {
	s.mutate(func() {
		c = c.Clone()
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if c.Speed <= 0 {
			c.Speed = 1
		}
		s.clips = append(s.clips, c)
	})
}

// RemoveClip deletes the clip with the given id together with every
// transition that references it. Unknown ids are a no-op.
func (s *Store) RemoveClip(id string) {
	s.mutateClip(id, func(i int) {
		s.clips = append(s.clips[:i], s.clips[i+1:]...)

		kept := s.transitions[:0]
		for _, t := range s.transitions {
			if !t.References(id) {
				kept = append(kept, t)
			}
		}
		s.transitions = kept
	})
}

// UpdateClip applies field-level update commands to the clip with the
// given id. Unknown ids are a no-op.
func (s *Store) UpdateClip(id string, updates ...Update) {
	if len(updates) == 0 {
		return
	}
	s.mutateClip(id, func(i int) {
		for _, u := range updates {
			u.apply(&s.clips[i])
		}
	})
}

// MoveClip repositions a clip in time and layer. Start times are clamped
// at zero. Unknown ids are a no-op.
func (s *Store) MoveClip(id string, startTime float64, track int) {
	s.mutateClip(id, func(i int) {
		if startTime < 0 {
			startTime = 0
		}
		s.clips[i].StartTime = startTime
		s.clips[i].Track = track
	})
}

// SplitClip cuts a clip in two at splitTime. The original keeps its id
// and is shortened to end at the cut; the new right half starts there
// with a fresh id and a source offset advanced by the elapsed source
// time. Returns the new clip's id and whether the split happened.
//
// Split times outside the clip's open interval leave the state unchanged;
// a cut at or beyond either edge would produce a degenerate half.
func (s *Store) SplitClip(id string, splitTime float64) (string, bool) {
	var newID string
	ok := s.mutateClipOK(id, func(i int) bool {
		orig := s.clips[i]
		if !orig.Contains(splitTime) {
			return false
		}

		elapsed := splitTime - orig.StartTime

		right := orig.Clone()
		right.ID = uuid.NewString()
		right.StartTime = splitTime
		right.Duration = orig.End() - splitTime
		right.SourceStart = orig.SourceStart + elapsed*orig.Speed

		s.clips[i].Duration = elapsed
		s.clips = append(s.clips, right)
		newID = right.ID
		return true
	})
	return newID, ok
}

// AddTransition inserts a transition, replacing any existing transition
// for the same ordered (from, to) clip pair. Transitions without an id
// are assigned a fresh one.
func (s *Store) AddTransition(t timeline.Transition) {
	s.mutate(func() {
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		kept := s.transitions[:0]
		for _, existing := range s.transitions {
			if existing.FromClipID == t.FromClipID && existing.ToClipID == t.ToClipID {
				continue
			}
			kept = append(kept, existing)
		}
		s.transitions = append(kept, t)
	})
}

// RemoveTransition deletes a transition by id. Unknown ids are a no-op.
func (s *Store) RemoveTransition(id string) {
	s.mu.Lock()
	found := -1
	for i, t := range s.transitions {
		if t.ID == id {
			found = i
			break
		}
	}
	if found < 0 {
		s.mu.Unlock()
		return
	}
	s.beginLocked()
	s.transitions = append(s.transitions[:found], s.transitions[found+1:]...)
	notify := s.batchDepth == 0
	s.mu.Unlock()

	if notify {
		s.notify()
	}
}

// Batch runs fn, which may invoke any number of primitive mutations.
// Exactly one history snapshot is recorded (before fn runs) and exactly
// one notification fires after fn returns, even if fn panics: a
// partially applied batch stays applied and surfaces as one undo step.
// Nested batches collapse into the outermost one.
func (s *Store) Batch(fn func()) {
	s.mu.Lock()
	if s.batchDepth == 0 {
		s.hist.Push(s.captureLocked())
	}
	s.batchDepth++
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.batchDepth--
		notify := s.batchDepth == 0
		s.mu.Unlock()
		if notify {
			s.notify()
		}
	}()

	fn()
}

// Undo restores the most recent past snapshot. Returns
// history.ErrNothingToUndo when the undo stack is empty.
func (s *Store) Undo() error {
	s.mu.Lock()
	restored, err := s.hist.Undo(s.captureLocked())
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.clips = restored.Clips
	s.transitions = restored.Transitions
	s.mu.Unlock()

	s.notify()
	return nil
}

// Redo restores the most recently undone snapshot. Returns
// history.ErrNothingToRedo when the redo stack is empty.
func (s *Store) Redo() error {
	s.mu.Lock()
	restored, err := s.hist.Redo(s.captureLocked())
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.clips = restored.Clips
	s.transitions = restored.Transitions
	s.mu.Unlock()

	s.notify()
	return nil
}

// CanUndo returns true if undo is available.
func (s *Store) CanUndo() bool { return s.hist.CanUndo() }

// CanRedo returns true if redo is available.
func (s *Store) CanRedo() bool { return s.hist.CanRedo() }

// captureLocked snapshots the current state. Caller holds the lock.
func (s *Store) captureLocked() history.Snapshot {
	return history.Capture(s.clips, s.transitions)
}

// beginLocked records the pre-mutation snapshot unless a batch already
// did. Caller holds the lock.
func (s *Store) beginLocked() {
	if s.batchDepth == 0 {
		s.hist.Push(s.captureLocked())
	}
}

// mutate runs fn under the lock as one committed mutation.
func (s *Store) mutate(fn func()) {
	s.mu.Lock()
	s.beginLocked()
	fn()
	notify := s.batchDepth == 0
	s.mu.Unlock()

	if notify {
		s.notify()
	}
}

// mutateClip runs fn against the index of the clip with the given id.
// Unknown ids skip the mutation entirely, recording no history and
// firing no notification.
func (s *Store) mutateClip(id string, fn func(i int)) {
	s.mutateClipOK(id, func(i int) bool {
		fn(i)
		return true
	})
}

// mutateClipOK is mutateClip for mutations that can decline after
// inspecting the clip; declined mutations leave no trace.
func (s *Store) mutateClipOK(id string, fn func(i int) bool) bool {
	s.mu.Lock()
	i := s.indexOfLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}

	var before history.Snapshot
	if s.batchDepth == 0 {
		before = s.captureLocked()
	}
	applied := fn(i)
	if !applied {
		s.mu.Unlock()
		return false
	}
	if s.batchDepth == 0 {
		s.hist.Push(before)
	}
	notify := s.batchDepth == 0
	s.mu.Unlock()

	if notify {
		s.notify()
	}
	return true
}

// indexOfLocked returns the index of the clip with the given id, or -1.
// Caller holds the lock.
func (s *Store) indexOfLocked(id string) int {
	for i, c := range s.clips {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// notify invokes every listener with a fresh copy of the current state.
// The lock is released during dispatch so listeners may call back into
// the store.
func (s *Store) notify() {
	s.mu.Lock()
	clips := timeline.CloneClips(s.clips)
	transitions := timeline.CloneTransitions(s.transitions)
	ls := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		ls = append(ls, l)
	}
	s.mu.Unlock()

	for _, l := range ls {
		l(clips, transitions)
	}
}
