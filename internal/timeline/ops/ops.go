// Package ops implements the named timeline edits built from store
// primitives. The store guarantees atomicity and history; this package
// encodes the policy of each edit, such as what ripples, what clamps,
// and what degenerates into a delete.
package ops

import (
	"errors"

	"github.com/framefold/timecraft/internal/timeline"
	"github.com/framefold/timecraft/internal/timeline/store"
)

// Common errors for operations that can fail outright.
var (
	ErrClipNotFound  = errors.New("clip not found")
	ErrTrackMismatch = errors.New("clips are on different tracks")
)

// Library exposes the named edits over a single store.
type Library struct {
	store *store.Store
}

// New creates an operation library bound to the given store.
func New(s *store.Store) *Library {
	return &Library{store: s}
}

// Store returns the underlying store.
func (l *Library) Store() *store.Store {
	return l.store
}

// RippleDelete removes a clip and shifts every later clip on the same
// track left by the removed clip's duration, clamped at zero. Clips on
// other tracks are untouched. Unknown ids are a no-op.
func (l *Library) RippleDelete(clipID string) {
	removed, ok := l.store.FindClip(clipID)
	if !ok {
		return
	}

	l.store.Batch(func() {
		l.store.RemoveClip(clipID)
		for _, c := range l.store.Clips() {
			if c.Track != removed.Track || c.StartTime <= removed.StartTime {
				continue
			}
			newStart := c.StartTime - removed.Duration
			if newStart < 0 {
				newStart = 0
			}
			l.store.UpdateClip(c.ID, store.SetStartTime(newStart))
		}
	})
}

// TrimClipStart removes timeToRemove seconds from the head of a clip.
// The clip's start advances, its duration shrinks, and its source offset
// advances by timeToRemove scaled by the playback rate, so the trailing
// source frames stay visible. Trimming a clip to nothing deletes it
// outright rather than leaving a degenerate artifact.
func (l *Library) TrimClipStart(clipID string, timeToRemove float64) {
	c, ok := l.store.FindClip(clipID)
	if !ok || timeToRemove <= 0 {
		return
	}

	if timeToRemove >= c.Duration {
		l.store.RemoveClip(clipID)
		return
	}

	l.store.UpdateClip(clipID,
		store.SetStartTime(c.StartTime+timeToRemove),
		store.SetDuration(c.Duration-timeToRemove),
		store.SetSourceStart(c.SourceStart+timeToRemove*c.Speed),
	)
}

// TrimClip sets a clip's duration, trimming or extending its end. The
// source offset is untouched. Unknown ids are a no-op.
func (l *Library) TrimClip(clipID string, newDuration float64) {
	l.store.UpdateClip(clipID, store.SetDuration(newDuration))
}

// SmartTrim is the agent-facing duration edit: it clamps the requested
// duration to the minimum before applying, so a wildly short request
// shortens the clip as far as legal instead of producing a degenerate
// one.
func (l *Library) SmartTrim(clipID string, newDuration float64) {
	if newDuration < timeline.MinClipDuration {
		newDuration = timeline.MinClipDuration
	}
	l.TrimClip(clipID, newDuration)
}

// MoveClip repositions a clip in time and layer.
func (l *Library) MoveClip(clipID string, startTime float64, track int) {
	l.store.MoveClip(clipID, startTime, track)
}

// SetClipLayer moves a clip to a different track without changing its
// start time.
func (l *Library) SetClipLayer(clipID string, track int) {
	l.store.UpdateClip(clipID, store.SetTrack(track))
}

// SplitClip cuts a clip in two at splitTime. Returns the new right-half
// clip id, or false when the split time falls outside the clip.
func (l *Library) SplitClip(clipID string, splitTime float64) (string, bool) {
	return l.store.SplitClip(clipID, splitTime)
}

// UpdateClipProperty is the flat property edit recognized by the tool
// surface. Supported properties are duration, volume, and speed; others
// report false.
func (l *Library) UpdateClipProperty(clipID, property string, value float64) bool {
	switch property {
	case "duration":
		l.store.UpdateClip(clipID, store.SetDuration(value))
	case "volume":
		l.store.UpdateClip(clipID, store.SetVolume(value))
	case "speed":
		l.store.UpdateClip(clipID, store.SetSpeed(value))
	default:
		return false
	}
	return true
}

// AddTransition bridges two same-track clips with an effect of the given
// duration. The incoming clip is pulled back so that exactly duration
// seconds overlap the outgoing clip, regardless of any prior gap or
// overlap, and the transition is recorded over that window. A second
// transition for the same ordered pair replaces the first.
func (l *Library) AddTransition(fromClipID, toClipID string, typ timeline.TransitionType, duration float64) error {
	from, ok := l.store.FindClip(fromClipID)
	if !ok {
		return ErrClipNotFound
	}
	to, ok := l.store.FindClip(toClipID)
	if !ok {
		return ErrClipNotFound
	}
	if from.Track != to.Track {
		return ErrTrackMismatch
	}

	start := from.End() - duration

	l.store.Batch(func() {
		l.store.MoveClip(toClipID, start, to.Track)
		l.store.AddTransition(timeline.Transition{
			Type:       typ,
			StartTime:  start,
			Duration:   duration,
			Track:      from.Track,
			FromClipID: fromClipID,
			ToClipID:   toClipID,
		})
	})
	return nil
}
