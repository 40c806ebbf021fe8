// Package snap translates pointer-drag deltas into candidate clip
// placements with magnetic snapping.
//
// The resolver never touches the store: it is a pure function of the
// drag state captured at drag start and the current clip collection.
// The caller previews candidates on every pointer-move frame and commits
// the final candidate through the operation library exactly once, on
// pointer release.
package snap

import "github.com/framefold/timecraft/internal/timeline"

// minDuration is the floor a resize may shrink a clip to.
const minDuration = timeline.MinClipDuration

// Kind identifies which part of the clip is being dragged.
type Kind uint8

const (
	// Move drags the whole clip along the timeline.
	Move Kind = iota
	// ResizeStart drags the clip's leading edge.
	ResizeStart
	// ResizeEnd drags the clip's trailing edge.
	ResizeEnd
)

// String returns a human-readable drag kind.
func (k Kind) String() string {
	switch k {
	case Move:
		return "move"
	case ResizeStart:
		return "resize-start"
	case ResizeEnd:
		return "resize-end"
	default:
		return "unknown"
	}
}

// Drag captures the dragged clip's placement at drag start. All
// subsequent resolution is relative to this origin, not to the previous
// frame's candidate, so a drag never accumulates rounding drift.
type Drag struct {
	Kind   Kind
	ClipID string

	StartTime float64
	Duration  float64
	Track     int
}

// Begin captures a drag over the given clip.
func Begin(kind Kind, c timeline.Clip) Drag {
	return Drag{
		Kind:      kind,
		ClipID:    c.ID,
		StartTime: c.StartTime,
		Duration:  c.Duration,
		Track:     c.Track,
	}
}

// Context carries the per-frame inputs to resolution.
type Context struct {
	// Clips is the full current clip collection, in stable order. The
	// dragged clip itself is skipped when collecting snap candidates.
	Clips []timeline.Clip

	// Playhead is the current playhead time, a snap target.
	Playhead float64

	// PixelsPerSecond converts the pixel threshold into seconds at the
	// current zoom level.
	PixelsPerSecond float64

	// ThresholdPx is the magnetic snap distance in pixels.
	ThresholdPx float64

	// Enabled toggles snapping; clamping still applies when disabled.
	Enabled bool

	// HoverTrack is the track the pointer currently hovers. Track
	// reassignment follows the pointer and is independent of snapping.
	HoverTrack int
}

// Candidate is a proposed placement for the dragged clip.
type Candidate struct {
	StartTime float64
	Duration  float64
	Track     int

	// SnappedStart / SnappedEnd report which edge locked onto a snap
	// target, for callers that render snap guides.
	SnappedStart bool
	SnappedEnd   bool
}

// End returns the candidate's trailing edge time.
func (c Candidate) End() float64 {
	return c.StartTime + c.Duration
}

// Resolve computes the candidate placement for a pointer delta, given in
// seconds. Move drags snap whichever edge lands closest to a target,
// preferring the start edge when both snap. Resizes snap only the edge
// being dragged and clamp the resulting duration to the minimum.
func (d Drag) Resolve(delta float64, ctx Context) Candidate {
	cand := Candidate{
		StartTime: d.StartTime,
		Duration:  d.Duration,
		Track:     d.Track,
	}
	if d.Kind == Move {
		cand.Track = ctx.HoverTrack
	}

	targets := d.snapTargets(ctx)

	switch d.Kind {
	case Move:
		rawStart := d.StartTime + delta
		rawEnd := rawStart + d.Duration

		snappedStart, okStart := snapTo(rawStart, targets, threshold(ctx))
		snappedEnd, okEnd := snapTo(rawEnd, targets, threshold(ctx))

		switch {
		case okStart:
			cand.StartTime = snappedStart
			cand.SnappedStart = true
		case okEnd:
			cand.StartTime = snappedEnd - d.Duration
			cand.SnappedEnd = true
		default:
			cand.StartTime = rawStart
		}
		if cand.StartTime < 0 {
			cand.StartTime = 0
		}

	case ResizeEnd:
		rawEnd := d.StartTime + d.Duration + delta
		if snapped, ok := snapTo(rawEnd, targets, threshold(ctx)); ok {
			rawEnd = snapped
			cand.SnappedEnd = true
		}
		cand.Duration = rawEnd - d.StartTime
		if cand.Duration < minDuration {
			cand.Duration = minDuration
			cand.SnappedEnd = false
		}

	case ResizeStart:
		origEnd := d.StartTime + d.Duration
		rawStart := d.StartTime + delta
		if snapped, ok := snapTo(rawStart, targets, threshold(ctx)); ok {
			rawStart = snapped
			cand.SnappedStart = true
		}
		if rawStart < 0 {
			rawStart = 0
		}
		cand.StartTime = rawStart
		cand.Duration = origEnd - rawStart
		// The leading edge may not cross into negative-duration
		// territory; the clamp pins it just short of the far edge.
		if cand.Duration < minDuration {
			cand.Duration = minDuration
			cand.StartTime = origEnd - minDuration
			cand.SnappedStart = false
		}
	}

	return cand
}

// snapTargets collects the candidate set: time zero, the playhead, and
// both edges of every other clip, in stable collection order. Order
// matters: ties between equally distant targets break toward the first
// found.
func (d Drag) snapTargets(ctx Context) []float64 {
	if !ctx.Enabled {
		return nil
	}
	targets := make([]float64, 0, 2+2*len(ctx.Clips))
	targets = append(targets, 0, ctx.Playhead)
	for _, c := range ctx.Clips {
		if c.ID == d.ClipID {
			continue
		}
		targets = append(targets, c.StartTime, c.End())
	}
	return targets
}

// threshold converts the pixel snap distance into seconds at the current
// zoom. A non-positive scale disables snapping for the frame.
func threshold(ctx Context) float64 {
	if ctx.PixelsPerSecond <= 0 {
		return 0
	}
	return ctx.ThresholdPx / ctx.PixelsPerSecond
}

// snapTo returns the closest target within the threshold of t, or false
// when nothing is in range. Strict comparison keeps the first of two
// equally distant targets.
func snapTo(t float64, targets []float64, thresholdSec float64) (float64, bool) {
	if thresholdSec <= 0 {
		return 0, false
	}
	best := 0.0
	bestDist := thresholdSec
	found := false
	for _, target := range targets {
		dist := t - target
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist || (!found && dist == bestDist) {
			best = target
			bestDist = dist
			found = true
		}
	}
	return best, found
}
