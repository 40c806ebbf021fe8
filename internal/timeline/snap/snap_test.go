package snap

import (
	"math"
	"testing"

	"github.com/framefold/timecraft/internal/timeline"
)

func videoClip(id string, start, dur float64, track int) timeline.Clip {
	return timeline.Clip{
		ID:        id,
		Kind:      timeline.ClipVideo,
		StartTime: start,
		Duration:  dur,
		Speed:     1,
		Track:     track,
	}
}

// testContext snaps within 0.2s: 10px at 50px/s.
func testContext(clips ...timeline.Clip) Context {
	return Context{
		Clips:           clips,
		PixelsPerSecond: 50,
		ThresholdPx:     10,
		Enabled:         true,
	}
}

func TestMoveNoSnapBeyondThreshold(t *testing.T) {
	dragged := videoClip("a", 0, 2, 0)
	ctx := testContext(dragged, videoClip("b", 10, 2, 0))

	cand := Begin(Move, dragged).Resolve(5, ctx)

	if cand.StartTime != 5 {
		t.Errorf("start = %v, want raw 5", cand.StartTime)
	}
	if cand.SnappedStart || cand.SnappedEnd {
		t.Error("nothing should snap")
	}
}

func TestMoveSnapsStartToClipEdge(t *testing.T) {
	dragged := videoClip("a", 0, 2, 0)
	ctx := testContext(dragged, videoClip("b", 10, 2, 0))

	// Raw start 9.85 is within 0.2 of b's start.
	cand := Begin(Move, dragged).Resolve(9.85, ctx)

	if cand.StartTime != 10 {
		t.Errorf("start = %v, want snapped 10", cand.StartTime)
	}
	if !cand.SnappedStart {
		t.Error("start edge should report snapped")
	}
}

func TestMoveSnapsEndToClipEdge(t *testing.T) {
	dragged := videoClip("a", 0, 2, 0)
	ctx := testContext(dragged, videoClip("b", 10, 2, 0))

	// Raw end 9.9 is within threshold of b's start; raw start 7.9 is not
	// near anything.
	cand := Begin(Move, dragged).Resolve(7.9, ctx)

	if math.Abs(cand.StartTime-8) > 1e-9 {
		t.Errorf("start = %v, want 8 (end snapped to 10)", cand.StartTime)
	}
	if !cand.SnappedEnd || cand.SnappedStart {
		t.Error("only the end edge should snap")
	}
}

func TestMovePrefersStartWhenBothSnap(t *testing.T) {
	dragged := videoClip("a", 0, 2, 0)
	// b's start near the dragged start, c's start near the dragged end.
	ctx := testContext(dragged,
		videoClip("b", 5.1, 1, 0),
		videoClip("c", 6.9, 1, 0),
	)

	cand := Begin(Move, dragged).Resolve(5, ctx)

	if cand.StartTime != 5.1 {
		t.Errorf("start = %v, want 5.1 from the start edge", cand.StartTime)
	}
	if !cand.SnappedStart {
		t.Error("start edge wins when both edges snap")
	}
}

func TestMoveSnapsToPlayhead(t *testing.T) {
	dragged := videoClip("a", 0, 2, 0)
	ctx := testContext(dragged)
	ctx.Playhead = 3

	cand := Begin(Move, dragged).Resolve(2.9, ctx)

	if cand.StartTime != 3 {
		t.Errorf("start = %v, want playhead 3", cand.StartTime)
	}
}

func TestMoveSnapsToZero(t *testing.T) {
	dragged := videoClip("a", 1, 2, 0)
	ctx := testContext(dragged)

	cand := Begin(Move, dragged).Resolve(-0.9, ctx)

	if cand.StartTime != 0 {
		t.Errorf("start = %v, want 0", cand.StartTime)
	}
	if !cand.SnappedStart {
		t.Error("should snap to time zero")
	}
}

func TestMoveClampsNegativeStart(t *testing.T) {
	dragged := videoClip("a", 1, 2, 0)
	ctx := testContext(dragged)
	ctx.Enabled = false

	cand := Begin(Move, dragged).Resolve(-5, ctx)

	if cand.StartTime != 0 {
		t.Errorf("start = %v, want clamp to 0", cand.StartTime)
	}
}

func TestMoveIgnoresOwnEdges(t *testing.T) {
	// Only the dragged clip exists; its own original edges must not be
	// snap targets or every small drag would stick in place.
	dragged := videoClip("a", 5, 2, 0)
	ctx := testContext(dragged)
	ctx.Playhead = 100

	cand := Begin(Move, dragged).Resolve(0.25, ctx)

	if cand.StartTime != 5.25 {
		t.Errorf("start = %v, want raw 5.25", cand.StartTime)
	}
}

func TestMoveFollowsHoverTrack(t *testing.T) {
	dragged := videoClip("a", 0, 2, 1)
	ctx := testContext(dragged)
	ctx.HoverTrack = 3

	cand := Begin(Move, dragged).Resolve(0, ctx)

	if cand.Track != 3 {
		t.Errorf("track = %d, want hover track 3", cand.Track)
	}
}

func TestResizeEndSnaps(t *testing.T) {
	dragged := videoClip("a", 0, 5, 0)
	ctx := testContext(dragged, videoClip("b", 8, 2, 0))

	// Raw end 7.9 snaps to b's start at 8.
	cand := Begin(ResizeEnd, dragged).Resolve(2.9, ctx)

	if cand.Duration != 8 {
		t.Errorf("duration = %v, want 8", cand.Duration)
	}
	if !cand.SnappedEnd {
		t.Error("end edge should report snapped")
	}
	if cand.StartTime != 0 {
		t.Error("resize-end must not move the start")
	}
}

func TestResizeEndClampsMinimumDuration(t *testing.T) {
	dragged := videoClip("a", 0, 5, 0)
	ctx := testContext(dragged)
	ctx.Enabled = false

	cand := Begin(ResizeEnd, dragged).Resolve(-20, ctx)

	if cand.Duration != minDuration {
		t.Errorf("duration = %v, want %v", cand.Duration, minDuration)
	}
}

func TestResizeStartSnapsAndRecomputesDuration(t *testing.T) {
	dragged := videoClip("a", 5, 5, 0)
	ctx := testContext(dragged, videoClip("b", 0, 3, 0))

	// Raw start 2.9 snaps to b's end at 3; duration becomes origEnd-3.
	cand := Begin(ResizeStart, dragged).Resolve(-2.1, ctx)

	if cand.StartTime != 3 {
		t.Errorf("start = %v, want 3", cand.StartTime)
	}
	if cand.Duration != 7 {
		t.Errorf("duration = %v, want 7", cand.Duration)
	}
	if !cand.SnappedStart {
		t.Error("start edge should report snapped")
	}
}

func TestResizeStartCannotCrossEnd(t *testing.T) {
	dragged := videoClip("a", 0, 2, 0)
	ctx := testContext(dragged)
	ctx.Enabled = false

	cand := Begin(ResizeStart, dragged).Resolve(5, ctx)

	if cand.Duration != minDuration {
		t.Errorf("duration = %v, want %v", cand.Duration, minDuration)
	}
	if math.Abs(cand.StartTime-(2-minDuration)) > 1e-9 {
		t.Errorf("start = %v, want pinned at %v", cand.StartTime, 2-minDuration)
	}
}

func TestDisabledSnapStillClamps(t *testing.T) {
	dragged := videoClip("a", 0, 2, 0)
	ctx := testContext(dragged, videoClip("b", 10, 2, 0))
	ctx.Enabled = false

	cand := Begin(Move, dragged).Resolve(9.95, ctx)

	if cand.StartTime != 9.95 {
		t.Errorf("start = %v, want raw value with snapping off", cand.StartTime)
	}
}

func TestTieBreaksFirstFound(t *testing.T) {
	dragged := videoClip("a", 0, 2, 0)
	// Two targets exactly equidistant from raw start 5: b's end at 4.75
	// and c's start at 5.25. b comes first in collection order.
	ctx := testContext(dragged,
		videoClip("b", 3.75, 1, 0),
		videoClip("c", 5.25, 1, 0),
	)
	ctx.ThresholdPx = 25 // 0.5s at 50px/s

	cand := Begin(Move, dragged).Resolve(5, ctx)

	if cand.StartTime != 4.75 {
		t.Errorf("start = %v, want first-found target 4.75", cand.StartTime)
	}
}

func TestZeroScaleDisablesSnap(t *testing.T) {
	dragged := videoClip("a", 0, 2, 0)
	ctx := testContext(dragged, videoClip("b", 5, 1, 0))
	ctx.PixelsPerSecond = 0

	cand := Begin(Move, dragged).Resolve(4.95, ctx)

	if cand.StartTime != 4.95 {
		t.Errorf("start = %v, want raw value", cand.StartTime)
	}
}
