package store

import "github.com/framefold/timecraft/internal/timeline"

// Update is a field-level command applied to a clip by UpdateClip.
//
// The set of updates is closed on purpose: modelling partial updates as
// explicit commands instead of an open field map catches invalid
// field/value combinations at compile time. Each command clamps its value
// to the field's legal range rather than failing.
type Update interface {
	apply(c *timeline.Clip)
}

type setStartTime float64

// SetStartTime moves the clip to a new timeline start, clamped at zero.
func SetStartTime(t float64) Update { return setStartTime(t) }

func (u setStartTime) apply(c *timeline.Clip) {
	t := float64(u)
	if t < 0 {
		t = 0
	}
	c.StartTime = t
}

type setDuration float64

// SetDuration sets the clip duration, clamped to the minimum duration.
func SetDuration(d float64) Update { return setDuration(d) }

func (u setDuration) apply(c *timeline.Clip) {
	d := float64(u)
	if d < timeline.MinClipDuration {
		d = timeline.MinClipDuration
	}
	c.Duration = d
}

type setTrack int

// SetTrack moves the clip to a different layer.
func SetTrack(track int) Update { return setTrack(track) }

func (u setTrack) apply(c *timeline.Clip) {
	c.Track = int(u)
}

type setSpeed float64

// SetSpeed sets the playback-rate multiplier. Non-positive rates are
// ignored, leaving the prior speed in place.
func SetSpeed(speed float64) Update { return setSpeed(speed) }

func (u setSpeed) apply(c *timeline.Clip) {
	if u > 0 {
		c.Speed = float64(u)
	}
}

type setVolume float64

// SetVolume sets the clip volume, clamped to [0, 1].
func SetVolume(v float64) Update { return setVolume(v) }

func (u setVolume) apply(c *timeline.Clip) {
	v := float64(u)
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	c.Volume = &v
}

type setSourceStart float64

// SetSourceStart sets the offset into the originating media, clamped at
// zero.
func SetSourceStart(t float64) Update { return setSourceStart(t) }

func (u setSourceStart) apply(c *timeline.Clip) {
	t := float64(u)
	if t < 0 {
		t = 0
	}
	c.SourceStart = t
}

type setTransform timeline.Transform

// SetTransform replaces the clip's spatial transform.
func SetTransform(t timeline.Transform) Update { return setTransform(t) }

func (u setTransform) apply(c *timeline.Clip) {
	t := timeline.Transform(u)
	c.Transform = &t
}

type setText string

// SetText replaces the content of a text clip.
func SetText(text string) Update { return setText(text) }

func (u setText) apply(c *timeline.Clip) {
	c.Text = string(u)
}
