package timeline

import "github.com/google/uuid"

// MinClipDuration is the shortest duration a clip may be resized to.
// Anything at or below this value is flagged by the structural verifier.
const MinClipDuration = 0.1

// ClipKind identifies the media type of a clip and determines which
// optional fields are meaningful.
type ClipKind string

const (
	// ClipVideo is a video fragment with both visual and audio content.
	ClipVideo ClipKind = "video"
	// ClipImage is a still image.
	ClipImage ClipKind = "image"
	// ClipAudio is an audio-only fragment.
	ClipAudio ClipKind = "audio"
	// ClipText is a synthetic text overlay.
	ClipText ClipKind = "text"
)

// Valid reports whether the kind is one of the recognized clip kinds.
func (k ClipKind) Valid() bool {
	switch k {
	case ClipVideo, ClipImage, ClipAudio, ClipText:
		return true
	default:
		return false
	}
}

// IsVisual reports whether clips of this kind produce visible output.
func (k ClipKind) IsVisual() bool {
	return k == ClipVideo || k == ClipImage || k == ClipText
}

// HasAudio reports whether clips of this kind carry an audio track.
func (k ClipKind) HasAudio() bool {
	return k == ClipVideo || k == ClipAudio
}

// Transform describes the spatial placement of a visual clip.
type Transform struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Scale    float64 `json:"scale"`
	Rotation float64 `json:"rotation"`
}

// IdentityTransform returns the default transform (no offset, unit scale).
func IdentityTransform() Transform {
	return Transform{Scale: 1}
}

// TextStyle describes the presentation of a text clip.
type TextStyle struct {
	FontFamily string  `json:"fontFamily,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty"`
	Color      string  `json:"color,omitempty"`
	Background string  `json:"background,omitempty"`
	Align      string  `json:"align,omitempty"`
}

// Clip is a single placed media fragment on the timeline.
//
// StartTime and Duration are timeline-relative seconds. SourceStart and
// Speed relate timeline offsets to offsets into the originating media:
// a timeline offset t within the clip maps to source offset
// SourceStart + t*Speed. TotalDuration is the full source length when
// known; zero means unknown and disables source-bounds checking.
type Clip struct {
	ID   string   `json:"id"`
	Kind ClipKind `json:"kind"`

	StartTime float64 `json:"startTime"`
	Duration  float64 `json:"duration"`

	SourceStart   float64 `json:"sourceStartTime"`
	Speed         float64 `json:"speed"`
	TotalDuration float64 `json:"totalDuration,omitempty"`

	// Track is the layer index; higher tracks render above lower ones.
	Track int `json:"trackId"`

	SourceURL string     `json:"sourceUrl,omitempty"`
	Transform *Transform `json:"transform,omitempty"`
	Volume    *float64   `json:"volume,omitempty"`
	Text      string     `json:"text,omitempty"`
	Style     *TextStyle `json:"style,omitempty"`
}

// NewClip creates a clip with a fresh id, unit speed, and the given
// placement. Duration values at or below zero are coerced to the minimum
// duration so a constructed clip never starts out degenerate.
func NewClip(kind ClipKind, startTime, duration float64) Clip {
	if startTime < 0 {
		startTime = 0
	}
	if duration <= 0 {
		duration = MinClipDuration
	}
	return Clip{
		ID:        uuid.NewString(),
		Kind:      kind,
		StartTime: startTime,
		Duration:  duration,
		Speed:     1,
	}
}

// End returns the timeline time at which the clip ends.
func (c Clip) End() float64 {
	return c.StartTime + c.Duration
}

// Overlaps reports whether the two clips' time ranges intersect with
// non-zero width. Touching edges do not count as overlap.
func (c Clip) Overlaps(o Clip) bool {
	return c.StartTime < o.End() && o.StartTime < c.End()
}

// OverlapWith returns the width of the intersection of the two clips'
// time ranges, or zero when they do not overlap.
func (c Clip) OverlapWith(o Clip) float64 {
	start := c.StartTime
	if o.StartTime > start {
		start = o.StartTime
	}
	end := c.End()
	if o.End() < end {
		end = o.End()
	}
	if end <= start {
		return 0
	}
	return end - start
}

// Contains reports whether t lies strictly inside the clip's time range.
func (c Clip) Contains(t float64) bool {
	return t > c.StartTime && t < c.End()
}

// Clone returns a deep copy of the clip, including its optional
// presentation blocks.
func (c Clip) Clone() Clip {
	out := c
	if c.Transform != nil {
		t := *c.Transform
		out.Transform = &t
	}
	if c.Volume != nil {
		v := *c.Volume
		out.Volume = &v
	}
	if c.Style != nil {
		s := *c.Style
		out.Style = &s
	}
	return out
}

// CloneClips deep-copies a clip slice, preserving order.
func CloneClips(clips []Clip) []Clip {
	if clips == nil {
		return nil
	}
	out := make([]Clip, len(clips))
	for i, c := range clips {
		out[i] = c.Clone()
	}
	return out
}
