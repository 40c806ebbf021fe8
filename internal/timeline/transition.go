package timeline

import "github.com/google/uuid"

// TransitionType identifies a cross-clip effect.
type TransitionType string

const (
	// TransitionFade cross-fades between the two clips.
	TransitionFade TransitionType = "fade"
	// TransitionWipe reveals the incoming clip with a moving edge.
	TransitionWipe TransitionType = "wipe"
	// TransitionSlide pushes the outgoing clip off screen.
	TransitionSlide TransitionType = "slide"
	// TransitionZoom scales between the two clips.
	TransitionZoom TransitionType = "zoom"
	// TransitionDissolve blends the two clips with noise.
	TransitionDissolve TransitionType = "dissolve"
)

// Valid reports whether the type is one of the recognized transitions.
func (t TransitionType) Valid() bool {
	switch t {
	case TransitionFade, TransitionWipe, TransitionSlide, TransitionZoom, TransitionDissolve:
		return true
	default:
		return false
	}
}

// Transition is an effect bridging two clips on the same track.
// At most one transition exists per ordered (FromClipID, ToClipID) pair;
// the store enforces this by replacing the prior one on insert.
type Transition struct {
	ID   string         `json:"id"`
	Type TransitionType `json:"type"`

	StartTime float64 `json:"startTime"`
	Duration  float64 `json:"duration"`
	Track     int     `json:"trackId"`

	FromClipID string `json:"fromClipId"`
	ToClipID   string `json:"toClipId"`
}

// NewTransition creates a transition with a fresh id.
func NewTransition(typ TransitionType, from, to string, startTime, duration float64, track int) Transition {
	return Transition{
		ID:         uuid.NewString(),
		Type:       typ,
		StartTime:  startTime,
		Duration:   duration,
		Track:      track,
		FromClipID: from,
		ToClipID:   to,
	}
}

// References reports whether the transition references the given clip id
// on either side.
func (t Transition) References(clipID string) bool {
	return t.FromClipID == clipID || t.ToClipID == clipID
}

// CloneTransitions copies a transition slice, preserving order.
func CloneTransitions(transitions []Transition) []Transition {
	if transitions == nil {
		return nil
	}
	out := make([]Transition, len(transitions))
	copy(out, transitions)
	return out
}
