package dispatch

import "github.com/tidwall/sjson"

// Status indicates the outcome of a tool call.
type Status uint8

const (
	// StatusOK indicates the call mutated the timeline.
	StatusOK Status = iota
	// StatusNoOp indicates the call was valid but changed nothing, such
	// as an operation against a stale clip id.
	StatusNoOp
	// StatusError indicates the call was malformed or rejected.
	StatusError
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result describes the outcome of a single tool call.
type Result struct {
	// Call is the tool name that was invoked.
	Call string
	// Status is the outcome category.
	Status Status
	// Detail is a human-readable note: the error for StatusError, or
	// supplementary data such as the new clip id for a split.
	Detail string
}

// OK creates a successful result.
func OK(call, detail string) Result {
	return Result{Call: call, Status: StatusOK, Detail: detail}
}

// NoOp creates a no-effect result.
func NoOp(call, detail string) Result {
	return Result{Call: call, Status: StatusNoOp, Detail: detail}
}

// Errorf creates an error result.
func Errorf(call, detail string) Result {
	return Result{Call: call, Status: StatusError, Detail: detail}
}

// JSON renders the result as a flat JSON object for machine callers.
func (r Result) JSON() string {
	out := "{}"
	out, _ = sjson.Set(out, "call", r.Call)
	out, _ = sjson.Set(out, "status", r.Status.String())
	if r.Detail != "" {
		out, _ = sjson.Set(out, "detail", r.Detail)
	}
	return out
}
