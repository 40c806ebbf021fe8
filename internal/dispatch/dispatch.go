// Package dispatch exposes the operation library as named tool calls
// with flat JSON argument maps. This is the surface programmatic
// callers, in particular AI agents, program against: each call names an
// operation and supplies its arguments by key, and a Turn groups calls
// with a structural verification of the combined effect.
package dispatch

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/tidwall/gjson"

	"github.com/framefold/timecraft/internal/timeline"
	"github.com/framefold/timecraft/internal/timeline/ops"
	"github.com/framefold/timecraft/internal/timeline/store"
	"github.com/framefold/timecraft/internal/timeline/verify"
)

// handlerFunc executes one named tool call against parsed arguments.
type handlerFunc func(args gjson.Result) Result

// Dispatcher routes named tool calls into the operation library.
type Dispatcher struct {
	store    *store.Store
	ops      *ops.Library
	checks   *verify.Registry
	handlers map[string]handlerFunc
	log      *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger attaches a logger; calls and their outcomes are logged at
// debug level.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) { d.log = l }
}

// WithChecks replaces the standard verification registry.
func WithChecks(r *verify.Registry) Option {
	return func(d *Dispatcher) { d.checks = r }
}

// New creates a dispatcher over the given store.
func New(s *store.Store, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		store:  s,
		ops:    ops.New(s),
		checks: verify.NewRegistry(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.registerHandlers()
	return d
}

// Names returns the recognized tool call names, sorted.
func (d *Dispatcher) Names() []string {
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call executes one named tool call. argsJSON is a flat JSON object of
// the call's arguments; unknown names and missing required arguments
// produce an error result rather than a panic or a silent drop.
func (d *Dispatcher) Call(name, argsJSON string) Result {
	h, ok := d.handlers[name]
	if !ok {
		return Errorf(name, fmt.Sprintf("unknown tool call %q", name))
	}
	res := h(gjson.Parse(argsJSON))
	if d.log != nil {
		d.log.Debug("tool call", "name", name, "status", res.Status.String(), "detail", res.Detail)
	}
	return res
}

// Turn executes a sequence of tool calls as one logical agent turn:
// the pre-state is captured before the first call, every call runs in
// order, and the structural checks compare the pre-state against the
// final state. Each element of calls is a JSON object with "name" and
// "args" fields.
func (d *Dispatcher) Turn(calls []string) ([]Result, verify.Report) {
	before := d.store.Clips()

	results := make([]Result, 0, len(calls))
	for _, raw := range calls {
		parsed := gjson.Parse(raw)
		name := parsed.Get("name").String()
		if name == "" {
			results = append(results, Errorf("", "call object is missing a name"))
			continue
		}
		results = append(results, d.Call(name, parsed.Get("args").Raw))
	}

	return results, d.checks.Run(before, d.store.Clips())
}

// registerHandlers wires the recognized tool surface. Names and required
// arguments are stable; other components program against them.
func (d *Dispatcher) registerHandlers() {
	d.handlers = map[string]handlerFunc{
		"move_clip":            d.handleMoveClip,
		"update_clip_property": d.handleUpdateClipProperty,
		"ripple_delete":        d.handleRippleDelete,
		"smart_trim":           d.handleSmartTrim,
		"trim_clip_start":      d.handleTrimClipStart,
		"set_clip_layer":       d.handleSetClipLayer,
		"split_clip":           d.handleSplitClip,
		"add_transition":       d.handleAddTransition,
		"add_clip":             d.handleAddClip,
		"remove_clip":          d.handleRemoveClip,
		"undo":                 d.handleUndo,
		"redo":                 d.handleRedo,
	}
}

// requireClip resolves the clipId argument against the live store. A
// missing argument is an error; a stale id is a no-op per store policy.
func (d *Dispatcher) requireClip(call string, args gjson.Result) (timeline.Clip, Result, bool) {
	id := args.Get("clipId")
	if !id.Exists() {
		return timeline.Clip{}, Errorf(call, "missing required argument clipId"), false
	}
	c, ok := d.store.FindClip(id.String())
	if !ok {
		return timeline.Clip{}, NoOp(call, fmt.Sprintf("no clip with id %s", id.String())), false
	}
	return c, Result{}, true
}

func (d *Dispatcher) handleMoveClip(args gjson.Result) Result {
	const call = "move_clip"
	c, res, ok := d.requireClip(call, args)
	if !ok {
		return res
	}
	start := args.Get("startTime")
	if !start.Exists() {
		return Errorf(call, "missing required argument startTime")
	}
	track := c.Track
	if t := args.Get("trackId"); t.Exists() {
		track = int(t.Int())
	}
	d.ops.MoveClip(c.ID, start.Float(), track)
	return OK(call, "")
}

func (d *Dispatcher) handleUpdateClipProperty(args gjson.Result) Result {
	const call = "update_clip_property"
	c, res, ok := d.requireClip(call, args)
	if !ok {
		return res
	}
	property := args.Get("property")
	value := args.Get("value")
	if !property.Exists() || !value.Exists() {
		return Errorf(call, "missing required arguments property and value")
	}
	if !d.ops.UpdateClipProperty(c.ID, property.String(), value.Float()) {
		return Errorf(call, fmt.Sprintf("unsupported property %q", property.String()))
	}
	return OK(call, "")
}

func (d *Dispatcher) handleRippleDelete(args gjson.Result) Result {
	const call = "ripple_delete"
	c, res, ok := d.requireClip(call, args)
	if !ok {
		return res
	}
	d.ops.RippleDelete(c.ID)
	return OK(call, "")
}

func (d *Dispatcher) handleSmartTrim(args gjson.Result) Result {
	const call = "smart_trim"
	c, res, ok := d.requireClip(call, args)
	if !ok {
		return res
	}
	dur := args.Get("newDuration")
	if !dur.Exists() {
		return Errorf(call, "missing required argument newDuration")
	}
	d.ops.SmartTrim(c.ID, dur.Float())
	return OK(call, "")
}

func (d *Dispatcher) handleTrimClipStart(args gjson.Result) Result {
	const call = "trim_clip_start"
	c, res, ok := d.requireClip(call, args)
	if !ok {
		return res
	}
	remove := args.Get("timeToRemove")
	if !remove.Exists() {
		return Errorf(call, "missing required argument timeToRemove")
	}
	d.ops.TrimClipStart(c.ID, remove.Float())
	return OK(call, "")
}

func (d *Dispatcher) handleSetClipLayer(args gjson.Result) Result {
	const call = "set_clip_layer"
	c, res, ok := d.requireClip(call, args)
	if !ok {
		return res
	}
	track := args.Get("trackId")
	if !track.Exists() {
		return Errorf(call, "missing required argument trackId")
	}
	d.ops.SetClipLayer(c.ID, int(track.Int()))
	return OK(call, "")
}

func (d *Dispatcher) handleSplitClip(args gjson.Result) Result {
	const call = "split_clip"
	c, res, ok := d.requireClip(call, args)
	if !ok {
		return res
	}
	at := args.Get("splitTime")
	if !at.Exists() {
		return Errorf(call, "missing required argument splitTime")
	}
	newID, split := d.ops.SplitClip(c.ID, at.Float())
	if !split {
		return NoOp(call, fmt.Sprintf("split time %.2f is outside clip %s (%.2f-%.2f)",
			at.Float(), c.ID, c.StartTime, c.End()))
	}
	return OK(call, fmt.Sprintf("new clip %s", newID))
}

func (d *Dispatcher) handleAddTransition(args gjson.Result) Result {
	const call = "add_transition"
	from := args.Get("fromClipId")
	to := args.Get("toClipId")
	typ := args.Get("type")
	dur := args.Get("duration")
	if !from.Exists() || !to.Exists() || !typ.Exists() || !dur.Exists() {
		return Errorf(call, "missing required arguments fromClipId, toClipId, type, duration")
	}
	tt := timeline.TransitionType(typ.String())
	if !tt.Valid() {
		return Errorf(call, fmt.Sprintf("unknown transition type %q", typ.String()))
	}
	if err := d.ops.AddTransition(from.String(), to.String(), tt, dur.Float()); err != nil {
		return Errorf(call, err.Error())
	}
	return OK(call, "")
}

func (d *Dispatcher) handleAddClip(args gjson.Result) Result {
	const call = "add_clip"
	kind := timeline.ClipKind(args.Get("kind").String())
	if !kind.Valid() {
		return Errorf(call, fmt.Sprintf("unknown clip kind %q", args.Get("kind").String()))
	}
	start := args.Get("startTime")
	dur := args.Get("duration")
	if !start.Exists() || !dur.Exists() {
		return Errorf(call, "missing required arguments startTime and duration")
	}

	c := timeline.NewClip(kind, start.Float(), dur.Float())
	c.Track = int(args.Get("trackId").Int())
	if src := args.Get("sourceUrl"); src.Exists() {
		c.SourceURL = src.String()
	}
	if text := args.Get("text"); text.Exists() {
		c.Text = text.String()
	}
	d.store.AddClip(c)
	return OK(call, fmt.Sprintf("new clip %s", c.ID))
}

func (d *Dispatcher) handleRemoveClip(args gjson.Result) Result {
	const call = "remove_clip"
	c, res, ok := d.requireClip(call, args)
	if !ok {
		return res
	}
	d.store.RemoveClip(c.ID)
	return OK(call, "")
}

func (d *Dispatcher) handleUndo(gjson.Result) Result {
	const call = "undo"
	if err := d.store.Undo(); err != nil {
		return NoOp(call, err.Error())
	}
	return OK(call, "")
}

func (d *Dispatcher) handleRedo(gjson.Result) Result {
	const call = "redo"
	if err := d.store.Redo(); err != nil {
		return NoOp(call, err.Error())
	}
	return OK(call, "")
}
