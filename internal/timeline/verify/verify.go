// Package verify runs structural checks over a before/after pair of clip
// collections and reports semantic damage a mutation may have caused:
// degenerate durations, occluded clips, audio running past video, and
// clashing audio.
//
// Checks never mutate state and never block a mutation; they are
// advisory. Output is deterministic: checks run in registration order and
// scan clips in collection order, so identical inputs always produce
// identical reports.
package verify

import "github.com/framefold/timecraft/internal/timeline"

// CheckResult is the outcome of one rule against one finding.
type CheckResult struct {
	Passed bool
	Issue  string
	// Hint is an imperative follow-up a caller (human or agent) can act
	// on to clear the issue.
	Hint string
}

// CheckFunc inspects a before/after clip pair and returns zero or more
// findings. Implementations must be pure functions of their inputs.
type CheckFunc func(before, after []timeline.Clip) []CheckResult

// Report is the aggregate outcome of a check run.
type Report struct {
	Passed           bool
	Issues           []string
	RemediationHints []string
}

type registeredCheck struct {
	name string
	fn   CheckFunc
}

// Registry holds an ordered set of checks.
type Registry struct {
	checks []registeredCheck
}

// NewRegistry creates a registry preloaded with the standard structural
// checks.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Register("minimum-duration", checkMinimumDuration)
	r.Register("valid-start-time", checkValidStartTime)
	r.Register("occlusion", checkOcclusion)
	r.Register("audio-visual-tail", checkAudioVisualTail)
	r.Register("audio-overlap", checkAudioOverlap)
	return r
}

// Register appends a check. Checks run in registration order.
func (r *Registry) Register(name string, fn CheckFunc) {
	r.checks = append(r.checks, registeredCheck{name: name, fn: fn})
}

// Names returns the registered check names in run order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.checks))
	for i, c := range r.checks {
		names[i] = c.name
	}
	return names
}

// Run executes every check against the before/after pair and
// concatenates the findings. Passed is true when no check failed.
func (r *Registry) Run(before, after []timeline.Clip) Report {
	report := Report{Passed: true}
	for _, c := range r.checks {
		for _, res := range c.fn(before, after) {
			if res.Passed {
				continue
			}
			report.Passed = false
			report.Issues = append(report.Issues, res.Issue)
			if res.Hint != "" {
				report.RemediationHints = append(report.RemediationHints, res.Hint)
			}
		}
	}
	return report
}

var defaultRegistry = NewRegistry()

// Run executes the standard checks against the before/after pair.
func Run(before, after []timeline.Clip) Report {
	return defaultRegistry.Run(before, after)
}
