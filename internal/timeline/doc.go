// Package timeline defines the value types for the timeline model: clips,
// transitions, and their presentation attributes.
//
// The types here are pure data. They carry no behavior beyond cloning,
// range arithmetic, and kind predicates; all mutation goes through the
// store package, and all structural validation lives in the verify package.
// Constructors establish the data-level invariants (positive duration,
// non-negative start time); cross-clip invariants such as source-bounds
// overruns are deliberately not rejected here because intermediate states
// inside a batch may transiently violate them.
package timeline
