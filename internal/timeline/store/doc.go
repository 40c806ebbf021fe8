// Package store owns the authoritative timeline state.
//
// The Store is the only component permitted to produce a new timeline
// state. Every primitive mutation snapshots the prior state into history,
// applies the change, clears the redo stack, and notifies subscribers
// exactly once. Batch groups several primitives into a single history
// entry and a single notification, which is what makes multi-step named
// operations appear atomic to observers and to undo/redo.
//
// Unknown clip or transition ids are silent no-ops. Callers such as
// autonomous agents frequently operate on a stale view of the timeline,
// so the store favors idempotent, side-effect-free failure over errors;
// callers that need confirmation re-query via Clips or FindClip.
//
// The engine is logically single-writer. The internal mutex keeps reads
// and listener dispatch safe, not concurrent mutation ordering, which
// remains the caller's responsibility.
package store
