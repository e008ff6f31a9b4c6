// Package solver implements the single-task WFC collapse loop:
// propagation, minimum-entropy cell selection, collapse, chronological
// backtracking, and random restart.
//
// Run is purely CPU-bound and synchronous; it has no suspension points
// and accepts no context.Context — the only way out, besides returning,
// is the optional progress channel, which the solver never blocks on: it
// writes snapshots to it and, when it is full, receives the oldest
// pending snapshot to drop it.
package solver
