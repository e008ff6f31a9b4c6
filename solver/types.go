package solver

import (
	"github.com/arcweave/latticewfc/bitset"
	"github.com/arcweave/latticewfc/wfcgraph"
)

// Snapshot is one progress update: a point-in-time clone of the task's
// graph and metadata, safe for the caller to read concurrently with the
// solver continuing to mutate the live task.
type Snapshot struct {
	Graph    wfcgraph.Graph[*bitset.Set]
	Metadata any
}

// NewProgressChan returns a single-slot, drop-oldest progress channel.
// The solver writes via trySend, the orchestrator/caller reads.
func NewProgressChan() chan Snapshot {
	return make(chan Snapshot, 1)
}

// trySend never blocks the solver: it drops the oldest pending snapshot
// (coalescing to the latest) when the channel is already full. Safe to
// call with a nil channel (progress streaming disabled).
func trySend(ch chan Snapshot, snap Snapshot) {
	if ch == nil {
		return
	}
	select {
	case ch <- snap:
		return
	default:
	}
	// Channel full: drop the oldest pending value, then retry once. If
	// a concurrent reader drains it first the retry still succeeds; if
	// another writer races us for the freed slot, skip this update
	// rather than block.
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- snap:
	default:
	}
}
