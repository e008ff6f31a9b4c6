// Package orchestrator drives a chunkworld.World to completion against a
// backend.Backend: one synchronous call that queues ready work, polls the
// backend for results, merges them, and schedules whatever becomes ready
// next, rather than a per-frame poll loop driven by an outer event
// system. GenerateSingleShot instead solves a single wfctask.Task directly
// through solver.Run, with no backend.
package orchestrator
