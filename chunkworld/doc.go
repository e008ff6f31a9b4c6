// Package chunkworld splits a large grid into overlapping chunks that
// can each be solved as an independent wfctask.Task, merged back into a
// shared world, and scheduled so that a chunk is only queued once its
// prerequisite neighbors have finished.
package chunkworld
