// Package backend runs queued wfctask.Task values through solver.Run on
// one or more worker goroutines and hands results back in completion
// order. NewSingle runs one dedicated worker goroutine; NewMulti runs a
// pool of n, built on errgroup.
package backend
