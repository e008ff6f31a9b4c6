package backend

import "github.com/arcweave/latticewfc/wfctask"

// Backend queues wfctask.Task values for solving and reports results as
// they complete. Task identity for correlation is the caller's
// responsibility via wfctask.Task.Metadata — a backend never reorders or
// inspects it.
type Backend interface {
	// QueueTask submits t for solving. It does not block on the solve
	// itself, only on queue capacity. Returns ErrBackendClosed instead of
	// queuing if Close has already been called.
	QueueTask(t *wfctask.Task) error

	// GetOutput returns the next completed task if one is ready, without
	// blocking. The final return value is false if nothing is ready yet.
	GetOutput() (*wfctask.Task, error, bool)

	// WaitForOutput blocks until a task completes or the backend is
	// closed and fully drained, in which case it returns ErrBackendClosed.
	WaitForOutput() (*wfctask.Task, error)

	// Close stops accepting new tasks and blocks until every already
	// queued task has finished. Close itself consumes any results the
	// caller has not yet retrieved, so those are discarded. It does not
	// cancel in-flight solves.
	Close()
}

// result pairs a solved (or failed) task with its error for delivery on
// the output channel.
type result struct {
	task *wfctask.Task
	err  error
}
