package backend

import (
	"sync"

	"github.com/arcweave/latticewfc/solver"
	"github.com/arcweave/latticewfc/wfclog"
	"github.com/arcweave/latticewfc/wfctask"
)

// queueCapacity bounds the task and output channels. A generously sized
// buffered channel stands in for an unbounded queue: QueueTask blocks
// only once queueCapacity tasks are already waiting, which almost no
// realistic chunk count reaches.
const queueCapacity = 1024

// single runs tasks one at a time on a dedicated goroutine.
type single struct {
	tasks     chan *wfctask.Task
	output    chan result
	logger    wfclog.Logger
	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once
}

// NewSingle starts a single-worker backend. logger may be nil.
func NewSingle(logger wfclog.Logger) Backend {
	s := &single{
		tasks:  make(chan *wfctask.Task, queueCapacity),
		output: make(chan result, queueCapacity),
		logger: logger,
	}
	go s.run()
	return s
}

func (s *single) run() {
	for task := range s.tasks {
		err := solver.Run(task, nil, s.logger)
		if err != nil {
			wfclog.Errorf(s.logger, "task failed: %v", err)
		}
		s.output <- result{task: task, err: err}
	}
	close(s.output)
}

func (s *single) QueueTask(t *wfctask.Task) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrBackendClosed
	}
	s.tasks <- t
	return nil
}

func (s *single) GetOutput() (*wfctask.Task, error, bool) {
	select {
	case r, ok := <-s.output:
		if !ok {
			return nil, nil, false
		}
		return r.task, r.err, true
	default:
		return nil, nil, false
	}
}

func (s *single) WaitForOutput() (*wfctask.Task, error) {
	r, ok := <-s.output
	if !ok {
		return nil, ErrBackendClosed
	}
	return r.task, r.err
}

func (s *single) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		close(s.tasks)
		s.mu.Unlock()
	})
	for range s.output {
		// drain remaining results so run()'s goroutine can exit and
		// close(s.output), matching Close's "waits for in-flight tasks
		// to drain" contract for a caller that stops polling early.
	}
}
