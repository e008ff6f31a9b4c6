package backend

import (
	"sync"

	"github.com/arcweave/latticewfc/solver"
	"github.com/arcweave/latticewfc/wfclog"
	"github.com/arcweave/latticewfc/wfctask"
	"golang.org/x/sync/errgroup"
)

// multi runs tasks across n worker goroutines bounded by an
// errgroup.Group, each draining a shared task channel.
type multi struct {
	tasks     chan *wfctask.Task
	output    chan result
	logger    wfclog.Logger
	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once
}

// NewMulti starts a backend with n concurrent workers (clamped to at
// least 1). logger may be nil.
func NewMulti(n int, logger wfclog.Logger) Backend {
	if n < 1 {
		n = 1
	}

	m := &multi{
		tasks:  make(chan *wfctask.Task, queueCapacity),
		output: make(chan result, queueCapacity),
		logger: logger,
	}

	g := &errgroup.Group{}
	g.SetLimit(n)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			for task := range m.tasks {
				err := solver.Run(task, nil, m.logger)
				if err != nil {
					wfclog.Errorf(m.logger, "task failed: %v", err)
				}
				m.output <- result{task: task, err: err}
			}
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		close(m.output)
	}()

	return m
}

func (m *multi) QueueTask(t *wfctask.Task) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return ErrBackendClosed
	}
	m.tasks <- t
	return nil
}

func (m *multi) GetOutput() (*wfctask.Task, error, bool) {
	select {
	case r, ok := <-m.output:
		if !ok {
			return nil, nil, false
		}
		return r.task, r.err, true
	default:
		return nil, nil, false
	}
}

func (m *multi) WaitForOutput() (*wfctask.Task, error) {
	r, ok := <-m.output
	if !ok {
		return nil, ErrBackendClosed
	}
	return r.task, r.err
}

func (m *multi) Close() {
	m.closeOnce.Do(func() {
		m.mu.Lock()
		m.closed = true
		close(m.tasks)
		m.mu.Unlock()
	})
	for range m.output {
	}
}
