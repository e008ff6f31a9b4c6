package backend

import "errors"

// ErrBackendClosed is returned by QueueTask after Close, and by
// WaitForOutput once a backend has been closed and its output drained.
var ErrBackendClosed = errors.New("backend: closed and drained")
