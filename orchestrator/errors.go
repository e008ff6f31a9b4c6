package orchestrator

import "errors"

// ErrUnexpectedMetadata is returned if a task comes back from a backend
// carrying Metadata this package didn't attach itself — a sign the
// backend was shared with another caller.
var ErrUnexpectedMetadata = errors.New("orchestrator: task metadata not recognized")
