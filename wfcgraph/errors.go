package wfcgraph

import "errors"

// ErrNotCollapsed is returned by Validate when some cell's superposition
// does not have exactly one bit set.
var ErrNotCollapsed = errors.New("wfcgraph: cell is not fully collapsed")

// ErrDimensions is returned by a grid builder when width/height/depth are
// non-positive.
var ErrDimensions = errors.New("wfcgraph: grid dimensions must be positive")
