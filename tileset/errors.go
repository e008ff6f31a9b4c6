package tileset

import "errors"

// ErrBidirectionalViolation is returned by CheckBidirectional when a
// tileset's constraints are not symmetric under the supplied opposite
// mapping: constraints[a][d].Contains(b) but not
// constraints[b][opposite(d)].Contains(a).
var ErrBidirectionalViolation = errors.New("tileset: constraints are not bidirectional")

// ErrEmptySample is returned by NewOverlapping when the sample grid has
// no rows or columns.
var ErrEmptySample = errors.New("tileset: sample grid must be non-empty")

// ErrNonRectangularSample is returned by NewOverlapping when sample rows
// have differing lengths.
var ErrNonRectangularSample = errors.New("tileset: sample rows must be the same length")

// ErrNoEdgeTiles is returned by NewEdgeType when no tiles are supplied.
var ErrNoEdgeTiles = errors.New("tileset: at least one tile is required")
