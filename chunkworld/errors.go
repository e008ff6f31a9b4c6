package chunkworld

import "errors"

var (
	// ErrDimensions is returned by NewWorld for non-positive width, height,
	// or chunk size.
	ErrDimensions = errors.New("chunkworld: width, height, and chunk size must be positive")

	// ErrChunkSizeMismatch is returned when width or height is not an
	// exact multiple of the chunk size — the corner/edge/center schedule
	// assumes a whole number of chunks per axis.
	ErrChunkSizeMismatch = errors.New("chunkworld: width and height must be exact multiples of chunk size")
)
