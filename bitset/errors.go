package bitset

import "errors"

// Sentinel errors for bitset operations.
var (
	// ErrNoBitsSet is returned by PickRandomWeighted when the set is empty.
	ErrNoBitsSet = errors.New("bitset: no bits set")

	// ErrIndexOutOfRange is the panic value used when Add, Remove or
	// Contains is given an index outside [0, N).
	ErrIndexOutOfRange = errors.New("bitset: index out of range")

	// ErrCapacityMismatch is the panic value used when two sets of
	// different capacity are combined with Union/Intersect/Difference.
	ErrCapacityMismatch = errors.New("bitset: capacity mismatch")
)
