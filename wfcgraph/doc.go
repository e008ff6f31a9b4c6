// Package wfcgraph defines the generic cell/arc graph the WFC solver
// operates on, plus the regular-grid and facade-mesh topology builders.
//
// A Graph[T] is an ordered sequence of cells carrying payload T, plus for
// each cell an ordered sequence of Neighbor records (arc type, index).
// Topology is immutable after construction — only cell payloads mutate.
// Two instantiations appear elsewhere in this module:
// Graph[*bitset.Set] (in progress, used by the solver) and Graph[int]
// (finalized, one tile id per cell, produced by Validate).
//
// Arc types are small integers in [0, arcTypes); for every grid topology
// built here, opposite(d) = d XOR 1 — directions are always emitted in
// (+axis, -axis) pairs, so flipping the low bit walks back the way you
// came.
package wfcgraph
