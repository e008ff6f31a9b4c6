// Package bitset implements Superposition: a fixed-capacity set of tile
// indices used by the WFC solver to track which tiles a cell may still
// become.
//
// A Set is sized once at construction (its capacity N, the tileset's tile
// count) and never grows. Internally it is a slice of uint64 words, so
// tilesets with more than 64 tiles span multiple words transparently.
//
// Invariant: bits at index >= N are always zero. Every method that could
// otherwise set such a bit (Union, Add with an out-of-range index, …)
// either clips it or panics on an index out of [0, N).
package bitset
