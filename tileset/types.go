package tileset

import "github.com/arcweave/latticewfc/bitset"

// Tileset is the only capability the WFC core requires of a tile
// catalog. Implementations are external collaborators (pattern-overlap,
// edge-matching, Mxgmn XML, …); the core never interprets tile
// identities, only these four accessors.
type Tileset interface {
	// TileCount returns N, the number of distinct tiles.
	TileCount() int

	// ArcTypes returns D, the number of labeled directions between
	// cells.
	ArcTypes() int

	// Weights returns one non-negative weight per tile, used by
	// PickRandomWeighted during collapse.
	Weights() []uint64

	// Constraints returns constraints[t][d]: the set of tiles allowed
	// on the far side of an arc of type d from a cell assigned tile t.
	// The returned slices must not be mutated by callers.
	Constraints() [][]*bitset.Set
}

// OppositeFunc maps an arc type to its reverse direction; it is supplied
// by the caller of CheckBidirectional because the pairing is a property
// of the arc labeling (grid topologies use d XOR 1; a pattern-overlap
// tileset's 2D offset grid is its own, symmetric pairing).
type OppositeFunc func(d int) int

// CheckBidirectional verifies, for every tile a, arc d and tile b, that
// constraints[a][d].Contains(b) iff constraints[b][opposite(d)].Contains(a).
// Concrete tileset constructors call this once at construction time so
// that a malformed constraint table is caught immediately rather than
// surfacing as a confusing mid-solve contradiction.
func CheckBidirectional(ts Tileset, opposite OppositeFunc) error {
	n := ts.TileCount()
	constraints := ts.Constraints()
	for a := 0; a < n; a++ {
		for d := 0; d < ts.ArcTypes(); d++ {
			od := opposite(d)
			var bad bool
			constraints[a][d].Each(func(b int) bool {
				if !constraints[b][od].Contains(a) {
					bad = true
					return false
				}
				return true
			})
			if bad {
				return ErrBidirectionalViolation
			}
		}
	}
	return nil
}
