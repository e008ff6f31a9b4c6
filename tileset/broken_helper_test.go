package tileset_test

import "github.com/arcweave/latticewfc/bitset"

// brokenTileset is a 2-tile, 2-arc Tileset whose constraints are
// deliberately asymmetric, for exercising CheckBidirectional's failure
// path.
type brokenTileset struct{}

func (b *brokenTileset) TileCount() int      { return 2 }
func (b *brokenTileset) ArcTypes() int       { return 2 }
func (b *brokenTileset) Weights() []uint64   { return []uint64{1, 1} }
func (b *brokenTileset) Constraints() [][]*bitset.Set {
	c := make([][]*bitset.Set, 2)
	for t := range c {
		c[t] = make([]*bitset.Set, 2)
		for d := range c[t] {
			c[t][d] = bitset.Empty(2)
		}
	}
	// Tile 0 claims tile 1 as a neighbor on arc 0, but tile 1 does not
	// reciprocate on arc 1 (the opposite of 0).
	c[0][0].Add(1)
	return c
}
