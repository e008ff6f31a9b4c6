package tileset

import "github.com/arcweave/latticewfc/bitset"

// edgeTypeTile is one tile's edge-type labeling: Edges[d] names what
// kind of boundary this tile presents on arc d. Two tiles t1, t2 may
// neighbor across arc d iff t2.Edges[opposite(d)] == t1.Edges[d].
type edgeTypeTile struct {
	Edges  []int // one entry per arc type
	Weight uint64
}

// EdgeType is a Tileset built by matching per-tile, per-arc edge labels;
// it is the shared machinery behind Basic and Carcassonne (both of which
// define a small enum of edge types and derive their constraints from
// edge-type equality across the opposite arc; Basic additionally lets an
// air edge of any tile other than tile 0 connect only to tile 0).
type EdgeType struct {
	arcTypes    int
	weights     []uint64
	constraints [][]*bitset.Set
}

// NewEdgeType builds an EdgeType tileset from a slice of per-tile edge
// labelings, all of length arcTypes, plus the opposite mapping for this
// arc labeling (grid topologies: wfcgraph.Opposite4/6/8).
func NewEdgeType(tiles []edgeTypeTile, arcTypes int, opposite OppositeFunc) (*EdgeType, error) {
	if len(tiles) == 0 {
		return nil, ErrNoEdgeTiles
	}

	n := len(tiles)
	weights := make([]uint64, n)
	constraints := make([][]*bitset.Set, n)
	for t := range tiles {
		weights[t] = tiles[t].Weight
		constraints[t] = make([]*bitset.Set, arcTypes)
		for d := 0; d < arcTypes; d++ {
			constraints[t][d] = bitset.Empty(n)
		}
	}

	for t, tile := range tiles {
		for d := 0; d < arcTypes; d++ {
			label := tile.Edges[d]
			for other, otherTile := range tiles {
				if otherTile.Edges[opposite(d)] == label {
					constraints[t][d].Add(other)
				}
			}
		}
	}

	ts := &EdgeType{arcTypes: arcTypes, weights: weights, constraints: constraints}
	if err := CheckBidirectional(ts, opposite); err != nil {
		return nil, err
	}
	return ts, nil
}

func (e *EdgeType) TileCount() int             { return len(e.weights) }
func (e *EdgeType) ArcTypes() int              { return e.arcTypes }
func (e *EdgeType) Weights() []uint64          { return e.weights }
func (e *EdgeType) Constraints() [][]*bitset.Set { return e.constraints }
