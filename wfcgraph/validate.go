package wfcgraph

import "github.com/arcweave/latticewfc/bitset"

// Validate consumes a Graph[*bitset.Set] and yields a Graph[int] iff
// every cell has Count() == 1, replacing each cell's superposition with
// its sole remaining tile id. Returns ErrNotCollapsed otherwise.
func Validate(g Graph[*bitset.Set]) (Graph[int], error) {
	tiles := make([]int, len(g.Cells))
	for i, c := range g.Cells {
		tile, ok := c.Collapse()
		if !ok {
			return Graph[int]{}, ErrNotCollapsed
		}
		tiles[i] = tile
	}

	return Graph[int]{Cells: tiles, Neighbors: g.Neighbors}, nil
}
