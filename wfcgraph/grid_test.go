package wfcgraph_test

import (
	"testing"

	"github.com/arcweave/latticewfc/bitset"
	"github.com/arcweave/latticewfc/wfcgraph"
	"github.com/stretchr/testify/require"
)

func TestRegularGrid2DNonPeriodicBoundary(t *testing.T) {
	g, err := wfcgraph.NewRegularGrid2D(wfcgraph.GridSettings2D{Width: 3, Height: 3}, func(x, y int) int {
		return wfcgraph.Grid2DIndex(x, y, 3)
	})
	require.NoError(t, err)
	require.Equal(t, 9, g.Len())

	// Corner cell (0,0) only has two in-bounds neighbors (+X, +Y).
	corner := wfcgraph.Grid2DIndex(0, 0, 3)
	require.Len(t, g.Neighbors[corner], 2)
}

func TestRegularGrid2DPeriodicWraps(t *testing.T) {
	g, err := wfcgraph.NewRegularGrid2D(wfcgraph.GridSettings2D{Width: 3, Height: 3, Periodic: true}, func(x, y int) int {
		return wfcgraph.Grid2DIndex(x, y, 3)
	})
	require.NoError(t, err)
	corner := wfcgraph.Grid2DIndex(0, 0, 3)
	require.Len(t, g.Neighbors[corner], 4, "periodic grid: every cell has all 4 neighbors")
}

func TestOppositeIsSymmetric(t *testing.T) {
	g, err := wfcgraph.NewRegularGrid2D(wfcgraph.GridSettings2D{Width: 4, Height: 4, Periodic: true}, func(x, y int) int {
		return 0
	})
	require.NoError(t, err)
	for idx, neighbors := range g.Neighbors {
		for _, nb := range neighbors {
			back := wfcgraph.Opposite4(nb.Arc)
			found := false
			for _, nnb := range g.Neighbors[nb.Index] {
				if nnb.Arc == back && nnb.Index == idx {
					found = true
					break
				}
			}
			require.True(t, found, "arc %d from %d to %d must have a reverse arc", nb.Arc, idx, nb.Index)
		}
	}
}

func TestRegularGrid2D8HasDiagonals(t *testing.T) {
	g, err := wfcgraph.NewRegularGrid2D8(wfcgraph.GridSettings2D{Width: 3, Height: 3, Periodic: true}, func(x, y int) int {
		return 0
	})
	require.NoError(t, err)
	require.Len(t, g.Neighbors[wfcgraph.Grid2DIndex(1, 1, 3)], 8)
}

func TestRegularGrid3D(t *testing.T) {
	g, err := wfcgraph.NewRegularGrid3D(wfcgraph.GridSettings3D{Width: 2, Height: 2, Depth: 2, Periodic: true}, func(x, y, z int) int {
		return 0
	})
	require.NoError(t, err)
	require.Equal(t, 8, g.Len())
	require.Len(t, g.Neighbors[0], 6)
}

func TestValidate(t *testing.T) {
	g := wfcgraph.Graph[*bitset.Set]{
		Cells:     []*bitset.Set{bitset.Empty(3), bitset.Empty(3)},
		Neighbors: [][]wfcgraph.Neighbor{{}, {}},
	}
	g.Cells[0].Add(1)
	g.Cells[1].Add(2)
	final, err := wfcgraph.Validate(g)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, final.Cells)
}

func TestValidateFailsOnUncollapsed(t *testing.T) {
	g := wfcgraph.Graph[*bitset.Set]{
		Cells:     []*bitset.Set{bitset.Filled(3)},
		Neighbors: [][]wfcgraph.Neighbor{{}},
	}
	_, err := wfcgraph.Validate(g)
	require.ErrorIs(t, err, wfcgraph.ErrNotCollapsed)
}

func TestGraphClone(t *testing.T) {
	g := wfcgraph.Graph[*bitset.Set]{
		Cells:     []*bitset.Set{bitset.Filled(4)},
		Neighbors: [][]wfcgraph.Neighbor{{}},
	}
	clone := g.Clone(func(s *bitset.Set) *bitset.Set { return s.Clone() })
	clone.Cells[0].Remove(0)
	require.Equal(t, 4, g.Cells[0].Count(), "clone must not alias the original cell")
	require.Equal(t, 3, clone.Cells[0].Count())
}
