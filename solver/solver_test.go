package solver_test

import (
	"testing"

	"github.com/arcweave/latticewfc/bitset"
	"github.com/arcweave/latticewfc/solver"
	"github.com/arcweave/latticewfc/tileset"
	"github.com/arcweave/latticewfc/wfcgraph"
	"github.com/arcweave/latticewfc/wfctask"
	"github.com/stretchr/testify/require"
)

// ringTileset is a 2-tile, 2-arc bipartite-only constraint: tile 0 may
// only neighbor tile 1 and vice versa, across both arc types. Placed on
// an odd cycle this is unsatisfiable regardless of seed, giving a
// deterministic contradiction to exercise the no-backtracking and
// restart-exhaustion error paths without relying on randomness.
type ringTileset struct{}

func (ringTileset) TileCount() int    { return 2 }
func (ringTileset) ArcTypes() int     { return 2 }
func (ringTileset) Weights() []uint64 { return []uint64{1, 1} }
func (ringTileset) Constraints() [][]*bitset.Set {
	only := func(i int) *bitset.Set {
		s := bitset.Empty(2)
		s.Add(i)
		return s
	}
	return [][]*bitset.Set{
		{only(1), only(1)},
		{only(0), only(0)},
	}
}

// threeCycle builds a 3-cell graph where each cell connects to both
// others, arc 0 going "forward" and arc 1 "backward" around the ring.
func threeCycle() wfcgraph.Graph[*bitset.Set] {
	return wfcgraph.Graph[*bitset.Set]{
		Cells: []*bitset.Set{bitset.Filled(2), bitset.Filled(2), bitset.Filled(2)},
		Neighbors: [][]wfcgraph.Neighbor{
			{{Arc: 0, Index: 1}, {Arc: 1, Index: 2}},
			{{Arc: 0, Index: 2}, {Arc: 1, Index: 0}},
			{{Arc: 0, Index: 0}, {Arc: 1, Index: 1}},
		},
	}
}

func TestRunReturnsErrContradictionNoBacktrackingOnOddCycle(t *testing.T) {
	task := wfctask.New(threeCycle(), ringTileset{}, 1)
	err := solver.Run(task, nil, nil)
	require.ErrorIs(t, err, solver.ErrContradictionNoBacktracking)
}

func TestRunReturnsErrRestartBudgetExhaustedOnOddCycle(t *testing.T) {
	task := wfctask.New(threeCycle(), ringTileset{}, 1, wfctask.WithSettings(wfctask.Settings{
		Backtracking: wfctask.Enabled(3),
	}))
	err := solver.Run(task, nil, nil)
	require.ErrorIs(t, err, solver.ErrRestartBudgetExhausted)
	for _, cell := range task.Graph.Cells {
		require.Equal(t, 0, cell.Count())
	}
}

func TestRunReturnsErrInvalidInitialState(t *testing.T) {
	ts, err := tileset.NewBasic()
	require.NoError(t, err)

	grid, err := wfcgraph.NewRegularGrid2D(wfcgraph.GridSettings2D{Width: 2, Height: 1}, func(x, y int) *bitset.Set {
		return bitset.Filled(ts.TileCount())
	})
	require.NoError(t, err)

	air := bitset.Empty(ts.TileCount())
	air.Add(0)
	dirt := bitset.Empty(ts.TileCount())
	dirt.Add(5)
	grid.Cells[wfcgraph.Grid2DIndex(0, 0, 1)] = air
	grid.Cells[wfcgraph.Grid2DIndex(1, 0, 1)] = dirt

	task := wfctask.New(grid, ts, 1)
	err = solver.Run(task, nil, nil)
	require.ErrorIs(t, err, solver.ErrInvalidInitialState)
}

func buildBasicGrid(t *testing.T, seed uint64) *wfctask.Task {
	t.Helper()
	ts, err := tileset.NewBasic()
	require.NoError(t, err)

	grid, err := wfcgraph.NewRegularGrid2D(wfcgraph.GridSettings2D{Width: 3, Height: 3}, func(x, y int) *bitset.Set {
		return bitset.Filled(ts.TileCount())
	})
	require.NoError(t, err)

	return wfctask.New(grid, ts, seed, wfctask.WithSettings(wfctask.Settings{
		Backtracking: wfctask.Enabled(50),
	}))
}

func TestRunSolvesSimpleGrid(t *testing.T) {
	task := buildBasicGrid(t, 42)
	require.NoError(t, solver.Run(task, nil, nil))

	collapsed, err := wfcgraph.Validate(task.Graph)
	require.NoError(t, err)
	require.Equal(t, 9, collapsed.Len())

	constraints := task.Tileset.Constraints()
	for index, tile := range collapsed.Cells {
		for _, neighbor := range collapsed.Neighbors[index] {
			other := collapsed.Cells[neighbor.Index]
			require.True(t, constraints[tile][neighbor.Arc].Contains(other),
				"tile %d does not allow %d across arc %d", tile, other, neighbor.Arc)
		}
	}
}

func TestRunIsDeterministicForSameSeed(t *testing.T) {
	first := buildBasicGrid(t, 7)
	second := buildBasicGrid(t, 7)

	require.NoError(t, solver.Run(first, nil, nil))
	require.NoError(t, solver.Run(second, nil, nil))

	for i := range first.Graph.Cells {
		require.True(t, first.Graph.Cells[i].Equal(second.Graph.Cells[i]))
	}
}

func TestRunEmitsProgressSnapshots(t *testing.T) {
	task := buildBasicGrid(t, 99)
	task.Settings.ProgressInterval = 1
	progress := solver.NewProgressChan()

	require.NoError(t, solver.Run(task, progress, nil))

	select {
	case snap := <-progress:
		require.Equal(t, 9, snap.Graph.Len())
	default:
		t.Fatal("expected at least one progress snapshot")
	}
}

// permissiveTileset allows every tile to neighbor every tile across every
// arc, so propagation can never contradict regardless of which tiles end
// up adjacent — useful for isolating behavior that must hold independent
// of constraint satisfaction (determinism, monotonicity).
type permissiveTileset struct {
	n        int
	arcTypes int
}

func (p permissiveTileset) TileCount() int { return p.n }
func (p permissiveTileset) ArcTypes() int  { return p.arcTypes }
func (p permissiveTileset) Weights() []uint64 {
	w := make([]uint64, p.n)
	for i := range w {
		w[i] = 1
	}
	return w
}
func (p permissiveTileset) Constraints() [][]*bitset.Set {
	c := make([][]*bitset.Set, p.n)
	for t := range c {
		c[t] = make([]*bitset.Set, p.arcTypes)
		for d := range c[t] {
			c[t][d] = bitset.Filled(p.n)
		}
	}
	return c
}

// twoCellGraph builds a single-arc-type graph of 2 cells connected by one
// arc type (arc 0 is its own opposite, so both directions of the link use
// arc 0).
func twoCellGraph(tileCount int) wfcgraph.Graph[*bitset.Set] {
	return wfcgraph.Graph[*bitset.Set]{
		Cells: []*bitset.Set{bitset.Filled(tileCount), bitset.Filled(tileCount)},
		Neighbors: [][]wfcgraph.Neighbor{
			{{Arc: 0, Index: 1}},
			{{Arc: 0, Index: 0}},
		},
	}
}

func TestRunTrivialTwoTileGridIsStableAcrossRuns(t *testing.T) {
	ts := permissiveTileset{n: 2, arcTypes: 1}

	first := wfctask.New(twoCellGraph(2), ts, 0)
	require.NoError(t, solver.Run(first, nil, nil))

	second := wfctask.New(twoCellGraph(2), ts, 0)
	require.NoError(t, solver.Run(second, nil, nil))

	for i := range first.Graph.Cells {
		require.Equal(t, 1, first.Graph.Cells[i].Count())
		require.True(t, first.Graph.Cells[i].Equal(second.Graph.Cells[i]))
	}
}

// pathTileset is the 0-1-2 "monotone path" constraint from the forced
// propagation scenario: 0 only ever neighbors {0,1}, 1 neighbors
// {0,1,2}, 2 neighbors {1,2}, the same for every arc direction.
type pathTileset struct{}

func (pathTileset) TileCount() int    { return 3 }
func (pathTileset) ArcTypes() int     { return 4 }
func (pathTileset) Weights() []uint64 { return []uint64{1, 1, 1} }
func (pathTileset) Constraints() [][]*bitset.Set {
	set := func(bits ...int) *bitset.Set {
		s := bitset.Empty(3)
		for _, b := range bits {
			s.Add(b)
		}
		return s
	}
	row := func(bits ...int) []*bitset.Set {
		s := set(bits...)
		return []*bitset.Set{s, s, s, s}
	}
	return [][]*bitset.Set{
		row(0, 1),
		row(0, 1, 2),
		row(1, 2),
	}
}

func TestRunForcedPathRespectsPreCollapsedEndpoints(t *testing.T) {
	ts := pathTileset{}
	grid, err := wfcgraph.NewRegularGrid2D(wfcgraph.GridSettings2D{Width: 5, Height: 1}, func(x, y int) *bitset.Set {
		return bitset.Filled(ts.TileCount())
	})
	require.NoError(t, err)

	first := bitset.Empty(3)
	first.Add(0)
	last := bitset.Empty(3)
	last.Add(2)
	grid.Cells[wfcgraph.Grid2DIndex(0, 0, 1)] = first
	grid.Cells[wfcgraph.Grid2DIndex(4, 0, 1)] = last

	task := wfctask.New(grid, ts, 3, wfctask.WithSettings(wfctask.Settings{
		Backtracking: wfctask.Enabled(50),
	}))
	require.NoError(t, solver.Run(task, nil, nil))

	collapsed, err := wfcgraph.Validate(task.Graph)
	require.NoError(t, err)
	require.Equal(t, 0, collapsed.Cells[wfcgraph.Grid2DIndex(0, 0, 1)])
	require.Equal(t, 2, collapsed.Cells[wfcgraph.Grid2DIndex(4, 0, 1)])

	constraints := ts.Constraints()
	for index, tile := range collapsed.Cells {
		for _, neighbor := range collapsed.Neighbors[index] {
			other := collapsed.Cells[neighbor.Index]
			require.True(t, constraints[tile][neighbor.Arc].Contains(other),
				"tile %d does not allow %d across arc %d", tile, other, neighbor.Arc)
		}
	}
}

func TestRunSingleCellSingleTileCollapsesWithoutDecisions(t *testing.T) {
	ts := permissiveTileset{n: 1, arcTypes: 4}
	grid, err := wfcgraph.NewRegularGrid2D(wfcgraph.GridSettings2D{Width: 1, Height: 1}, func(x, y int) *bitset.Set {
		return bitset.Filled(ts.TileCount())
	})
	require.NoError(t, err)

	task := wfctask.New(grid, ts, 0)
	task.Settings.ProgressInterval = 1
	progress := solver.NewProgressChan()

	require.NoError(t, solver.Run(task, progress, nil))
	require.Equal(t, 1, task.Graph.Cells[0].Count())

	select {
	case <-progress:
		t.Fatal("expected no progress snapshot: a single already-collapsed cell makes zero decisions")
	default:
	}
}

// onlyTileZero forces the unique valid tiling to be "every cell is tile
// 0": tile 0 only ever neighbors itself, tile 1 neighbors nothing (empty
// constraint on every arc), so any cell with at least one neighbor can
// never settle on tile 1 without an immediate contradiction.
type onlyTileZero struct{}

func (onlyTileZero) TileCount() int    { return 2 }
func (onlyTileZero) ArcTypes() int     { return 4 }
func (onlyTileZero) Weights() []uint64 { return []uint64{1, 1} }
func (onlyTileZero) Constraints() [][]*bitset.Set {
	zero := bitset.Empty(2)
	zero.Add(0)
	empty := bitset.Empty(2)
	return [][]*bitset.Set{
		{zero, zero, zero, zero},
		{empty, empty, empty, empty},
	}
}

func TestRunUniqueTilingHoldsForEverySeed(t *testing.T) {
	ts := onlyTileZero{}
	for _, seed := range []uint64{0, 1, 2, 3, 100} {
		grid, err := wfcgraph.NewRegularGrid2D(wfcgraph.GridSettings2D{Width: 3, Height: 3}, func(x, y int) *bitset.Set {
			return bitset.Filled(ts.TileCount())
		})
		require.NoError(t, err)

		task := wfctask.New(grid, ts, seed)
		require.NoError(t, solver.Run(task, nil, nil))
		for _, tile := range task.Graph.Cells {
			require.Equal(t, []int{0}, tile.Indices())
		}
	}
}

func TestProgressSnapshotsAreMonotonicallyNonIncreasing(t *testing.T) {
	ts := permissiveTileset{n: 4, arcTypes: 4}
	grid, err := wfcgraph.NewRegularGrid2D(wfcgraph.GridSettings2D{Width: 6, Height: 6}, func(x, y int) *bitset.Set {
		return bitset.Filled(ts.TileCount())
	})
	require.NoError(t, err)

	task := wfctask.New(grid, ts, 11)
	task.Settings.ProgressInterval = 1
	progress := solver.NewProgressChan()

	var snaps []solver.Snapshot
	done := make(chan struct{})
	go func() {
		for s := range progress {
			snaps = append(snaps, s)
		}
		close(done)
	}()

	err = solver.Run(task, progress, nil)
	close(progress)
	<-done
	require.NoError(t, err)

	for i := 1; i < len(snaps); i++ {
		for idx := range snaps[i].Graph.Cells {
			require.LessOrEqual(t, snaps[i].Graph.Cells[idx].Count(), snaps[i-1].Graph.Cells[idx].Count())
		}
	}
}
