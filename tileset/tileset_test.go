package tileset_test

import (
	"testing"

	"github.com/arcweave/latticewfc/tileset"
	"github.com/arcweave/latticewfc/wfcgraph"
	"github.com/stretchr/testify/require"
)

func TestNewBasicIsBidirectional(t *testing.T) {
	ts, err := tileset.NewBasic()
	require.NoError(t, err)
	require.Equal(t, 17, ts.TileCount())
	require.NoError(t, tileset.CheckBidirectional(ts, wfcgraph.Opposite4))
}

func TestNewCarcassonneIsBidirectional(t *testing.T) {
	ts, err := tileset.NewCarcassonne()
	require.NoError(t, err)
	require.Equal(t, 72, ts.TileCount())
	require.NoError(t, tileset.CheckBidirectional(ts, wfcgraph.Opposite4))
}

func TestNewOverlapping(t *testing.T) {
	sample := [][]int{
		{0, 0, 1},
		{0, 1, 1},
		{1, 1, 1},
	}
	ts, err := tileset.NewOverlapping(sample, 1)
	require.NoError(t, err)
	require.True(t, ts.TileCount() > 0)
	require.NoError(t, tileset.CheckBidirectional(ts, ts.Opposite))
}

func TestNewOverlappingRejectsNonRectangular(t *testing.T) {
	_, err := tileset.NewOverlapping([][]int{{1, 2}, {3}}, 1)
	require.ErrorIs(t, err, tileset.ErrNonRectangularSample)
}

func TestNewOverlappingRejectsEmpty(t *testing.T) {
	_, err := tileset.NewOverlapping(nil, 1)
	require.ErrorIs(t, err, tileset.ErrEmptySample)
}

func TestCheckBidirectionalDetectsViolation(t *testing.T) {
	bad := &brokenTileset{}
	err := tileset.CheckBidirectional(bad, func(d int) int { return d ^ 1 })
	require.ErrorIs(t, err, tileset.ErrBidirectionalViolation)
}
