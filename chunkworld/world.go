package chunkworld

import (
	"image"

	"github.com/arcweave/latticewfc/bitset"
	"github.com/arcweave/latticewfc/wfcgraph"
)

// ChunkBounds returns the inclusive-exclusive cell rectangle [bottomLeft,
// topRight) that a chunk's extracted graph covers, including its overlap
// border, clamped to the world's extent.
func (w *World) ChunkBounds(chunk image.Point) (bottomLeft, topRight image.Point) {
	worldSize := image.Pt(w.Width(), w.Height())

	bottomLeft = image.Pt(
		max(chunk.X*w.ChunkSize-w.Overlap, 0),
		max(chunk.Y*w.ChunkSize-w.Overlap, 0),
	)
	topRight = image.Pt(
		min((chunk.X+1)*w.ChunkSize+w.Overlap, worldSize.X),
		min((chunk.Y+1)*w.ChunkSize+w.Overlap, worldSize.Y),
	)
	return bottomLeft, topRight
}

// ExtractChunk builds the local graph a solver will run over for chunk:
// cells inside the chunk's core are left fully unconstrained, cells in
// its overlap border are seeded with a copy of whatever the shared world
// currently holds there (already-collapsed neighbors constrain the
// solve; other in-progress neighbors pass through their partial
// superposition). Every border cell is cloned rather than aliased, so a
// worker solving this chunk never mutates the shared world's own
// *bitset.Set — required when multiple chunks are in flight at once.
func (w *World) ExtractChunk(chunk image.Point) wfcgraph.Graph[*bitset.Set] {
	bottomLeft, topRight := w.ChunkBounds(chunk)
	size := topRight.Sub(bottomLeft)

	chunkBottomLeft := chunk.Mul(w.ChunkSize)
	chunkTopRight := chunk.Add(image.Pt(1, 1)).Mul(w.ChunkSize)

	graph, _ := wfcgraph.NewRegularGrid2D(wfcgraph.GridSettings2D{Width: size.X, Height: size.Y}, func(x, y int) *bitset.Set {
		return bitset.Filled(w.Tileset.TileCount())
	})

	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			pos := image.Pt(bottomLeft.X+x, bottomLeft.Y+y)
			if inRect(pos, chunkBottomLeft, chunkTopRight) {
				continue
			}
			graph.Cells[wfcgraph.Grid2DIndex(x, y, size.Y)] = w.Cells[pos.X][pos.Y].Clone()
		}
	}

	return graph
}

// MergeChunk writes a solved (or partially solved) chunk graph back into
// the shared world: cells inside the chunk's core always overwrite,
// while overlap-border cells only overwrite if the world's existing
// value there is still unresolved (Count() > 1) or the incoming tile is
// a contradiction (Count() == 0, which must be surfaced rather than
// silently kept) — this preserves already-collapsed context contributed
// by a neighboring chunk.
func (w *World) MergeChunk(chunk image.Point, graph wfcgraph.Graph[*bitset.Set]) {
	bottomLeft, topRight := w.ChunkBounds(chunk)
	size := topRight.Sub(bottomLeft)

	chunkBottomLeft := chunk.Mul(w.ChunkSize)
	chunkTopRight := chunk.Add(image.Pt(1, 1)).Mul(w.ChunkSize)

	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			pos := image.Pt(bottomLeft.X+x, bottomLeft.Y+y)
			tile := graph.Cells[wfcgraph.Grid2DIndex(x, y, size.Y)]

			if inRect(pos, chunkBottomLeft, chunkTopRight) ||
				w.Cells[pos.X][pos.Y].Count() > 1 ||
				tile.Count() == 0 {
				w.Cells[pos.X][pos.Y] = tile
			}
		}
	}
}

func inRect(pos, bottomLeft, topRight image.Point) bool {
	return pos.X >= bottomLeft.X && pos.X < topRight.X && pos.Y >= bottomLeft.Y && pos.Y < topRight.Y
}
