package chunkworld

import (
	"image"
	"math/rand"

	"github.com/arcweave/latticewfc/bitset"
	"github.com/arcweave/latticewfc/tileset"
	"github.com/arcweave/latticewfc/wfctask"
)

// ChunkState tracks one chunk's progress through generation.
type ChunkState int

const (
	ChunkScheduled ChunkState = iota
	ChunkDone
	ChunkFailed
)

// ChunkKind distinguishes the deterministic corner/edge/center schedule
// from the non-deterministic flood-fill-from-a-random-start schedule.
type ChunkKind int

const (
	NonDeterministic ChunkKind = iota
	Corner
	Edge
	Center
)

// ChunkType labels one scheduled chunk. Center is only meaningful when
// Kind is NonDeterministic: it names the chunk generation flood-filled
// outward from, used to decide whether a diagonal neighbor is "on axis"
// with the seed.
type ChunkType struct {
	Kind   ChunkKind
	Center image.Point
}

// GenerationMode selects which scheduling strategy StartGeneration uses.
type GenerationMode int

const (
	ModeNonDeterministic GenerationMode = iota
	ModeDeterministic
)

// ChunkSettings configures chunk geometry.
type ChunkSettings struct {
	// ChunkSize is the side length, in cells, of one chunk's core region.
	ChunkSize int
	// Overlap is how many cells of surrounding context each extracted
	// chunk additionally carries (and must agree with) on every side.
	Overlap int
}

// ChunkJob is one (location, type) pair StartGeneration or ProcessChunk
// hands back for the orchestrator to turn into a wfctask.Task.
type ChunkJob struct {
	Chunk image.Point
	Type  ChunkType
}

// World holds the full grid being generated, one chunk at a time, plus
// the bookkeeping needed to know which chunks are ready to run next.
type World struct {
	Cells       [][]*bitset.Set // Cells[x][y]
	ChunkState  map[image.Point]ChunkState
	ChunkSize   int
	Overlap     int
	Tileset     tileset.Tileset
	Rng         *rand.Rand
	Outstanding int
	Settings    wfctask.Settings
}

// NewWorld allocates a width x height world of fully-unconstrained cells,
// ready for StartGeneration.
func NewWorld(width, height int, ts tileset.Tileset, seed uint64, chunk ChunkSettings, settings wfctask.Settings) (*World, error) {
	if width <= 0 || height <= 0 || chunk.ChunkSize <= 0 {
		return nil, ErrDimensions
	}
	if width%chunk.ChunkSize != 0 || height%chunk.ChunkSize != 0 {
		return nil, ErrChunkSizeMismatch
	}

	cells := make([][]*bitset.Set, width)
	for x := range cells {
		cells[x] = make([]*bitset.Set, height)
		for y := range cells[x] {
			cells[x][y] = bitset.Filled(ts.TileCount())
		}
	}

	return &World{
		Cells:      cells,
		ChunkState: make(map[image.Point]ChunkState),
		ChunkSize:  chunk.ChunkSize,
		Overlap:    chunk.Overlap,
		Tileset:    ts,
		Rng:        rand.New(rand.NewSource(int64(seed))),
		Settings:   settings,
	}, nil
}

// Width returns the world's cell width.
func (w *World) Width() int { return len(w.Cells) }

// Height returns the world's cell height.
func (w *World) Height() int {
	if len(w.Cells) == 0 {
		return 0
	}
	return len(w.Cells[0])
}

// chunksAcross returns how many whole chunks fit along each axis.
func (w *World) chunksAcross() image.Point {
	return image.Pt(w.Width()/w.ChunkSize, w.Height()/w.ChunkSize)
}
