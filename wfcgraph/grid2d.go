package wfcgraph

// 2D axis directions, emitted in (+axis, -axis) pairs so that
// opposite(d) = d XOR 1 holds for every arc type below.
const (
	DirPosX = 0
	DirNegX = 1
	DirPosY = 2
	DirNegY = 3
)

var dir2D = [4][2]int{
	DirPosX: {1, 0},
	DirNegX: {-1, 0},
	DirPosY: {0, 1},
	DirNegY: {0, -1},
}

// 8-direction offsets: the 4 axis pairs above plus two diagonal pairs,
// still grouped so that opposite(d) = d XOR 1.
const (
	DirPosXPosY = 4
	DirNegXNegY = 5
	DirPosXNegY = 6
	DirNegXPosY = 7
)

var dir8 = [8][2]int{
	DirPosX:     {1, 0},
	DirNegX:     {-1, 0},
	DirPosY:     {0, 1},
	DirNegY:     {0, -1},
	DirPosXPosY: {1, 1},
	DirNegXNegY: {-1, -1},
	DirPosXNegY: {1, -1},
	DirNegXPosY: {-1, 1},
}

// Opposite4 returns the reverse of a 4-direction 2D arc.
func Opposite4(d int) int { return d ^ 1 }

// Opposite8 returns the reverse of an 8-direction 2D arc.
func Opposite8(d int) int { return d ^ 1 }

// GridSettings2D configures a regular 2D grid topology.
type GridSettings2D struct {
	Width, Height int
	// Periodic wraps coordinates at the grid boundary instead of
	// omitting the out-of-bounds arc.
	Periodic bool
}

// NewRegularGrid2D builds a row-major 4-arc-type 2D grid graph. Cell
// index = x*Height + y. fill is called once per cell to produce its
// initial payload. Non-periodic grids simply omit neighbor arcs that
// would leave the grid.
func NewRegularGrid2D[T any](s GridSettings2D, fill func(x, y int) T) (Graph[T], error) {
	if s.Width <= 0 || s.Height <= 0 {
		return Graph[T]{}, ErrDimensions
	}
	return buildGrid2D(s.Width, s.Height, s.Periodic, dir2D[:], fill)
}

// NewRegularGrid2D8 is NewRegularGrid2D with the 4 diagonal arc types
// added, for tilesets that constrain diagonal neighbors too.
func NewRegularGrid2D8[T any](s GridSettings2D, fill func(x, y int) T) (Graph[T], error) {
	if s.Width <= 0 || s.Height <= 0 {
		return Graph[T]{}, ErrDimensions
	}
	return buildGrid2D(s.Width, s.Height, s.Periodic, dir8[:], fill)
}

func buildGrid2D[T any](width, height int, periodic bool, dirs [][2]int, fill func(x, y int) T) (Graph[T], error) {
	n := width * height
	index := func(x, y int) int { return x*height + y }

	g := Graph[T]{
		Cells:     make([]T, n),
		Neighbors: make([][]Neighbor, n),
	}
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			idx := index(x, y)
			g.Cells[idx] = fill(x, y)

			neighbors := make([]Neighbor, 0, len(dirs))
			for arc, off := range dirs {
				nx, ny := x+off[0], y+off[1]
				if periodic {
					nx = ((nx % width) + width) % width
					ny = ((ny % height) + height) % height
				} else if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				neighbors = append(neighbors, Neighbor{Arc: arc, Index: index(nx, ny)})
			}
			g.Neighbors[idx] = neighbors
		}
	}

	return g, nil
}

// Grid2DCoord converts a row-major index back to (x, y) for a grid built
// with the given height.
func Grid2DCoord(idx, height int) (x, y int) {
	return idx / height, idx % height
}

// Grid2DIndex converts (x, y) to a row-major index for a grid built with
// the given height.
func Grid2DIndex(x, y, height int) int {
	return x*height + y
}
