package wfcgraph

// 3D axis directions, same pairing convention as the 2D grid.
const (
	DirPosX3 = 0
	DirNegX3 = 1
	DirPosY3 = 2
	DirNegY3 = 3
	DirPosZ3 = 4
	DirNegZ3 = 5
)

var dir3D = [6][3]int{
	DirPosX3: {1, 0, 0},
	DirNegX3: {-1, 0, 0},
	DirPosY3: {0, 1, 0},
	DirNegY3: {0, -1, 0},
	DirPosZ3: {0, 0, 1},
	DirNegZ3: {0, 0, -1},
}

// Opposite6 returns the reverse of a 6-direction 3D arc.
func Opposite6(d int) int { return d ^ 1 }

// GridSettings3D configures a regular 3D grid topology.
type GridSettings3D struct {
	Width, Height, Depth int
	Periodic             bool
}

// NewRegularGrid3D builds a row-major 6-arc-type 3D grid graph, for
// volumetric tilesets. Cell index = (x*Height+y)*Depth + z.
func NewRegularGrid3D[T any](s GridSettings3D, fill func(x, y, z int) T) (Graph[T], error) {
	if s.Width <= 0 || s.Height <= 0 || s.Depth <= 0 {
		return Graph[T]{}, ErrDimensions
	}

	index := func(x, y, z int) int { return (x*s.Height+y)*s.Depth + z }
	n := s.Width * s.Height * s.Depth

	g := Graph[T]{
		Cells:     make([]T, n),
		Neighbors: make([][]Neighbor, n),
	}
	for x := 0; x < s.Width; x++ {
		for y := 0; y < s.Height; y++ {
			for z := 0; z < s.Depth; z++ {
				idx := index(x, y, z)
				g.Cells[idx] = fill(x, y, z)

				neighbors := make([]Neighbor, 0, 6)
				for arc, off := range dir3D {
					nx, ny, nz := x+off[0], y+off[1], z+off[2]
					if s.Periodic {
						nx = ((nx % s.Width) + s.Width) % s.Width
						ny = ((ny % s.Height) + s.Height) % s.Height
						nz = ((nz % s.Depth) + s.Depth) % s.Depth
					} else if nx < 0 || nx >= s.Width || ny < 0 || ny >= s.Height || nz < 0 || nz >= s.Depth {
						continue
					}
					neighbors = append(neighbors, Neighbor{Arc: arc, Index: index(nx, ny, nz)})
				}
				g.Neighbors[idx] = neighbors
			}
		}
	}

	return g, nil
}
