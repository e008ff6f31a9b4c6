package wfcgraph

// FacadeNodeKind distinguishes the two kinds of node in a facade mesh:
// a boundary vertex (a grid corner touched by the occupied/empty
// surface) or a boundary edge (a grid edge lying on that surface,
// connecting two boundary vertices).
type FacadeNodeKind int

const (
	FacadeVertex FacadeNodeKind = iota
	FacadeEdge
)

// FacadeNode is one node of a facade mesh: either a vertex at a grid
// corner, or an edge between two grid corners.
type FacadeNode struct {
	Kind FacadeNodeKind
	// X, Y, Z are grid-corner coordinates in [0, size+1) along each axis.
	X, Y, Z int
	// Axis is meaningful only for FacadeEdge nodes: 0=X, 1=Y, 2=Z,
	// identifying which axis the edge runs along from (X,Y,Z).
	Axis int
}

// Arc types out of a vertex node: one per incident edge direction,
// ordered to match dir3D so Opposite6 still applies between a vertex and
// the far endpoint of one of its edges.
//
// Arc types out of an edge node: 0 = towards its min-corner endpoint,
// 1 = towards its max-corner endpoint.
const (
	FacadeEdgeToMin = 0
	FacadeEdgeToMax = 1
)

// NewFacadeMesh derives a facade mesh from a completed coarse 3D grid:
// nodes are the vertices and edges of the surface separating cells for
// which occupied returns true from cells for which it returns false.
// Arcs connect each vertex to its neighboring boundary edges, and each
// edge to its two endpoint vertices.
//
// grid must be the Graph[int] produced by Validate on a grid built with
// NewRegularGrid3D(GridSettings3D{Width: w, Height: h, Depth: d, ...}).
func NewFacadeMesh(grid Graph[int], w, h, d int, occupied func(tile int) bool) Graph[FacadeNode] {
	cellIndex := func(x, y, z int) int { return (x*h+y)*d + z }
	cellOccupied := func(x, y, z int) bool {
		if x < 0 || x >= w || y < 0 || y >= h || z < 0 || z >= d {
			return false
		}
		return occupied(grid.Cells[cellIndex(x, y, z)])
	}

	type edgeKey struct{ x, y, z, axis int }
	vertexIdx := map[[3]int]int{}
	edgeIdx := map[edgeKey]int{}
	var nodes []FacadeNode

	vertexID := func(x, y, z int) int {
		key := [3]int{x, y, z}
		if id, ok := vertexIdx[key]; ok {
			return id
		}
		id := len(nodes)
		vertexIdx[key] = id
		nodes = append(nodes, FacadeNode{Kind: FacadeVertex, X: x, Y: y, Z: z})
		return id
	}

	// axisOffsets describes, for an edge running along `axis` from corner
	// (x,y,z), the two pairs of cells that straddle it; the edge is on
	// the boundary iff those cells are not uniformly occupied/empty.
	axisOffsets := [3][4][2][3]int{
		0: { // edge along X: cells vary in Y,Z
			{{0, -1, -1}, {0, -1, 0}}, {{0, -1, 0}, {0, 0, 0}},
			{{0, 0, 0}, {0, 0, -1}}, {{0, 0, -1}, {0, -1, -1}},
		},
		1: { // edge along Y: cells vary in X,Z
			{{-1, 0, -1}, {-1, 0, 0}}, {{-1, 0, 0}, {0, 0, 0}},
			{{0, 0, 0}, {0, 0, -1}}, {{0, 0, -1}, {-1, 0, -1}},
		},
		2: { // edge along Z: cells vary in X,Y
			{{-1, -1, 0}, {-1, 0, 0}}, {{-1, 0, 0}, {0, 0, 0}},
			{{0, 0, 0}, {0, -1, 0}}, {{0, -1, 0}, {-1, -1, 0}},
		},
	}

	type discoveredEdge struct {
		x, y, z, axis int
		minV, maxV    int
	}
	var discovered []discoveredEdge

	corners := w + 1
	rows := h + 1
	depths := d + 1
	for x := 0; x < corners; x++ {
		for y := 0; y < rows; y++ {
			for z := 0; z < depths; z++ {
				for axis := 0; axis < 3; axis++ {
					any := false
					for _, pair := range axisOffsets[axis] {
						a := cellOccupied(x+pair[0][0], y+pair[0][1], z+pair[0][2])
						b := cellOccupied(x+pair[1][0], y+pair[1][1], z+pair[1][2])
						if a != b {
							any = true
						}
					}
					if !any {
						continue
					}

					minX, minY, minZ := x, y, z
					maxX, maxY, maxZ := x, y, z
					switch axis {
					case 0:
						maxX = x + 1
					case 1:
						maxY = y + 1
					case 2:
						maxZ = z + 1
					}
					if maxX > w || maxY > h || maxZ > d {
						continue
					}

					minV := vertexID(minX, minY, minZ)
					maxV := vertexID(maxX, maxY, maxZ)
					key := edgeKey{x, y, z, axis}
					if _, ok := edgeIdx[key]; ok {
						continue
					}
					id := len(nodes)
					edgeIdx[key] = id
					nodes = append(nodes, FacadeNode{Kind: FacadeEdge, X: x, Y: y, Z: z, Axis: axis})
					discovered = append(discovered, discoveredEdge{x, y, z, axis, minV, maxV})
				}
			}
		}
	}

	neighbors := make([][]Neighbor, len(nodes))
	for _, e := range discovered {
		edgeID := edgeIdx[edgeKey{e.x, e.y, e.z, e.axis}]
		neighbors[edgeID] = append(neighbors[edgeID],
			Neighbor{Arc: FacadeEdgeToMin, Index: e.minV},
			Neighbor{Arc: FacadeEdgeToMax, Index: e.maxV},
		)
		neighbors[e.minV] = append(neighbors[e.minV], Neighbor{Arc: e.axis * 2, Index: edgeID})
		neighbors[e.maxV] = append(neighbors[e.maxV], Neighbor{Arc: e.axis*2 + 1, Index: edgeID})
	}

	return Graph[FacadeNode]{Cells: nodes, Neighbors: neighbors}
}
