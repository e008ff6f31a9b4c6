package tileset

// Edge types for Carcassonne.
const (
	edgeGrass = iota
	edgeRoad
	edgeCity
)

// carcassonneBase is the 18 base tiles' (PosX, NegX, PosY, NegY) edge
// labeling, before the 4 rotational variants are derived.
var carcassonneBase = [][4]int{
	{edgeCity, edgeRoad, edgeCity, edgeCity},
	{edgeCity, edgeGrass, edgeCity, edgeGrass},
	{edgeCity, edgeRoad, edgeCity, edgeRoad},
	{edgeGrass, edgeGrass, edgeCity, edgeCity},
	{edgeCity, edgeGrass, edgeCity, edgeGrass},
	{edgeCity, edgeCity, edgeGrass, edgeGrass},
	{edgeCity, edgeGrass, edgeGrass, edgeGrass},
	{edgeCity, edgeRoad, edgeRoad, edgeGrass},
	{edgeCity, edgeRoad, edgeGrass, edgeRoad},
	{edgeCity, edgeRoad, edgeRoad, edgeRoad},
	{edgeCity, edgeGrass, edgeRoad, edgeRoad},
	{edgeRoad, edgeRoad, edgeGrass, edgeGrass},
	{edgeGrass, edgeRoad, edgeRoad, edgeGrass},
	{edgeGrass, edgeRoad, edgeRoad, edgeRoad},
	{edgeGrass, edgeGrass, edgeGrass, edgeGrass},
	{edgeGrass, edgeRoad, edgeGrass, edgeGrass},
	{edgeCity, edgeCity, edgeCity, edgeCity},
	{edgeCity, edgeGrass, edgeCity, edgeCity},
}

// rotationPermutation[r][d] says: after rotating by r quarter-turns, the
// label that was on arc d moves to arc rotationPermutation[r][d].
var rotationPermutation = [4][4]int{
	{0, 1, 2, 3},
	{2, 3, 1, 0},
	{1, 0, 3, 2},
	{3, 2, 0, 1},
}

// NewCarcassonne builds the 72-tile (18 base x 4 rotations) road/city/
// grass edge-matching tileset, a 4-arc-type (2D grid) tileset.
func NewCarcassonne() (*EdgeType, error) {
	tiles := make([]edgeTypeTile, 0, len(carcassonneBase)*4)
	for r := 0; r < 4; r++ {
		perm := rotationPermutation[r]
		for _, edges := range carcassonneBase {
			rotated := [4]int{edgeGrass, edgeGrass, edgeGrass, edgeGrass}
			for d, e := range edges {
				rotated[perm[d]] = e
			}
			tiles = append(tiles, edgeTypeTile{Edges: rotated[:], Weight: 1})
		}
	}

	return NewEdgeType(tiles, 4, func(d int) int { return d ^ 1 })
}
