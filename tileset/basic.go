package tileset

import "github.com/arcweave/latticewfc/bitset"

// Edge types for Basic.
const (
	edgeAir = iota
	edgeDirt
	edgeGrassDirt
	edgeDirtAir
	edgeDirtLeft
	edgeDirtRight
	edgeDirtTop
	edgeGrassDirtAir
)

// basicTiles is the (tile, [PosX, NegX, PosY, NegY]) edge table.
var basicTiles = [][4]int{
	{edgeAir, edgeAir, edgeAir, edgeAir},
	{edgeAir, edgeDirtLeft, edgeAir, edgeGrassDirt},
	{edgeAir, edgeDirt, edgeGrassDirt, edgeGrassDirt},
	{edgeAir, edgeDirtRight, edgeGrassDirt, edgeAir},
	{edgeDirtLeft, edgeDirtLeft, edgeAir, edgeDirt},
	{edgeDirt, edgeDirt, edgeDirt, edgeDirt},
	{edgeDirtRight, edgeDirtRight, edgeDirt, edgeAir},
	{edgeAir, edgeDirt, edgeGrassDirt, edgeDirtTop},
	{edgeDirtLeft, edgeDirt, edgeDirtTop, edgeDirt},
	{edgeDirt, edgeAir, edgeDirtAir, edgeDirtAir},
	{edgeDirtRight, edgeDirt, edgeDirt, edgeDirtTop},
	{edgeAir, edgeDirt, edgeDirtTop, edgeGrassDirt},
	{edgeDirtLeft, edgeAir, edgeAir, edgeDirtAir},
	{edgeAir, edgeAir, edgeAir, edgeGrassDirtAir},
	{edgeAir, edgeAir, edgeGrassDirtAir, edgeGrassDirtAir},
	{edgeAir, edgeAir, edgeGrassDirtAir, edgeAir},
	{edgeDirtRight, edgeAir, edgeDirtAir, edgeAir},
}

// NewBasic builds a 17-tile terrain tileset: a 4-arc-type (2D grid)
// tileset where tile 0 is "air" and every other tile's Air-labeled edge
// connects ONLY to air (rather than to every tile sharing that edge
// label), as a special case of the usual edge-label matching rule.
func NewBasic() (*EdgeType, error) {
	n := len(basicTiles)
	const arcTypes = 4
	weights := make([]uint64, n)
	constraints := make([][]*bitset.Set, n)
	for t := 0; t < n; t++ {
		weights[t] = 1
		constraints[t] = make([]*bitset.Set, arcTypes)
		for d := 0; d < arcTypes; d++ {
			constraints[t][d] = bitset.Empty(n)
		}
	}

	opposite := func(d int) int { return d ^ 1 }
	for t := 0; t < n; t++ {
		for d := 0; d < arcTypes; d++ {
			label := basicTiles[t][d]
			if label == edgeAir && t != 0 {
				constraints[t][d].Add(0)
				continue
			}
			for other := 0; other < n; other++ {
				if basicTiles[other][opposite(d)] == label {
					constraints[t][d].Add(other)
				}
			}
		}
	}

	ts := &EdgeType{arcTypes: arcTypes, weights: weights, constraints: constraints}
	if err := CheckBidirectional(ts, opposite); err != nil {
		return nil, err
	}
	return ts, nil
}
