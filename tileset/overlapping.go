package tileset

import (
	"fmt"
	"strings"

	"github.com/arcweave/latticewfc/bitset"
)

// Overlapping is a Tileset whose tiles are the unique (2*overlap+1) x
// (2*overlap+1) patterns found in a sample grid (periodic wraparound
// sampling), weighted by occurrence frequency. Arc types are the set of
// 2D offsets in [-2*overlap, 2*overlap]^2 at which two patterns might
// overlap — far more arc types than a grid tileset, but still a single
// flat Tileset from the solver's point of view.
type Overlapping struct {
	overlap        int
	patternWidth   int
	directionsWide int
	weights        []uint64
	constraints    [][]*bitset.Set
	patterns       [][]int // patterns[tile] = row-major (patternWidth x patternWidth) tile ids
}

// NewOverlapping extracts every (2*overlap+1)^2 window of sample
// (wrapping at the grid edge) as a candidate tile, merges duplicates
// into a single weighted tile, and derives per-offset constraints by
// direct pattern-overlap comparison.
func NewOverlapping(sample [][]int, overlap int) (*Overlapping, error) {
	if len(sample) == 0 || len(sample[0]) == 0 {
		return nil, ErrEmptySample
	}
	h := len(sample)
	w := len(sample[0])
	for _, row := range sample {
		if len(row) != w {
			return nil, ErrNonRectangularSample
		}
	}

	patternWidth := 2*overlap + 1
	patternOf := func(x, y int) []int {
		tiles := make([]int, 0, patternWidth*patternWidth)
		for py := -overlap; py <= overlap; py++ {
			for px := -overlap; px <= overlap; px++ {
				sx := ((x+px)%w + w) % w
				sy := ((y+py)%h + h) % h
				tiles = append(tiles, sample[sy][sx])
			}
		}
		return tiles
	}

	patternIndex := map[string]int{}
	var patterns [][]int
	var weights []uint64
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := patternOf(x, y)
			key := patternKey(p)
			if idx, ok := patternIndex[key]; ok {
				weights[idx]++
				continue
			}
			patternIndex[key] = len(patterns)
			patterns = append(patterns, p)
			weights = append(weights, 1)
		}
	}

	tileCount := len(patterns)
	offsets := overlap * 2
	directionsWide := offsets*2 + 1
	directions := directionsWide * directionsWide

	constraints := make([][]*bitset.Set, tileCount)
	for i := range constraints {
		constraints[i] = make([]*bitset.Set, directions)
		for d := range constraints[i] {
			constraints[i][d] = bitset.Filled(tileCount)
		}
	}

	for i, pi := range patterns {
		for j, pj := range patterns {
			for oy := -offsets; oy <= offsets; oy++ {
			offsetLoop:
				for ox := -offsets; ox <= offsets; ox++ {
					dirIndex := (oy+offsets)*directionsWide + (ox + offsets)
					for y := 0; y < patternWidth; y++ {
						sy := y - oy
						if sy < 0 || sy >= patternWidth {
							continue
						}
						for x := 0; x < patternWidth; x++ {
							sx := x - ox
							if sx < 0 || sx >= patternWidth {
								continue
							}
							if pi[y*patternWidth+x] != pj[sy*patternWidth+sx] {
								constraints[i][dirIndex].Remove(j)
								continue offsetLoop
							}
						}
					}
				}
			}
		}
	}

	o := &Overlapping{
		overlap:        overlap,
		patternWidth:   patternWidth,
		directionsWide: directionsWide,
		weights:        weights,
		constraints:    constraints,
		patterns:       patterns,
	}
	if err := CheckBidirectional(o, o.Opposite); err != nil {
		return nil, err
	}
	return o, nil
}

func patternKey(tiles []int) string {
	var b strings.Builder
	for _, t := range tiles {
		fmt.Fprintf(&b, "%d,", t)
	}
	return b.String()
}

func (o *Overlapping) TileCount() int               { return len(o.weights) }
func (o *Overlapping) ArcTypes() int                 { return o.directionsWide * o.directionsWide }
func (o *Overlapping) Weights() []uint64             { return o.weights }
func (o *Overlapping) Constraints() [][]*bitset.Set  { return o.constraints }

// Opposite maps an offset direction to its reverse: (-dx, -dy).
func (o *Overlapping) Opposite(d int) int {
	total := o.directionsWide * o.directionsWide
	return total - 1 - d
}

// CenterTile returns the tile id at the center of the pattern assigned
// to tileIndex — the single "visible" tile a caller would render for
// that cell.
func (o *Overlapping) CenterTile(tileIndex int) int {
	center := o.overlap*o.patternWidth + o.overlap
	return o.patterns[tileIndex][center]
}
