package bitset

import (
	"math/bits"
	"math/rand"
)

const wordBits = 64

// Set is a fixed-capacity bit-set of tile indices in [0, N).
// The zero value is not usable; construct with Empty or Filled.
type Set struct {
	words []uint64
	n     int
}

// Empty returns a Set of capacity n with no bits set.
func Empty(n int) *Set {
	return &Set{words: make([]uint64, wordCount(n)), n: n}
}

// Filled returns a Set of capacity n with every bit in [0, n) set.
func Filled(n int) *Set {
	s := Empty(n)
	for i := 0; i < n; i++ {
		s.words[i/wordBits] |= 1 << uint(i%wordBits)
	}
	return s
}

func wordCount(n int) int {
	return (n + wordBits - 1) / wordBits
}

// N returns the set's capacity.
func (s *Set) N() int { return s.n }

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	out := &Set{words: make([]uint64, len(s.words)), n: s.n}
	copy(out.words, s.words)
	return out
}

// Add sets bit i. Panics if i is outside [0, N) — callers are expected to
// operate on tile indices already validated against the tileset.
func (s *Set) Add(i int) {
	s.checkIndex(i)
	s.words[i/wordBits] |= 1 << uint(i%wordBits)
}

// Remove clears bit i.
func (s *Set) Remove(i int) {
	s.checkIndex(i)
	s.words[i/wordBits] &^= 1 << uint(i%wordBits)
}

// Contains reports whether bit i is set.
func (s *Set) Contains(i int) bool {
	s.checkIndex(i)
	return s.words[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

func (s *Set) checkIndex(i int) {
	if i < 0 || i >= s.n {
		panic(ErrIndexOutOfRange)
	}
}

// Count returns the number of set bits.
func (s *Set) Count() int {
	c := 0
	for _, w := range s.words {
		c += bits.OnesCount64(w)
	}
	return c
}

// Each calls fn for every set bit, in increasing order, stopping early if
// fn returns false.
func (s *Set) Each(fn func(i int) bool) {
	for wi, w := range s.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			idx := wi*wordBits + tz
			if idx >= s.n {
				return
			}
			if !fn(idx) {
				return
			}
			w &^= 1 << uint(tz)
		}
	}
}

// Indices returns every set bit as a slice, in increasing order.
func (s *Set) Indices() []int {
	out := make([]int, 0, s.Count())
	s.Each(func(i int) bool {
		out = append(out, i)
		return true
	})
	return out
}

// Equal reports whether s and other have identical capacity and bits.
func (s *Set) Equal(other *Set) bool {
	if s.n != other.n || len(s.words) != len(other.words) {
		return false
	}
	for i := range s.words {
		if s.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// Union returns a new Set containing every bit set in a or b.
func Union(a, b *Set) *Set {
	mustSameCapacity(a, b)
	out := &Set{words: make([]uint64, len(a.words)), n: a.n}
	for i := range out.words {
		out.words[i] = a.words[i] | b.words[i]
	}
	return out
}

// Intersect returns a new Set containing bits set in both a and b.
func Intersect(a, b *Set) *Set {
	mustSameCapacity(a, b)
	out := &Set{words: make([]uint64, len(a.words)), n: a.n}
	for i := range out.words {
		out.words[i] = a.words[i] & b.words[i]
	}
	return out
}

// Difference returns a new Set with every bit in a that is not in b.
func Difference(a, b *Set) *Set {
	mustSameCapacity(a, b)
	out := &Set{words: make([]uint64, len(a.words)), n: a.n}
	for i := range out.words {
		out.words[i] = a.words[i] &^ b.words[i]
	}
	return out
}

func mustSameCapacity(a, b *Set) {
	if a.n != b.n {
		panic(ErrCapacityMismatch)
	}
}

// PickRandomWeighted selects one set bit with probability proportional to
// weights[i] among set bits, clears every other bit, and returns the
// selected index. weights must be at least N entries long. Returns
// ErrNoBitsSet if the set is empty.
func (s *Set) PickRandomWeighted(rng *rand.Rand, weights []uint64) (int, error) {
	var total uint64
	s.Each(func(i int) bool {
		total += weights[i]
		return true
	})
	if total == 0 {
		// All candidate weights are zero (or the set is empty): fall back
		// to a uniform pick over set bits so construction-time weight
		// data never makes a cell unsolvable.
		indices := s.Indices()
		if len(indices) == 0 {
			return 0, ErrNoBitsSet
		}
		chosen := indices[rng.Intn(len(indices))]
		s.collapseTo(chosen)
		return chosen, nil
	}

	roll := rng.Uint64() % total
	var running uint64
	chosen := -1
	s.Each(func(i int) bool {
		running += weights[i]
		if roll < running {
			chosen = i
			return false
		}
		return true
	})
	if chosen == -1 {
		return 0, ErrNoBitsSet
	}
	s.collapseTo(chosen)
	return chosen, nil
}

// collapseTo clears every bit except i, which must already be set.
func (s *Set) collapseTo(i int) {
	for w := range s.words {
		s.words[w] = 0
	}
	s.words[i/wordBits] = 1 << uint(i%wordBits)
}

// Collapse returns the sole set index and true if Count() == 1,
// otherwise (0, false).
func (s *Set) Collapse() (int, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	idx := -1
	s.Each(func(i int) bool {
		idx = i
		return false
	})
	return idx, true
}
