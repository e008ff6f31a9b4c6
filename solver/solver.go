package solver

import (
	"math"
	"math/rand"

	"github.com/arcweave/latticewfc/bitset"
	"github.com/arcweave/latticewfc/wfclog"
	"github.com/arcweave/latticewfc/wfcgraph"
	"github.com/arcweave/latticewfc/wfctask"
)

// initialCell records a cell's pre-constrained superposition so a random
// restart can reconstruct the caller's starting conditions instead of
// reverting all the way to "every tile allowed everywhere".
type initialCell struct {
	index   int
	options *bitset.Set
}

// decisionRecord is one chronological-backtracking checkpoint: the
// position in history.stack the collapse landed at, and the set of
// alternative tiles that were not chosen and so remain available to try
// if this decision is ever revisited.
type decisionRecord struct {
	stackPos  int
	remaining *bitset.Set
}

// history tracks collapse order (stack, for undoing forward propagation)
// and the decision points within it (decisions, for backtracking).
type history struct {
	stack     []int
	decisions []decisionRecord
}

// run holds the mutable state of one solve attempt: the task being
// solved, its RNG, and the tileset data pulled out once up front.
type run struct {
	task        *wfctask.Task
	rng         *rand.Rand
	weights     []uint64
	constraints [][]*bitset.Set
	tileCount   int
	logger      wfclog.Logger
}

// Run solves t in place: it repeatedly propagates constraints, collapses
// the lowest-entropy cell, and backtracks or restarts on contradiction,
// until every cell holds exactly one tile or the restart budget is
// exhausted. progress, if non-nil, receives a best-effort snapshot every
// t.Settings.ProgressInterval decisions; sends never block the solver.
// logger, if non-nil, receives one event per contradiction, backtrack,
// and restart.
//
// Run has no suspension points and takes no context.Context: it cannot
// be cancelled, and returns only once every cell is collapsed or it
// fails.
func Run(t *wfctask.Task, progress chan Snapshot, logger wfclog.Logger) error {
	ts := t.Tileset
	r := &run{
		task:        t,
		rng:         rand.New(rand.NewSource(int64(t.Seed))),
		weights:     ts.Weights(),
		constraints: ts.Constraints(),
		tileCount:   ts.TileCount(),
		logger:      logger,
	}

	n := t.Graph.Len()
	freshStack := func() []int {
		s := make([]int, n)
		for i := range s {
			s[i] = i
		}
		return s
	}

	var initial []initialCell
	for i, cell := range t.Graph.Cells {
		if cell.Count() != r.tileCount {
			initial = append(initial, initialCell{index: i, options: cell.Clone()})
		}
	}

	h := &history{}
	if r.propagateAll(freshStack(), h) {
		// Contradiction before any decision was ever made: the caller's
		// initial constraints are mutually unsatisfiable. No seed or
		// restart changes that outcome.
		wfclog.Errorf(r.logger, "contradiction in initial state, seed %d", t.Seed)
		return ErrInvalidInitialState
	}

	attemptsLeft := t.Settings.Backtracking.RestartsLeft
	decisions := 0

	for {
		cell, ok := r.lowestEntropy()
		if !ok {
			return nil
		}

		before := t.Graph.Cells[cell].Clone()
		if _, err := t.Graph.Cells[cell].PickRandomWeighted(r.rng, r.weights); err != nil {
			return err
		}
		removed := bitset.Difference(before, t.Graph.Cells[cell])
		h.stack = append(h.stack, cell)
		h.decisions = append(h.decisions, decisionRecord{stackPos: len(h.stack) - 1, remaining: removed})
		decisions++

		stack := []int{cell}
		for r.propagateAll(stack, h) {
			wfclog.Debugf(r.logger, "contradiction at cell %d after %d decisions", cell, decisions)
			if !t.Settings.Backtracking.Enabled {
				return ErrContradictionNoBacktracking
			}

			continueFrom, err := r.backtrack(h)
			if err == nil {
				wfclog.Debugf(r.logger, "backtracked, resuming from cell %d", continueFrom)
				stack = []int{continueFrom}
				continue
			}

			attemptsLeft--
			if attemptsLeft <= 0 {
				wfclog.Warnf(r.logger, "restart budget exhausted, seed %d", t.Seed)
				for i := range t.Graph.Cells {
					t.Graph.Cells[i] = bitset.Empty(r.tileCount)
				}
				return ErrRestartBudgetExhausted
			}
			wfclog.Infof(r.logger, "restarting, %d attempt(s) left", attemptsLeft)
			for i := range t.Graph.Cells {
				t.Graph.Cells[i] = bitset.Filled(r.tileCount)
			}
			for _, ic := range initial {
				t.Graph.Cells[ic.index] = ic.options.Clone()
			}
			*h = history{}
			stack = freshStack()
		}

		if t.Settings.ProgressInterval > 0 && decisions%t.Settings.ProgressInterval == 0 {
			trySend(progress, Snapshot{
				Graph:    t.Graph.Clone(func(s *bitset.Set) *bitset.Set { return s.Clone() }),
				Metadata: t.Metadata,
			})
		}
	}
}

// propagateAll drains stack, applying propagate along every arc out of
// each popped cell and pushing any cell whose options change. It reports
// true the moment a cell is driven to zero options, abandoning whatever
// of stack remains unprocessed — the caller is about to discard or reset
// it anyway via backtrack or restart.
func (r *run) propagateAll(stack []int, h *history) bool {
	for len(stack) > 0 {
		index := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, neighbor := range r.task.Graph.Neighbors[index] {
			if !propagate(r.task.Graph, r.constraints, index, neighbor) {
				continue
			}
			stack = append(stack, neighbor.Index)
			switch r.task.Graph.Cells[neighbor.Index].Count() {
			case 1:
				h.stack = append(h.stack, neighbor.Index)
			case 0:
				return true
			}
		}
	}
	return false
}

// propagate recomputes the tiles allowed at neighbor.Index given the
// tiles still possible at index, and intersects them in. It reports
// whether the neighbor's options actually shrank.
func propagate(g wfcgraph.Graph[*bitset.Set], constraints [][]*bitset.Set, index int, neighbor wfcgraph.Neighbor) bool {
	allowed := bitset.Empty(g.Cells[index].N())
	g.Cells[index].Each(func(tile int) bool {
		allowed = bitset.Union(allowed, constraints[tile][neighbor.Arc])
		return true
	})

	next := bitset.Intersect(g.Cells[neighbor.Index], allowed)
	if next.Equal(g.Cells[neighbor.Index]) {
		return false
	}
	g.Cells[neighbor.Index] = next
	return true
}

// lowestEntropy scans every cell still in superposition (more than one
// option) and returns the one with the fewest options, breaking ties
// uniformly at random via reservoir sampling so every minimum-entropy
// cell has equal chance of selection regardless of scan order. Returns
// (0, false) once no cell has more than one option left.
func (r *run) lowestEntropy() (int, bool) {
	minEntropy := math.MaxInt
	minIndex := -1
	withMin := 0
	for index, cell := range r.task.Graph.Cells {
		entropy := cell.Count()
		if entropy <= 1 || entropy > minEntropy {
			continue
		}
		if entropy < minEntropy {
			minEntropy = entropy
			minIndex = index
			withMin = 1
			continue
		}
		withMin++
		if r.rng.Float64() < 1.0/float64(withMin) {
			minIndex = index
		}
	}
	if minIndex == -1 {
		return 0, false
	}
	return minIndex, true
}

// backtrack pops the most recent decision whose untried alternatives meet
// the configured MinRemaining threshold, restores every cell collapsed
// after it to fully unconstrained, unconstrains every still-unresolved
// cell, re-propagates from scratch, and collapses the reverted decision
// cell to one of its remaining alternatives. It returns the index of
// that cell so the caller can resume propagation from there, or
// errNoDecisions if the history holds no usable decision to revert to.
func (r *run) backtrack(h *history) (int, error) {
	if len(h.decisions) == 0 {
		return 0, errNoDecisions
	}
	collapsed := h.decisions[len(h.decisions)-1]
	h.decisions = h.decisions[:len(h.decisions)-1]

	minRemaining := r.task.Settings.Backtracking.MinRemaining
	for collapsed.remaining.Count() < minRemaining {
		if len(h.decisions) == 0 {
			return 0, errNoDecisions
		}
		collapsed = h.decisions[len(h.decisions)-1]
		h.decisions = h.decisions[:len(h.decisions)-1]
	}

	filled := bitset.Filled(r.tileCount)
	for len(h.stack) > collapsed.stackPos+1 {
		idx := h.stack[len(h.stack)-1]
		h.stack = h.stack[:len(h.stack)-1]
		r.task.Graph.Cells[idx] = filled.Clone()
	}
	collapsedIndex := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]
	r.task.Graph.Cells[collapsedIndex] = filled.Clone()

	for i, cell := range r.task.Graph.Cells {
		if cell.Count() != 1 {
			r.task.Graph.Cells[i] = filled.Clone()
		}
	}

	reconstrain := make([]int, r.task.Graph.Len())
	for i := range reconstrain {
		reconstrain[i] = i
	}
	for len(reconstrain) > 0 {
		index := reconstrain[len(reconstrain)-1]
		reconstrain = reconstrain[:len(reconstrain)-1]
		for _, neighbor := range r.task.Graph.Neighbors[index] {
			if !propagate(r.task.Graph, r.constraints, index, neighbor) {
				continue
			}
			reconstrain = append(reconstrain, neighbor.Index)
			if r.task.Graph.Cells[neighbor.Index].Count() == 0 {
				panic(errImplementationBug{cell: collapsedIndex})
			}
		}
	}

	before := collapsed.remaining.Clone()
	r.task.Graph.Cells[collapsedIndex] = collapsed.remaining
	if _, err := r.task.Graph.Cells[collapsedIndex].PickRandomWeighted(r.rng, r.weights); err != nil {
		return 0, err
	}
	removed := bitset.Difference(before, r.task.Graph.Cells[collapsedIndex])
	h.stack = append(h.stack, collapsedIndex)
	h.decisions = append(h.decisions, decisionRecord{stackPos: len(h.stack) - 1, remaining: removed})
	return collapsedIndex, nil
}
