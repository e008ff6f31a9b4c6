package solver

import "errors"

// Sentinel errors surfaced by Run.
var (
	// ErrInvalidInitialState is returned when propagation on the
	// initial graph (before any collapse) drives a cell to empty.
	ErrInvalidInitialState = errors.New("solver: invalid initial state")

	// ErrContradictionNoBacktracking is returned when a contradiction
	// arises with backtracking disabled.
	ErrContradictionNoBacktracking = errors.New("solver: contradiction found, backtracking disabled")

	// ErrRestartBudgetExhausted is returned when backtracking has
	// popped every decision and the restart counter has hit zero.
	ErrRestartBudgetExhausted = errors.New("solver: exceeded restart budget")
)

// errNoDecisions is an internal control-flow signal: backtrack raises it
// when the decision history is (or becomes) empty, meaning the current
// attempt has no earlier collapse to retreat to and a random restart is
// needed instead. It never escapes Run.
var errNoDecisions = errors.New("solver: no collapsed cells in history")

// errImplementationBug is only ever used as a panic value: the
// post-backtrack re-propagation finding a contradiction indicates the
// implementation is broken, not that the input is unsolvable — it is a
// fatal assertion, not a recoverable error.
type errImplementationBug struct {
	cell int
}

func (e errImplementationBug) Error() string {
	return "solver: contradiction found while re-propagating after backtrack; this should never happen"
}
