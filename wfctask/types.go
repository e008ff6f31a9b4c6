package wfctask

import (
	"github.com/arcweave/latticewfc/bitset"
	"github.com/arcweave/latticewfc/tileset"
	"github.com/arcweave/latticewfc/wfcgraph"
)

// Backtracking configures whether the solver may undo decisions on
// contradiction, and how.
//
// MinRemaining is the "skip decisions with fewer than N remaining
// options" speedup heuristic: backtracking keeps popping past a decision
// until it finds one with at least this many untried alternatives. It
// defaults to 1 (strict chronological backtracking — never skip a
// decision). Raising it trades solve time for a higher chance that an
// otherwise solvable seed fails by exhausting restarts instead.
type Backtracking struct {
	Enabled      bool
	RestartsLeft int
	MinRemaining int
}

// Disabled returns a Backtracking that makes the solver fail immediately
// on the first contradiction.
func Disabled() Backtracking {
	return Backtracking{}
}

// EnabledOption customizes Enabled backtracking.
type EnabledOption func(*Backtracking)

// WithMinRemaining overrides the backtracking heuristic constant. n < 1
// is clamped to 1, the safe minimum (never skip a decision).
func WithMinRemaining(n int) EnabledOption {
	return func(b *Backtracking) {
		if n < 1 {
			n = 1
		}
		b.MinRemaining = n
	}
}

// Enabled returns a Backtracking with the given restart budget and
// MinRemaining defaulted to 1 (strict).
func Enabled(restartsLeft int, opts ...EnabledOption) Backtracking {
	b := Backtracking{Enabled: true, RestartsLeft: restartsLeft, MinRemaining: 1}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Settings configures one solve run.
type Settings struct {
	Backtracking Backtracking
	// ProgressInterval, if > 0, emits a snapshot every N decisions.
	// Zero disables progress streaming.
	ProgressInterval int
}

// DefaultSettings returns backtracking disabled and no progress
// streaming — the conservative default: fail fast on contradiction
// unless the caller opts in to backtracking.
func DefaultSettings() Settings {
	return Settings{Backtracking: Disabled()}
}

// Task is one solve unit: a graph (mutated in place by the solver), the
// tileset it must satisfy, a seed for its RNG, opaque caller metadata
// (carried through for result correlation across a backend), and
// per-task settings.
type Task struct {
	Graph    wfcgraph.Graph[*bitset.Set]
	Tileset  tileset.Tileset
	Seed     uint64
	Metadata any
	Settings Settings
}

// Option configures a Task at construction time.
type Option func(*Task)

// WithMetadata attaches opaque caller data to the task, round-tripped
// through the backend unchanged.
func WithMetadata(md any) Option {
	return func(t *Task) { t.Metadata = md }
}

// WithSettings overrides the task's Settings wholesale.
func WithSettings(s Settings) Option {
	return func(t *Task) { t.Settings = s }
}

// New builds a Task over graph with the given tileset and seed, using
// DefaultSettings unless overridden by opts.
func New(graph wfcgraph.Graph[*bitset.Set], ts tileset.Tileset, seed uint64, opts ...Option) *Task {
	t := &Task{
		Graph:    graph,
		Tileset:  ts,
		Seed:     seed,
		Settings: DefaultSettings(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
