// Package latticewfc is a Wave Function Collapse engine: constraint
// propagation and entropy-minimization collapse over a generic cell
// graph (wfcgraph), with chronological backtracking and random restart
// on contradiction (solver), chunked generation of worlds too large to
// solve in one pass (chunkworld), and single- or multi-worker task
// backends (backend) driven end to end by the orchestrator package.
//
// Subpackages:
//
//	bitset/       — fixed-width tile superposition sets
//	tileset/      — tile catalogs and their adjacency constraints
//	wfcgraph/     — the cell graph collapse runs over (grids, facades)
//	wfctask/      — one solve unit plus its functional-option settings
//	solver/       — the collapse/propagate/backtrack loop
//	chunkworld/   — chunked world state and generation scheduling
//	backend/      — single- and multi-worker task execution
//	orchestrator/ — wires chunkworld, backend and solver together
//	wfclog/       — the nil-safe leveled logger used throughout
package latticewfc
