// Package wfctask defines Task, the single solve unit the solver and
// backend packages operate on, plus its functional-option configuration
// (Settings, Backtracking): a config struct with sane defaults, mutated
// in order by a variadic list of Option functions, later options
// overriding earlier ones.
package wfctask
