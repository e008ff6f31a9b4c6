// Package wfclog is the logging seam threaded through solver, backend,
// and orchestrator: a small interface accepting nil as "disabled",
// matching utils.Logger's debugf-guarded-by-nil-check shape in the
// teacher's perf-analysis pack rather than inventing a logging
// dependency this module has no other use for.
package wfclog
