// Package runner implements the DAG Runner: one Runner per execution,
// scheduling nodes under concurrency and dependency constraints.
//
// Unlike the teacher's single-goroutine topological walk (pkg/engine's
// Execute, which drains a precomputed TopologicalSort order one node at a
// time), the Runner tracks each node's remaining in-degree directly and
// dispatches every node whose in-degree has reached zero as a single
// concurrent batch. A fixed pool of worker goroutines reads *nodeTask off a
// buffered channel and executes nodes via the dispatch.Registry; a single
// coordinator goroutine reads *nodeResult off a results channel and is the
// only place that mutates the output table, in-degree counters, and ready
// set. This single-writer discipline is what lets the hot path run without
// locking execution state: the output table is never touched by more than
// one goroutine at a time.
package runner
