// Package dag provides graph algorithms over a workflow's nodes and edges:
// structural validation, DFS-based cycle detection with path reporting, and
// the in-degree bookkeeping the scheduler uses to compute ready batches.
//
// # Graph Representation
//
// A Graph is built once from a workflow's node and edge list via New, then
// validated with Validate before being handed to the runner. The runner
// treats a validated Graph as immutable for the lifetime of one execution:
// InDegrees returns a fresh map each call specifically so the scheduler can
// own and mutate its copy without touching the Graph itself.
//
// # Cycle Detection
//
// DetectCycle uses a three-color DFS (white/gray/black) rather than Kahn's
// leftover-node check, so that when a cycle exists the error carries the
// exact node sequence that forms it instead of just the presence of one.
package dag
