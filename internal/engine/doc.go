// Package engine is the process-wide execution orchestrator.
//
// The teacher's pkg/engine.Engine walked its own graph: it held the nodes,
// edges, and a topological order and drove node execution itself inside
// Execute(). This Engine does none of that. It owns only the process-wide
// bookkeeping a single runner.Runner cannot own for itself — the active
// execution id → Runner map, the durable Store, and the fan-out to an
// external event sink — and delegates the actual scheduling of one
// execution's nodes to a freshly constructed runner.Runner per
// ExecuteWorkflow call.
package engine
