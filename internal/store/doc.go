// Package store implements the Store: a durable, sqlite-backed
// (modernc.org/sqlite, pure Go, no cgo) persistence layer for workflows,
// executions, templates, and logs. The four collections are four sqlite
// tables, each with a JSON column for the nested fields of their
// internal/schema struct, generalized from the teacher's
// Save/Update/Load/Delete/List/Exists Store interface to the richer set
// of operations a running engine needs (per-execution node state
// updates, append-only logs, saved templates).
//
// A per-execution sync.Mutex, keyed by execution id, serializes
// UpdateExecutionNodeState calls for that execution while leaving
// distinct executions independent — sqlite's own locking only protects
// against file corruption, not against a read-modify-write race on the
// same Execution.NodeStates map.
package store
