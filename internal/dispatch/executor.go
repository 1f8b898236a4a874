// Package dispatch implements the Strategy pattern node dispatcher: one
// NodeExecutor per closed node kind, looked up through a Registry.
//
// Unlike an open-ended executor registry, the kind set here is fixed at
// thirteen: input, output, agent, tool, condition, loop, parallel, merge,
// transform, prompt, code, http, sensor. Dispatch receives the node and its
// already-gathered input value (fan-in is the Runner's job, not the
// dispatcher's) and returns the node's output value or an error.
package dispatch

import (
	"context"

	"github.com/wovenflow/runtime/internal/schema"
)

// ExecutionContext is the read/write surface a NodeExecutor sees into the
// owning execution. It deliberately does not expose the output table,
// in-degree counters, or ready set — those remain owned by the Runner.
type ExecutionContext interface {
	ExecutionID() string
	WorkflowID() string
	Config() schema.Config

	// Emit routes a runner event (node:start, node:complete, ...) into the
	// execution's event stream.
	Emit(eventType string, data map[string]interface{})

	// Log appends a log line to the execution's append-only log.
	Log(nodeID string, severity schema.LogSeverity, message string)

	// Cancelled reports whether stop() has been called on the owning
	// Runner. Executors that loop or await I/O must check this at the
	// checkpoints spec'd for their kind.
	Cancelled() bool
}

// ToolInvoker is the minimal surface dispatch needs from the Tool Registry.
// Defined locally (rather than importing internal/toolregistry) so the two
// packages don't form an import cycle; internal/engine wires a concrete
// Registry in at startup.
type ToolInvoker interface {
	Invoke(ctx context.Context, toolID string, input interface{}, toolConfig map[string]interface{}, ec ExecutionContext) (interface{}, error)
}

// ModelCaller is the minimal surface dispatch needs from the Model Gateway.
// Defined locally for the same reason as ToolInvoker.
type ModelCaller interface {
	Chat(ctx context.Context, provider, model, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error)
}

// NodeExecutor is a single node kind's dispatch strategy.
type NodeExecutor interface {
	// Execute runs the node given its gathered input value. ctx carries
	// the expression/code evaluation timeout and is the cancellation
	// signal for any I/O the executor starts.
	Execute(ctx context.Context, ec ExecutionContext, node schema.Node, input interface{}) (interface{}, error)

	// NodeType returns the kind this executor handles.
	NodeType() schema.NodeType

	// Validate checks the node's kind-specific data independent of any
	// execution. Registry.Validate dispatches to it; dag.Validate does not
	// call it, so DAG validation does not check kind-specific data.
	Validate(node schema.Node) error
}
