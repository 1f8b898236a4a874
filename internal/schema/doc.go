// Package schema provides shared type definitions for the workflow runtime.
//
// # Overview
//
// This package contains the core data structures used across the runtime: the
// closed node type set, the per-kind node data structs and their JSON
// decoding, and the Workflow/Execution record shapes persisted by the store.
// It exists to avoid circular dependencies between dag, dispatch, runner,
// and store.
//
// # Node Kinds
//
// The runtime supports a closed set of thirteen node kinds:
//
//   - input, output: workflow boundary nodes
//   - agent, tool: model-gateway and tool-registry dispatch
//   - condition, loop, parallel, merge: control flow
//   - transform, prompt: expression and template evaluation
//   - code: user source (JS-family through the expression evaluator,
//     python through a subprocess tool)
//   - http: outbound HTTP requests
//   - sensor: opaque; delegated to a configured tool, else pass-through
//
// # Usage Example
//
//	wf := &schema.Workflow{
//	    Name: "Example Workflow",
//	    Nodes: []schema.Node{
//	        {ID: "1", Type: schema.NodeTypeInput, Data: schema.InputData{Name: "x"}},
//	        {ID: "2", Type: schema.NodeTypeTransform, Data: schema.TransformData{Expression: "x * 2"}},
//	    },
//	    Edges: []schema.Edge{
//	        {Source: "1", Target: "2"},
//	    },
//	}
//
// # Design Principles
//
//   - Minimal dependencies: schema has no dependency on other runtime packages besides config
//   - The node kind set is closed: decoding an unrecognized type is an error, not a fallback
//   - Strong typing: every node's Data is a concrete struct by the time a dispatcher sees it
//
// # Thread Safety
//
// Types in this package are not safe for concurrent mutation. Concurrent
// access must be coordinated by the caller.
package schema
