// Package dispatch narrows an open-ended Strategy-pattern node executor
// registry down to the thirteen closed node kinds: input, output, agent,
// tool, condition, loop, parallel, merge, transform, prompt, code, http,
// sensor. Three of these — agent, tool, sensor — route to the Model
// Gateway and Tool Registry collaborator shapes described alongside them.
//
// A NodeExecutor receives the node and its already-gathered fan-in input
// (computed by the Runner, not here) and returns the node's output value.
// condition, transform, and the JS-family of code all route through
// internal/expr's sandboxed, timeout-bounded evaluator; python code and
// tool nodes route through a ToolInvoker; agent nodes route through a
// ModelCaller. Both collaborator interfaces are defined locally to keep
// internal/dispatch from importing internal/toolregistry or
// internal/modelgateway directly — internal/engine wires concrete
// implementations in at startup.
package dispatch
