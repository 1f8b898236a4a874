package dispatch

import (
	"context"
	"fmt"
	"sync"

	"github.com/wovenflow/runtime/internal/schema"
)

// Registry manages node executor registration and lookup, one executor per
// closed node kind. Thread-safe: executors are registered once at startup
// and looked up concurrently from worker goroutines thereafter.
type Registry struct {
	executors map[schema.NodeType]NodeExecutor
	mu        sync.RWMutex
}

// NewRegistry creates an empty executor registry.
func NewRegistry() *Registry {
	return &Registry{
		executors: make(map[schema.NodeType]NodeExecutor),
	}
}

// Register adds an executor to the registry. Returns an error if an
// executor for this node type is already registered.
func (r *Registry) Register(exec NodeExecutor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	nodeType := exec.NodeType()
	if _, exists := r.executors[nodeType]; exists {
		return fmt.Errorf("%w: %s", ErrExecutorExists, nodeType)
	}
	r.executors[nodeType] = exec
	return nil
}

// MustRegister registers an executor and panics on error. Used during
// process startup where registration failure is a programming error.
func (r *Registry) MustRegister(exec NodeExecutor) {
	if err := r.Register(exec); err != nil {
		panic(err)
	}
}

// Execute dispatches to the executor registered for node.Type.
func (r *Registry) Execute(ctx context.Context, ec ExecutionContext, node schema.Node, input interface{}) (interface{}, error) {
	r.mu.RLock()
	exec, exists := r.executors[node.Type]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNoExecutorRegistered, node.Type)
	}
	return exec.Execute(ctx, ec, node, input)
}

// Validate validates a node using its registered executor.
func (r *Registry) Validate(node schema.Node) error {
	r.mu.RLock()
	exec, exists := r.executors[node.Type]
	r.mu.RUnlock()

	if !exists {
		return fmt.Errorf("%w: %s", ErrNoExecutorRegistered, node.Type)
	}
	return exec.Validate(node)
}

// GetExecutor returns the executor for a node type, or nil if unregistered.
func (r *Registry) GetExecutor(nodeType schema.NodeType) NodeExecutor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.executors[nodeType]
}

// ListRegisteredTypes returns all node types with a registered executor.
func (r *Registry) ListRegisteredTypes() []schema.NodeType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]schema.NodeType, 0, len(r.executors))
	for nodeType := range r.executors {
		types = append(types, nodeType)
	}
	return types
}

// NewDefaultRegistry builds a Registry with all thirteen node kinds
// registered, wired to the given collaborators.
func NewDefaultRegistry(exprEngine *ExprEvaluator, tools ToolInvoker, models ModelCaller, httpExec *HTTPExecutor) *Registry {
	r := NewRegistry()
	r.MustRegister(&InputExecutor{})
	r.MustRegister(&OutputExecutor{})
	r.MustRegister(&AgentExecutor{models: models})
	r.MustRegister(&ToolExecutor{tools: tools})
	r.MustRegister(&ConditionExecutor{expr: exprEngine})
	r.MustRegister(&LoopExecutor{expr: exprEngine})
	r.MustRegister(&ParallelExecutor{})
	r.MustRegister(&MergeExecutor{})
	r.MustRegister(&TransformExecutor{expr: exprEngine})
	r.MustRegister(&PromptExecutor{})
	r.MustRegister(&CodeExecutor{expr: exprEngine, tools: tools})
	r.MustRegister(httpExec)
	r.MustRegister(&SensorExecutor{tools: tools})
	return r
}
