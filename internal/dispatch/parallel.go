package dispatch

import (
	"context"
	"fmt"

	"github.com/wovenflow/runtime/internal/schema"
)

// ParallelExecutor executes parallel nodes: a pass-through fan-out
// placeholder. Downstream parallelism is realized by the Runner's
// in-degree-tracked scheduler dispatching every ready node concurrently —
// this executor carries no concurrency logic of its own, unlike the
// semaphore-and-waitgroup implementation it replaces, because there is
// nothing for a parallel node to fan out to: it is a single value in, a
// single value out.
type ParallelExecutor struct{}

func (e *ParallelExecutor) Execute(ctx context.Context, ec ExecutionContext, node schema.Node, input interface{}) (interface{}, error) {
	if seq, ok := input.([]interface{}); ok {
		return seq, nil
	}
	return nil, fmt.Errorf("parallel node %q requires sequence input, got %T", node.ID, input)
}

func (e *ParallelExecutor) NodeType() schema.NodeType { return schema.NodeTypeParallel }

func (e *ParallelExecutor) Validate(node schema.Node) error {
	_, err := schema.AsParallelData(node.Data)
	return err
}
