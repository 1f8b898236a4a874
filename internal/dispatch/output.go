package dispatch

import (
	"context"

	"github.com/wovenflow/runtime/internal/schema"
)

// OutputExecutor executes output nodes: a pure pass-through. Output-kind
// nodes are terminal; the Runner collects their outputs into the
// execution's result.
type OutputExecutor struct{}

func (e *OutputExecutor) Execute(ctx context.Context, ec ExecutionContext, node schema.Node, input interface{}) (interface{}, error) {
	return input, nil
}

func (e *OutputExecutor) NodeType() schema.NodeType { return schema.NodeTypeOutput }

func (e *OutputExecutor) Validate(node schema.Node) error {
	_, err := schema.AsOutputData(node.Data)
	return err
}
