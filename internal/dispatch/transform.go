package dispatch

import (
	"context"
	"fmt"

	"github.com/wovenflow/runtime/internal/schema"
)

// TransformExecutor executes transform nodes: evaluates a user expression
// over the gathered input and returns its result verbatim.
type TransformExecutor struct {
	expr *ExprEvaluator
}

func (e *TransformExecutor) Execute(ctx context.Context, ec ExecutionContext, node schema.Node, input interface{}) (interface{}, error) {
	data, err := schema.AsTransformData(node.Data)
	if err != nil {
		return nil, err
	}

	result, err := e.expr.Value(ctx, data.Expression, input)
	if err != nil {
		return nil, fmt.Errorf("transform node %q: %w", node.ID, err)
	}
	return result, nil
}

func (e *TransformExecutor) NodeType() schema.NodeType { return schema.NodeTypeTransform }

func (e *TransformExecutor) Validate(node schema.Node) error {
	_, err := schema.AsTransformData(node.Data)
	return err
}
