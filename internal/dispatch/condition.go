package dispatch

import (
	"context"
	"fmt"

	"github.com/wovenflow/runtime/internal/schema"
)

// ConditionExecutor executes condition nodes: evaluates a user expression
// over the gathered input and returns the boolean result.
type ConditionExecutor struct {
	expr *ExprEvaluator
}

func (e *ConditionExecutor) Execute(ctx context.Context, ec ExecutionContext, node schema.Node, input interface{}) (interface{}, error) {
	data, err := schema.AsConditionData(node.Data)
	if err != nil {
		return nil, err
	}

	truthy, err := e.expr.Bool(data.Expression, input)
	if err != nil {
		return nil, fmt.Errorf("condition node %q: %w", node.ID, err)
	}
	return truthy, nil
}

func (e *ConditionExecutor) NodeType() schema.NodeType { return schema.NodeTypeCondition }

func (e *ConditionExecutor) Validate(node schema.Node) error {
	_, err := schema.AsConditionData(node.Data)
	return err
}
