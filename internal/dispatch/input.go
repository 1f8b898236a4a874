package dispatch

import (
	"context"
	"fmt"

	"github.com/wovenflow/runtime/internal/schema"
)

// InputExecutor executes input nodes. The Runner seeds the output table
// with the execution's input record for every input-kind node before the
// scheduling loop starts, so Execute is never actually called for a
// well-formed graph — it exists for validation symmetry and to surface a
// clear error if a caller dispatches one directly.
type InputExecutor struct{}

func (e *InputExecutor) Execute(ctx context.Context, ec ExecutionContext, node schema.Node, input interface{}) (interface{}, error) {
	data, err := schema.AsInputData(node.Data)
	if err != nil {
		return nil, err
	}
	if input != nil {
		return input, nil
	}
	if data.Default != nil {
		return data.Default, nil
	}
	if data.Required {
		return nil, fmt.Errorf("input node %q: %w", node.ID, ErrMissingRequiredInput)
	}
	return nil, nil
}

func (e *InputExecutor) NodeType() schema.NodeType { return schema.NodeTypeInput }

func (e *InputExecutor) Validate(node schema.Node) error {
	_, err := schema.AsInputData(node.Data)
	return err
}
