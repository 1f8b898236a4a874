package dispatch

import (
	"context"
	"fmt"

	"github.com/wovenflow/runtime/internal/schema"
)

// ToolExecutor executes tool nodes: it reads toolId from the node data,
// merges toolConfig with {input: <gathered input>}, and invokes the Tool
// Registry.
type ToolExecutor struct {
	tools ToolInvoker
}

func (e *ToolExecutor) Execute(ctx context.Context, ec ExecutionContext, node schema.Node, input interface{}) (interface{}, error) {
	data, err := schema.AsToolData(node.Data)
	if err != nil {
		return nil, err
	}
	if data.ToolID == "" {
		return nil, fmt.Errorf("tool node %q: %w", node.ID, ErrMissingToolID)
	}

	args := make(map[string]interface{}, len(data.Args)+1)
	for k, v := range data.Args {
		args[k] = v
	}
	args["input"] = input

	result, err := e.tools.Invoke(ctx, data.ToolID, input, args, ec)
	if err != nil {
		return nil, fmt.Errorf("tool node %q: %w", node.ID, err)
	}
	return result, nil
}

func (e *ToolExecutor) NodeType() schema.NodeType { return schema.NodeTypeTool }

func (e *ToolExecutor) Validate(node schema.Node) error {
	data, err := schema.AsToolData(node.Data)
	if err != nil {
		return err
	}
	if data.ToolID == "" {
		return ErrMissingToolID
	}
	return nil
}
