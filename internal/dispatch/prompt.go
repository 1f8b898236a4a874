package dispatch

import (
	"context"

	"github.com/wovenflow/runtime/internal/schema"
)

// PromptExecutor executes prompt nodes: renders promptTemplate with
// {{input}} substituted by the stringified gathered input, and {{name}}
// substituted by fields of the input record named in variables. Missing
// variables render as the empty string.
type PromptExecutor struct{}

func (e *PromptExecutor) Execute(ctx context.Context, ec ExecutionContext, node schema.Node, input interface{}) (interface{}, error) {
	data, err := schema.AsPromptData(node.Data)
	if err != nil {
		return nil, err
	}
	return renderTemplate(data.Template, input, data.Variables), nil
}

func (e *PromptExecutor) NodeType() schema.NodeType { return schema.NodeTypePrompt }

func (e *PromptExecutor) Validate(node schema.Node) error {
	_, err := schema.AsPromptData(node.Data)
	return err
}
