package dispatch

import (
	"context"
	"fmt"

	"github.com/wovenflow/runtime/internal/schema"
)

// pythonToolID is the built-in tool that wraps Python source in a
// stdin/stdout-framed subprocess.
const pythonToolID = "python"

// CodeExecutor executes code nodes. JS-family source runs through the same
// expr-lang sandbox condition/transform nodes use, in an expression-subset
// mode — not full ES2015+. Python source delegates to the python tool.
type CodeExecutor struct {
	expr  *ExprEvaluator
	tools ToolInvoker
}

func (e *CodeExecutor) Execute(ctx context.Context, ec ExecutionContext, node schema.Node, input interface{}) (interface{}, error) {
	data, err := schema.AsCodeData(node.Data)
	if err != nil {
		return nil, err
	}

	switch data.Language {
	case schema.CodeLanguageJavaScript, schema.CodeLanguageTypeScript:
		result, err := e.expr.Value(ctx, data.Source, input)
		if err != nil {
			return nil, fmt.Errorf("code node %q: %w", node.ID, err)
		}
		return result, nil

	case schema.CodeLanguagePython:
		result, err := e.tools.Invoke(ctx, pythonToolID, input, map[string]interface{}{
			"source": data.Source,
			"input":  input,
		}, ec)
		if err != nil {
			return nil, fmt.Errorf("code node %q: %w", node.ID, err)
		}
		return result, nil

	default:
		return nil, fmt.Errorf("code node %q: unsupported language %q", node.ID, data.Language)
	}
}

func (e *CodeExecutor) NodeType() schema.NodeType { return schema.NodeTypeCode }

func (e *CodeExecutor) Validate(node schema.Node) error {
	_, err := schema.AsCodeData(node.Data)
	return err
}
