package dispatch

import (
	"context"

	"github.com/wovenflow/runtime/internal/schema"
)

// SensorExecutor executes sensor nodes, which are treated as opaque:
// this delegates to the registered tool when one is configured, and is
// otherwise a pass-through.
type SensorExecutor struct {
	tools ToolInvoker
}

func (e *SensorExecutor) Execute(ctx context.Context, ec ExecutionContext, node schema.Node, input interface{}) (interface{}, error) {
	data, err := schema.AsSensorData(node.Data)
	if err != nil {
		return nil, err
	}
	if data.ToolID == "" || e.tools == nil {
		return input, nil
	}
	toolConfig := map[string]interface{}{"input": input}
	if data.Expression != "" {
		toolConfig["expression"] = data.Expression
	}
	if data.Interval > 0 {
		toolConfig["interval"] = data.Interval
	}
	if data.Timeout > 0 {
		toolConfig["timeout"] = data.Timeout
	}
	return e.tools.Invoke(ctx, data.ToolID, input, toolConfig, ec)
}

func (e *SensorExecutor) NodeType() schema.NodeType { return schema.NodeTypeSensor }

func (e *SensorExecutor) Validate(node schema.Node) error {
	_, err := schema.AsSensorData(node.Data)
	return err
}
