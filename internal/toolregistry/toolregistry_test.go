package toolregistry

import (
	"context"
	"fmt"

	"github.com/wovenflow/runtime/internal/dispatch"
	"github.com/wovenflow/runtime/internal/schema"
)

// fakeExecutionContext is a minimal dispatch.ExecutionContext for tool tests.
type fakeExecutionContext struct{}

func (f *fakeExecutionContext) ExecutionID() string   { return "exec-1" }
func (f *fakeExecutionContext) WorkflowID() string    { return "wf-1" }
func (f *fakeExecutionContext) Config() schema.Config { return schema.DefaultConfig() }
func (f *fakeExecutionContext) Cancelled() bool       { return false }
func (f *fakeExecutionContext) Emit(eventType string, data map[string]interface{}) {
}
func (f *fakeExecutionContext) Log(nodeID string, severity schema.LogSeverity, message string) {
}

var _ dispatch.ExecutionContext = (*fakeExecutionContext)(nil)

// echoTool is a trivial ToolHandle used to exercise Registry plumbing
// without depending on any concrete built-in tool.
type echoTool struct {
	id     string
	schema string
}

func (t *echoTool) ID() string          { return t.id }
func (t *echoTool) DisplayName() string { return t.id }
func (t *echoTool) Description() string { return "echoes its input" }
func (t *echoTool) Category() string    { return "test" }
func (t *echoTool) Schema() string      { return t.schema }
func (t *echoTool) Invoke(ctx context.Context, input map[string]interface{}, ec dispatch.ExecutionContext) (interface{}, error) {
	return input, nil
}

var errAlways = fmt.Errorf("always fails")
