package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/wovenflow/runtime/internal/schema"
)

// errBoom is a canned error for tests that just need Invoke/Chat to fail.
var errBoom = errors.New("boom")

// fakeExecutionContext is a minimal ExecutionContext for executor tests.
type fakeExecutionContext struct {
	cancelled bool
	config    *schema.Config // nil uses schema.DefaultConfig()
	events    []map[string]interface{}
	logs      []string
}

func (f *fakeExecutionContext) ExecutionID() string { return "exec-1" }
func (f *fakeExecutionContext) WorkflowID() string  { return "wf-1" }
func (f *fakeExecutionContext) Config() schema.Config {
	if f.config != nil {
		return *f.config
	}
	return schema.DefaultConfig()
}
func (f *fakeExecutionContext) Cancelled() bool         { return f.cancelled }
func (f *fakeExecutionContext) Emit(eventType string, data map[string]interface{}) {
	merged := map[string]interface{}{"type": eventType}
	for k, v := range data {
		merged[k] = v
	}
	f.events = append(f.events, merged)
}
func (f *fakeExecutionContext) Log(nodeID string, severity schema.LogSeverity, message string) {
	f.logs = append(f.logs, fmt.Sprintf("[%s] %s: %s", severity, nodeID, message))
}

// fakeToolInvoker records invocations and returns a canned result.
type fakeToolInvoker struct {
	result    interface{}
	err       error
	lastTool  string
	lastInput interface{}
	lastArgs  map[string]interface{}
}

func (f *fakeToolInvoker) Invoke(ctx context.Context, toolID string, input interface{}, toolConfig map[string]interface{}, ec ExecutionContext) (interface{}, error) {
	f.lastTool = toolID
	f.lastInput = input
	f.lastArgs = toolConfig
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

// fakeModelCaller records the call and returns a canned completion.
type fakeModelCaller struct {
	completion string
	err        error
	lastSystem string
	lastUser   string
}

func (f *fakeModelCaller) Chat(ctx context.Context, provider, model, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error) {
	f.lastSystem = systemPrompt
	f.lastUser = userPrompt
	if f.err != nil {
		return "", f.err
	}
	return f.completion, nil
}
