package dispatch

import (
	"context"
	"testing"
	"time"

	"github.com/wovenflow/runtime/internal/config"
	"github.com/wovenflow/runtime/internal/httpclient"
	"github.com/wovenflow/runtime/internal/schema"
)

func TestNewDefaultRegistry_RegistersAllThirteenKinds(t *testing.T) {
	exprEngine := NewExprEvaluator(time.Second)
	httpExec := NewHTTPExecutor(httpclient.NewRegistry(), httpclient.NewBuilder(*config.Testing()))
	r := NewDefaultRegistry(exprEngine, &fakeToolInvoker{}, &fakeModelCaller{}, httpExec)

	want := []schema.NodeType{
		schema.NodeTypeInput, schema.NodeTypeOutput, schema.NodeTypeAgent, schema.NodeTypeTool,
		schema.NodeTypeCondition, schema.NodeTypeLoop, schema.NodeTypeParallel, schema.NodeTypeMerge,
		schema.NodeTypeTransform, schema.NodeTypePrompt, schema.NodeTypeCode, schema.NodeTypeHTTP,
		schema.NodeTypeSensor,
	}
	got := r.ListRegisteredTypes()
	if len(got) != len(want) {
		t.Fatalf("ListRegisteredTypes() = %d types, want %d", len(got), len(want))
	}
	seen := make(map[schema.NodeType]bool, len(got))
	for _, nt := range got {
		seen[nt] = true
	}
	for _, nt := range want {
		if !seen[nt] {
			t.Errorf("missing registered executor for node type %q", nt)
		}
	}
}

func TestRegistry_ExecuteDispatchesByType(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(&InputExecutor{})

	node := schema.Node{ID: "a", Type: schema.NodeTypeInput, Data: schema.InputData{Name: "x"}}
	out, err := r.Execute(context.Background(), &fakeExecutionContext{}, node, "hi")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "hi" {
		t.Errorf("Execute() = %v, want %q", out, "hi")
	}
}

func TestRegistry_ExecuteUnregisteredTypeErrors(t *testing.T) {
	r := NewRegistry()
	node := schema.Node{ID: "a", Type: schema.NodeTypeAgent, Data: schema.AgentData{Provider: "x", Model: "y"}}

	if _, err := r.Execute(context.Background(), &fakeExecutionContext{}, node, nil); err == nil {
		t.Error("expected ErrNoExecutorRegistered")
	}
}

func TestRegistry_RegisterDuplicateTypeErrors(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(&InputExecutor{})

	if err := r.Register(&InputExecutor{}); err == nil {
		t.Error("expected ErrExecutorExists on duplicate registration")
	}
}

func TestRegistry_ValidateDispatchesByType(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(&ToolExecutor{})

	valid := schema.Node{ID: "t", Type: schema.NodeTypeTool, Data: schema.ToolData{ToolID: "http"}}
	if err := r.Validate(valid); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	invalid := schema.Node{ID: "t", Type: schema.NodeTypeTool, Data: schema.ToolData{}}
	if err := r.Validate(invalid); err == nil {
		t.Error("expected Validate() error for missing toolId")
	}
}
