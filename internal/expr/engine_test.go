package expr

import (
	"context"
	"testing"
	"time"
)

func TestEvaluateBoolean_ItemComparison(t *testing.T) {
	e := New()
	got, err := e.EvaluateBoolean("item > 100", 150.0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Fatal("expected true")
	}
}

func TestEvaluateBoolean_VariablesAndContext(t *testing.T) {
	e := New()
	ctx := &Context{
		Variables:   map[string]interface{}{"count": 10.0},
		ContextVars: map[string]interface{}{"maxValue": 50.0},
	}
	got, err := e.EvaluateBoolean("variables.count < context.maxValue", nil, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Fatal("expected true")
	}
}

func TestEvaluateBoolean_NodeReference(t *testing.T) {
	e := New()
	ctx := &Context{
		NodeResults: map[string]interface{}{"n1": map[string]interface{}{"output": 200.0}},
	}
	got, err := e.EvaluateBoolean("node.n1.output > 100", nil, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Fatal("expected true")
	}
}

func TestEvaluateValue_Arithmetic(t *testing.T) {
	e := New()
	got, err := e.EvaluateValue("item.age * 2", map[string]interface{}{"age": 21.0}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.(float64) != 42.0 {
		t.Fatalf("expected 42, got %v", got)
	}
}

func TestEvaluateValue_LengthSugar(t *testing.T) {
	e := New()
	got, err := e.EvaluateValue("item.tags.length", map[string]interface{}{"tags": []interface{}{"a", "b", "c"}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.(int) != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
}

func TestEvaluateValueWithTimeout_Exceeds(t *testing.T) {
	e := New()
	_, err := e.EvaluateValueWithTimeout(context.Background(), "1 + 1", nil, nil, 0)
	if err == nil {
		t.Fatal("expected timeout error with a zero-duration budget")
	}
}

func TestEvaluateValueWithTimeout_Succeeds(t *testing.T) {
	e := New()
	got, err := e.EvaluateValueWithTimeout(context.Background(), "1 + 1", nil, nil, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.(int) != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
}

func TestEvaluateBoolean_TypeMismatch(t *testing.T) {
	e := New()
	_, err := e.EvaluateBoolean("1 + 1", nil, nil)
	if err == nil {
		t.Fatal("expected an error when expression does not yield a boolean")
	}
}

func TestExtractDependencies(t *testing.T) {
	deps := ExtractDependencies("node.a.output + node.b.output")
	if len(deps) != 2 || deps[0] != "a" || deps[1] != "b" {
		t.Fatalf("unexpected dependencies: %v", deps)
	}
}
