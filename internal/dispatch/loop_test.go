package dispatch

import (
	"context"
	"testing"
	"time"

	"github.com/wovenflow/runtime/internal/schema"
)

func TestLoopExecutor_ForProducesIndexedItems(t *testing.T) {
	exec := &LoopExecutor{expr: NewExprEvaluator(time.Second)}
	count := 3
	node := schema.Node{ID: "l", Type: schema.NodeTypeLoop, Data: schema.LoopData{Mode: schema.LoopModeFor, Count: &count}}

	out, err := exec.Execute(context.Background(), &fakeExecutionContext{}, node, "seed")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	items, ok := out.([]interface{})
	if !ok || len(items) != 3 {
		t.Fatalf("Execute() = %v, want 3 items", out)
	}
	first, ok := items[0].(map[string]interface{})
	if !ok || first["index"] != 0 || first["input"] != "seed" {
		t.Errorf("items[0] = %v, want {index:0, input:seed}", items[0])
	}
}

func TestLoopExecutor_ForEachPassesThroughSequence(t *testing.T) {
	exec := &LoopExecutor{expr: NewExprEvaluator(time.Second)}
	node := schema.Node{ID: "l", Type: schema.NodeTypeLoop, Data: schema.LoopData{Mode: schema.LoopModeForEach, Collection: "input"}}

	seq := []interface{}{1, 2, 3}
	out, err := exec.Execute(context.Background(), &fakeExecutionContext{}, node, seq)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	items, ok := out.([]interface{})
	if !ok || len(items) != 3 {
		t.Fatalf("Execute() = %v, want pass-through of 3 items", out)
	}
}

func TestLoopExecutor_ForEachWrapsNonSequence(t *testing.T) {
	exec := &LoopExecutor{expr: NewExprEvaluator(time.Second)}
	node := schema.Node{ID: "l", Type: schema.NodeTypeLoop, Data: schema.LoopData{Mode: schema.LoopModeForEach, Collection: "input"}}

	out, err := exec.Execute(context.Background(), &fakeExecutionContext{}, node, "single")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	items, ok := out.([]interface{})
	if !ok || len(items) != 1 || items[0] != "single" {
		t.Fatalf("Execute() = %v, want single-element wrap", out)
	}
}

func TestLoopExecutor_WhileStopsWhenConditionFalse(t *testing.T) {
	exec := &LoopExecutor{expr: NewExprEvaluator(time.Second)}
	node := schema.Node{ID: "l", Type: schema.NodeTypeLoop, Data: schema.LoopData{Mode: schema.LoopModeWhile, Condition: "item < 3"}}

	out, err := exec.Execute(context.Background(), &fakeExecutionContext{}, node, 5)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	// condition never changes based on the (unchanging) current value, so
	// it either runs zero times (false immediately) or hits the configured
	// while-iteration cap (100000, per fakeExecutionContext's DefaultConfig).
	wantCap := schema.DefaultConfig().MaxWhileIterations
	items, _ := out.([]interface{})
	if len(items) != 0 && len(items) != wantCap {
		t.Errorf("Execute() = %d items, want 0 or %d", len(items), wantCap)
	}
}

func TestLoopExecutor_WhileRespectsMaxIterations(t *testing.T) {
	exec := &LoopExecutor{expr: NewExprEvaluator(time.Second)}
	node := schema.Node{ID: "l", Type: schema.NodeTypeLoop, Data: schema.LoopData{
		Mode:          schema.LoopModeWhile,
		Condition:     "true",
		MaxIterations: 5,
	}}

	out, err := exec.Execute(context.Background(), &fakeExecutionContext{}, node, 0)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	items, ok := out.([]interface{})
	if !ok || len(items) != 5 {
		t.Fatalf("Execute() = %v, want exactly 5 items", out)
	}
}

func TestLoopExecutor_WhileRespectsCancellation(t *testing.T) {
	exec := &LoopExecutor{expr: NewExprEvaluator(time.Second)}
	node := schema.Node{ID: "l", Type: schema.NodeTypeLoop, Data: schema.LoopData{
		Mode:      schema.LoopModeWhile,
		Condition: "true",
	}}

	out, err := exec.Execute(context.Background(), &fakeExecutionContext{cancelled: true}, node, 0)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	items, _ := out.([]interface{})
	if len(items) != 0 {
		t.Errorf("Execute() = %d items, want 0 when cancelled up front", len(items))
	}
}

func TestLoopExecutor_WhileRespectsConfigCap(t *testing.T) {
	exec := &LoopExecutor{expr: NewExprEvaluator(time.Second)}
	node := schema.Node{ID: "l", Type: schema.NodeTypeLoop, Data: schema.LoopData{
		Mode:      schema.LoopModeWhile,
		Condition: "true",
	}}

	cfg := schema.DefaultConfig()
	cfg.MaxWhileIterations = 7
	ec := &fakeExecutionContext{config: &cfg}

	out, err := exec.Execute(context.Background(), ec, node, 0)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	items, ok := out.([]interface{})
	if !ok || len(items) != 7 {
		t.Fatalf("Execute() = %v, want exactly 7 items from Config().MaxWhileIterations", out)
	}
}

func TestLoopExecutor_UnknownModeErrors(t *testing.T) {
	exec := &LoopExecutor{expr: NewExprEvaluator(time.Second)}
	node := schema.Node{ID: "l", Type: schema.NodeTypeLoop, Data: schema.LoopData{Mode: "bogus"}}

	if _, err := exec.Execute(context.Background(), &fakeExecutionContext{}, node, nil); err == nil {
		t.Error("expected error for unknown loop mode")
	}
}
