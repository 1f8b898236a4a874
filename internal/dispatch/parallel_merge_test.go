package dispatch

import (
	"context"
	"testing"

	"github.com/wovenflow/runtime/internal/schema"
)

func TestParallelExecutor_PassesThroughSequence(t *testing.T) {
	exec := &ParallelExecutor{}
	node := schema.Node{ID: "p", Type: schema.NodeTypeParallel, Data: schema.ParallelData{}}

	seq := []interface{}{1, 2, 3}
	out, err := exec.Execute(context.Background(), &fakeExecutionContext{}, node, seq)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	got, ok := out.([]interface{})
	if !ok || len(got) != 3 {
		t.Errorf("Execute() = %v, want pass-through of 3 items", out)
	}
}

func TestParallelExecutor_ErrorsOnNonSequence(t *testing.T) {
	exec := &ParallelExecutor{}
	node := schema.Node{ID: "p", Type: schema.NodeTypeParallel, Data: schema.ParallelData{}}

	if _, err := exec.Execute(context.Background(), &fakeExecutionContext{}, node, "not a sequence"); err == nil {
		t.Error("expected error for non-sequence input")
	}
}

func TestMergeExecutor_FlattensOneLevel(t *testing.T) {
	exec := &MergeExecutor{}
	node := schema.Node{ID: "m", Type: schema.NodeTypeMerge, Data: schema.MergeData{Strategy: schema.MergeStrategyList}}

	input := []interface{}{
		[]interface{}{1, 2},
		3,
		[]interface{}{4},
	}
	out, err := exec.Execute(context.Background(), &fakeExecutionContext{}, node, input)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	got, ok := out.([]interface{})
	if !ok || len(got) != 4 {
		t.Fatalf("Execute() = %v, want 4 flattened items", out)
	}
}

func TestMergeExecutor_PassesThroughNonSequence(t *testing.T) {
	exec := &MergeExecutor{}
	node := schema.Node{ID: "m", Type: schema.NodeTypeMerge, Data: schema.MergeData{Strategy: schema.MergeStrategyList}}

	out, err := exec.Execute(context.Background(), &fakeExecutionContext{}, node, "scalar")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "scalar" {
		t.Errorf("Execute() = %v, want pass-through scalar", out)
	}
}

func TestMergeExecutor_ReducesMapByStrategyObject(t *testing.T) {
	exec := &MergeExecutor{}
	node := schema.Node{ID: "m", Type: schema.NodeTypeMerge, Data: schema.MergeData{Strategy: schema.MergeStrategyObject}}

	input := map[string]interface{}{"a": 1, "b": 2}
	out, err := exec.Execute(context.Background(), &fakeExecutionContext{}, node, input)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	got, ok := out.(map[string]interface{})
	if !ok || got["a"] != 1 || got["b"] != 2 {
		t.Errorf("Execute() = %v, want object pass-through", out)
	}
}

func TestMergeExecutor_ReducesMapByStrategyFirstLast(t *testing.T) {
	input := map[string]interface{}{"b": "second", "a": "first", "c": "third"}

	first := reduceMapByStrategy(input, schema.MergeStrategyFirst)
	if first != "first" {
		t.Errorf("reduceMapByStrategy(first) = %v, want %q (alphabetical key order)", first, "first")
	}

	last := reduceMapByStrategy(input, schema.MergeStrategyLast)
	if last != "third" {
		t.Errorf("reduceMapByStrategy(last) = %v, want %q (alphabetical key order)", last, "third")
	}

	list := reduceMapByStrategy(input, schema.MergeStrategyList)
	got, ok := list.([]interface{})
	if !ok || len(got) != 3 || got[0] != "first" || got[2] != "third" {
		t.Errorf("reduceMapByStrategy(list) = %v, want alphabetically ordered values", list)
	}
}

func TestMergeExecutor_MapThenFlatten(t *testing.T) {
	exec := &MergeExecutor{}
	node := schema.Node{ID: "m", Type: schema.NodeTypeMerge, Data: schema.MergeData{Strategy: schema.MergeStrategyList}}

	input := schema.FanInInput{
		"upstream1": []interface{}{1, 2},
		"upstream2": []interface{}{3},
	}
	out, err := exec.Execute(context.Background(), &fakeExecutionContext{}, node, input)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	got, ok := out.([]interface{})
	if !ok || len(got) != 3 {
		t.Fatalf("Execute() = %v, want 3 flattened items after map reduction", out)
	}
}
