package store

import (
	"context"
	"testing"

	"github.com/wovenflow/runtime/internal/schema"
)

func TestStore_AppendAndListLogs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	exec := &schema.Execution{WorkflowID: "wf-1", Status: schema.ExecutionRunning}
	if err := s.CreateExecution(ctx, exec); err != nil {
		t.Fatalf("CreateExecution: %v", err)
	}

	if err := s.AppendLog(ctx, exec.ID, schema.LogLine{
		Severity: schema.LogInfo,
		NodeID:   "node-a",
		Message:  "starting",
	}); err != nil {
		t.Fatalf("AppendLog (with node, no data): %v", err)
	}
	if err := s.AppendLog(ctx, exec.ID, schema.LogLine{
		Severity: schema.LogError,
		Message:  "no node attached",
	}); err != nil {
		t.Fatalf("AppendLog (no node): %v", err)
	}
	if err := s.AppendLog(ctx, exec.ID, schema.LogLine{
		Severity: schema.LogInfo,
		NodeID:   "node-b",
		Message:  "with payload",
		Data:     map[string]interface{}{"key": "value"},
	}); err != nil {
		t.Fatalf("AppendLog (with data): %v", err)
	}

	lines, err := s.ListLogs(ctx, exec.ID)
	if err != nil {
		t.Fatalf("ListLogs: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}

	if lines[0].NodeID != "node-a" {
		t.Fatalf("lines[0].NodeID = %q, want node-a", lines[0].NodeID)
	}
	if lines[1].NodeID != "" {
		t.Fatalf("lines[1].NodeID = %q, want empty", lines[1].NodeID)
	}
	if lines[1].Data != nil {
		t.Fatalf("lines[1].Data = %v, want nil", lines[1].Data)
	}

	data, ok := lines[2].Data.(map[string]interface{})
	if !ok {
		t.Fatalf("lines[2].Data = %#v, want map", lines[2].Data)
	}
	if data["key"] != "value" {
		t.Fatalf("lines[2].Data[key] = %v, want value", data["key"])
	}
}

func TestStore_ListLogs_EmptyForUnknownExecution(t *testing.T) {
	s := newTestStore(t)
	lines, err := s.ListLogs(context.Background(), "missing")
	if err != nil {
		t.Fatalf("ListLogs: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("len(lines) = %d, want 0", len(lines))
	}
}
