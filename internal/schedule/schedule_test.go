package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/wovenflow/runtime/internal/config"
	"github.com/wovenflow/runtime/internal/dispatch"
	"github.com/wovenflow/runtime/internal/engine"
	"github.com/wovenflow/runtime/internal/httpclient"
	"github.com/wovenflow/runtime/internal/schema"
	"github.com/wovenflow/runtime/internal/store"
)

func newTestEngine(t *testing.T) (*engine.Engine, *store.Store) {
	t.Helper()
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	exprEval := dispatch.NewExprEvaluator(5 * time.Second)
	httpExec := dispatch.NewHTTPExecutor(nil, httpclient.NewBuilder(*config.Testing()))
	registry := dispatch.NewDefaultRegistry(exprEval, nil, nil, httpExec)

	return engine.New(st, registry, *config.Testing(), nil), st
}

func testWorkflow() *schema.Workflow {
	return &schema.Workflow{
		Name: "tick",
		Nodes: []schema.Node{
			{ID: "A", Type: schema.NodeTypeInput, Data: schema.InputData{Name: "A"}},
			{ID: "B", Type: schema.NodeTypeOutput, Data: schema.OutputData{}},
		},
		Edges: []schema.Edge{{ID: "e1", Source: "A", Target: "B"}},
	}
}

func TestScheduler_FiresRegisteredEntry(t *testing.T) {
	eng, st := newTestEngine(t)
	wf := testWorkflow()
	if err := st.CreateWorkflow(context.Background(), wf); err != nil {
		t.Fatalf("CreateWorkflow: %v", err)
	}

	s := New(eng)
	id, err := s.Register("* * * * * *", wf.ID, 1.0)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	s.Start()
	defer s.Stop()

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		execs, err := st.ListExecutionsForWorkflow(context.Background(), wf.ID)
		if err != nil {
			t.Fatalf("ListExecutionsForWorkflow: %v", err)
		}
		if len(execs) > 0 {
			entries := s.List()
			if len(entries) != 1 || entries[0].ID != id {
				t.Fatalf("expected exactly one entry with id %s, got %+v", id, entries)
			}
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("scheduled workflow never executed")
}

func TestScheduler_InvalidCronExpression(t *testing.T) {
	eng, _ := newTestEngine(t)
	s := New(eng)
	_, err := s.Register("not a cron expression", "wf-id", nil)
	if err == nil {
		t.Fatal("expected an error for an invalid cron expression")
	}
}

func TestScheduler_PauseStopsFiring(t *testing.T) {
	eng, st := newTestEngine(t)
	wf := testWorkflow()
	if err := st.CreateWorkflow(context.Background(), wf); err != nil {
		t.Fatalf("CreateWorkflow: %v", err)
	}

	s := New(eng)
	id, err := s.Register("* * * * * *", wf.ID, 1.0)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := s.Pause(id); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	s.Start()
	defer s.Stop()

	time.Sleep(1500 * time.Millisecond)

	execs, err := st.ListExecutionsForWorkflow(context.Background(), wf.ID)
	if err != nil {
		t.Fatalf("ListExecutionsForWorkflow: %v", err)
	}
	if len(execs) != 0 {
		t.Fatalf("expected a paused schedule never to fire, got %d executions", len(execs))
	}
}

func TestScheduler_RemoveUnknown(t *testing.T) {
	eng, _ := newTestEngine(t)
	s := New(eng)
	if err := s.Remove("does-not-exist"); err == nil {
		t.Fatal("expected an error removing an unregistered schedule")
	}
}
