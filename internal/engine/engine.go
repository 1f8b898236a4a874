package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wovenflow/runtime/internal/config"
	"github.com/wovenflow/runtime/internal/dag"
	"github.com/wovenflow/runtime/internal/dispatch"
	"github.com/wovenflow/runtime/internal/eventsink"
	"github.com/wovenflow/runtime/internal/logging"
	"github.com/wovenflow/runtime/internal/observer"
	"github.com/wovenflow/runtime/internal/runner"
	"github.com/wovenflow/runtime/internal/schema"
	"github.com/wovenflow/runtime/internal/store"
)

// Engine is the process-wide execution orchestrator. Construct with New,
// then call ExecuteWorkflow once per run; it is safe for concurrent use
// across goroutines and across many in-flight executions.
type Engine struct {
	store    *store.Store
	registry *dispatch.Registry
	cfg      config.Config
	sink     eventsink.Sink
	logger   *logging.Logger

	// observerMgr carries the richer workflow/node lifecycle taxonomy
	// (EventWorkflowStart, EventNodeSuccess, ...) to in-process observers,
	// alongside (not instead of) the six-event stream the sink forwards
	// externally. Empty by default; register with RegisterObserver.
	observerMgr *observer.Manager

	mu      sync.Mutex
	runners map[string]*runner.Runner
	sem     chan struct{} // nil means no concurrency cap
}

// New builds an Engine. sink may be nil, in which case events are only
// written through to the Store and never forwarded externally.
func New(st *store.Store, registry *dispatch.Registry, cfg config.Config, sink eventsink.Sink) *Engine {
	e := &Engine{
		store:       st,
		registry:    registry,
		cfg:         cfg,
		sink:        sink,
		logger:      logging.New(logging.DefaultConfig()),
		observerMgr: observer.NewManager(),
		runners:     make(map[string]*runner.Runner),
	}
	if cfg.MaxConcurrentExecutions > 0 {
		e.sem = make(chan struct{}, cfg.MaxConcurrentExecutions)
	}
	return e
}

// ExecuteWorkflow loads workflowID, validates it, persists a running
// Execution record, and launches a Runner for it asynchronously. It
// returns as soon as the Execution record exists — the scheduling loop
// itself runs on a separate goroutine — except when the engine is already
// at its MaxConcurrentExecutions cap, in which case this call blocks in
// FIFO order until a slot frees up, per spec.
//
// Validation failures are returned synchronously and create no Execution
// record, matching the core runner's validator contract.
func (e *Engine) ExecuteWorkflow(ctx context.Context, workflowID string, input interface{}) (*schema.Execution, error) {
	wf, err := e.store.GetWorkflow(ctx, workflowID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownWorkflow, workflowID)
		}
		return nil, err
	}

	graph := dag.New(wf.Nodes, wf.Edges)
	if err := graph.Validate(); err != nil {
		return nil, err
	}

	if e.sem != nil {
		select {
		case e.sem <- struct{}{}:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	exec := &schema.Execution{
		ID:         uuid.New().String(),
		WorkflowID: workflowID,
		Status:     schema.ExecutionRunning,
		Input:      input,
		StartedAt:  time.Now(),
		NodeStates: make(map[string]*schema.NodeState),
	}
	if err := e.store.CreateExecution(ctx, exec); err != nil {
		if e.sem != nil {
			<-e.sem
		}
		return nil, err
	}

	r := runner.New(graph, *wf, exec.ID, e.registry, e.cfg, e.cfg.WorkerPoolSize)
	r.OnEvent(e.listenerFor(exec.ID, workflowID))

	e.mu.Lock()
	e.runners[exec.ID] = r
	e.mu.Unlock()

	if e.observerMgr.HasObservers() {
		e.observerMgr.Notify(ctx, observer.Event{
			Type:        observer.EventWorkflowStart,
			Status:      observer.StatusStarted,
			Timestamp:   exec.StartedAt,
			ExecutionID: exec.ID,
			WorkflowID:  workflowID,
		})
	}

	go e.run(r, exec.ID, input)

	return exec, nil
}

func (e *Engine) run(r *runner.Runner, executionID string, input interface{}) {
	defer func() {
		if e.sem != nil {
			<-e.sem
		}
		e.mu.Lock()
		delete(e.runners, executionID)
		e.mu.Unlock()
	}()

	// Detached from the caller's context deliberately: ExecuteWorkflow has
	// already returned by the time this runs, so there is no caller
	// context left to inherit. Cancellation from here on is exclusively
	// through StopExecution -> runner.Stop.
	if _, err := r.Run(context.Background(), input); err != nil {
		e.logger.WithExecutionID(executionID).WithError(err).Debug("execution ended with error")
	}
}

// StopExecution requests cooperative cancellation of a running execution,
// marks it stopped in the Store, and de-registers it.
func (e *Engine) StopExecution(ctx context.Context, executionID string) error {
	e.mu.Lock()
	r, ok := e.runners[executionID]
	e.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownExecution, executionID)
	}

	r.Stop()

	if err := e.store.UpdateExecutionStatus(ctx, executionID, schema.ExecutionStopped, nil, ""); err != nil {
		return err
	}

	e.mu.Lock()
	delete(e.runners, executionID)
	e.mu.Unlock()
	return nil
}

// RegisterObserver adds obs to the set notified of every execution's
// workflow/node lifecycle transitions, in the richer observer.Event shape.
// Returns the Engine for chaining, matching the teacher's Engine API.
func (e *Engine) RegisterObserver(obs observer.Observer) *Engine {
	e.observerMgr.Register(obs)
	return e
}

// Store returns the Engine's backing Store, for callers (the HTTP server,
// the CLI) that need read access beyond execution lifecycle.
func (e *Engine) Store() *store.Store { return e.store }

// Config returns the engine's configuration, so callers that only hold an
// Engine (e.g. internal/httpserver's workflow validation routes) can reach
// the network-access policy without threading a separate copy through.
func (e *Engine) Config() config.Config { return e.cfg }

// ActiveExecutionCount reports how many executions currently have a live
// Runner registered.
func (e *Engine) ActiveExecutionCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.runners)
}
