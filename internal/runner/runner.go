package runner

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wovenflow/runtime/internal/dag"
	"github.com/wovenflow/runtime/internal/dispatch"
	"github.com/wovenflow/runtime/internal/schema"
)

// defaultWorkerPoolSize bounds how wide a single batch can dispatch
// concurrently when the caller doesn't specify one. The ready set itself is
// never capped (spec allows an unbounded batch); this only bounds how many
// worker goroutines service it, which throttles throughput, not semantics.
const defaultWorkerPoolSize = 32

type nodeTask struct {
	node  schema.Node
	input interface{}
}

type nodeResult struct {
	nodeID string
	output interface{}
	err    error
}

// Runner schedules one execution's nodes to completion. Construct with New,
// register listeners with OnEvent, then call Run. A Runner is single-use:
// Run must be called exactly once.
type Runner struct {
	graph      *dag.Graph
	workflow   schema.Workflow
	execID     string
	workflowID string
	cfg        schema.Config
	registry   *dispatch.Registry
	workers    int

	listeners []Listener
	eventMu   sync.Mutex

	cancelled atomic.Bool // scheduling halt: set on external Stop() or on a node failure
	stopped   atomic.Bool // true only when Stop() was called externally, not on node failure
	started   atomic.Bool

	// Owned exclusively by the coordinator goroutine inside Run. No other
	// goroutine may read or write these once Run starts.
	outputs  map[string]interface{}
	inDegree map[string]int
	ready    []string

	// rawInput is the execution's input record, set once at the top of Run.
	// gatherInput returns it for any zero-incoming-edge node regardless of
	// node type — not just input-kind nodes, which are the only type it's
	// additionally pre-seeded into outputs for.
	rawInput interface{}
}

// New builds a Runner for one execution over an already-validated graph.
// workerPoolSize bounds per-batch dispatch concurrency; zero or negative
// uses defaultWorkerPoolSize.
func New(graph *dag.Graph, workflow schema.Workflow, execID string, registry *dispatch.Registry, cfg schema.Config, workerPoolSize int) *Runner {
	if workerPoolSize <= 0 {
		workerPoolSize = defaultWorkerPoolSize
	}
	return &Runner{
		graph:      graph,
		workflow:   workflow,
		execID:     execID,
		workflowID: workflow.ID,
		cfg:        cfg,
		registry:   registry,
		workers:    workerPoolSize,
		outputs:    make(map[string]interface{}),
		inDegree:   graph.InDegrees(),
	}
}

// OnEvent registers a listener. Must be called before Run; listeners are
// read without locking once scheduling starts.
func (r *Runner) OnEvent(l Listener) {
	r.listeners = append(r.listeners, l)
}

// Stop requests cooperative cancellation. Safe to call concurrently with
// Run and safe to call more than once.
func (r *Runner) Stop() {
	r.stopped.Store(true)
	r.cancelled.Store(true)
}

// Cancelled satisfies dispatch.ExecutionContext.
func (r *Runner) Cancelled() bool {
	return r.cancelled.Load()
}

// ExecutionID satisfies dispatch.ExecutionContext.
func (r *Runner) ExecutionID() string { return r.execID }

// WorkflowID satisfies dispatch.ExecutionContext.
func (r *Runner) WorkflowID() string { return r.workflowID }

// Config satisfies dispatch.ExecutionContext.
func (r *Runner) Config() schema.Config { return r.cfg }

// Emit satisfies dispatch.ExecutionContext. Safe for concurrent calls from
// worker goroutines dispatching independent nodes.
func (r *Runner) Emit(eventType string, data map[string]interface{}) {
	evt := Event{Type: eventType, ExecutionID: r.execID, Timestamp: time.Now(), Data: data}
	r.eventMu.Lock()
	defer r.eventMu.Unlock()
	for _, l := range r.listeners {
		l(evt)
	}
}

// Log satisfies dispatch.ExecutionContext by emitting a "log" event; the
// Engine's listener is responsible for routing it to the Store's append-only
// log table.
func (r *Runner) Log(nodeID string, severity schema.LogSeverity, message string) {
	data := map[string]interface{}{
		"level":   string(severity),
		"message": message,
	}
	if nodeID != "" {
		data["nodeId"] = nodeID
	}
	r.Emit(EventLog, data)
}

var _ dispatch.ExecutionContext = (*Runner)(nil)

// Run drives the scheduling loop to completion and returns the execution's
// final output, or the first node error encountered (fail-fast), or
// ErrExecutionStopped if Stop was called before natural termination.
//
// Run must be called exactly once per Runner; it panics if called twice.
func (r *Runner) Run(ctx context.Context, input interface{}) (interface{}, error) {
	if !r.started.CompareAndSwap(false, true) {
		panic(ErrAlreadyRunning)
	}

	r.rawInput = input
	r.seedInputNodes(input)
	r.ready = r.initialReadySet()

	// Sized to the total node count, not the worker pool: every node is
	// dispatched at most once for the whole execution, so this bound
	// guarantees a batch dispatch (send-all-then-collect-all) never blocks
	// on a full buffer regardless of how wide a single batch is relative
	// to the worker pool.
	capacity := len(r.graph.Nodes())
	if capacity == 0 {
		capacity = 1
	}
	tasks := make(chan *nodeTask, capacity)
	results := make(chan *nodeResult, capacity)

	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go r.worker(ctx, tasks, results, &wg)
	}

	finalErr := r.scheduleLoop(ctx, tasks, results)

	close(tasks)
	wg.Wait()

	if finalErr != nil {
		r.Emit(EventExecutionError, map[string]interface{}{"error": finalErr.Error()})
		return nil, finalErr
	}
	if r.stopped.Load() {
		r.Emit(EventExecutionError, map[string]interface{}{"error": ErrExecutionStopped.Error()})
		return nil, ErrExecutionStopped
	}

	output := r.selectResult()
	r.Emit(EventExecutionComplete, map[string]interface{}{"output": output})
	return output, nil
}

// seedInputNodes fills the output table with the execution input for every
// input-kind node and removes them from in-degree bookkeeping entirely —
// they are pre-completed and never dispatched through the worker pool.
func (r *Runner) seedInputNodes(input interface{}) {
	for _, n := range r.graph.Nodes() {
		if n.Type == schema.NodeTypeInput {
			r.outputs[n.ID] = input
			r.completeDownstream(n.ID)
		}
	}
}

// initialReadySet returns every node with zero remaining in-degree that
// hasn't already been pre-completed as an input node.
func (r *Runner) initialReadySet() []string {
	var ready []string
	for _, n := range r.graph.Nodes() {
		if n.Type == schema.NodeTypeInput {
			continue
		}
		if r.inDegree[n.ID] == 0 {
			ready = append(ready, n.ID)
		}
	}
	sort.Strings(ready)
	return ready
}

// scheduleLoop repeats drain-dispatch-settle until the ready set is empty or
// cancellation is observed. It owns outputs, inDegree, and ready
// exclusively: this is the single coordination point the package doc
// promises.
func (r *Runner) scheduleLoop(ctx context.Context, tasks chan<- *nodeTask, results <-chan *nodeResult) error {
	for len(r.ready) > 0 && !r.cancelled.Load() {
		batch := r.ready
		r.ready = nil

		for _, nodeID := range batch {
			node := *r.graph.GetNode(nodeID)
			in := r.gatherInput(nodeID)
			r.Emit(EventNodeStart, map[string]interface{}{"nodeId": nodeID, "kind": string(node.Type)})
			select {
			case tasks <- &nodeTask{node: node, input: in}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		var batchErr error
		for range batch {
			select {
			case res := <-results:
				switch {
				case res.err == ErrExecutionStopped:
					// Dropped by the worker pool because Stop() raced the
					// dispatch; not a node failure, no event emitted.
				case res.err != nil:
					r.Emit(EventNodeError, map[string]interface{}{"nodeId": res.nodeID, "error": res.err.Error()})
					if batchErr == nil {
						batchErr = fmt.Errorf("%w: node %s: %v", ErrNodeFailed, res.nodeID, res.err)
					}
					r.cancelled.Store(true)
				case r.cancelled.Load():
					// The worker dispatched this node before Stop() raced
					// in and it finished anyway: drop the result the same
					// way an ErrExecutionStopped result is dropped above,
					// instead of recording output or enqueueing downstream
					// work for an execution that's stopping.
				default:
					r.outputs[res.nodeID] = res.output
					r.Emit(EventNodeComplete, map[string]interface{}{"nodeId": res.nodeID, "output": res.output})
					r.completeDownstream(res.nodeID)
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if batchErr != nil {
			return batchErr
		}
	}

	return nil
}

// completeDownstream decrements the in-degree of every neighbor of nodeID
// and enqueues any that reach zero. Called only from the coordinator.
func (r *Runner) completeDownstream(nodeID string) {
	var newlyReady []string
	for _, e := range r.graph.OutputEdges(nodeID) {
		r.inDegree[e.Target]--
		if r.inDegree[e.Target] == 0 {
			newlyReady = append(newlyReady, e.Target)
		}
	}
	sort.Strings(newlyReady)
	r.ready = append(r.ready, newlyReady...)
}

// worker services tasks until the channel is closed or ctx is done.
func (r *Runner) worker(ctx context.Context, tasks <-chan *nodeTask, results chan<- *nodeResult, wg *sync.WaitGroup) {
	defer wg.Done()
	for {
		select {
		case task, ok := <-tasks:
			if !ok {
				return
			}
			if r.cancelled.Load() {
				// Drain without dispatching further work once cancelled;
				// the node is reported as stopped rather than completed.
				select {
				case results <- &nodeResult{nodeID: task.node.ID, err: ErrExecutionStopped}:
				case <-ctx.Done():
				}
				continue
			}
			output, err := r.registry.Execute(ctx, r, task.node, task.input)
			select {
			case results <- &nodeResult{nodeID: task.node.ID, output: output, err: err}:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
