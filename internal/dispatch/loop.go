package dispatch

import (
	"context"
	"fmt"

	"github.com/wovenflow/runtime/internal/schema"
)

// fallbackWhileIterationCap bounds while-loops that never see their
// condition go false, used only if the execution's Config carries no
// MaxWhileIterations of its own (the zero value, e.g. in a hand-built
// schema.Config that skipped config.Default()).
const fallbackWhileIterationCap = 100000

// LoopExecutor executes loop nodes. A loop node produces a list of
// per-iteration items — it does not itself fan those items out to
// downstream nodes as separate dispatches; the sequence travels onward as
// one value.
type LoopExecutor struct {
	expr *ExprEvaluator
}

func (e *LoopExecutor) Execute(ctx context.Context, ec ExecutionContext, node schema.Node, input interface{}) (interface{}, error) {
	data, err := schema.AsLoopData(node.Data)
	if err != nil {
		return nil, err
	}

	switch data.Mode {
	case schema.LoopModeFor:
		return e.executeFor(ec, data, input)
	case schema.LoopModeForEach:
		return e.executeForEach(data, input)
	case schema.LoopModeWhile:
		return e.executeWhile(ctx, ec, data, input)
	default:
		return nil, fmt.Errorf("loop node %q: unknown loop mode %q", node.ID, data.Mode)
	}
}

func (e *LoopExecutor) executeFor(ec ExecutionContext, data *schema.LoopData, input interface{}) (interface{}, error) {
	count := 0
	if data.Count != nil {
		count = *data.Count
	}
	if count < 0 {
		return nil, fmt.Errorf("loop: for count cannot be negative")
	}

	items := make([]interface{}, 0, count)
	for i := 0; i < count; i++ {
		if ec.Cancelled() {
			break
		}
		items = append(items, map[string]interface{}{"index": i, "input": input})
	}
	return items, nil
}

func (e *LoopExecutor) executeForEach(data *schema.LoopData, input interface{}) (interface{}, error) {
	if seq, ok := input.([]interface{}); ok {
		return seq, nil
	}
	return []interface{}{input}, nil
}

func (e *LoopExecutor) executeWhile(ctx context.Context, ec ExecutionContext, data *schema.LoopData, input interface{}) (interface{}, error) {
	iterCap := ec.Config().MaxWhileIterations
	if iterCap <= 0 {
		iterCap = fallbackWhileIterationCap
	}
	maxIter := data.MaxIterations
	if maxIter <= 0 || maxIter > iterCap {
		maxIter = iterCap
	}

	var items []interface{}
	current := input
	for i := 0; i < maxIter; i++ {
		if ec.Cancelled() {
			break
		}
		cont, err := e.expr.Bool(data.Condition, current)
		if err != nil {
			return nil, fmt.Errorf("loop: while condition: %w", err)
		}
		if !cont {
			break
		}
		items = append(items, current)
	}
	return items, nil
}

func (e *LoopExecutor) NodeType() schema.NodeType { return schema.NodeTypeLoop }

func (e *LoopExecutor) Validate(node schema.Node) error {
	_, err := schema.AsLoopData(node.Data)
	return err
}
