package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/wovenflow/runtime/internal/expr"
)

// ExprEvaluator wraps an expr.Engine with the node-kind expression timeout,
// giving condition/loop/transform/code executors a single bounded-evaluation
// entry point instead of each wiring expr.Engine.EvaluateValueWithTimeout
// themselves.
type ExprEvaluator struct {
	engine  *expr.Engine
	timeout time.Duration
}

// NewExprEvaluator builds an evaluator around a fresh expr.Engine.
func NewExprEvaluator(timeout time.Duration) *ExprEvaluator {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ExprEvaluator{engine: expr.New(), timeout: timeout}
}

// Bool evaluates expression as a boolean condition over input, under the
// same timeout as Value.
func (e *ExprEvaluator) Bool(expression string, input interface{}) (bool, error) {
	v, err := e.engine.EvaluateValueWithTimeout(context.Background(), expression, input, nil, e.timeout)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: expression did not return boolean, got %T", expr.ErrTypeMismatch, v)
	}
	return b, nil
}

// Value evaluates expression over input and returns the raw result.
func (e *ExprEvaluator) Value(ctx context.Context, expression string, input interface{}) (interface{}, error) {
	return e.engine.EvaluateValueWithTimeout(ctx, expression, input, nil, e.timeout)
}
