package expr

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Context provides the variable bindings visible to an evaluated
// expression: node outputs gathered so far, workflow-scoped variables, and
// context constants. It never carries a handle to the network, filesystem,
// or a clock beyond the now()/date helpers registered below, which is what
// makes expression evaluation safe to run without its own sandbox process.
type Context struct {
	NodeResults map[string]interface{}
	Variables   map[string]interface{}
	ContextVars map[string]interface{}
}

// Engine compiles and caches expr-lang programs. One Engine is shared across
// an execution's node evaluations; the program cache amortizes compilation
// across loop iterations that re-evaluate the same expression string.
type Engine struct {
	mu           sync.Mutex
	programCache map[string]*vm.Program
}

// New creates an expression engine with an empty program cache.
func New() *Engine {
	return &Engine{programCache: make(map[string]*vm.Program)}
}

func withDefaults(ctx *Context, input interface{}) *Context {
	if ctx == nil {
		ctx = &Context{}
	}
	out := &Context{
		NodeResults: ctx.NodeResults,
		ContextVars: ctx.ContextVars,
		Variables:   make(map[string]interface{}, len(ctx.Variables)+2),
	}
	for k, v := range ctx.Variables {
		out.Variables[k] = v
	}
	if input != nil {
		if _, ok := out.Variables["item"]; !ok {
			out.Variables["item"] = input
		}
		if _, ok := out.Variables["input"]; !ok {
			out.Variables["input"] = input
		}
	}
	return out
}

// EvaluateBoolean compiles (or reuses a cached compile of) expression and
// runs it, requiring a boolean result. It applies no timeout; dispatch
// evaluates condition and loop "while" expressions through
// EvaluateValueWithTimeout instead.
func (e *Engine) EvaluateBoolean(expression string, input interface{}, ctx *Context) (bool, error) {
	ctx = withDefaults(ctx, input)
	expression = convertSyntax(expression)
	env := e.buildEnvironment(ctx)

	program, err := e.compile(expression, env, expr.AsBool())
	if err != nil {
		return false, err
	}

	output, err := expr.Run(program, env)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrEvaluationFailed, err)
	}

	result, ok := output.(bool)
	if !ok {
		return false, fmt.Errorf("%w: expression did not return boolean, got %T", ErrTypeMismatch, output)
	}
	return result, nil
}

// EvaluateValue compiles and runs expression, returning whatever value it
// produces, with no timeout. Dispatch's transform and code nodes use
// EvaluateValueWithTimeout instead.
func (e *Engine) EvaluateValue(expression string, input interface{}, ctx *Context) (interface{}, error) {
	ctx = withDefaults(ctx, input)
	expression = convertSyntax(expression)
	env := e.buildEnvironment(ctx)

	program, err := e.compile(expression, env)
	if err != nil {
		return nil, err
	}

	output, err := expr.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEvaluationFailed, err)
	}
	return output, nil
}

// EvaluateValueWithTimeout bounds EvaluateValue's wall-clock time, since
// expr-lang has no built-in step budget for unbounded built-in loops like
// map/filter over attacker-controlled array sizes. Compilation is cheap and
// runs synchronously; only Run is wrapped.
func (e *Engine) EvaluateValueWithTimeout(ctx context.Context, expression string, input interface{}, evalCtx *Context, timeout time.Duration) (interface{}, error) {
	evalCtx = withDefaults(evalCtx, input)
	expression = convertSyntax(expression)
	env := e.buildEnvironment(evalCtx)

	program, err := e.compile(expression, env)
	if err != nil {
		return nil, err
	}

	type result struct {
		val interface{}
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, runErr := expr.Run(program, env)
		done <- result{v, runErr}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case r := <-done:
		if r.err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEvaluationFailed, r.err)
		}
		return r.val, nil
	case <-timer.C:
		return nil, ErrTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (e *Engine) compile(expression string, env map[string]interface{}, opts ...expr.Option) (*vm.Program, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if program, ok := e.programCache[expression]; ok {
		return program, nil
	}

	allOpts := append([]expr.Option{expr.Env(env)}, opts...)
	program, err := expr.Compile(expression, allOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntaxError, err)
	}
	e.programCache[expression] = program
	return program, nil
}

// buildEnvironment assembles the variable and function bindings an
// expression may reference. It deliberately registers no function capable
// of touching the network, filesystem, or environment variables: the
// closed function set below is the entire surface an expression can reach.
func (e *Engine) buildEnvironment(ctx *Context) map[string]interface{} {
	env := make(map[string]interface{})
	addBuiltinFunctions(env)

	if ctx.NodeResults != nil {
		env["node"] = ctx.NodeResults
	}
	if ctx.Variables != nil {
		env["variables"] = ctx.Variables
		for k, v := range ctx.Variables {
			if k != "node" && k != "variables" && k != "context" {
				env[k] = v
			}
		}
	}
	if ctx.ContextVars != nil {
		env["context"] = ctx.ContextVars
	}

	return env
}

func addBuiltinFunctions(env map[string]interface{}) {
	env["contains"] = func(s, substr string) bool { return strings.Contains(s, substr) }
	env["startsWith"] = func(s, prefix string) bool { return strings.HasPrefix(s, prefix) }
	env["endsWith"] = func(s, suffix string) bool { return strings.HasSuffix(s, suffix) }
	env["upper"] = strings.ToUpper
	env["lower"] = strings.ToLower
	env["trim"] = strings.TrimSpace
	env["split"] = strings.Split
	env["replace"] = strings.ReplaceAll
	env["join"] = func(arr []interface{}, sep string) string {
		strArr := make([]string, len(arr))
		for i, v := range arr {
			strArr[i] = fmt.Sprintf("%v", v)
		}
		return strings.Join(strArr, sep)
	}

	env["pow"] = math.Pow
	env["sqrt"] = math.Sqrt

	env["reverse"] = func(arr []interface{}) []interface{} {
		result := make([]interface{}, len(arr))
		for i, v := range arr {
			result[len(arr)-1-i] = v
		}
		return result
	}
	env["unique"] = func(arr []interface{}) []interface{} {
		seen := make(map[string]bool)
		result := make([]interface{}, 0)
		for _, item := range arr {
			key := fmt.Sprintf("%v", item)
			if !seen[key] {
				seen[key] = true
				result = append(result, item)
			}
		}
		return result
	}

	env["sum"] = func(args ...interface{}) float64 {
		return reduceNumeric(args, 0, func(acc, v float64) float64 { return acc + v })
	}
	env["avg"] = func(args ...interface{}) float64 {
		vals := flattenNumeric(args)
		if len(vals) == 0 {
			return 0
		}
		total := 0.0
		for _, v := range vals {
			total += v
		}
		return total / float64(len(vals))
	}
	env["now"] = time.Now
	env["isNull"] = func(v interface{}) bool { return v == nil }
	env["coalesce"] = func(args ...interface{}) interface{} {
		for _, arg := range args {
			if arg != nil {
				return arg
			}
		}
		return nil
	}
}

func flattenNumeric(args []interface{}) []float64 {
	if len(args) == 1 {
		if arr, ok := args[0].([]interface{}); ok {
			out := make([]float64, 0, len(arr))
			for _, v := range arr {
				if n, ok := toFloat64(v); ok {
					out = append(out, n)
				}
			}
			return out
		}
	}
	out := make([]float64, 0, len(args))
	for _, v := range args {
		if n, ok := toFloat64(v); ok {
			out = append(out, n)
		}
	}
	return out
}

func reduceNumeric(args []interface{}, init float64, f func(acc, v float64) float64) float64 {
	acc := init
	for _, v := range flattenNumeric(args) {
		acc = f(acc, v)
	}
	return acc
}

func toFloat64(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	}
	return 0, false
}
