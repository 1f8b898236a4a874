package expr

import "errors"

// Sentinel errors for expression evaluation.
var (
	ErrSyntaxError       = errors.New("expression syntax error")
	ErrEvaluationFailed  = errors.New("expression evaluation failed")
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrTypeMismatch      = errors.New("type mismatch in expression")
	ErrTimeout           = errors.New("expression evaluation timed out")
)
