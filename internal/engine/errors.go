package engine

import "errors"

var (
	// ErrUnknownWorkflow means executeWorkflow was called with a workflow
	// id the Store has no record of.
	ErrUnknownWorkflow = errors.New("unknown workflow")

	// ErrUnknownExecution means StopExecution named an
	// execution id that isn't in the active-executions map, either because
	// it never existed or because it already reached a terminal status.
	ErrUnknownExecution = errors.New("unknown execution")
)
