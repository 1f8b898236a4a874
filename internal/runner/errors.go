package runner

import "errors"

// Sentinel errors for the DAG Runner.
var (
	// ErrAlreadyRunning is the value Run panics with when it is called a
	// second time on the same Runner.
	ErrAlreadyRunning = errors.New("execution already started")

	// ErrNodeFailed wraps the first node error that aborted an execution.
	ErrNodeFailed = errors.New("node execution failed")

	// ErrExecutionStopped means the execution was aborted by Stop before
	// it reached a natural terminal state.
	ErrExecutionStopped = errors.New("execution stopped")
)
