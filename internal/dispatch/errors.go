package dispatch

import "errors"

// Sentinel errors for node dispatch.
var (
	ErrNoExecutorRegistered = errors.New("no executor registered for node type")
	ErrExecutorExists       = errors.New("executor already registered for node type")

	ErrMissingRequiredInput = errors.New("missing required input")
	ErrInputTypeMismatch    = errors.New("input type mismatch")

	ErrMissingToolID = errors.New("tool node missing toolId")
	ErrUnknownTool   = errors.New("unknown tool id")

	ErrMaxLoopIterations = errors.New("maximum loop iterations exceeded")

	ErrHTTPRequestFailed = errors.New("HTTP request failed")
	ErrResponseTooLarge  = errors.New("response body too large")
)
