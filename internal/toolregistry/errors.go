package toolregistry

import "errors"

// Sentinel errors for tool registration and invocation.
var (
	ErrToolNotFound     = errors.New("unknown tool id")
	ErrToolExists       = errors.New("tool already registered")
	ErrSchemaValidation = errors.New("tool input failed schema validation")
	ErrSubprocessFailed = errors.New("tool subprocess failed")
	ErrToolTimeout      = errors.New("tool invocation timed out")
)
