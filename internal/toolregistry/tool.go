package toolregistry

import (
	"context"

	"github.com/wovenflow/runtime/internal/dispatch"
)

// ToolHandle is a single tool's declared capability and invocation entry
// point. Category is advisory metadata surfaced to editors/generators; it
// plays no role in dispatch.
type ToolHandle interface {
	ID() string
	DisplayName() string
	Description() string
	Category() string

	// Schema returns the tool's declared JSON Schema for its invoke input
	// (the merged toolConfig plus {input: ...} record), or "" if the tool
	// accepts any shape.
	Schema() string

	// Invoke runs the tool against input (the merged toolConfig, which
	// already carries the gathered node input under the "input" key for
	// tool-kind node dispatch), returning a value or an error.
	Invoke(ctx context.Context, input map[string]interface{}, ec dispatch.ExecutionContext) (interface{}, error)
}
