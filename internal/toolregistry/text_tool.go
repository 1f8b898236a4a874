package toolregistry

import (
	"context"
	"fmt"
	"strings"

	"github.com/wovenflow/runtime/internal/dispatch"
)

// TextTool performs small string transforms: upper, lower, trim, split,
// replace, length.
type TextTool struct{}

func (t *TextTool) ID() string          { return "text" }
func (t *TextTool) DisplayName() string { return "Text Utilities" }
func (t *TextTool) Description() string {
	return "Applies a named string transform to a text value."
}
func (t *TextTool) Category() string { return "data" }

func (t *TextTool) Schema() string {
	return `{
		"type": "object",
		"properties": {
			"op": {"type": "string", "enum": ["upper", "lower", "trim", "split", "replace", "length"]},
			"value": {"type": "string"},
			"separator": {"type": "string"},
			"old": {"type": "string"},
			"new": {"type": "string"}
		},
		"required": ["op", "value"]
	}`
}

func (t *TextTool) Invoke(ctx context.Context, input map[string]interface{}, ec dispatch.ExecutionContext) (interface{}, error) {
	op, _ := input["op"].(string)
	value, _ := input["value"].(string)

	switch op {
	case "upper":
		return strings.ToUpper(value), nil
	case "lower":
		return strings.ToLower(value), nil
	case "trim":
		return strings.TrimSpace(value), nil
	case "length":
		return len(value), nil
	case "split":
		sep, _ := input["separator"].(string)
		if sep == "" {
			sep = " "
		}
		parts := strings.Split(value, sep)
		out := make([]interface{}, len(parts))
		for i, p := range parts {
			out[i] = p
		}
		return out, nil
	case "replace":
		old, _ := input["old"].(string)
		new, _ := input["new"].(string)
		return strings.ReplaceAll(value, old, new), nil
	default:
		return nil, fmt.Errorf("text tool: unknown op %q", op)
	}
}
