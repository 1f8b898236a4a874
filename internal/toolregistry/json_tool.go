package toolregistry

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wovenflow/runtime/internal/dispatch"
)

// JSONTool performs small, self-contained JSON operations: parsing a
// string into a value, stringifying a value, and reading a dotted path
// out of a decoded document.
type JSONTool struct{}

func (t *JSONTool) ID() string          { return "json" }
func (t *JSONTool) DisplayName() string { return "JSON Utilities" }
func (t *JSONTool) Description() string {
	return "Parses, stringifies, and path-reads JSON values."
}
func (t *JSONTool) Category() string { return "data" }

func (t *JSONTool) Schema() string {
	return `{
		"type": "object",
		"properties": {
			"op": {"type": "string", "enum": ["parse", "stringify", "get"]},
			"value": {},
			"path": {"type": "string"}
		},
		"required": ["op"]
	}`
}

func (t *JSONTool) Invoke(ctx context.Context, input map[string]interface{}, ec dispatch.ExecutionContext) (interface{}, error) {
	op, _ := input["op"].(string)

	switch op {
	case "parse":
		s, _ := input["value"].(string)
		var parsed interface{}
		if err := json.Unmarshal([]byte(s), &parsed); err != nil {
			return nil, fmt.Errorf("json tool: parse: %w", err)
		}
		return parsed, nil

	case "stringify":
		b, err := json.Marshal(input["value"])
		if err != nil {
			return nil, fmt.Errorf("json tool: stringify: %w", err)
		}
		return string(b), nil

	case "get":
		path, _ := input["path"].(string)
		return jsonPathGet(input["value"], path)

	default:
		return nil, fmt.Errorf("json tool: unknown op %q", op)
	}
}

// jsonPathGet walks a dotted path ("a.b.c") through nested
// map[string]interface{} values produced by json.Unmarshal.
func jsonPathGet(value interface{}, path string) (interface{}, error) {
	if path == "" {
		return value, nil
	}
	current := value
	for _, segment := range strings.Split(path, ".") {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("json tool: get: %q is not an object at segment %q", path, segment)
		}
		val, ok := m[segment]
		if !ok {
			return nil, fmt.Errorf("json tool: get: field %q not found", segment)
		}
		current = val
	}
	return current, nil
}
