package toolregistry

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wovenflow/runtime/internal/dispatch"
)

// FileTool reads, writes, and lists files under a fixed root directory.
// Every path is resolved relative to root and rejected if it escapes it,
// the same containment idea internal/httpclient's SSRF guard applies to
// outbound URLs.
type FileTool struct {
	root string
}

// NewFileTool scopes file tool operations to root.
func NewFileTool(root string) *FileTool {
	return &FileTool{root: root}
}

func (t *FileTool) ID() string          { return "file" }
func (t *FileTool) DisplayName() string { return "File I/O" }
func (t *FileTool) Description() string {
	return "Reads, writes, and lists files within a fixed workspace directory."
}
func (t *FileTool) Category() string { return "filesystem" }

func (t *FileTool) Schema() string {
	return `{
		"type": "object",
		"properties": {
			"op": {"type": "string", "enum": ["read", "write", "list"]},
			"path": {"type": "string"},
			"content": {"type": "string"}
		},
		"required": ["op", "path"]
	}`
}

func (t *FileTool) resolve(path string) (string, error) {
	cleaned := filepath.Join(t.root, filepath.Clean("/"+path))
	if !strings.HasPrefix(cleaned, filepath.Clean(t.root)+string(os.PathSeparator)) && cleaned != filepath.Clean(t.root) {
		return "", fmt.Errorf("file tool: path %q escapes workspace root", path)
	}
	return cleaned, nil
}

func (t *FileTool) Invoke(ctx context.Context, input map[string]interface{}, ec dispatch.ExecutionContext) (interface{}, error) {
	op, _ := input["op"].(string)
	path, _ := input["path"].(string)
	resolved, err := t.resolve(path)
	if err != nil {
		return nil, err
	}

	switch op {
	case "read":
		data, err := os.ReadFile(resolved)
		if err != nil {
			return nil, fmt.Errorf("file tool: reading %q: %w", path, err)
		}
		return string(data), nil

	case "write":
		content, _ := input["content"].(string)
		if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
			return nil, fmt.Errorf("file tool: creating parent directories for %q: %w", path, err)
		}
		if err := os.WriteFile(resolved, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("file tool: writing %q: %w", path, err)
		}
		return map[string]interface{}{"written": len(content)}, nil

	case "list":
		entries, err := os.ReadDir(resolved)
		if err != nil {
			return nil, fmt.Errorf("file tool: listing %q: %w", path, err)
		}
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.Name())
		}
		return names, nil

	default:
		return nil, fmt.Errorf("file tool: unknown op %q", op)
	}
}
