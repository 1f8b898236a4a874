package toolregistry

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/wovenflow/runtime/internal/dispatch"
)

// Registry holds registered tools keyed by id (NewDefaultRegistry fills it
// with the ten built-ins). It satisfies dispatch.ToolInvoker, so
// internal/bootstrap hands a *Registry straight to
// dispatch.NewDefaultRegistry.
type Registry struct {
	tools map[string]ToolHandle
	mu    sync.RWMutex
}

// NewRegistry returns an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]ToolHandle)}
}

// NewDefaultRegistry returns a Registry with the ten built-in tools
// registered: browser, scraper, http, file, python, code-runner, github,
// shell, json, text.
func NewDefaultRegistry(httpTool *HTTPTool, fileRoot string) *Registry {
	r := NewRegistry()
	r.MustRegister(&BrowserTool{client: httpTool.client})
	r.MustRegister(&ScraperTool{client: httpTool.client})
	r.MustRegister(httpTool)
	r.MustRegister(NewFileTool(fileRoot))
	r.MustRegister(NewPythonTool())
	r.MustRegister(NewCodeRunnerTool())
	r.MustRegister(&GitHubTool{client: httpTool.client})
	r.MustRegister(NewShellTool())
	r.MustRegister(&JSONTool{})
	r.MustRegister(&TextTool{})
	return r
}

// Register adds a tool to the registry. Returns an error if a tool with
// the same id is already registered.
func (r *Registry) Register(tool ToolHandle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := tool.ID()
	if _, exists := r.tools[id]; exists {
		return fmt.Errorf("%w: %s", ErrToolExists, id)
	}
	r.tools[id] = tool
	return nil
}

// MustRegister registers a tool and panics on error. Used during process
// startup where registration failure is a programming error.
func (r *Registry) MustRegister(tool ToolHandle) {
	if err := r.Register(tool); err != nil {
		panic(err)
	}
}

// Get returns the tool registered for id, or ErrToolNotFound.
func (r *Registry) Get(id string) (ToolHandle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, exists := r.tools[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, id)
	}
	return tool, nil
}

// List returns every registered tool id.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.tools))
	for id := range r.tools {
		ids = append(ids, id)
	}
	return ids
}

// Invoke looks up toolID, validates toolConfig against its declared
// schema (when one is set), and runs the tool. It satisfies
// dispatch.ToolInvoker; the gathered node input arrives pre-merged into
// toolConfig under "input" by the caller (internal/dispatch's tool and
// sensor executors).
func (r *Registry) Invoke(ctx context.Context, toolID string, input interface{}, toolConfig map[string]interface{}, ec dispatch.ExecutionContext) (interface{}, error) {
	tool, err := r.Get(toolID)
	if err != nil {
		return nil, err
	}

	if schema := tool.Schema(); schema != "" {
		if err := validateAgainstSchema(schema, toolConfig); err != nil {
			return nil, fmt.Errorf("tool %q: %w: %v", toolID, ErrSchemaValidation, err)
		}
	}

	return tool.Invoke(ctx, toolConfig, ec)
}

func validateAgainstSchema(schema string, input map[string]interface{}) error {
	inputBytes, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("serializing input: %w", err)
	}

	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(inputBytes)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("evaluating schema: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%v", msgs)
}
