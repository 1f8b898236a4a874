package toolregistry

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/wovenflow/runtime/internal/dispatch"
)

const defaultPythonTimeout = 10 * time.Second

// pythonWrapperTemplate is the wrapper script PythonTool writes around a
// user's source: it reads the tool's input as a JSON document on standard
// input, runs the user source at module scope, and emits whatever the
// source left bound to `result` between the literal frame markers on
// standard output. A source that never sets `result` yields a null
// result rather than a NameError.
const pythonWrapperTemplate = `import json
import sys

input = json.load(sys.stdin)

%s

try:
    result
except NameError:
    result = None

print(%s)
print(json.dumps(result))
print(%s)
`

// PythonTool runs a Python source string in an isolated subprocess. It
// backs both the "python" built-in tool and the code node's python
// language (internal/dispatch's CodeExecutor delegates to whichever tool
// is registered under pythonToolID).
type PythonTool struct {
	interpreter string
	timeout     time.Duration
}

// NewPythonTool builds a PythonTool that shells out to python3.
func NewPythonTool() *PythonTool {
	return &PythonTool{interpreter: "python3", timeout: defaultPythonTimeout}
}

func (t *PythonTool) ID() string          { return "python" }
func (t *PythonTool) DisplayName() string { return "Python" }
func (t *PythonTool) Description() string {
	return "Runs a Python source string in an isolated subprocess and returns its result binding."
}
func (t *PythonTool) Category() string { return "execution" }

func (t *PythonTool) Schema() string {
	return `{
		"type": "object",
		"properties": {
			"source": {"type": "string"},
			"input": {}
		},
		"required": ["source"]
	}`
}

func (t *PythonTool) Invoke(ctx context.Context, input map[string]interface{}, ec dispatch.ExecutionContext) (interface{}, error) {
	source, _ := input["source"].(string)
	if source == "" {
		return nil, fmt.Errorf("python tool: missing source")
	}

	script, err := writePythonWrapper(source)
	if err != nil {
		return nil, err
	}
	defer os.Remove(script)

	interpreter := t.interpreter
	if interpreter == "" {
		interpreter = "python3"
	}
	timeout := t.timeout
	if timeout <= 0 {
		timeout = defaultPythonTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return runFramedSubprocess(runCtx, interpreter, []string{script}, input["input"])
}

// writePythonWrapper renders pythonWrapperTemplate around source into a
// fresh temp file and returns its path.
func writePythonWrapper(source string) (string, error) {
	f, err := os.CreateTemp("", "wovenflow-py-*.py")
	if err != nil {
		return "", fmt.Errorf("%w: creating wrapper script: %v", ErrSubprocessFailed, err)
	}
	defer f.Close()

	script := fmt.Sprintf(pythonWrapperTemplate, source, strconv.Quote(resultFrameStart), strconv.Quote(resultFrameEnd))
	if _, err := f.WriteString(script); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("%w: writing wrapper script: %v", ErrSubprocessFailed, err)
	}
	return f.Name(), nil
}
