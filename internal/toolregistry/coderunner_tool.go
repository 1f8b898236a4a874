package toolregistry

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/wovenflow/runtime/internal/dispatch"
)

const defaultCodeRunnerTimeout = 10 * time.Second

// defaultInterpreters maps a code-runner language tag to the interpreter
// binary invoked on the source file. A deployment that wants a language
// outside this set builds its own CodeRunnerTool with a wider map via
// NewCodeRunnerToolWithInterpreters.
var defaultInterpreters = map[string]string{
	"ruby":   "ruby",
	"perl":   "perl",
	"node":   "node",
	"php":    "php",
	"lua":    "lua",
	"python": "python3",
}

// CodeRunnerTool runs an arbitrary-language source snippet in an isolated
// subprocess, identified by a language tag this tool dispatches on. Where
// PythonTool writes its own stdin-read/result-print wrapper around
// whatever source it's given, CodeRunnerTool exists for languages that
// don't get that treatment: the source itself is written to a temp file
// as-is and run directly, so it must read its input as a JSON document on
// standard input and print its result framed between the same literal
// markers PythonTool's wrapper uses — the same subprocess protocol, just
// with the user's source responsible for the reading/framing side of it
// instead of a generated wrapper.
type CodeRunnerTool struct {
	interpreters map[string]string
	timeout      time.Duration
}

// NewCodeRunnerTool builds a CodeRunnerTool over defaultInterpreters.
func NewCodeRunnerTool() *CodeRunnerTool {
	return NewCodeRunnerToolWithInterpreters(defaultInterpreters)
}

// NewCodeRunnerToolWithInterpreters builds a CodeRunnerTool over a
// caller-supplied language -> interpreter-binary map, replacing the
// built-in defaults entirely.
func NewCodeRunnerToolWithInterpreters(interpreters map[string]string) *CodeRunnerTool {
	return &CodeRunnerTool{interpreters: interpreters, timeout: defaultCodeRunnerTimeout}
}

func (t *CodeRunnerTool) ID() string          { return "code-runner" }
func (t *CodeRunnerTool) DisplayName() string { return "Code Runner" }
func (t *CodeRunnerTool) Description() string {
	return "Runs a source snippet in an isolated subprocess for a configured language."
}
func (t *CodeRunnerTool) Category() string { return "execution" }

func (t *CodeRunnerTool) Schema() string {
	return `{
		"type": "object",
		"properties": {
			"language": {"type": "string"},
			"source": {"type": "string"},
			"input": {}
		},
		"required": ["language", "source"]
	}`
}

func (t *CodeRunnerTool) Invoke(ctx context.Context, input map[string]interface{}, ec dispatch.ExecutionContext) (interface{}, error) {
	language, _ := input["language"].(string)
	source, _ := input["source"].(string)
	if language == "" || source == "" {
		return nil, fmt.Errorf("code-runner tool: missing language or source")
	}

	interpreter, ok := t.interpreters[language]
	if !ok {
		return nil, fmt.Errorf("%w: no interpreter configured for language %q", ErrSubprocessFailed, language)
	}

	sourceFile, err := writeSourceFile(language, source)
	if err != nil {
		return nil, err
	}
	defer os.Remove(sourceFile)

	timeout := t.timeout
	if timeout <= 0 {
		timeout = defaultCodeRunnerTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return runFramedSubprocess(runCtx, interpreter, []string{sourceFile}, input["input"])
}

// writeSourceFile writes source to a fresh temp file suffixed by language,
// purely for readability in process listings/tracebacks; the interpreter
// doesn't care about the extension.
func writeSourceFile(language, source string) (string, error) {
	f, err := os.CreateTemp("", "wovenflow-coderunner-*."+language)
	if err != nil {
		return "", fmt.Errorf("%w: creating source file: %v", ErrSubprocessFailed, err)
	}
	defer f.Close()

	if _, err := f.WriteString(source); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("%w: writing source file: %v", ErrSubprocessFailed, err)
	}
	return f.Name(), nil
}
