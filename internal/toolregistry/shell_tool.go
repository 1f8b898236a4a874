package toolregistry

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/wovenflow/runtime/internal/dispatch"
)

const defaultShellTimeout = 10 * time.Second

// ShellTool runs a command with its arguments in an isolated subprocess;
// the command is executed directly, not parsed by a shell (pass "sh" and
// "-c" for shell syntax). Arbitrary
// command input is the highest-risk built-in tool; running it as a real OS
// process rather than in this process at least keeps a runaway or hostile
// command from sharing this process's file descriptors, environment, or
// address space, though it is not a sandbox (it inherits the runtime's own
// permissions).
type ShellTool struct {
	timeout time.Duration
}

// NewShellTool builds a ShellTool with the default per-invocation timeout.
func NewShellTool() *ShellTool {
	return &ShellTool{timeout: defaultShellTimeout}
}

func (t *ShellTool) ID() string          { return "shell" }
func (t *ShellTool) DisplayName() string { return "Shell Command" }
func (t *ShellTool) Description() string {
	return "Runs a command with its arguments in an isolated subprocess."
}
func (t *ShellTool) Category() string { return "execution" }

func (t *ShellTool) Schema() string {
	return `{
		"type": "object",
		"properties": {
			"command": {"type": "string"},
			"args": {"type": "array", "items": {"type": "string"}},
			"timeoutSeconds": {"type": "integer", "minimum": 1}
		},
		"required": ["command"]
	}`
}

func (t *ShellTool) Invoke(ctx context.Context, input map[string]interface{}, ec dispatch.ExecutionContext) (interface{}, error) {
	command, _ := input["command"].(string)
	if command == "" {
		return nil, fmt.Errorf("shell tool: missing command")
	}
	var args []string
	if rawArgs, ok := input["args"].([]interface{}); ok {
		for _, a := range rawArgs {
			if s, ok := a.(string); ok {
				args = append(args, s)
			}
		}
	}

	timeout := t.timeout
	if timeout <= 0 {
		timeout = defaultShellTimeout
	}
	if secs, ok := input["timeoutSeconds"].(float64); ok && secs > 0 {
		timeout = time.Duration(secs) * time.Second
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	exitCode := 0
	if exitErr, ok := runErr.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	} else if runErr != nil {
		return nil, fmt.Errorf("%w: %v: %s", ErrSubprocessFailed, runErr, strings.TrimSpace(stderr.String()))
	}

	return map[string]interface{}{
		"stdout":   stdout.String(),
		"stderr":   stderr.String(),
		"exitCode": exitCode,
	}, nil
}
