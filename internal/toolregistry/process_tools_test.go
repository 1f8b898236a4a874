package toolregistry

import (
	"context"
	"os/exec"
	"testing"
)

// requireBinary skips the test when name isn't on PATH, the same pattern
// the pack uses for tests needing an external service (e.g. a live MySQL
// DSN) that a given CI box may not provide.
func requireBinary(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not on PATH: %v", name, err)
	}
}

func TestPythonTool_ExecutesSourceAndReturnsResult(t *testing.T) {
	requireBinary(t, "python3")

	tool := NewPythonTool()
	out, err := tool.Invoke(context.Background(), map[string]interface{}{
		"source": "result = input['x'] + input['y']",
		"input":  map[string]interface{}{"x": 2.0, "y": 3.0},
	}, &fakeExecutionContext{})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if out != 5.0 {
		t.Fatalf("Invoke() = %v, want 5", out)
	}
}

func TestPythonTool_MissingResultYieldsNil(t *testing.T) {
	requireBinary(t, "python3")

	tool := NewPythonTool()
	out, err := tool.Invoke(context.Background(), map[string]interface{}{
		"source": "x = 1",
	}, &fakeExecutionContext{})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if out != nil {
		t.Fatalf("Invoke() = %v, want nil", out)
	}
}

func TestPythonTool_SourceErrorFailsClosed(t *testing.T) {
	requireBinary(t, "python3")

	tool := NewPythonTool()
	_, err := tool.Invoke(context.Background(), map[string]interface{}{
		"source": "raise ValueError('boom')",
	}, &fakeExecutionContext{})
	if err == nil {
		t.Fatal("expected error from a raising source")
	}
}

func TestPythonTool_MissingSourceErrors(t *testing.T) {
	tool := NewPythonTool()
	_, err := tool.Invoke(context.Background(), map[string]interface{}{}, &fakeExecutionContext{})
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestShellTool_CapturesStdoutAndExitCode(t *testing.T) {
	requireBinary(t, "echo")

	tool := NewShellTool()
	out, err := tool.Invoke(context.Background(), map[string]interface{}{
		"command": "echo",
		"args":    []interface{}{"hi"},
	}, &fakeExecutionContext{})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	result, ok := out.(map[string]interface{})
	if !ok {
		t.Fatalf("Invoke() = %#v, want map", out)
	}
	if result["stdout"] != "hi\n" {
		t.Errorf("stdout = %q, want %q", result["stdout"], "hi\n")
	}
	if result["exitCode"] != 0 {
		t.Errorf("exitCode = %v, want 0", result["exitCode"])
	}
}

func TestShellTool_NonZeroExitIsNotAnError(t *testing.T) {
	requireBinary(t, "sh")

	tool := NewShellTool()
	out, err := tool.Invoke(context.Background(), map[string]interface{}{
		"command": "sh",
		"args":    []interface{}{"-c", "exit 7"},
	}, &fakeExecutionContext{})
	if err != nil {
		t.Fatalf("Invoke() error = %v, want nil (exit code belongs in the result)", err)
	}
	result, ok := out.(map[string]interface{})
	if !ok || result["exitCode"] != 7 {
		t.Fatalf("result = %#v, want exitCode 7", out)
	}
}

func TestShellTool_MissingCommandErrors(t *testing.T) {
	tool := NewShellTool()
	_, err := tool.Invoke(context.Background(), map[string]interface{}{}, &fakeExecutionContext{})
	if err == nil {
		t.Fatal("expected error for missing command")
	}
}

func TestCodeRunnerTool_UnknownLanguageErrors(t *testing.T) {
	tool := NewCodeRunnerTool()
	_, err := tool.Invoke(context.Background(), map[string]interface{}{
		"language": "cobol",
		"source":   "DISPLAY 'HI'.",
	}, &fakeExecutionContext{})
	if err == nil {
		t.Fatal("expected error for an unconfigured language")
	}
}

func TestCodeRunnerTool_MissingFieldsErrors(t *testing.T) {
	tool := NewCodeRunnerTool()
	_, err := tool.Invoke(context.Background(), map[string]interface{}{"language": "ruby"}, &fakeExecutionContext{})
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestCodeRunnerTool_ExecutesConfiguredLanguage(t *testing.T) {
	requireBinary(t, "ruby")

	tool := NewCodeRunnerTool()
	out, err := tool.Invoke(context.Background(), map[string]interface{}{
		"language": "ruby",
		"source": `require 'json'
data = JSON.parse(STDIN.read)
puts "===WOVENFLOW_RESULT_START==="
puts JSON.generate(data["x"] + data["y"])
puts "===WOVENFLOW_RESULT_END==="
`,
		"input": map[string]interface{}{"x": 4.0, "y": 5.0},
	}, &fakeExecutionContext{})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if out != 9.0 {
		t.Fatalf("Invoke() = %v, want 9", out)
	}
}
