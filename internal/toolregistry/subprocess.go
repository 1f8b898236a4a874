package toolregistry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

// resultFrameStart and resultFrameEnd are the literal markers a wrapper
// script prints around its captured result on standard output. They let
// the dispatcher recover the payload even when the script also wrote its
// own diagnostics to stdout before or after it.
const (
	resultFrameStart = "===WOVENFLOW_RESULT_START==="
	resultFrameEnd   = "===WOVENFLOW_RESULT_END==="
)

// runFramedSubprocess launches name with args, writes payload to its
// standard input as a JSON document, and parses the value captured between
// resultFrameStart/resultFrameEnd out of its standard output. This is the
// protocol the python and code-runner tools share (shell captures its
// output directly): no RPC
// handshake, just a subprocess, a JSON document on stdin, and a framed
// JSON document on stdout. Each invocation is a fresh process: no state
// survives between tool calls.
func runFramedSubprocess(ctx context.Context, name string, args []string, payload interface{}) (interface{}, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding subprocess payload: %w", err)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = bytes.NewReader(payloadBytes)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %v: %s", ErrSubprocessFailed, err, strings.TrimSpace(stderr.String()))
	}

	return parseFramedResult(stdout.String())
}

// parseFramedResult extracts and decodes the JSON payload a wrapper script
// wrote between the literal frame markers.
func parseFramedResult(out string) (interface{}, error) {
	start := strings.Index(out, resultFrameStart)
	end := strings.Index(out, resultFrameEnd)
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("%w: no result frame in subprocess output", ErrSubprocessFailed)
	}
	captured := strings.TrimSpace(out[start+len(resultFrameStart) : end])
	if captured == "" {
		return nil, nil
	}

	var result interface{}
	if err := json.Unmarshal([]byte(captured), &result); err != nil {
		return nil, fmt.Errorf("decoding subprocess result: %w", err)
	}
	return result, nil
}
