// Package toolregistry implements the Tool Registry: a process-startup-
// populated, read-only-during-execution mapping from tool id to a
// ToolHandle. Ten built-in tools are registered: browser, scraper, http,
// file, python, code-runner, github, shell, json, text.
//
// The registry is a generalization of internal/dispatch's executor
// Registry from node-type keys to tool-id keys — same Strategy-pattern
// shape, different key space. Declared schemas validate invoke input
// through xeipuuv/gojsonschema.
//
// The three process-isolated tools (shell, python, code-runner) each run
// their payload as a real OS subprocess instead of an in-process
// os/exec.Command call done inline in the dispatcher. python and
// code-runner additionally speak one protocol over that subprocess's
// stdio: the tool's input travels in as a JSON document on standard
// input, and the result comes back framed between literal markers on
// standard output (subprocess.go's runFramedSubprocess) — PythonTool
// generates the wrapper script around arbitrary Python source itself;
// CodeRunnerTool runs the source file directly and leaves the read/frame
// side of the contract to the source. shell has no result binding to
// frame, so it just captures stdout/stderr/exit code directly.
package toolregistry
