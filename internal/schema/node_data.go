package schema

import (
	"encoding/json"
	"time"
)

// ============================================================================
// NodeData Interface - Type-safe node data
// ============================================================================

// NodeDataInterface is implemented by every per-kind data struct. It keeps
// the dispatcher from ever touching a bare map[string]interface{}: by the
// time a node reaches a NodeExecutor, its Data has already been decoded into
// a concrete type and validated.
type NodeDataInterface interface {
	// Validate checks if the node data is structurally sound.
	Validate() error
	// GetLabel returns the optional human label for the node.
	GetLabel() string
}

// ============================================================================
// Common Data - Shared fields across node types
// ============================================================================

// CommonData holds fields shared by every node kind's data struct.
type CommonData struct {
	Label *string `json:"label,omitempty"`
}

func (c CommonData) GetLabel() string {
	if c.Label != nil {
		return *c.Label
	}
	return ""
}

// ============================================================================
// input
// ============================================================================

// InputData declares an input node. The runner seeds every input node's
// output with the whole execution input record; Name is required by
// Validate but is not used to select a key from that record.
type InputData struct {
	CommonData
	Name     string      `json:"name"`
	Default  interface{} `json:"default,omitempty"`
	Required bool        `json:"required,omitempty"`
}

func (d InputData) Validate() error {
	if d.Name == "" {
		return ErrMissingRequiredField("name")
	}
	return nil
}

// ============================================================================
// output
// ============================================================================

// OutputData configures an output node. When a workflow has more than one
// output node, the runner keys each value by the node's label, falling
// back to its id; Name is not consulted for that key.
type OutputData struct {
	CommonData
	Name string `json:"name,omitempty"`
}

func (d OutputData) Validate() error {
	return nil
}

// ============================================================================
// agent
// ============================================================================

// AgentData configures a call through the model gateway, optionally with a
// bounded tool-use loop against the tool registry.
type AgentData struct {
	CommonData
	Provider     string   `json:"provider"`
	Model        string   `json:"model"`
	SystemPrompt string   `json:"systemPrompt,omitempty"`
	PromptTpl    string   `json:"prompt"`
	Tools        []string `json:"tools,omitempty"`
	MaxToolTurns int      `json:"maxToolTurns,omitempty"`
	Temperature  *float64 `json:"temperature,omitempty"`
	MaxTokens    int      `json:"maxTokens,omitempty"`
}

func (d AgentData) Validate() error {
	if d.Provider == "" {
		return ErrMissingRequiredField("provider")
	}
	if d.Model == "" {
		return ErrMissingRequiredField("model")
	}
	if d.PromptTpl == "" {
		return ErrMissingRequiredField("prompt")
	}
	if d.MaxToolTurns < 0 {
		return ErrInvalidFieldValue("maxToolTurns", d.MaxToolTurns, "must be non-negative")
	}
	return nil
}

// ============================================================================
// tool
// ============================================================================

// ToolData invokes a single registered tool by id with a templated argument
// map. Unlike agent, there is no model call and no turn loop: one
// invocation, one result.
type ToolData struct {
	CommonData
	ToolID string                 `json:"toolId"`
	Args   map[string]interface{} `json:"args,omitempty"`
}

func (d ToolData) Validate() error {
	if d.ToolID == "" {
		return ErrMissingRequiredField("toolId")
	}
	return nil
}

// ============================================================================
// condition
// ============================================================================

// ConditionData evaluates Expression in the sandboxed expression language;
// the node's output is the boolean result. The runner does not route on
// it: every downstream node receives that boolean, whatever the
// SourceHandle of its edge.
type ConditionData struct {
	CommonData
	Expression string `json:"expression"`
}

func (d ConditionData) Validate() error {
	if d.Expression == "" {
		return ErrMissingRequiredField("expression")
	}
	return nil
}

// ============================================================================
// loop
// ============================================================================

// LoopMode selects which of the three loop shapes a loop node runs.
type LoopMode string

const (
	LoopModeFor     LoopMode = "for"
	LoopModeForEach LoopMode = "forEach"
	LoopModeWhile   LoopMode = "while"
)

// LoopData configures a loop node, which produces a list of per-iteration
// items as one output value; it does not run a sub-body of nodes.
// MaxIterations bounds while mode only (itself capped by the config's
// MaxWhileIterations); for and forEach do not consult it.
type LoopData struct {
	CommonData
	Mode          LoopMode `json:"mode"`
	Count         *int     `json:"count,omitempty"`      // for
	Collection    string   `json:"collection,omitempty"` // forEach: expression producing an array
	Condition     string   `json:"condition,omitempty"`  // while: expression re-evaluated each pass
	MaxIterations int      `json:"maxIterations,omitempty"`
}

func (d LoopData) Validate() error {
	switch d.Mode {
	case LoopModeFor:
		if d.Count == nil {
			return ErrMissingRequiredField("count")
		}
	case LoopModeForEach:
		if d.Collection == "" {
			return ErrMissingRequiredField("collection")
		}
	case LoopModeWhile:
		if d.Condition == "" {
			return ErrMissingRequiredField("condition")
		}
	default:
		return ErrInvalidFieldValue("mode", d.Mode, "must be one of for, forEach, while")
	}
	if d.MaxIterations < 0 {
		return ErrInvalidFieldValue("maxIterations", d.MaxIterations, "must be non-negative")
	}
	return nil
}

// ============================================================================
// parallel
// ============================================================================

// ParallelData configures a parallel node, which passes its sequence input
// through unchanged; downstream concurrency comes from the runner's
// scheduler. MaxConcurrency is checked by Validate but is not used by the
// dispatcher or the runner.
type ParallelData struct {
	CommonData
	MaxConcurrency int `json:"maxConcurrency,omitempty"`
}

func (d ParallelData) Validate() error {
	if d.MaxConcurrency < 0 {
		return ErrInvalidFieldValue("maxConcurrency", d.MaxConcurrency, "must be non-negative")
	}
	return nil
}

// ============================================================================
// merge
// ============================================================================

// MergeStrategy selects how a merge node combines its gathered upstream
// values into one.
type MergeStrategy string

const (
	MergeStrategyList   MergeStrategy = "list"
	MergeStrategyObject MergeStrategy = "object"
	MergeStrategyFirst  MergeStrategy = "first"
	MergeStrategyLast   MergeStrategy = "last"
)

// FanInInput marks a node's gathered input as the product of genuine fan-in
// (multiple upstream edges), as opposed to a single upstream whose output
// happens to itself be a map. The runner's gather step is the only
// producer; a merge node's strategy reduction applies only to this type,
// never to a bare map[string]interface{}.
type FanInInput map[string]interface{}

// MergeData combines the values produced by a fan-in of upstream nodes.
type MergeData struct {
	CommonData
	Strategy MergeStrategy `json:"strategy"`
}

func (d MergeData) Validate() error {
	switch d.Strategy {
	case MergeStrategyList, MergeStrategyObject, MergeStrategyFirst, MergeStrategyLast:
		return nil
	case "":
		return ErrMissingRequiredField("strategy")
	default:
		return ErrInvalidFieldValue("strategy", d.Strategy, "must be one of list, object, first, last")
	}
}

// ============================================================================
// transform
// ============================================================================

// TransformData evaluates Expression against the gathered input and context
// variables, producing the node's output. This is the workhorse data-shaping
// node; Expression runs through the same sandboxed evaluator as condition
// and loop.
type TransformData struct {
	CommonData
	Expression string `json:"expression"`
}

func (d TransformData) Validate() error {
	if d.Expression == "" {
		return ErrMissingRequiredField("expression")
	}
	return nil
}

// ============================================================================
// prompt
// ============================================================================

// PromptData renders a template against gathered input without making any
// model call; it exists so an agent or code node downstream can consume a
// fully-interpolated string without embedding templating logic itself.
type PromptData struct {
	CommonData
	Template  string   `json:"template"`
	Variables []string `json:"variables,omitempty"`
}

func (d PromptData) Validate() error {
	if d.Template == "" {
		return ErrMissingRequiredField("template")
	}
	return nil
}

// ============================================================================
// code
// ============================================================================

// CodeLanguage is the closed set of languages a code node may declare.
type CodeLanguage string

const (
	CodeLanguagePython     CodeLanguage = "python"
	CodeLanguageJavaScript CodeLanguage = "javascript"
	CodeLanguageTypeScript CodeLanguage = "typescript"
)

// CodeData declares user source and its language. JS-family source runs
// through the sandboxed expression evaluator in an expression-subset mode;
// python source is handed to the python tool's process-isolated wrapper.
type CodeData struct {
	CommonData
	Language CodeLanguage  `json:"language"`
	Source   string        `json:"source"`
	Timeout  time.Duration `json:"timeout,omitempty"`
}

func (d CodeData) Validate() error {
	switch d.Language {
	case CodeLanguagePython, CodeLanguageJavaScript, CodeLanguageTypeScript:
	case "":
		return ErrMissingRequiredField("language")
	default:
		return ErrInvalidFieldValue("language", d.Language, "must be one of javascript, typescript, python")
	}
	if d.Source == "" {
		return ErrMissingRequiredField("source")
	}
	return nil
}

// ============================================================================
// http
// ============================================================================

// HTTPData issues one HTTP request. URL and Body support "{{name}}"
// interpolation against gathered input before the request is dispatched
// (see dispatch.HTTPExecutor); Headers are sent as given. The SSRF guard
// lives in internal/httpclient, whose Builder makes the clients of both
// this node and the http tool.
type HTTPData struct {
	CommonData
	Method        string            `json:"method"`
	URL           string            `json:"url"`
	Headers       map[string]string `json:"headers,omitempty"`
	Body          string            `json:"body,omitempty"`
	HTTPClientUID string            `json:"httpClientUid,omitempty"`
	Timeout       time.Duration     `json:"timeout,omitempty"`
}

func (d HTTPData) Validate() error {
	if d.URL == "" {
		return ErrMissingRequiredField("url")
	}
	if d.Method == "" {
		return ErrMissingRequiredField("method")
	}
	return nil
}

// ============================================================================
// sensor
// ============================================================================

// SensorData treats a sensor node as opaque: the dispatcher delegates to
// ToolID when one is configured, else passes its gathered input through
// unchanged. Expression/Interval/Timeout describe a poll-until-truthy
// shape for tools that support it, but the dispatcher itself does not
// interpret them.
type SensorData struct {
	CommonData
	ToolID     string        `json:"toolId,omitempty"`
	Expression string        `json:"expression,omitempty"`
	Interval   time.Duration `json:"interval,omitempty"`
	Timeout    time.Duration `json:"timeout,omitempty"`
}

func (d SensorData) Validate() error {
	if d.Interval > 0 && d.Timeout > 0 && d.Interval > d.Timeout {
		return ErrInvalidFieldValue("interval", d.Interval, "must not exceed timeout")
	}
	return nil
}

// ============================================================================
// Raw passthrough, used by tests that don't need a concrete kind.
// ============================================================================

// RawData wraps an undecoded JSON payload. The decoder never produces this
// type itself; it exists for tests that want to hold a node's data without
// committing to one of the closed kinds.
type RawData struct {
	CommonData
	Raw json.RawMessage `json:"-"`
}

func (d RawData) Validate() error {
	return nil
}
