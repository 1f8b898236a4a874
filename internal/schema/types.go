// Package schema provides shared type definitions for the workflow runtime.
// All core data structures used across packages are defined here to avoid
// circular dependencies between the dag, dispatch, runner, and store packages.
package schema

import (
	"context"
	"time"

	"github.com/wovenflow/runtime/internal/config"
)

// ============================================================================
// Context Keys
// ============================================================================

type contextKey string

const (
	// ContextKeyExecutionID is the context key for the unique execution ID
	ContextKeyExecutionID contextKey = "execution_id"

	// ContextKeyWorkflowID is the context key for the workflow ID
	ContextKeyWorkflowID contextKey = "workflow_id"
)

// GetExecutionID extracts the execution ID from context.
// Returns empty string if not found in context.
func GetExecutionID(ctx context.Context) string {
	if id, ok := ctx.Value(ContextKeyExecutionID).(string); ok {
		return id
	}
	return ""
}

// GetWorkflowID extracts the workflow ID from context.
// Returns empty string if not found in context.
func GetWorkflowID(ctx context.Context) string {
	if id, ok := ctx.Value(ContextKeyWorkflowID).(string); ok {
		return id
	}
	return ""
}

// ============================================================================
// Node Kinds
// ============================================================================

// NodeType is the closed set of node kinds the runtime understands.
// This set is closed by design: the dispatcher has no fallback path for an
// unrecognized type, unlike the plugin-friendly registries some workflow
// engines use for an open set of node kinds.
type NodeType string

const (
	NodeTypeInput     NodeType = "input"
	NodeTypeOutput    NodeType = "output"
	NodeTypeAgent     NodeType = "agent"
	NodeTypeTool      NodeType = "tool"
	NodeTypeCondition NodeType = "condition"
	NodeTypeLoop      NodeType = "loop"
	NodeTypeParallel  NodeType = "parallel"
	NodeTypeMerge     NodeType = "merge"
	NodeTypeTransform NodeType = "transform"
	NodeTypePrompt    NodeType = "prompt"
	NodeTypeCode      NodeType = "code"
	NodeTypeHTTP      NodeType = "http"
	NodeTypeSensor    NodeType = "sensor"
)

// AllNodeTypes lists the closed set in a stable order; IsValid checks
// membership against it.
var AllNodeTypes = []NodeType{
	NodeTypeInput, NodeTypeOutput, NodeTypeAgent, NodeTypeTool,
	NodeTypeCondition, NodeTypeLoop, NodeTypeParallel, NodeTypeMerge,
	NodeTypeTransform, NodeTypePrompt, NodeTypeCode, NodeTypeHTTP, NodeTypeSensor,
}

// IsValid reports whether t is a member of the closed node type set.
func (t NodeType) IsValid() bool {
	for _, k := range AllNodeTypes {
		if k == t {
			return true
		}
	}
	return false
}

// ============================================================================
// Core Data Structures
// ============================================================================

// Position is the layout hint carried on a node. The runtime never reads it;
// it exists purely so a round trip through the Store preserves it for the
// editor.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node represents a workflow node with type-safe, kind-specific data.
type Node struct {
	ID       string            `json:"id"`
	Type     NodeType          `json:"type"`
	Label    string            `json:"label,omitempty"`
	Position *Position         `json:"position,omitempty"`
	Data     NodeDataInterface `json:"data"`
}

// Edge represents a directed dependency between two nodes.
// Handles are advisory: the runtime treats every edge into a node as
// contributing one upstream value, keyed by the upstream node's Label
// (falling back to its ID) only when fan-in requires disambiguation — see
// Runner.gatherInput in internal/runner.
type Edge struct {
	ID            string  `json:"id"`
	Source        string  `json:"source"`
	Target        string  `json:"target"`
	SourceHandle  *string `json:"sourceHandle,omitempty"`
	TargetHandle  *string `json:"targetHandle,omitempty"`
	Label         *string `json:"label,omitempty"`
}

// Workflow is a named, versionless persisted DAG.
type Workflow struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Nodes       []Node                 `json:"nodes"`
	Edges       []Edge                 `json:"edges"`
	Variables   map[string]interface{} `json:"variables,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// ExecutionStatus is the lifecycle status of an Execution.
type ExecutionStatus string

const (
	ExecutionPending   ExecutionStatus = "pending"
	ExecutionRunning   ExecutionStatus = "running"
	ExecutionCompleted ExecutionStatus = "completed"
	ExecutionError     ExecutionStatus = "error"
	ExecutionStopped   ExecutionStatus = "stopped"
)

// NodeStatus is the per-node lifecycle status within one Execution.
type NodeStatus string

const (
	NodePending   NodeStatus = "pending"
	NodeRunning   NodeStatus = "running"
	NodeCompleted NodeStatus = "completed"
	NodeError     NodeStatus = "error"
	NodeSkipped   NodeStatus = "skipped"
)

// NodeState is the per-node execution record within an Execution.
type NodeState struct {
	Status      NodeStatus  `json:"status"`
	StartedAt   *time.Time  `json:"startedAt,omitempty"`
	CompletedAt *time.Time  `json:"completedAt,omitempty"`
	Output      interface{} `json:"output,omitempty"`
	Error       string      `json:"error,omitempty"`
	RetryCount  int         `json:"retryCount,omitempty"`
}

// LogSeverity is the severity level of a LogLine.
type LogSeverity string

const (
	LogDebug LogSeverity = "debug"
	LogInfo  LogSeverity = "info"
	LogWarn  LogSeverity = "warn"
	LogError LogSeverity = "error"
)

// LogLine is one append-only entry in an Execution's log.
type LogLine struct {
	Timestamp time.Time              `json:"timestamp"`
	Severity  LogSeverity            `json:"severity"`
	NodeID    string                 `json:"nodeId,omitempty"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// Execution is one run of a Workflow to terminal status.
type Execution struct {
	ID          string                `json:"id"`
	WorkflowID  string                `json:"workflowId"`
	Status      ExecutionStatus       `json:"status"`
	Input       interface{}           `json:"input"`
	Output      interface{}           `json:"output,omitempty"`
	Error       string                `json:"error,omitempty"`
	StartedAt   time.Time             `json:"startedAt"`
	CompletedAt *time.Time            `json:"completedAt,omitempty"`
	NodeStates  map[string]*NodeState `json:"nodeStates"`
	Logs        []LogLine             `json:"logs"`
}

// Config is a type alias for backward compatibility with executors that were
// written against the flat teacher Config struct before it moved to its own
// package.
//
// Deprecated: use github.com/wovenflow/runtime/internal/config.Config directly.
type Config = config.Config
