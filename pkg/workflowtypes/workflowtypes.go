// Package workflowtypes re-exports the workflow data model for SDK
// consumers that need to build or inspect a Workflow without importing
// internal/schema directly. It carries no behavior of its own — every
// type here is an alias, and every constant and constructor a forward.
package workflowtypes

import "github.com/wovenflow/runtime/internal/schema"

type (
	NodeType        = schema.NodeType
	Node            = schema.Node
	Edge            = schema.Edge
	Position        = schema.Position
	Workflow        = schema.Workflow
	Execution       = schema.Execution
	ExecutionStatus = schema.ExecutionStatus
	NodeState       = schema.NodeState
	NodeStatus      = schema.NodeStatus
	LogLine         = schema.LogLine
	LogSeverity     = schema.LogSeverity

	NodeDataInterface = schema.NodeDataInterface
	InputData         = schema.InputData
	OutputData        = schema.OutputData
	AgentData         = schema.AgentData
	ToolData          = schema.ToolData
	ConditionData     = schema.ConditionData
	LoopData          = schema.LoopData
	ParallelData      = schema.ParallelData
	MergeData         = schema.MergeData
	TransformData     = schema.TransformData
	PromptData        = schema.PromptData
	CodeData          = schema.CodeData
	HTTPData          = schema.HTTPData
	SensorData        = schema.SensorData
)

const (
	NodeTypeInput     = schema.NodeTypeInput
	NodeTypeOutput    = schema.NodeTypeOutput
	NodeTypeAgent     = schema.NodeTypeAgent
	NodeTypeTool      = schema.NodeTypeTool
	NodeTypeCondition = schema.NodeTypeCondition
	NodeTypeLoop      = schema.NodeTypeLoop
	NodeTypeParallel  = schema.NodeTypeParallel
	NodeTypeMerge     = schema.NodeTypeMerge
	NodeTypeTransform = schema.NodeTypeTransform
	NodeTypePrompt    = schema.NodeTypePrompt
	NodeTypeCode      = schema.NodeTypeCode
	NodeTypeHTTP      = schema.NodeTypeHTTP
	NodeTypeSensor    = schema.NodeTypeSensor

	ExecutionPending   = schema.ExecutionPending
	ExecutionRunning   = schema.ExecutionRunning
	ExecutionCompleted = schema.ExecutionCompleted
	ExecutionError     = schema.ExecutionError
	ExecutionStopped   = schema.ExecutionStopped
)

// AsInputData, AsOutputData, and the rest of the As*Data family narrow a
// decoded NodeDataInterface back to its concrete kind, forwarding to
// internal/schema so SDK consumers don't need their own type switch over
// the thirteen node kinds.
var (
	AsInputData     = schema.AsInputData
	AsOutputData    = schema.AsOutputData
	AsAgentData     = schema.AsAgentData
	AsToolData      = schema.AsToolData
	AsConditionData = schema.AsConditionData
	AsLoopData      = schema.AsLoopData
	AsParallelData  = schema.AsParallelData
	AsMergeData     = schema.AsMergeData
	AsTransformData = schema.AsTransformData
	AsPromptData    = schema.AsPromptData
	AsCodeData      = schema.AsCodeData
	AsHTTPData      = schema.AsHTTPData
	AsSensorData    = schema.AsSensorData
)
