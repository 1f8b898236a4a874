package schema

import (
	"encoding/json"
	"fmt"
)

// UnmarshalJSON implements custom JSON unmarshaling for Node with type-safe,
// kind-specific decoding of the Data field.
func (n *Node) UnmarshalJSON(data []byte) error {
	type NodeTemp struct {
		ID       string          `json:"id"`
		Type     NodeType        `json:"type"`
		Label    string          `json:"label,omitempty"`
		Position *Position       `json:"position,omitempty"`
		Data     json.RawMessage `json:"data"`
	}

	var temp NodeTemp
	if err := json.Unmarshal(data, &temp); err != nil {
		return fmt.Errorf("failed to unmarshal node: %w", err)
	}

	n.ID = temp.ID
	n.Type = temp.Type
	n.Label = temp.Label
	n.Position = temp.Position

	if len(temp.Data) == 0 || string(temp.Data) == "null" {
		return nil
	}

	nodeData, err := unmarshalNodeData(temp.Type, temp.Data)
	if err != nil {
		return fmt.Errorf("failed to unmarshal data for node %s (type %s): %w", n.ID, n.Type, err)
	}

	n.Data = nodeData
	return nil
}

// unmarshalNodeData decodes the JSON data payload into the concrete type
// matching nodeType. The closed node type set means this switch has no
// open-ended default branch: an unrecognized type is a validation error,
// never a silently-accepted generic payload.
func unmarshalNodeData(nodeType NodeType, data json.RawMessage) (NodeDataInterface, error) {
	switch nodeType {
	case NodeTypeInput:
		var d InputData
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, d.Validate()

	case NodeTypeOutput:
		var d OutputData
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, d.Validate()

	case NodeTypeAgent:
		var d AgentData
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, d.Validate()

	case NodeTypeTool:
		var d ToolData
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, d.Validate()

	case NodeTypeCondition:
		var d ConditionData
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, d.Validate()

	case NodeTypeLoop:
		var d LoopData
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, d.Validate()

	case NodeTypeParallel:
		var d ParallelData
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, d.Validate()

	case NodeTypeMerge:
		var d MergeData
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, d.Validate()

	case NodeTypeTransform:
		var d TransformData
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, d.Validate()

	case NodeTypePrompt:
		var d PromptData
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, d.Validate()

	case NodeTypeCode:
		var d CodeData
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, d.Validate()

	case NodeTypeHTTP:
		var d HTTPData
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, d.Validate()

	case NodeTypeSensor:
		var d SensorData
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, d.Validate()

	default:
		return nil, ErrUnknownNodeType(nodeType)
	}
}
