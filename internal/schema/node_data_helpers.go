package schema

import "fmt"

// Type assertion helper functions for executors.
// These give each NodeExecutor a clean, typed accessor instead of a raw
// type switch against the NodeDataInterface it receives.

// AsInputData converts NodeDataInterface to InputData with type checking
func AsInputData(data NodeDataInterface) (*InputData, error) {
	if d, ok := data.(InputData); ok {
		return &d, nil
	}
	return nil, fmt.Errorf("expected InputData, got %T", data)
}

// AsOutputData converts NodeDataInterface to OutputData with type checking
func AsOutputData(data NodeDataInterface) (*OutputData, error) {
	if d, ok := data.(OutputData); ok {
		return &d, nil
	}
	return nil, fmt.Errorf("expected OutputData, got %T", data)
}

// AsAgentData converts NodeDataInterface to AgentData with type checking
func AsAgentData(data NodeDataInterface) (*AgentData, error) {
	if d, ok := data.(AgentData); ok {
		return &d, nil
	}
	return nil, fmt.Errorf("expected AgentData, got %T", data)
}

// AsToolData converts NodeDataInterface to ToolData with type checking
func AsToolData(data NodeDataInterface) (*ToolData, error) {
	if d, ok := data.(ToolData); ok {
		return &d, nil
	}
	return nil, fmt.Errorf("expected ToolData, got %T", data)
}

// AsConditionData converts NodeDataInterface to ConditionData with type checking
func AsConditionData(data NodeDataInterface) (*ConditionData, error) {
	if d, ok := data.(ConditionData); ok {
		return &d, nil
	}
	return nil, fmt.Errorf("expected ConditionData, got %T", data)
}

// AsLoopData converts NodeDataInterface to LoopData with type checking
func AsLoopData(data NodeDataInterface) (*LoopData, error) {
	if d, ok := data.(LoopData); ok {
		return &d, nil
	}
	return nil, fmt.Errorf("expected LoopData, got %T", data)
}

// AsParallelData converts NodeDataInterface to ParallelData with type checking
func AsParallelData(data NodeDataInterface) (*ParallelData, error) {
	if d, ok := data.(ParallelData); ok {
		return &d, nil
	}
	return nil, fmt.Errorf("expected ParallelData, got %T", data)
}

// AsMergeData converts NodeDataInterface to MergeData with type checking
func AsMergeData(data NodeDataInterface) (*MergeData, error) {
	if d, ok := data.(MergeData); ok {
		return &d, nil
	}
	return nil, fmt.Errorf("expected MergeData, got %T", data)
}

// AsTransformData converts NodeDataInterface to TransformData with type checking
func AsTransformData(data NodeDataInterface) (*TransformData, error) {
	if d, ok := data.(TransformData); ok {
		return &d, nil
	}
	return nil, fmt.Errorf("expected TransformData, got %T", data)
}

// AsPromptData converts NodeDataInterface to PromptData with type checking
func AsPromptData(data NodeDataInterface) (*PromptData, error) {
	if d, ok := data.(PromptData); ok {
		return &d, nil
	}
	return nil, fmt.Errorf("expected PromptData, got %T", data)
}

// AsCodeData converts NodeDataInterface to CodeData with type checking
func AsCodeData(data NodeDataInterface) (*CodeData, error) {
	if d, ok := data.(CodeData); ok {
		return &d, nil
	}
	return nil, fmt.Errorf("expected CodeData, got %T", data)
}

// AsHTTPData converts NodeDataInterface to HTTPData with type checking
func AsHTTPData(data NodeDataInterface) (*HTTPData, error) {
	if d, ok := data.(HTTPData); ok {
		return &d, nil
	}
	return nil, fmt.Errorf("expected HTTPData, got %T", data)
}

// AsSensorData converts NodeDataInterface to SensorData with type checking
func AsSensorData(data NodeDataInterface) (*SensorData, error) {
	if d, ok := data.(SensorData); ok {
		return &d, nil
	}
	return nil, fmt.Errorf("expected SensorData, got %T", data)
}
