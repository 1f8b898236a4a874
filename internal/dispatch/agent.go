package dispatch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wovenflow/runtime/internal/schema"
)

// AgentExecutor executes agent nodes: it serializes the gathered input to
// JSON for the user prompt and invokes the Model Gateway with the node's
// configured provider, model, system prompt, temperature, and max tokens.
type AgentExecutor struct {
	models ModelCaller
}

func (e *AgentExecutor) Execute(ctx context.Context, ec ExecutionContext, node schema.Node, input interface{}) (interface{}, error) {
	data, err := schema.AsAgentData(node.Data)
	if err != nil {
		return nil, err
	}

	userPrompt, err := stringifyForPrompt(input)
	if err != nil {
		return nil, fmt.Errorf("agent node %q: serializing input: %w", node.ID, err)
	}
	if data.PromptTpl != "" {
		userPrompt = renderTemplate(data.PromptTpl, input, nil)
	}

	temperature := 1.0
	if data.Temperature != nil {
		temperature = *data.Temperature
	}
	maxTokens := data.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	completion, err := e.models.Chat(ctx, data.Provider, data.Model, data.SystemPrompt, userPrompt, temperature, maxTokens)
	if err != nil {
		return nil, fmt.Errorf("agent node %q: %w", node.ID, err)
	}
	return completion, nil
}

func (e *AgentExecutor) NodeType() schema.NodeType { return schema.NodeTypeAgent }

func (e *AgentExecutor) Validate(node schema.Node) error {
	_, err := schema.AsAgentData(node.Data)
	return err
}

// stringifyForPrompt renders a gathered input value as text suitable for a
// model prompt: strings pass through unquoted, everything else is
// marshaled to JSON.
func stringifyForPrompt(input interface{}) (string, error) {
	if s, ok := input.(string); ok {
		return s, nil
	}
	b, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
