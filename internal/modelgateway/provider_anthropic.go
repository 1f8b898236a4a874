package modelgateway

import (
	"context"
	"errors"
	"fmt"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func chatAnthropic(ctx context.Context, apiKey, model, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error) {
	client := anthropicsdk.NewClient(option.WithAPIKey(apiKey))

	if maxTokens <= 0 {
		maxTokens = 4096
	}
	params := anthropicsdk.MessageNewParams{
		Model:       anthropicsdk.Model(model),
		MaxTokens:   int64(maxTokens),
		Temperature: anthropicsdk.Float(temperature),
		Messages: []anthropicsdk.MessageParam{
			anthropicsdk.NewUserMessage(anthropicsdk.NewTextBlock(userPrompt)),
		},
	}
	if systemPrompt != "" {
		params.System = []anthropicsdk.TextBlockParam{{Text: systemPrompt}}
	}

	resp, err := client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("message request: %w", err)
	}

	var text string
	for _, block := range resp.Content {
		if b, ok := block.AsAny().(anthropicsdk.TextBlock); ok {
			if text != "" {
				text += "\n"
			}
			text += b.Text
		}
	}
	if text == "" {
		return "", errors.New("message response contained no text content")
	}
	return text, nil
}
