package modelgateway

import (
	"context"
	"errors"
	"fmt"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// groqBaseURL is Groq's OpenAI-compatible endpoint. Routing groq through
// the OpenAI SDK with a base URL override avoids a second SDK dependency
// for a provider that deliberately mirrors OpenAI's wire format.
const groqBaseURL = "https://api.groq.com/openai/v1"

// chatOpenAICompatible drives either OpenAI itself (baseURL == "", the
// SDK's default) or any OpenAI-compatible endpoint such as Groq.
func chatOpenAICompatible(ctx context.Context, baseURL, apiKey, model, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error) {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openaisdk.NewClient(opts...)

	messages := []openaisdk.ChatCompletionMessageParamUnion{}
	if systemPrompt != "" {
		messages = append(messages, openaisdk.SystemMessage(systemPrompt))
	}
	messages = append(messages, openaisdk.UserMessage(userPrompt))

	params := openaisdk.ChatCompletionNewParams{
		Model:       openaisdk.ChatModel(model),
		Messages:    messages,
		Temperature: openaisdk.Float(temperature),
	}
	if maxTokens > 0 {
		params.MaxTokens = openaisdk.Int(int64(maxTokens))
	}

	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
