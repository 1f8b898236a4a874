package modelgateway

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

// Credentials holds the per-provider secrets the gateway routes through.
// A zero value for a field means that provider is unconfigured.
type Credentials struct {
	OpenAIAPIKey    string
	AnthropicAPIKey string
	GroqAPIKey      string
	OllamaBaseURL   string // e.g. "http://localhost:11434"
}

// Gateway routes Chat calls to one of four provider adapters. Credentials
// can be swapped atomically at runtime (RefreshCredentials) without
// disrupting in-flight calls, which matters for long-lived workflow
// engine processes that rotate API keys without a restart.
type Gateway struct {
	creds      atomic.Pointer[Credentials]
	timeout    time.Duration
	httpClient httpDoer
}

// NewGateway builds a Gateway with the given initial credentials. timeout
// bounds every provider call; zero disables the bound.
func NewGateway(creds Credentials, timeout time.Duration) *Gateway {
	g := &Gateway{timeout: timeout, httpClient: newOllamaHTTPClient()}
	g.creds.Store(&creds)
	return g
}

// RefreshCredentials atomically replaces the credential set used by
// subsequent Chat calls.
func (g *Gateway) RefreshCredentials(creds Credentials) {
	g.creds.Store(&creds)
}

// Chat satisfies internal/dispatch.ModelCaller. provider selects the
// backend (openai, anthropic, groq, ollama); model is that provider's
// model identifier.
func (g *Gateway) Chat(ctx context.Context, provider, model, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	creds := g.creds.Load()

	var (
		text string
		err  error
	)
	switch provider {
	case "openai":
		if creds.OpenAIAPIKey == "" {
			return "", fmt.Errorf("%w: openai", ErrProviderUnconfigured)
		}
		text, err = chatOpenAICompatible(ctx, "", creds.OpenAIAPIKey, model, systemPrompt, userPrompt, temperature, maxTokens)
	case "anthropic":
		if creds.AnthropicAPIKey == "" {
			return "", fmt.Errorf("%w: anthropic", ErrProviderUnconfigured)
		}
		text, err = chatAnthropic(ctx, creds.AnthropicAPIKey, model, systemPrompt, userPrompt, temperature, maxTokens)
	case "groq":
		if creds.GroqAPIKey == "" {
			return "", fmt.Errorf("%w: groq", ErrProviderUnconfigured)
		}
		text, err = chatOpenAICompatible(ctx, groqBaseURL, creds.GroqAPIKey, model, systemPrompt, userPrompt, temperature, maxTokens)
	case "ollama":
		if creds.OllamaBaseURL == "" {
			return "", fmt.Errorf("%w: ollama", ErrProviderUnconfigured)
		}
		text, err = chatOllama(ctx, g.httpClient, creds.OllamaBaseURL, model, systemPrompt, userPrompt, temperature)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}

	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %s/%s", ErrProviderTimeout, provider, model)
		}
		return "", fmt.Errorf("%w: %s/%s: %v", ErrProviderError, provider, model, err)
	}
	return text, nil
}
