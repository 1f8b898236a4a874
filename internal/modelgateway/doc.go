// Package modelgateway implements the Model Gateway: a single Chat entry
// point that routes a (provider, model) pair to the right backend SDK.
// Four providers are wired: openai and anthropic through their official
// SDKs, groq by pointing the OpenAI SDK at Groq's OpenAI-compatible
// endpoint, and ollama through a small hand-rolled HTTP client (no Ollama
// SDK exists anywhere in the example pack, and its API is a single plain
// JSON POST, so this stays on internal/httpclient's idiom rather than
// fabricating a dependency).
//
// Gateway satisfies internal/dispatch.ModelCaller directly: agent- and
// tool-kind nodes never see provider-specific types, only the six
// primitive arguments dispatch.ModelCaller declares.
package modelgateway
