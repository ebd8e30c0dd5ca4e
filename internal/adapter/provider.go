// Package adapter provides implementations for external AI provider integrations.
// It uses the Adapter pattern to abstract provider-specific APIs behind a common interface.
package adapter

import (
	"context"

	"github.com/hpn/hpn-postgen/internal/domain"
	"github.com/sashabaranov/go-openai"
)

// Provider defines the interface for AI provider adapters.
// All provider implementations must satisfy this interface.
type Provider interface {
	// GenerateCompletion sends the request to the vendor and returns the first
	// choice's content with surrounding whitespace trimmed.
	GenerateCompletion(ctx context.Context, req domain.CompletionRequest) (string, error)

	// Name returns the provider's identifier string.
	Name() string
}

// ChatClient is the subset of the go-openai client used by the adapters.
// *openai.Client satisfies it; tests substitute their own implementation.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}
