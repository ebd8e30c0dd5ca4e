// Package adapter provides implementations for external AI provider integrations.
package adapter

import (
	"context"

	"github.com/hpn/hpn-postgen/internal/domain"
	"github.com/sashabaranov/go-openai"
)

// OpenAIAdapter implements Provider for the OpenAI Chat Completions API.
type OpenAIAdapter struct {
	client ChatClient
}

// NewOpenAIAdapter creates a new OpenAIAdapter with the given API key.
// No network call is made until the first completion.
func NewOpenAIAdapter(apiKey string, opts ...ClientOption) *OpenAIAdapter {
	o := newClientOptions(opts)

	cfg := openai.DefaultConfig(apiKey)
	if o.baseURL != "" {
		cfg.BaseURL = o.baseURL
	}
	o.apply(&cfg)

	return &OpenAIAdapter{client: openai.NewClientWithConfig(cfg)}
}

// NewOpenAIAdapterWithClient wraps an existing chat client.
func NewOpenAIAdapterWithClient(client ChatClient) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

// Name returns the provider identifier.
func (a *OpenAIAdapter) Name() string {
	return string(domain.ProviderOpenAI)
}

// GenerateCompletion performs a chat completion using the request's model.
func (a *OpenAIAdapter) GenerateCompletion(ctx context.Context, req domain.CompletionRequest) (string, error) {
	return createCompletion(ctx, a.client, "OpenAI", req.Model, req)
}
