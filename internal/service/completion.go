// Package service composes provider selection and prompt building into the
// operations exposed to HTTP handlers.
package service

import (
	"context"
	"log/slog"

	"github.com/hpn/hpn-postgen/internal/adapter"
	"github.com/hpn/hpn-postgen/internal/domain"
)

const (
	// DefaultMaxTokens is the completion cap used when the caller does not override it.
	DefaultMaxTokens = 500

	// DefaultTemperature is the sampling temperature used when the caller does not override it.
	DefaultTemperature = 1.0
)

// ProviderSource yields the process-wide provider and the default model.
// *adapter.Selector implements it.
type ProviderSource interface {
	Provider() (adapter.Provider, error)
	DefaultModel() string
}

// GenerateOption overrides a default of a single GenerateText call.
type GenerateOption func(*generateOptions)

type generateOptions struct {
	model       string
	maxTokens   int
	temperature float64
}

// WithModel sets the model identifier. Empty keeps the default model.
func WithModel(model string) GenerateOption {
	return func(o *generateOptions) {
		if model != "" {
			o.model = model
		}
	}
}

// WithMaxTokens sets the completion token cap. Non-positive values are ignored.
func WithMaxTokens(maxTokens int) GenerateOption {
	return func(o *generateOptions) {
		if maxTokens > 0 {
			o.maxTokens = maxTokens
		}
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temperature float64) GenerateOption {
	return func(o *generateOptions) {
		o.temperature = temperature
	}
}

// CompletionService sends a system/user prompt pair to the selected provider.
type CompletionService struct {
	providers ProviderSource
	logger    *slog.Logger
}

// CompletionServiceOption is a functional option for configuring CompletionService.
type CompletionServiceOption func(*CompletionService)

// WithCompletionLogger sets a custom logger.
func WithCompletionLogger(logger *slog.Logger) CompletionServiceOption {
	return func(s *CompletionService) {
		s.logger = logger
	}
}

// NewCompletionService creates a new CompletionService.
func NewCompletionService(providers ProviderSource, opts ...CompletionServiceOption) *CompletionService {
	s := &CompletionService{
		providers: providers,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// DefaultModel returns the model used when no WithModel option is given.
func (s *CompletionService) DefaultModel() string {
	return s.providers.DefaultModel()
}

// GenerateText runs a single completion with the system message followed by the user message.
// Failures from provider selection or generation are logged and returned as a
// *domain.Error that keeps the original kind and cause.
func (s *CompletionService) GenerateText(ctx context.Context, systemPrompt, userPrompt string, opts ...GenerateOption) (string, error) {
	o := generateOptions{
		model:       s.providers.DefaultModel(),
		maxTokens:   DefaultMaxTokens,
		temperature: DefaultTemperature,
	}
	for _, opt := range opts {
		opt(&o)
	}

	text, err := s.generate(ctx, domain.CompletionRequest{
		Model: o.model,
		Messages: []domain.Message{
			{Role: domain.RoleSystem, Content: systemPrompt},
			{Role: domain.RoleUser, Content: userPrompt},
		},
		MaxTokens:   o.maxTokens,
		Temperature: o.temperature,
	})
	if err != nil {
		s.logger.Error("ai generation error",
			slog.String("error", err.Error()),
			slog.String("kind", domain.KindOf(err).String()),
			slog.String("model", o.model),
		)
		return "", domain.Wrap("text generation failed", err)
	}

	return text, nil
}

func (s *CompletionService) generate(ctx context.Context, req domain.CompletionRequest) (string, error) {
	provider, err := s.providers.Provider()
	if err != nil {
		return "", err
	}

	s.logger.Debug("requesting completion",
		slog.String("provider", provider.Name()),
		slog.String("model", req.Model),
		slog.Int("max_tokens", req.MaxTokens),
		slog.Float64("temperature", req.Temperature),
	)

	return provider.GenerateCompletion(ctx, req)
}
