// Package adapter provides implementations for external AI provider integrations.
package adapter

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/hpn/hpn-postgen/internal/domain"
)

// ProviderFactory validates configuration and constructs a Provider.
type ProviderFactory func(cfg domain.ProviderConfig) (Provider, error)

// Selector lazily builds the single Provider used for the process lifetime.
// The first successful construction wins and is never replaced.
type Selector struct {
	cfg     domain.ProviderConfig
	factory ProviderFactory
	logger  *slog.Logger

	mu       sync.Mutex
	provider Provider
}

// SelectorOption is a functional option for configuring Selector.
type SelectorOption func(*Selector)

// WithFactory replaces the validation and construction step.
func WithFactory(factory ProviderFactory) SelectorOption {
	return func(s *Selector) {
		s.factory = factory
	}
}

// WithClientOptions forwards SDK client options to the default factory.
func WithClientOptions(opts ...ClientOption) SelectorOption {
	return func(s *Selector) {
		s.factory = func(cfg domain.ProviderConfig) (Provider, error) {
			return NewProvider(cfg, opts...)
		}
	}
}

// WithSelectorLogger sets a custom logger.
func WithSelectorLogger(logger *slog.Logger) SelectorOption {
	return func(s *Selector) {
		s.logger = logger
	}
}

// NewSelector creates a Selector for the given configuration. Nothing is
// validated until Provider is first called.
func NewSelector(cfg domain.ProviderConfig, opts ...SelectorOption) *Selector {
	s := &Selector{
		cfg:    cfg,
		logger: slog.Default(),
	}
	s.factory = func(cfg domain.ProviderConfig) (Provider, error) {
		return NewProvider(cfg)
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Provider returns the cached provider, building it on first use.
// Concurrent first calls construct exactly one provider. Failed constructions
// are not cached.
func (s *Selector) Provider() (Provider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.provider != nil {
		return s.provider, nil
	}

	p, err := s.factory(s.cfg)
	if err != nil {
		return nil, err
	}

	s.provider = p
	s.logger.Info("ai provider initialized",
		slog.String("provider", p.Name()),
		slog.String("default_model", s.DefaultModel()),
	)

	return p, nil
}

// DefaultModel returns the model identifier used when a caller does not pick one.
// It is recomputed from configuration on every call.
func (s *Selector) DefaultModel() string {
	return s.cfg.DefaultModel()
}

// ProviderName returns the configured provider tag without constructing a client.
func (s *Selector) ProviderName() string {
	return string(s.cfg.SelectedProvider())
}

// NewProvider validates cfg and constructs the matching Provider.
// Construction holds credentials only; no request is sent.
func NewProvider(cfg domain.ProviderConfig, opts ...ClientOption) (Provider, error) {
	if cfg.SelectedProvider() == domain.ProviderAzure {
		if missing := cfg.MissingAzureFields(); len(missing) > 0 {
			return nil, domain.NewConfigurationError(fmt.Sprintf(
				"azure openai configuration is incomplete, please set %s",
				strings.Join(missing, ", "),
			))
		}

		return NewAzureAdapter(AzureConfig{
			APIKey:         cfg.AzureAPIKey,
			Endpoint:       cfg.AzureEndpoint,
			DeploymentName: cfg.AzureDeploymentName,
			APIVersion:     cfg.AzureAPIVersion,
		}, opts...), nil
	}

	if cfg.OpenAIAPIKey == "" {
		return nil, domain.NewConfigurationError(fmt.Sprintf(
			"openai api key is not configured, please set %s", domain.EnvOpenAIAPIKey,
		))
	}

	if cfg.OpenAIBaseURL != "" {
		opts = append([]ClientOption{WithBaseURL(cfg.OpenAIBaseURL)}, opts...)
	}

	return NewOpenAIAdapter(cfg.OpenAIAPIKey, opts...), nil
}
