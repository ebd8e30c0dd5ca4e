// Package adapter provides implementations for external AI provider integrations.
package adapter

import (
	"context"

	"github.com/hpn/hpn-postgen/internal/domain"
	"github.com/sashabaranov/go-openai"
)

// AzureConfig holds the settings needed to address an Azure OpenAI deployment.
type AzureConfig struct {
	APIKey         string
	Endpoint       string
	DeploymentName string
	APIVersion     string
}

// AzureAdapter implements Provider for Azure OpenAI.
// Azure routes by deployment name, so the request's model field is not used for routing.
type AzureAdapter struct {
	client         ChatClient
	deploymentName string
}

// NewAzureAdapter creates a new AzureAdapter. An empty APIVersion falls back
// to domain.DefaultAzureAPIVersion.
func NewAzureAdapter(cfg AzureConfig, opts ...ClientOption) *AzureAdapter {
	o := newClientOptions(opts)

	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = domain.DefaultAzureAPIVersion
	}

	clientCfg := openai.DefaultAzureConfig(cfg.APIKey, cfg.Endpoint)
	clientCfg.APIVersion = apiVersion
	deployment := cfg.DeploymentName
	clientCfg.AzureModelMapperFunc = func(string) string {
		return deployment
	}
	o.apply(&clientCfg)

	return &AzureAdapter{
		client:         openai.NewClientWithConfig(clientCfg),
		deploymentName: deployment,
	}
}

// NewAzureAdapterWithClient wraps an existing chat client bound to the given deployment.
func NewAzureAdapterWithClient(client ChatClient, deploymentName string) *AzureAdapter {
	return &AzureAdapter{client: client, deploymentName: deploymentName}
}

// Name returns the provider identifier.
func (a *AzureAdapter) Name() string {
	return string(domain.ProviderAzure)
}

// DeploymentName returns the deployment every request is routed to.
func (a *AzureAdapter) DeploymentName() string {
	return a.deploymentName
}

// GenerateCompletion performs a chat completion against the configured deployment.
func (a *AzureAdapter) GenerateCompletion(ctx context.Context, req domain.CompletionRequest) (string, error) {
	return createCompletion(ctx, a.client, "Azure OpenAI", a.deploymentName, req)
}
