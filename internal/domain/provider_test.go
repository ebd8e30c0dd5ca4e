package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderConfig_SelectedProvider(t *testing.T) {
	assert.Equal(t, ProviderOpenAI, ProviderConfig{}.SelectedProvider())
	assert.Equal(t, ProviderAzure, ProviderConfig{Provider: ProviderAzure}.SelectedProvider())
}

func TestProviderConfig_DefaultModel(t *testing.T) {
	tests := []struct {
		name string
		cfg  ProviderConfig
		want string
	}{
		{name: "openai", cfg: ProviderConfig{Provider: ProviderOpenAI}, want: DefaultOpenAIModel},
		{name: "unset provider", cfg: ProviderConfig{}, want: DefaultOpenAIModel},
		{name: "azure with deployment", cfg: ProviderConfig{Provider: ProviderAzure, AzureDeploymentName: "posts-prod"}, want: "posts-prod"},
		{name: "azure without deployment", cfg: ProviderConfig{Provider: ProviderAzure}, want: DefaultAzureModel},
		{name: "openai ignores deployment", cfg: ProviderConfig{AzureDeploymentName: "posts-prod"}, want: DefaultOpenAIModel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.DefaultModel())
		})
	}
}

func TestProviderConfig_MissingAzureFields(t *testing.T) {
	cfg := ProviderConfig{Provider: ProviderAzure, AzureEndpoint: "https://example.openai.azure.com"}

	assert.Equal(t, []string{EnvAzureAPIKey, EnvAzureDeploymentName}, cfg.MissingAzureFields())

	cfg.AzureAPIKey = "key"
	cfg.AzureDeploymentName = "dep"
	assert.Empty(t, cfg.MissingAzureFields())
}

func TestProviderConfig_MissingFields(t *testing.T) {
	assert.Equal(t, []string{EnvOpenAIAPIKey}, ProviderConfig{}.MissingFields())
	assert.Empty(t, ProviderConfig{OpenAIAPIKey: "sk-test"}.MissingFields())
	assert.Equal(t,
		[]string{EnvAzureAPIKey, EnvAzureEndpoint, EnvAzureDeploymentName},
		ProviderConfig{Provider: ProviderAzure, OpenAIAPIKey: "sk-test"}.MissingFields(),
	)
}
