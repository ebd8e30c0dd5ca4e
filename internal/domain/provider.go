// Package domain contains the core business entities and value objects.
// These structs are framework-agnostic and represent the heart of the application.
package domain

// ProviderType identifies the AI vendor backing the completion client.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderAzure  ProviderType = "azure"
)

const (
	// DefaultOpenAIModel is used for every request when the openai provider is selected.
	DefaultOpenAIModel = "gpt-4o-mini"

	// DefaultAzureModel is used when azure is selected but no deployment name is configured.
	DefaultAzureModel = "gpt-4.1-mini"

	// DefaultAzureAPIVersion is the Azure OpenAI REST API version used when none is configured.
	DefaultAzureAPIVersion = "2024-08-01-preview"
)

// Environment variable names for provider credentials.
// Configuration errors name these so operators know exactly what to set.
const (
	EnvAIProvider          = "AI_PROVIDER"
	EnvOpenAIAPIKey        = "OPENAI_API_KEY"
	EnvOpenAIBaseURL       = "OPENAI_BASE_URL"
	EnvAzureAPIKey         = "AZURE_OPENAI_API_KEY"
	EnvAzureEndpoint       = "AZURE_OPENAI_ENDPOINT"
	EnvAzureDeploymentName = "AZURE_OPENAI_DEPLOYMENT_NAME"
	EnvAzureAPIVersion     = "AZURE_OPENAI_API_VERSION"
)

// ProviderConfig holds the vendor selection and credentials.
// It is loaded once and treated as immutable afterwards.
type ProviderConfig struct {
	// Provider is the selected vendor tag. Empty means openai.
	Provider ProviderType `json:"provider" mapstructure:"provider"`

	// OpenAIAPIKey authenticates against api.openai.com.
	OpenAIAPIKey string `json:"-" mapstructure:"openai_api_key"`

	// OpenAIBaseURL overrides the OpenAI API base URL (proxies, tests). Optional.
	OpenAIBaseURL string `json:"openai_base_url" mapstructure:"openai_base_url"`

	// AzureAPIKey authenticates against the Azure OpenAI resource.
	AzureAPIKey string `json:"-" mapstructure:"azure_api_key"`

	// AzureEndpoint is the resource URL, e.g. https://my-resource.openai.azure.com.
	AzureEndpoint string `json:"azure_endpoint" mapstructure:"azure_endpoint"`

	// AzureDeploymentName addresses the model deployment inside the resource.
	AzureDeploymentName string `json:"azure_deployment_name" mapstructure:"azure_deployment_name"`

	// AzureAPIVersion is the api-version query parameter.
	AzureAPIVersion string `json:"azure_api_version" mapstructure:"azure_api_version"`
}

// SelectedProvider returns the provider tag, defaulting to openai when unset.
func (c ProviderConfig) SelectedProvider() ProviderType {
	if c.Provider == "" {
		return ProviderOpenAI
	}
	return c.Provider
}

// DefaultModel returns the model identifier requests use when the caller does not override it.
func (c ProviderConfig) DefaultModel() string {
	if c.SelectedProvider() == ProviderAzure {
		if c.AzureDeploymentName != "" {
			return c.AzureDeploymentName
		}
		return DefaultAzureModel
	}
	return DefaultOpenAIModel
}

// MissingAzureFields lists the environment variables required by azure that are empty.
func (c ProviderConfig) MissingAzureFields() []string {
	var missing []string
	if c.AzureAPIKey == "" {
		missing = append(missing, EnvAzureAPIKey)
	}
	if c.AzureEndpoint == "" {
		missing = append(missing, EnvAzureEndpoint)
	}
	if c.AzureDeploymentName == "" {
		missing = append(missing, EnvAzureDeploymentName)
	}
	return missing
}

// MissingFields lists the environment variables the selected provider needs that are empty.
func (c ProviderConfig) MissingFields() []string {
	if c.SelectedProvider() == ProviderAzure {
		return c.MissingAzureFields()
	}
	if c.OpenAIAPIKey == "" {
		return []string{EnvOpenAIAPIKey}
	}
	return nil
}
