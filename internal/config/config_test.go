package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/hpn/hpn-postgen/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateEnv clears every variable the loader reads and points the dotenv
// lookup at a file that does not exist.
func isolateEnv(t *testing.T) {
	t.Helper()

	for _, env := range aiEnvBindings {
		unsetEnv(t, env)
	}
	for _, env := range []string{
		"POSTGEN_SERVER_PORT",
		"POSTGEN_SERVER_HOST",
		"POSTGEN_SERVER_ALLOWED_ORIGINS",
		"POSTGEN_LOGGING_LEVEL",
		"POSTGEN_LOGGING_FORMAT",
		"POSTGEN_LOGGING_CONSOLE",
		"POSTGEN_AI_PROVIDER",
	} {
		unsetEnv(t, env)
	}

	t.Setenv(EnvDotEnvPath, filepath.Join(t.TempDir(), "missing.env"))
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()

	// t.Setenv registers the cleanup that restores the original value.
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 120, cfg.Server.WriteTimeoutSeconds)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, domain.ProviderOpenAI, cfg.AI.Provider)
	assert.Equal(t, domain.DefaultAzureAPIVersion, cfg.AI.AzureAPIVersion)
	assert.Empty(t, cfg.AI.OpenAIAPIKey)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.Logging.Console)
}

func TestLoadConfig_MissingCredentialsIsNotALoadError(t *testing.T) {
	isolateEnv(t)
	t.Setenv(domain.EnvAIProvider, "azure")

	cfg, err := loadConfig("")
	require.NoError(t, err, "credentials are validated lazily on first use")
	assert.Equal(t, domain.ProviderAzure, cfg.AI.Provider)
}

func TestLoadConfig_AzureFromEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv(domain.EnvAIProvider, " Azure ")
	t.Setenv(domain.EnvAzureAPIKey, "azure-key")
	t.Setenv(domain.EnvAzureEndpoint, "https://example.openai.azure.com")
	t.Setenv(domain.EnvAzureDeploymentName, "posts-prod")
	t.Setenv(domain.EnvAzureAPIVersion, "2025-01-01-preview")

	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, domain.ProviderConfig{
		Provider:            domain.ProviderAzure,
		AzureAPIKey:         "azure-key",
		AzureEndpoint:       "https://example.openai.azure.com",
		AzureDeploymentName: "posts-prod",
		AzureAPIVersion:     "2025-01-01-preview",
	}, cfg.AI)
	assert.Equal(t, "posts-prod", cfg.AI.DefaultModel())
}

func TestLoadConfig_ServerAndLoggingFromEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv(domain.EnvOpenAIAPIKey, "sk-test")
	t.Setenv("POSTGEN_SERVER_PORT", "9090")
	t.Setenv("POSTGEN_SERVER_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("POSTGEN_LOGGING_LEVEL", "debug")
	t.Setenv("POSTGEN_LOGGING_CONSOLE", "true")

	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Console)
	assert.Equal(t, "sk-test", cfg.AI.OpenAIAPIKey)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	isolateEnv(t)

	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"OPENAI_API_KEY=sk-from-dotenv\nAI_PROVIDER=openai\n",
	), 0o600))
	t.Setenv(EnvDotEnvPath, envFile)

	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "sk-from-dotenv", cfg.AI.OpenAIAPIKey)
}

func TestLoadConfig_EnvironmentBeatsDotEnv(t *testing.T) {
	isolateEnv(t)

	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("OPENAI_API_KEY=sk-from-dotenv\n"), 0o600))
	t.Setenv(EnvDotEnvPath, envFile)
	t.Setenv(domain.EnvOpenAIAPIKey, "sk-from-env")

	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "sk-from-env", cfg.AI.OpenAIAPIKey)
}

func TestLoadConfig_File(t *testing.T) {
	isolateEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 7000
ai:
  provider: azure
  azure_endpoint: https://file.openai.azure.com
  azure_deployment_name: from-file
logging:
  format: text
`), 0o600))
	t.Setenv(domain.EnvAzureDeploymentName, "from-env")

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, domain.ProviderAzure, cfg.AI.Provider)
	assert.Equal(t, "https://file.openai.azure.com", cfg.AI.AzureEndpoint)
	assert.Equal(t, "from-env", cfg.AI.AzureDeploymentName)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadConfig_ValidationErrors(t *testing.T) {
	isolateEnv(t)
	t.Setenv("POSTGEN_SERVER_PORT", "70000")
	t.Setenv("POSTGEN_LOGGING_LEVEL", "verbose")
	t.Setenv("POSTGEN_LOGGING_FORMAT", "xml")

	_, err := loadConfig("")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Errors, 3)
	assert.True(t, vErr.HasError("server.port"))
	assert.True(t, vErr.HasError("logging.level"))
	assert.True(t, vErr.HasError("logging.format"))
}

func TestLoadConfig_BrokenFile(t *testing.T) {
	isolateEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0o600))

	_, err := loadConfig(path)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
	assert.Contains(t, err.Error(), "config read error")
}

func TestGetConfig_Singleton(t *testing.T) {
	isolateEnv(t)
	ResetConfig()
	t.Cleanup(ResetConfig)

	t.Setenv(domain.EnvOpenAIAPIKey, "sk-first")
	first, err := GetConfig()
	require.NoError(t, err)

	t.Setenv(domain.EnvOpenAIAPIKey, "sk-second")
	second, err := GetConfig()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, "sk-first", second.AI.OpenAIAPIKey)
}

func TestLoggingConfig_SlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LoggingConfig{Level: "debug"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, LoggingConfig{Level: "info"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, LoggingConfig{Level: "warn"}.SlogLevel())
	assert.Equal(t, slog.LevelError, LoggingConfig{Level: "error"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, LoggingConfig{}.SlogLevel())
}

func TestValidationError_Message(t *testing.T) {
	single := &ValidationError{Errors: []string{"server.port must be between 1 and 65535"}}
	assert.Equal(t, "configuration validation failed: server.port must be between 1 and 65535", single.Error())

	multi := &ValidationError{Errors: []string{"a", "b"}}
	assert.Equal(t, "configuration validation failed with 2 errors:\n  - a\n  - b", multi.Error())
}
