// Package config provides configuration management using the Singleton pattern.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/hpn/hpn-postgen/internal/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultConfigName = "config"
	defaultConfigType = "yaml"
	envPrefix         = "POSTGEN"

	// EnvFile is the dotenv file loaded before the environment is read.
	// Variables already present in the process environment win.
	EnvFile = ".env"

	// EnvDotEnvPath overrides the location of the dotenv file.
	EnvDotEnvPath = "POSTGEN_ENV_FILE"
)

// aiEnvBindings maps configuration keys to the unprefixed variable names
// operators already use for the vendor SDKs.
var aiEnvBindings = map[string]string{
	"ai.provider":              domain.EnvAIProvider,
	"ai.openai_api_key":        domain.EnvOpenAIAPIKey,
	"ai.openai_base_url":       domain.EnvOpenAIBaseURL,
	"ai.azure_api_key":         domain.EnvAzureAPIKey,
	"ai.azure_endpoint":        domain.EnvAzureEndpoint,
	"ai.azure_deployment_name": domain.EnvAzureDeploymentName,
	"ai.azure_api_version":     domain.EnvAzureAPIVersion,
}

// loadConfig loads the configuration from environment variables and files.
// Priority order (highest to lowest):
// 1. Process environment (AI_PROVIDER, OPENAI_API_KEY, AZURE_OPENAI_*, POSTGEN_*)
// 2. .env file (never overrides variables already set)
// 3. config.yaml
// 4. Default values
func loadConfig(configPath string) (*Configuration, error) {
	if err := loadDotEnv(); err != nil {
		return nil, &ConfigError{
			Op:  "load_dotenv",
			Err: err,
		}
	}

	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Configure Viper
	v.SetConfigName(defaultConfigName)
	v.SetConfigType(defaultConfigType)

	// Add config search paths
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/hpn-postgen")
		v.AddConfigPath("$HOME/.hpn-postgen")
	}

	// Enable environment variable override
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for key, env := range aiEnvBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, &ConfigError{
				Op:  "bind_env",
				Err: fmt.Errorf("failed to bind %s: %w", env, err),
			}
		}
	}

	// Read configuration file (optional)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, &ConfigError{
				Op:  "read",
				Err: fmt.Errorf("failed to read config file: %w", err),
			}
		}
	}

	// Unmarshal configuration
	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &ConfigError{
			Op:  "unmarshal",
			Err: fmt.Errorf("failed to unmarshal config: %w", err),
		}
	}

	normalize(&cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout_seconds", 30)
	v.SetDefault("server.write_timeout_seconds", 120)
	v.SetDefault("server.shutdown_timeout_seconds", 15)
	v.SetDefault("server.allowed_origins", []string{"*"})

	// AI defaults
	v.SetDefault("ai.provider", string(domain.ProviderOpenAI))
	v.SetDefault("ai.azure_api_version", domain.DefaultAzureAPIVersion)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.console", false)
}

// loadDotEnv loads the dotenv file if it exists. A missing file is not an error.
func loadDotEnv() error {
	path := os.Getenv(EnvDotEnvPath)
	if path == "" {
		path = EnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	return nil
}

// normalize trims whitespace from credentials and lower-cases the provider tag.
func normalize(cfg *Configuration) {
	ai := &cfg.AI
	ai.Provider = domain.ProviderType(strings.ToLower(strings.TrimSpace(string(ai.Provider))))
	ai.OpenAIAPIKey = strings.TrimSpace(ai.OpenAIAPIKey)
	ai.OpenAIBaseURL = strings.TrimSpace(ai.OpenAIBaseURL)
	ai.AzureAPIKey = strings.TrimSpace(ai.AzureAPIKey)
	ai.AzureEndpoint = strings.TrimSpace(ai.AzureEndpoint)
	ai.AzureDeploymentName = strings.TrimSpace(ai.AzureDeploymentName)
	ai.AzureAPIVersion = strings.TrimSpace(ai.AzureAPIVersion)
	if ai.AzureAPIVersion == "" {
		ai.AzureAPIVersion = domain.DefaultAzureAPIVersion
	}

	origins := make([]string, 0, len(cfg.Server.AllowedOrigins))
	for _, o := range cfg.Server.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cfg.Server.AllowedOrigins = origins
}
