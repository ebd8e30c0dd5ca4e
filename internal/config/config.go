// Package config provides configuration management using the Singleton pattern.
// It loads configuration from environment variables, an optional .env file and
// config.yaml using Viper.
package config

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/hpn/hpn-postgen/internal/domain"
)

// Configuration holds all application configuration values.
type Configuration struct {
	// Server configuration
	Server ServerConfig `json:"server" mapstructure:"server"`

	// AI provider selection and credentials
	AI domain.ProviderConfig `json:"ai" mapstructure:"ai"`

	// Logging configuration
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	// Host is the server bind address.
	Host string `json:"host" mapstructure:"host"`

	// Port is the server port number.
	Port int `json:"port" mapstructure:"port"`

	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeoutSeconds int `json:"read_timeout_seconds" mapstructure:"read_timeout_seconds"`

	// WriteTimeout is the maximum duration before timing out writes of the response.
	// Completions of 4000 tokens can take a while, so keep this generous.
	WriteTimeoutSeconds int `json:"write_timeout_seconds" mapstructure:"write_timeout_seconds"`

	// ShutdownTimeout is the maximum duration to wait for active connections to finish.
	ShutdownTimeoutSeconds int `json:"shutdown_timeout_seconds" mapstructure:"shutdown_timeout_seconds"`

	// AllowedOrigins lists CORS origins. "*" allows any origin.
	AllowedOrigins []string `json:"allowed_origins" mapstructure:"allowed_origins"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `json:"level" mapstructure:"level"`

	// Format is the log format (json, text).
	Format string `json:"format" mapstructure:"format"`

	// Console enables the colored per-request console output.
	Console bool `json:"console" mapstructure:"console"`
}

// SlogLevel maps Level onto a slog.Level, defaulting to info.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// configInstance holds the singleton configuration instance.
var (
	configInstance *Configuration
	configOnce     sync.Once
	configErr      error
)

// GetConfig returns the singleton Configuration instance.
// It initializes the configuration on first call using the default config path.
// Returns an error if configuration loading fails.
func GetConfig() (*Configuration, error) {
	configOnce.Do(func() {
		configInstance, configErr = loadConfig("")
	})
	return configInstance, configErr
}

// GetConfigWithPath returns the singleton Configuration instance with a custom config path.
// This should be used when you need to specify a non-default configuration file path.
// Returns an error if configuration loading fails.
func GetConfigWithPath(configPath string) (*Configuration, error) {
	configOnce.Do(func() {
		configInstance, configErr = loadConfig(configPath)
	})
	return configInstance, configErr
}

// MustGetConfig returns the singleton Configuration instance.
// It panics if the configuration cannot be loaded.
func MustGetConfig() *Configuration {
	cfg, err := GetConfig()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}

// ResetConfig resets the singleton instance.
// This is primarily used for testing purposes.
func ResetConfig() {
	configOnce = sync.Once{}
	configInstance = nil
	configErr = nil
}

// Validate validates the configuration and returns an error if required fields are missing.
// Provider credentials are not checked here: they are validated on first use by
// adapter.Selector so a misconfigured provider surfaces on the request that needs it.
func (c *Configuration) Validate() error {
	var validationErrors []string

	// Validate server configuration
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		validationErrors = append(validationErrors, "server.port must be between 1 and 65535")
	}

	if c.Server.ReadTimeoutSeconds < 0 || c.Server.WriteTimeoutSeconds < 0 || c.Server.ShutdownTimeoutSeconds < 0 {
		validationErrors = append(validationErrors, "server timeouts cannot be negative")
	}

	// Validate logging configuration
	if c.Logging.Level != "" && !isValidLogLevel(c.Logging.Level) {
		validationErrors = append(validationErrors, (&InvalidValueError{
			Key:           "logging.level",
			Value:         c.Logging.Level,
			AllowedValues: []string{"debug", "info", "warn", "error"},
		}).Error())
	}

	if c.Logging.Format != "" && !isValidLogFormat(c.Logging.Format) {
		validationErrors = append(validationErrors, (&InvalidValueError{
			Key:           "logging.format",
			Value:         c.Logging.Format,
			AllowedValues: []string{"json", "text"},
		}).Error())
	}

	if len(validationErrors) > 0 {
		return &ValidationError{Errors: validationErrors}
	}

	return nil
}

// isValidLogLevel checks if the log level is valid.
func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// isValidLogFormat checks if the log format is valid.
func isValidLogFormat(format string) bool {
	switch format {
	case "json", "text":
		return true
	default:
		return false
	}
}
