package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/aashari/go-openai-text-api/internal/llm"
	"github.com/aashari/go-openai-text-api/internal/utils"
	"github.com/spf13/viper"
)

const (
	minWriteTimeout     = 60 * time.Second
	writeTimeoutMargin  = 5 * time.Second
	retryBackoffCeiling = 8 * time.Second
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	v := viper.New()

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvAliases(v)

	return &Loader{v: v}
}

// Load reads an optional .env file and then the layered configuration
func Load(configPaths ...string) (*Config, error) {
	if _, err := LoadDotEnv(); err != nil {
		return nil, err
	}
	return NewLoader().LoadConfig(configPaths...)
}

// LoadConfig loads configuration from multiple sources in priority order:
// 1. Environment variables (highest priority)
// 2. Configuration file (config.yaml)
// 3. Default values (lowest priority)
func (l *Loader) LoadConfig(configPaths ...string) (*Config, error) {
	if len(configPaths) == 0 {
		configPaths = []string{".", "./config"}
	}
	for _, path := range configPaths {
		l.v.AddConfigPath(path)
	}
	l.v.SetConfigName("config")
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := l.v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if apiErr := Validate(&config); apiErr != nil {
		return nil, apiErr
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 0)
	v.SetDefault("server.idle_timeout", 60)

	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.organization", "")
	v.SetDefault("openai.base_url", "")
	v.SetDefault("openai.default_model", llm.FallbackModel)
	v.SetDefault("openai.temperature", llm.FallbackTemperature)
	v.SetDefault("openai.max_tokens", llm.FallbackMaxTokens)
	v.SetDefault("openai.top_p", llm.FallbackTopP)
	v.SetDefault("openai.frequency_penalty", llm.FallbackFrequencyPenalty)
	v.SetDefault("openai.presence_penalty", llm.FallbackPresencePenalty)
	v.SetDefault("openai.timeout_ms", 30000)
	v.SetDefault("openai.max_retries", 3)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stdout")
	v.SetDefault("logging.service_name", utils.ServiceName)
	v.SetDefault("logging.environment", "development")
	v.SetDefault("logging.version", "unknown")

	v.SetDefault("database.mongodb_uri", "")
}

// bindEnvAliases maps keys whose variable names do not follow the
// section_key convention.
func bindEnvAliases(v *viper.Viper) {
	_ = v.BindEnv("server.host", "HOST", "SERVER_HOST")
	_ = v.BindEnv("server.port", "PORT", "SERVER_PORT")
	_ = v.BindEnv("openai.timeout_ms", "OPENAI_TIMEOUT", "OPENAI_TIMEOUT_MS")
	_ = v.BindEnv("logging.level", "LOG_LEVEL")
	_ = v.BindEnv("logging.format", "LOG_FORMAT")
	_ = v.BindEnv("logging.output", "LOG_OUTPUT")
	_ = v.BindEnv("logging.service_name", "SERVICE_NAME")
	_ = v.BindEnv("logging.environment", "ENVIRONMENT", "ENV")
	_ = v.BindEnv("logging.version", "VERSION")
	_ = v.BindEnv("database.mongodb_uri", "MONGODB_URI")
}

// Address returns the host:port the HTTP server binds to
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// ReadTimeoutDuration returns the server read timeout
func (c *ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(c.ReadTimeout) * time.Second
}

// WriteTimeoutDuration returns the configured server write timeout. When
// unset it is derived from ProviderBudget so a failing upstream still gets
// its error envelope written before the connection is cut.
func (c *Config) WriteTimeoutDuration() time.Duration {
	if c.Server.WriteTimeout > 0 {
		return time.Duration(c.Server.WriteTimeout) * time.Second
	}
	derived := c.ProviderBudget() + writeTimeoutMargin
	if derived < minWriteTimeout {
		return minWriteTimeout
	}
	return derived
}

// ProviderBudget is the longest one completion call can take: every attempt
// at the client timeout plus the client's capped backoff between attempts.
// Retry-After hints from the provider can stretch this further.
func (c *Config) ProviderBudget() time.Duration {
	attempts := time.Duration(c.OpenAI.MaxRetries + 1)
	timeout := time.Duration(c.OpenAI.TimeoutMs) * time.Millisecond
	return attempts*timeout + time.Duration(c.OpenAI.MaxRetries)*retryBackoffCeiling
}

// IdleTimeoutDuration returns the server idle timeout
func (c *ServerConfig) IdleTimeoutDuration() time.Duration {
	return time.Duration(c.IdleTimeout) * time.Second
}

// ClientOptions returns the provider client settings
func (c *Config) ClientOptions() llm.ClientOptions {
	return llm.ClientOptions{
		APIKey:       c.OpenAI.APIKey,
		Organization: c.OpenAI.Organization,
		BaseURL:      c.OpenAI.BaseURL,
		Timeout:      time.Duration(c.OpenAI.TimeoutMs) * time.Millisecond,
		MaxRetries:   c.OpenAI.MaxRetries,
	}
}

// GenerationDefaults returns the service-level generation defaults
func (c *Config) GenerationDefaults() llm.GenerationOptions {
	return llm.GenerationOptions{
		Model:            c.OpenAI.DefaultModel,
		Temperature:      llm.Float(c.OpenAI.Temperature),
		MaxTokens:        llm.Int(c.OpenAI.MaxTokens),
		TopP:             llm.Float(c.OpenAI.TopP),
		FrequencyPenalty: llm.Float(c.OpenAI.FrequencyPenalty),
		PresencePenalty:  llm.Float(c.OpenAI.PresencePenalty),
	}
}

// Masked returns a loggable view of the configuration with secrets masked
func (c *Config) Masked() map[string]interface{} {
	return map[string]interface{}{
		"server": map[string]interface{}{
			"address":       c.Address(),
			"read_timeout":  c.Server.ReadTimeout,
			"write_timeout": c.WriteTimeoutDuration().String(),
			"idle_timeout":  c.Server.IdleTimeout,
		},
		"openai": map[string]interface{}{
			"api_key":           utils.MaskAPIKey(c.OpenAI.APIKey),
			"organization":      c.OpenAI.Organization,
			"base_url":          c.OpenAI.BaseURL,
			"default_model":     c.OpenAI.DefaultModel,
			"temperature":       c.OpenAI.Temperature,
			"max_tokens":        c.OpenAI.MaxTokens,
			"top_p":             c.OpenAI.TopP,
			"frequency_penalty": c.OpenAI.FrequencyPenalty,
			"presence_penalty":  c.OpenAI.PresencePenalty,
			"timeout_ms":        c.OpenAI.TimeoutMs,
			"max_retries":       c.OpenAI.MaxRetries,
		},
		"logging": map[string]interface{}{
			"level":       c.Logging.Level,
			"format":      c.Logging.Format,
			"service":     c.Logging.ServiceName,
			"environment": c.Logging.Environment,
		},
		"database": map[string]interface{}{
			"enabled":     c.Database.MongoURI != "",
			"mongodb_uri": utils.MaskURICredentials(c.Database.MongoURI),
		},
	}
}
