package config

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig   `json:"server" yaml:"server" mapstructure:"server"`
	OpenAI   OpenAIConfig   `json:"openai" yaml:"openai" mapstructure:"openai"`
	Logging  LoggingConfig  `json:"logging" yaml:"logging" mapstructure:"logging"`
	Database DatabaseConfig `json:"database" yaml:"database" mapstructure:"database"`
}

// ServerConfig holds server-specific configuration. Timeouts are in seconds;
// a zero WriteTimeout is derived from the OpenAI client settings.
type ServerConfig struct {
	Host         string `json:"host" yaml:"host" mapstructure:"host" validate:"required"`
	Port         int    `json:"port" yaml:"port" mapstructure:"port" validate:"gte=1,lte=65535"`
	ReadTimeout  int    `json:"read_timeout" yaml:"read_timeout" mapstructure:"read_timeout" validate:"gte=1"`
	WriteTimeout int    `json:"write_timeout" yaml:"write_timeout" mapstructure:"write_timeout" validate:"gte=0"`
	IdleTimeout  int    `json:"idle_timeout" yaml:"idle_timeout" mapstructure:"idle_timeout" validate:"gte=1"`
}

// OpenAIConfig holds the provider credentials, client settings and the
// service-level generation defaults.
type OpenAIConfig struct {
	APIKey           string  `json:"api_key" yaml:"api_key" mapstructure:"api_key"`
	Organization     string  `json:"organization" yaml:"organization" mapstructure:"organization"`
	BaseURL          string  `json:"base_url" yaml:"base_url" mapstructure:"base_url" validate:"omitempty,url"`
	DefaultModel     string  `json:"default_model" yaml:"default_model" mapstructure:"default_model" validate:"required"`
	Temperature      float64 `json:"temperature" yaml:"temperature" mapstructure:"temperature" validate:"gte=0,lte=1"`
	MaxTokens        int     `json:"max_tokens" yaml:"max_tokens" mapstructure:"max_tokens" validate:"gte=1"`
	TopP             float64 `json:"top_p" yaml:"top_p" mapstructure:"top_p" validate:"gte=0,lte=1"`
	FrequencyPenalty float64 `json:"frequency_penalty" yaml:"frequency_penalty" mapstructure:"frequency_penalty" validate:"gte=-2,lte=2"`
	PresencePenalty  float64 `json:"presence_penalty" yaml:"presence_penalty" mapstructure:"presence_penalty" validate:"gte=-2,lte=2"`
	TimeoutMs        int     `json:"timeout_ms" yaml:"timeout_ms" mapstructure:"timeout_ms" validate:"gte=1"`
	MaxRetries       int     `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries" validate:"gte=0"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level       string `json:"level" yaml:"level" mapstructure:"level" validate:"oneof=debug info warn warning error"`
	Format      string `json:"format" yaml:"format" mapstructure:"format" validate:"oneof=json text"`
	Output      string `json:"output" yaml:"output" mapstructure:"output" validate:"required"`
	ServiceName string `json:"service_name" yaml:"service_name" mapstructure:"service_name" validate:"required"`
	Environment string `json:"environment" yaml:"environment" mapstructure:"environment" validate:"required"`
	Version     string `json:"version" yaml:"version" mapstructure:"version"`
}

// DatabaseConfig enables the usage audit log when MongoURI is set
type DatabaseConfig struct {
	MongoURI string `json:"mongodb_uri" yaml:"mongodb_uri" mapstructure:"mongodb_uri" validate:"omitempty,startswith=mongodb"`
}
