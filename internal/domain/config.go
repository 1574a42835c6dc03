package domain

import (
	"time"
)

// Config represents the main application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Anthropic AnthropicConfig `mapstructure:"anthropic"`
	PubMed    PubMedConfig    `mapstructure:"pubmed"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// AnthropicConfig represents the model completion provider configuration.
// APIKey may be empty at startup; an empty key only fails when a
// completion call is actually attempted.
type AnthropicConfig struct {
	APIKey                string `mapstructure:"api_key"`
	Model                 string `mapstructure:"model"`
	LongevityMaxTokens    int64  `mapstructure:"longevity_max_tokens"`
	InterventionMaxTokens int64  `mapstructure:"intervention_max_tokens"`
}

// PubMedConfig represents the literature search configuration
type PubMedConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	APIKey     string        `mapstructure:"api_key"`
	Timeout    time.Duration `mapstructure:"timeout"`
	RateLimit  int           `mapstructure:"rate_limit"`
	MaxResults int           `mapstructure:"max_results"`
	MaxURLs    int           `mapstructure:"max_urls"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
