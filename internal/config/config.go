package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/longevity-index-server/internal/domain"
)

// Manager implements the ConfigManager interface using Viper
type Manager struct {
	config *domain.Config
}

// NewManager creates a new configuration manager
func NewManager() (*Manager, error) {
	m := &Manager{}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

// loadConfig loads configuration from various sources
func (m *Manager) loadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/longevity-index/")

	viper.SetEnvPrefix("LONGEVITY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// The provider credential keeps its conventional unprefixed name.
	// An absent key is tolerated here and only fails when a completion
	// call is attempted.
	if err := viper.BindEnv("anthropic.api_key", "ANTHROPIC_API_KEY"); err != nil {
		return fmt.Errorf("failed to bind credential env var: %w", err)
	}

	m.setDefaults()

	// Config file is optional; defaults and environment variables apply
	// when it is absent.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &domain.Config{}
	if err := viper.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values
func (m *Manager) setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// Model provider defaults
	viper.SetDefault("anthropic.api_key", "")
	viper.SetDefault("anthropic.model", "claude-opus-4-5")
	viper.SetDefault("anthropic.longevity_max_tokens", 1200)
	viper.SetDefault("anthropic.intervention_max_tokens", 900)

	// Literature search defaults
	viper.SetDefault("pubmed.base_url", "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/")
	viper.SetDefault("pubmed.api_key", "")
	viper.SetDefault("pubmed.timeout", "10s")
	viper.SetDefault("pubmed.rate_limit", 3)
	viper.SetDefault("pubmed.max_results", 5)
	viper.SetDefault("pubmed.max_urls", 3)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
}

// GetConfig returns the complete configuration
func (m *Manager) GetConfig() *domain.Config {
	return m.config
}

// GetServerConfig returns server configuration
func (m *Manager) GetServerConfig() *domain.ServerConfig {
	return &m.config.Server
}

// GetAnthropicConfig returns model provider configuration
func (m *Manager) GetAnthropicConfig() *domain.AnthropicConfig {
	return &m.config.Anthropic
}

// GetPubMedConfig returns literature search configuration
func (m *Manager) GetPubMedConfig() *domain.PubMedConfig {
	return &m.config.PubMed
}

// Reload reloads the configuration
func (m *Manager) Reload() error {
	return m.loadConfig()
}

// Validate validates the configuration
func (m *Manager) Validate() error {
	config := m.config

	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Anthropic.Model == "" {
		return fmt.Errorf("anthropic model is required")
	}
	if config.Anthropic.LongevityMaxTokens <= 0 || config.Anthropic.InterventionMaxTokens <= 0 {
		return fmt.Errorf("max token budgets must be positive")
	}

	if config.PubMed.BaseURL == "" {
		return fmt.Errorf("PubMed base URL is required")
	}
	if config.PubMed.Timeout <= 0 {
		return fmt.Errorf("PubMed timeout must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	return nil
}
