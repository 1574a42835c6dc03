package domain

import (
	"context"
)

// CompletionClient issues a single completion call to the external model
// provider. Errors propagate to the caller; there is no fallback for a
// failed call, only for a successful but unparsable reply.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string, maxTokens int64) (string, error)
}

// LiteratureSearcher resolves a free-text query into canonical article URLs.
// Implementations never return an error: any upstream failure degrades to an
// empty result.
type LiteratureSearcher interface {
	Search(ctx context.Context, query string) []string
}

// ConfigManager defines the interface for configuration management
type ConfigManager interface {
	GetConfig() *Config
	GetServerConfig() *ServerConfig
	GetAnthropicConfig() *AnthropicConfig
	GetPubMedConfig() *PubMedConfig
	Reload() error
	Validate() error
}
