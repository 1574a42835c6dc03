package external

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/sirupsen/logrus"

	"github.com/longevity-index-server/internal/domain"
)

// AnthropicClient issues single completion calls to the Anthropic Messages
// API. An empty API key is tolerated at construction; the call itself fails
// with an auth error from the provider.
type AnthropicClient struct {
	client anthropic.Client
	model  anthropic.Model
	logger *logrus.Logger
}

// NewAnthropicClient creates a new completion client
func NewAnthropicClient(config domain.AnthropicConfig, logger *logrus.Logger) *AnthropicClient {
	model := anthropic.Model(config.Model)
	if config.Model == "" {
		model = anthropic.Model("claude-opus-4-5")
	}
	return &AnthropicClient{
		client: anthropic.NewClient(option.WithAPIKey(config.APIKey)),
		model:  model,
		logger: logger,
	}
}

// Complete implements domain.CompletionClient. Errors propagate to the
// caller; no timeout is applied beyond the request context's own lifecycle.
func (c *AnthropicClient) Complete(ctx context.Context, prompt string, maxTokens int64) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			c.logger.WithFields(logrus.Fields{
				"model":         c.model,
				"input_tokens":  message.Usage.InputTokens,
				"output_tokens": message.Usage.OutputTokens,
			}).Debug("Completion call succeeded")
			return block.Text, nil
		}
	}

	return "", fmt.Errorf("no text content in model response")
}
