package llm

import (
	"context"
	"fmt"
	"strings"
)

// NewProvider creates a provider based on configuration. A missing API key is
// a recognized configuration state, not an error: the provider comes back nil
// and callers degrade to empty extraction.
func NewProvider(ctx context.Context, config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "gemini", "google":
		if config.APIKey == "" {
			return nil, nil
		}
		return NewGeminiProvider(ctx, config)

	case "openai":
		if config.APIKey == "" {
			return nil, nil
		}
		return NewOpenAIProvider(config)

	case "":
		// No provider configured - extraction disabled
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: gemini, openai)", config.Provider)
	}
}
