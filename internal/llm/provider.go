package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/Harshitk-cp/mindshift/internal/domain"
)

// Provider constants
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
)

// ErrMissingAPIKey is returned by NewClient when a hosted provider has no credential.
// Callers treat it as the signal to run in degraded mode.
var ErrMissingAPIKey = errors.New("API key is not configured")

// Options tunes provider construction.
type Options struct {
	// BaseURL overrides the provider endpoint. Empty means the SDK default.
	BaseURL string
}

// DefaultModel returns the model used when none is configured.
func DefaultModel(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "gpt-4o-mini"
	case ProviderMock:
		return "mock"
	default:
		return "gemini-2.5-pro"
	}
}

// NewClient creates an LLM client based on the provider name.
// Returns ErrMissingAPIKey if a hosted provider has no key, and an error if the provider is unknown.
func NewClient(ctx context.Context, provider, apiKey string, opts Options) (domain.LLMClient, error) {
	switch provider {
	case ProviderGemini:
		if apiKey == "" {
			return nil, fmt.Errorf("%w: GEMINI_API_KEY is required for Gemini provider", ErrMissingAPIKey)
		}
		client, err := NewGeminiClient(ctx, apiKey, opts.BaseURL)
		if err != nil {
			return nil, err
		}
		return client, nil

	case ProviderOpenAI:
		if apiKey == "" {
			return nil, fmt.Errorf("%w: OPENAI_API_KEY is required for OpenAI provider", ErrMissingAPIKey)
		}
		return NewOpenAIClient(apiKey, opts.BaseURL), nil

	case ProviderMock:
		return NewMockClient(), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (valid options: gemini, openai, mock)", provider)
	}
}
