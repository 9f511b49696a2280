package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// AIClientInterface is the text-generation boundary shared by the
// delegated route optimizer and the narration service. Implementations
// must be safe for concurrent use.
type AIClientInterface interface {
	// CompleteText sends a single prompt and returns the raw completion.
	CompleteText(ctx context.Context, prompt string) (string, error)
	// GetEmbedding returns a 1536-dimension vector for the given text.
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

// NewAIClient builds either an OpenAI or Gemini client based on config.
func NewAIClient(provider, apiKey, model string) (AIClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIClient(apiKey, model), nil
	case "gemini":
		return NewGeminiClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
