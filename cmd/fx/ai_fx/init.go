package ai_fx

import (
	"context"
	"io"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"cicerone/pkg/utils"
)

var Module = fx.Provide(
	ProvideAIClient)

// AIConfig holds configuration for the text-generation client.
type AIConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideAIClient builds the configured text-generation client, or nil
// when no credential is present. A nil client disables the delegated
// optimizer and narration generation; the rest of the app keeps working
// on heuristics and stored descriptions.
func ProvideAIClient(lc fx.Lifecycle) (utils.AIClientInterface, error) {
	config := getAIConfig()
	if config.APIKey == "" {
		log.Printf("No AI credential configured; delegated optimization and narration generation disabled")
		return nil, nil
	}

	log.Printf("Initializing %s client with model: %s", config.Provider, config.Model)
	client, err := utils.NewAIClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		return nil, err
	}

	if closer, ok := client.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})
	}
	return client, nil
}

func getAIConfig() AIConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
	}

	return AIConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
