package config

import (
	"os"
	"strings"
	"sync"
)

const (
	EmbeddingProviderOpenAI = "openai"
	EmbeddingProviderGemini = "gemini"
)

type GeminiConfig struct {
	APIKey            string
	EmbeddingModel    string
	EmbeddingProvider string
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		geminiConfig = &GeminiConfig{
			APIKey:            os.Getenv("GEMINI_API_KEY"),
			EmbeddingModel:    getEnv("GEMINI_EMBEDDING_MODEL", "gemini-embedding-001"),
			EmbeddingProvider: strings.ToLower(getEnv("EMBEDDING_PROVIDER", EmbeddingProviderOpenAI)),
		}
	})
	return geminiConfig
}

// Enabled reports whether Gemini was picked as the embedding provider and has a key.
func (c *GeminiConfig) Enabled() bool {
	return c.EmbeddingProvider == EmbeddingProviderGemini && c.APIKey != ""
}
