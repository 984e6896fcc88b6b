package config

import (
	"os"
	"sync"
	"time"
)

type OpenAIConfig struct {
	APIKey             string
	BaseURL            string
	ChatModel          string
	EmbeddingModel     string
	TranscriptionModel string
	Timeout            time.Duration
	MaxRetries         int
}

var (
	openAIConfig *OpenAIConfig
	openAIOnce   sync.Once
)

func LoadOpenAIConfig() *OpenAIConfig {
	openAIOnce.Do(func() {
		openAIConfig = newOpenAIConfig()
	})
	return openAIConfig
}

func newOpenAIConfig() *OpenAIConfig {
	return &OpenAIConfig{
		APIKey:             os.Getenv("OPENAI_API_KEY"),
		BaseURL:            getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		ChatModel:          getEnv("OPENAI_CHAT_MODEL", "gpt-4"),
		EmbeddingModel:     getEnv("OPENAI_EMBEDDING_MODEL", "text-embedding-ada-002"),
		TranscriptionModel: getEnv("OPENAI_TRANSCRIPTION_MODEL", "whisper-1"),
		Timeout:            time.Duration(getEnvInt("OPENAI_TIMEOUT_SECONDS", 90)) * time.Second,
		MaxRetries:         getEnvInt("OPENAI_MAX_RETRIES", 0),
	}
}

// Enabled reports whether the OpenAI key is present. Without it chat,
// transcription and embeddings run in mock mode.
func (c *OpenAIConfig) Enabled() bool {
	return c.APIKey != ""
}
