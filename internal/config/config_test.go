package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewAppConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("UPLOAD_DIR", "")

	cfg := newAppConfig()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":5000", cfg.Port)
	assert.Equal(t, "./uploads", cfg.UploadDir)
	assert.Equal(t, 50, cfg.RateLimitMax)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.ExposeErrors())
}

func TestNewAppConfig_ExposeErrorsOnlyWhenDevelopmentSet(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	assert.True(t, newAppConfig().ExposeErrors())

	t.Setenv("APP_ENV", "staging")
	assert.False(t, newAppConfig().ExposeErrors())

	t.Setenv("APP_ENV", "production")
	assert.False(t, newAppConfig().ExposeErrors())
}

func TestNewAppConfig_PortWithoutColon(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("RATE_LIMIT_MAX", "not-a-number")

	cfg := newAppConfig()

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, 50, cfg.RateLimitMax)
}

func TestNewOpenAIConfig_MockModeWithoutKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_TIMEOUT_SECONDS", "")

	cfg := newOpenAIConfig()

	assert.False(t, cfg.Enabled())
	assert.Equal(t, "gpt-4", cfg.ChatModel)
	assert.Equal(t, "text-embedding-ada-002", cfg.EmbeddingModel)
	assert.Equal(t, "whisper-1", cfg.TranscriptionModel)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
}

func TestNewOpenAIConfig_Enabled(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_TIMEOUT_SECONDS", "5")

	cfg := newOpenAIConfig()

	assert.True(t, cfg.Enabled())
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestSupabaseConfig_Enabled(t *testing.T) {
	assert.False(t, (&SupabaseConfig{URL: "https://x.supabase.co"}).Enabled())
	assert.False(t, (&SupabaseConfig{AnonKey: "key"}).Enabled())

	cfg := &SupabaseConfig{URL: "https://x.supabase.co", AnonKey: "key"}
	assert.True(t, cfg.Enabled())
	assert.Equal(t, "https://x.supabase.co/rest/v1", cfg.RestURL())
}

func TestGeminiConfig_EnabledOnlyWhenSelected(t *testing.T) {
	assert.False(t, (&GeminiConfig{APIKey: "k", EmbeddingProvider: EmbeddingProviderOpenAI}).Enabled())
	assert.False(t, (&GeminiConfig{EmbeddingProvider: EmbeddingProviderGemini}).Enabled())
	assert.True(t, (&GeminiConfig{APIKey: "k", EmbeddingProvider: EmbeddingProviderGemini}).Enabled())
}

func TestDBConfig_DSN(t *testing.T) {
	cfg := &DBConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "jobmate", SSLMode: "disable", TimeZone: "UTC"}

	assert.True(t, cfg.Enabled())
	assert.Equal(t, "host=db user=u password=p dbname=jobmate port=5432 sslmode=disable TimeZone=UTC", cfg.DSN())
}
