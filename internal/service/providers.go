package service

import (
	"context"
	"errors"
	"log"

	"github.com/fadilmartias/starplan/internal/config"
	"github.com/fadilmartias/starplan/internal/dto"
	"github.com/fadilmartias/starplan/internal/model"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrProviderResponse = errors.New("provider returned an error")
)

type ChatCompleter interface {
	ChatCompletion(ctx context.Context, messages []model.ChatMessage) (string, error)
	// CompleteJSON asks for a JSON object and returns it without code fences.
	CompleteJSON(ctx context.Context, system, prompt string) (string, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}

type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type JobStore interface {
	ListJobs(ctx context.Context) ([]model.Job, error)
	CreateJob(ctx context.Context, job model.Job) (model.Job, error)
}

type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (model.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, update dto.ProfileUpdate) (model.UserProfile, error)
	CreateProfile(ctx context.Context, profile model.UserProfile) (model.UserProfile, error)
}

// Providers holds the external capabilities resolved at startup. A nil field
// means the capability is not configured and callers use mock data.
type Providers struct {
	Chat        ChatCompleter
	Transcriber Transcriber
	Embedder    Embedder
	Jobs        JobStore
	Profiles    ProfileStore
}

// NewProviders builds every provider whose credentials are present.
func NewProviders(ctx context.Context) Providers {
	var p Providers

	if openAIConfig := config.LoadOpenAIConfig(); openAIConfig.Enabled() {
		openAI := NewOpenAIService(openAIConfig)
		p.Chat = openAI
		p.Transcriber = openAI
		p.Embedder = openAI
		log.Printf("OpenAI provider enabled (chat model %s)", openAIConfig.ChatModel)
	} else {
		log.Println("OPENAI_API_KEY not set, chat, transcription and embeddings use mock data")
	}

	if geminiConfig := config.LoadGeminiConfig(); geminiConfig.Enabled() {
		gemini, err := NewGeminiService(ctx, geminiConfig)
		if err != nil {
			log.Printf("Gemini embeddings disabled: %v", err)
		} else {
			p.Embedder = gemini
			log.Printf("Gemini embedding provider enabled (%s)", geminiConfig.EmbeddingModel)
		}
	}

	if supabaseConfig := config.LoadSupabaseConfig(); supabaseConfig.Enabled() {
		supabase := NewSupabaseService(supabaseConfig)
		p.Jobs = supabase
		p.Profiles = supabase
		log.Println("Supabase provider enabled")
	} else {
		log.Println("Supabase not configured, jobs and profiles use mock data")
	}

	return p
}
