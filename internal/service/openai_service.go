package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadilmartias/starplan/internal/config"
	"github.com/fadilmartias/starplan/internal/model"
	"github.com/fadilmartias/starplan/internal/util"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// AssistantPrompt is the system prompt of the chat assistant.
const AssistantPrompt = "You are a helpful job application assistant. You help users create resumes, write cover letters, and prepare for interviews."

type OpenAIService struct {
	client             *resty.Client
	ChatModel          string
	EmbeddingModel     string
	TranscriptionModel string
}

func NewOpenAIService(cfg *config.OpenAIConfig) *OpenAIService {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.MaxRetries)

	return &OpenAIService{
		client:             client,
		ChatModel:          cfg.ChatModel,
		EmbeddingModel:     cfg.EmbeddingModel,
		TranscriptionModel: cfg.TranscriptionModel,
	}
}

func (s *OpenAIService) ChatCompletion(ctx context.Context, messages []model.ChatMessage) (string, error) {
	return s.complete(ctx, map[string]any{
		"model":    s.ChatModel,
		"messages": toWireMessages(messages),
	})
}

func (s *OpenAIService) CompleteJSON(ctx context.Context, system, prompt string) (string, error) {
	text, err := s.complete(ctx, map[string]any{
		"model": s.ChatModel,
		"messages": toWireMessages([]model.ChatMessage{
			{Role: model.RoleSystem, Content: system},
			{Role: model.RoleUser, Content: prompt},
		}),
		"response_format": map[string]string{"type": "json_object"},
		"temperature":     0.2,
	})
	if err != nil {
		return "", err
	}
	return util.CleanJSON(text), nil
}

func (s *OpenAIService) complete(ctx context.Context, payload map[string]any) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return "", err
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty completion", ErrProviderResponse)
	}
	return text, nil
}

func (s *OpenAIService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	trimmedText := strings.TrimSpace(text)
	if trimmedText == "" {
		return nil, fmt.Errorf("text for embedding cannot be empty")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model": s.EmbeddingModel,
			"input": trimmedText,
		}).
		Post("/embeddings")
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}

	values := gjson.Get(resp.String(), "data.0.embedding").Array()
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: embedding vector is empty", ErrProviderResponse)
	}
	embedding := make([]float32, len(values))
	for i, v := range values {
		embedding[i] = float32(v.Float())
	}
	return embedding, nil
}

func (s *OpenAIService) Transcribe(ctx context.Context, path string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetFile("file", path).
		SetFormData(map[string]string{"model": s.TranscriptionModel}).
		Post("/audio/transcriptions")
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return "", err
	}
	return gjson.Get(resp.String(), "text").String(), nil
}

func toWireMessages(messages []model.ChatMessage) []map[string]string {
	out := make([]map[string]string, 0, len(messages))
	for _, m := range messages {
		out = append(out, map[string]string{"role": m.Role, "content": m.Content})
	}
	return out
}

// checkResponse turns a non-2xx reply into ErrProviderResponse with the
// provider's own message when it sent one.
func checkResponse(resp *resty.Response) error {
	if !resp.IsError() {
		return nil
	}
	body := resp.String()
	msg := gjson.Get(body, "error.message").String()
	if msg == "" {
		msg = gjson.Get(body, "message").String()
	}
	if msg == "" {
		msg = strings.TrimSpace(body)
	}
	return fmt.Errorf("%w: status %d: %s", ErrProviderResponse, resp.StatusCode(), msg)
}
