package usecase

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/fadilmartias/starplan/internal/dto"
	"github.com/fadilmartias/starplan/internal/mockdata"
	"github.com/fadilmartias/starplan/internal/model"
	"github.com/fadilmartias/starplan/internal/repository"
	"github.com/fadilmartias/starplan/internal/service"
	"github.com/fadilmartias/starplan/internal/util"
)

type ChatUsecase struct {
	chat        service.ChatCompleter
	transcriber service.Transcriber
	history     repository.ChatHistoryRepositoryInterface
}

func NewChatUsecase(chat service.ChatCompleter, transcriber service.Transcriber, history repository.ChatHistoryRepositoryInterface) *ChatUsecase {
	return &ChatUsecase{chat: chat, transcriber: transcriber, history: history}
}

func (uc *ChatUsecase) SendMessage(ctx context.Context, req dto.ChatMessageRequest) (dto.ChatMessageResponse, error) {
	call := util.ProviderCall[string]{
		Name: "chat",
		Mock: func() string { return mockdata.ChatResponse(req.Message) },
	}
	if uc.chat != nil {
		messages := make([]model.ChatMessage, 0, len(req.Context)+2)
		messages = append(messages, model.ChatMessage{Role: model.RoleSystem, Content: service.AssistantPrompt})
		for _, m := range req.Context {
			messages = append(messages, model.ChatMessage{Role: m.Role, Content: m.Content})
		}
		messages = append(messages, model.ChatMessage{Role: model.RoleUser, Content: req.Message})
		call.Live = func(ctx context.Context) (string, error) {
			return uc.chat.ChatCompletion(ctx, messages)
		}
	}

	reply, err := call.Do(ctx)
	if err != nil {
		return dto.ChatMessageResponse{}, err
	}

	now := time.Now().UTC()
	if req.UserID != "" && uc.history != nil {
		err := uc.history.Append(ctx, req.UserID,
			model.ChatMessage{Role: model.RoleUser, Content: req.Message, Timestamp: now},
			model.ChatMessage{Role: model.RoleAssistant, Content: reply, Timestamp: now},
		)
		if err != nil {
			log.Printf("[chat] could not save conversation for %s: %v", req.UserID, err)
		}
	}

	return dto.ChatMessageResponse{Response: reply, Timestamp: now}, nil
}

func (uc *ChatUsecase) History(ctx context.Context, userID string) ([]model.ChatMessage, error) {
	if uc.history == nil {
		return []model.ChatMessage{}, nil
	}
	return uc.history.History(ctx, userID)
}

// Transcribe turns the audio file at path into text and removes the file.
func (uc *ChatUsecase) Transcribe(ctx context.Context, path string) (dto.TranscriptionResponse, error) {
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("[chat] error deleting audio file: %v", err)
		}
	}()

	call := util.ProviderCall[string]{
		Name: "transcription",
		Mock: func() string { return mockdata.Transcription },
	}
	if uc.transcriber != nil {
		call.Live = func(ctx context.Context) (string, error) {
			return uc.transcriber.Transcribe(ctx, path)
		}
	}

	text, err := call.Do(ctx)
	if err != nil {
		return dto.TranscriptionResponse{}, err
	}
	return dto.TranscriptionResponse{Transcription: text, Timestamp: time.Now().UTC()}, nil
}
