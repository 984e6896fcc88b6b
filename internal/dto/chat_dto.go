package dto

import (
	"time"

	"github.com/fadilmartias/starplan/internal/model"
)

type ChatMessageRequest struct {
	Message string              `json:"message"`
	Context []model.ChatMessage `json:"context"`
	UserID  string              `json:"userId"`
}

type ChatMessageResponse struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

type TranscriptionResponse struct {
	Transcription string    `json:"transcription"`
	Timestamp     time.Time `json:"timestamp"`
}
