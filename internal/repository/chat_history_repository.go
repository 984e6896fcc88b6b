package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/fadilmartias/starplan/internal/model"
	"github.com/redis/go-redis/v9"
)

const (
	chatHistoryLimit = 50
	chatHistoryTTL   = 7 * 24 * time.Hour
)

type ChatHistoryRepositoryInterface interface {
	Append(ctx context.Context, userID string, messages ...model.ChatMessage) error
	History(ctx context.Context, userID string) ([]model.ChatMessage, error)
}

// ChatHistoryRepository keeps the last chatHistoryLimit turns per user in a Redis list.
type ChatHistoryRepository struct {
	rdb *redis.Client
}

func NewChatHistoryRepository(rdb *redis.Client) *ChatHistoryRepository {
	return &ChatHistoryRepository{rdb}
}

func chatKey(userID string) string {
	return "chat:history:" + userID
}

func (r *ChatHistoryRepository) Append(ctx context.Context, userID string, messages ...model.ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}
	values := make([]any, 0, len(messages))
	for _, m := range messages {
		b, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("encode chat message: %w", err)
		}
		values = append(values, b)
	}

	key := chatKey(userID)
	pipe := r.rdb.TxPipeline()
	pipe.RPush(ctx, key, values...)
	pipe.LTrim(ctx, key, -chatHistoryLimit, -1)
	pipe.Expire(ctx, key, chatHistoryTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *ChatHistoryRepository) History(ctx context.Context, userID string) ([]model.ChatMessage, error) {
	raw, err := r.rdb.LRange(ctx, chatKey(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	history := make([]model.ChatMessage, 0, len(raw))
	for _, item := range raw {
		var m model.ChatMessage
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			return nil, fmt.Errorf("decode chat message: %w", err)
		}
		history = append(history, m)
	}
	return history, nil
}

type MemoryChatHistoryRepository struct {
	mu      sync.Mutex
	history map[string][]model.ChatMessage
}

func NewMemoryChatHistoryRepository() *MemoryChatHistoryRepository {
	return &MemoryChatHistoryRepository{history: make(map[string][]model.ChatMessage)}
}

func (r *MemoryChatHistoryRepository) Append(_ context.Context, userID string, messages ...model.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	h := append(r.history[userID], messages...)
	if len(h) > chatHistoryLimit {
		h = h[len(h)-chatHistoryLimit:]
	}
	r.history[userID] = h
	return nil
}

func (r *MemoryChatHistoryRepository) History(_ context.Context, userID string) ([]model.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.ChatMessage, len(r.history[userID]))
	copy(out, r.history[userID])
	return out, nil
}
