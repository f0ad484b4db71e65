package repository

import (
	"context"

	"coachapi/internal/model"
)

// ChatRepository defines data access for coaching threads and messages.
type ChatRepository interface {
	// CreateThread inserts a new thread record.
	CreateThread(ctx context.Context, t *model.ChatThread) (*model.ChatThread, error)

	// FindThreadByID returns a thread by its ID.
	FindThreadByID(ctx context.Context, id string) (*model.ChatThread, error)

	// ListThreads returns a user's threads, newest first.
	ListThreads(ctx context.Context, userID string, pq PageQuery) (*PageResult[model.ChatThread], error)

	// MaxSeq returns the highest message seq in a thread, 0 when the thread is empty.
	MaxSeq(ctx context.Context, threadID string) (int64, error)

	// CreateMessages inserts the given messages in order.
	CreateMessages(ctx context.Context, msgs []*model.ChatMessage) error

	// ListMessages returns messages ordered by seq ascending.
	ListMessages(ctx context.Context, threadID string, pq PageQuery) (*PageResult[model.ChatMessage], error)
}
