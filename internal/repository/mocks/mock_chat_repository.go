package mocks

import (
	"context"

	"coachapi/internal/model"
	"coachapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) CreateThread(ctx context.Context, t *model.ChatThread) (*model.ChatThread, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChatThread), args.Error(1)
}

func (m *MockChatRepository) FindThreadByID(ctx context.Context, id string) (*model.ChatThread, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChatThread), args.Error(1)
}

func (m *MockChatRepository) ListThreads(ctx context.Context, userID string, pq repository.PageQuery) (*repository.PageResult[model.ChatThread], error) {
	args := m.Called(ctx, userID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.ChatThread]), args.Error(1)
}

func (m *MockChatRepository) MaxSeq(ctx context.Context, threadID string) (int64, error) {
	args := m.Called(ctx, threadID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockChatRepository) CreateMessages(ctx context.Context, msgs []*model.ChatMessage) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockChatRepository) ListMessages(ctx context.Context, threadID string, pq repository.PageQuery) (*repository.PageResult[model.ChatMessage], error) {
	args := m.Called(ctx, threadID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.ChatMessage]), args.Error(1)
}
