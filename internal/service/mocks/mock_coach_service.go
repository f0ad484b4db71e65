package mocks

import (
	"context"

	"coachapi/internal/model"
	"coachapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockCoachService struct {
	mock.Mock
}

func (m *MockCoachService) StartThread(ctx context.Context, userID, title string) (*model.ChatThread, error) {
	args := m.Called(ctx, userID, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChatThread), args.Error(1)
}

func (m *MockCoachService) ListThreads(ctx context.Context, userID string, limit, offset int) (*service.ThreadListResult, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ThreadListResult), args.Error(1)
}

func (m *MockCoachService) SendMessage(ctx context.Context, threadID, content string) (*service.Exchange, error) {
	args := m.Called(ctx, threadID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Exchange), args.Error(1)
}

func (m *MockCoachService) History(ctx context.Context, threadID string, limit, offset int) (*service.MessageListResult, error) {
	args := m.Called(ctx, threadID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MessageListResult), args.Error(1)
}
