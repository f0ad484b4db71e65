package mocks

import (
	"context"

	"coachapi/internal/model"
	"coachapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockSleepService struct {
	mock.Mock
}

func (m *MockSleepService) LogSession(ctx context.Context, userID string, in service.LogSleepInput) (*model.SleepSession, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SleepSession), args.Error(1)
}

func (m *MockSleepService) Recent(ctx context.Context, userID string, days int) ([]model.SleepSession, error) {
	args := m.Called(ctx, userID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SleepSession), args.Error(1)
}

func (m *MockSleepService) Analyze(ctx context.Context, userID string, days int) (*model.SleepAnalysis, error) {
	args := m.Called(ctx, userID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SleepAnalysis), args.Error(1)
}
