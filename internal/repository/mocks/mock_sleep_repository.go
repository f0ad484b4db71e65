package mocks

import (
	"context"
	"time"

	"coachapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockSleepRepository struct {
	mock.Mock
}

func (m *MockSleepRepository) Create(ctx context.Context, s *model.SleepSession) (*model.SleepSession, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SleepSession), args.Error(1)
}

func (m *MockSleepRepository) ListSince(ctx context.Context, userID string, since time.Time) ([]model.SleepSession, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SleepSession), args.Error(1)
}

func (m *MockSleepRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
