package mocks

import (
	"context"

	"coachapi/internal/model"
	"coachapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockWorkoutRepository struct {
	mock.Mock
}

func (m *MockWorkoutRepository) Create(ctx context.Context, w *model.Workout) (*model.Workout, error) {
	args := m.Called(ctx, w)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Workout), args.Error(1)
}

func (m *MockWorkoutRepository) FindByID(ctx context.Context, id string) (*model.Workout, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Workout), args.Error(1)
}

func (m *MockWorkoutRepository) List(ctx context.Context, userID string, pq repository.PageQuery) (*repository.PageResult[model.Workout], error) {
	args := m.Called(ctx, userID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Workout]), args.Error(1)
}

func (m *MockWorkoutRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
