package mocks

import (
	"context"

	"coachapi/internal/model"
	"coachapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockWorkoutService struct {
	mock.Mock
}

func (m *MockWorkoutService) LogWorkout(ctx context.Context, userID string, in service.LogWorkoutInput) (*model.Workout, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Workout), args.Error(1)
}

func (m *MockWorkoutService) List(ctx context.Context, userID string, limit, offset int) (*service.WorkoutListResult, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.WorkoutListResult), args.Error(1)
}

func (m *MockWorkoutService) Recommend(goal string) model.WorkoutPlan {
	args := m.Called(goal)
	return args.Get(0).(model.WorkoutPlan)
}

func (m *MockWorkoutService) DeleteWorkout(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
