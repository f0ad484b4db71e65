package mocks

import (
	"context"
	"time"

	"coachapi/internal/model"
	"coachapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockNutritionService struct {
	mock.Mock
}

func (m *MockNutritionService) LogMeal(ctx context.Context, userID string, in service.LogMealInput) (*model.Meal, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Meal), args.Error(1)
}

func (m *MockNutritionService) MealsForDay(ctx context.Context, userID, date string, loc *time.Location) ([]model.Meal, error) {
	args := m.Called(ctx, userID, date, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Meal), args.Error(1)
}

func (m *MockNutritionService) DailySummary(ctx context.Context, userID, date string, loc *time.Location) (*model.DailySummary, error) {
	args := m.Called(ctx, userID, date, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DailySummary), args.Error(1)
}

func (m *MockNutritionService) DeleteMeal(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
