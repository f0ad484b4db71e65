package mocks

import (
	"context"
	"io"
	"time"

	"coachapi/internal/model"
	"coachapi/internal/service"
	"coachapi/internal/storage"
	"github.com/stretchr/testify/mock"
)

type MockPhotoService struct {
	mock.Mock
}

func (m *MockPhotoService) Upload(ctx context.Context, userID string, r io.Reader, originalFilename, contentType string, size int64, note string, takenAt time.Time) (*model.ProgressPhoto, error) {
	args := m.Called(ctx, userID, r, originalFilename, contentType, size, note, takenAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProgressPhoto), args.Error(1)
}

func (m *MockPhotoService) List(ctx context.Context, userID string, limit, offset int) (*service.PhotoListResult, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PhotoListResult), args.Error(1)
}

func (m *MockPhotoService) Download(ctx context.Context, id string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Get(1).(storage.ObjectInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}

func (m *MockPhotoService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
