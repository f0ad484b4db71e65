package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"coachapi/internal/model"
	"coachapi/internal/repository"
	repoMocks "coachapi/internal/repository/mocks"
	"coachapi/internal/storage"
	storageMocks "coachapi/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPhotoService_Upload(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		userID      string
		reader      func() *strings.Reader
		setupMocks  func(mStore *storageMocks.MockStorage, mRepo *repoMocks.MockPhotoRepository, mUsers *repoMocks.MockUserRepository)
		wantErr     error
		wantErrText string
	}{
		{
			name:   "happy path",
			userID: "u1",
			reader: func() *strings.Reader { return strings.NewReader("jpeg bytes") },
			setupMocks: func(mStore *storageMocks.MockStorage, mRepo *repoMocks.MockPhotoRepository, mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindByID", ctx, "u1").Return(&model.User{ID: "u1"}, nil)
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "photos/u1/") && strings.HasSuffix(key, ".jpg")
				}), mock.Anything, mock.Anything).
					Return(func(ctx context.Context, key string, _ io.Reader, _ storage.PutObjectOptions) storage.ObjectInfo {
						return storage.ObjectInfo{Key: key, Size: 10, ContentType: "image/jpeg"}
					}, nil)
				mRepo.On("Create", ctx, mock.MatchedBy(func(p *model.ProgressPhoto) bool {
					return p.UserID == "u1" && strings.HasPrefix(p.StoragePath, "photos/u1/")
				})).Return(&model.ProgressPhoto{ID: "p1", UserID: "u1"}, nil)
			},
		},
		{
			name:       "nil reader",
			userID:     "u1",
			reader:     func() *strings.Reader { return nil },
			setupMocks: func(mStore *storageMocks.MockStorage, mRepo *repoMocks.MockPhotoRepository, mUsers *repoMocks.MockUserRepository) {},
			wantErr:    ErrReaderNil,
		},
		{
			name:       "missing user id",
			userID:     "",
			reader:     func() *strings.Reader { return strings.NewReader("x") },
			setupMocks: func(mStore *storageMocks.MockStorage, mRepo *repoMocks.MockPhotoRepository, mUsers *repoMocks.MockUserRepository) {},
			wantErr:    ErrIDRequired,
		},
		{
			name:   "user not found",
			userID: "ghost",
			reader: func() *strings.Reader { return strings.NewReader("x") },
			setupMocks: func(mStore *storageMocks.MockStorage, mRepo *repoMocks.MockPhotoRepository, mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindByID", ctx, "ghost").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name:   "storage failure",
			userID: "u1",
			reader: func() *strings.Reader { return strings.NewReader("x") },
			setupMocks: func(mStore *storageMocks.MockStorage, mRepo *repoMocks.MockPhotoRepository, mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindByID", ctx, "u1").Return(&model.User{ID: "u1"}, nil)
				mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("bucket unreachable"))
			},
			wantErrText: "upload to storage",
		},
		{
			name:   "db failure rolls back storage",
			userID: "u1",
			reader: func() *strings.Reader { return strings.NewReader("x") },
			setupMocks: func(mStore *storageMocks.MockStorage, mRepo *repoMocks.MockPhotoRepository, mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindByID", ctx, "u1").Return(&model.User{ID: "u1"}, nil)
				mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{Key: "photos/u1/k.jpg", Size: 1, ContentType: "image/jpeg"}, nil)
				mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("insert failed"))
				mStore.On("Delete", ctx, mock.Anything).Return(nil)
			},
			wantErrText: "db save failed",
		},
		{
			name:   "db failure and rollback failure are both reported",
			userID: "u1",
			reader: func() *strings.Reader { return strings.NewReader("x") },
			setupMocks: func(mStore *storageMocks.MockStorage, mRepo *repoMocks.MockPhotoRepository, mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindByID", ctx, "u1").Return(&model.User{ID: "u1"}, nil)
				mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{Key: "photos/u1/k.jpg", Size: 1, ContentType: "image/jpeg"}, nil)
				mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("insert failed"))
				mStore.On("Delete", ctx, mock.Anything).Return(errors.New("delete failed"))
			},
			wantErrText: "rollback delete failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storageMocks.MockStorage)
			mRepo := new(repoMocks.MockPhotoRepository)
			mUsers := new(repoMocks.MockUserRepository)
			svc := NewPhotoService(mStore, mRepo, mUsers)

			tt.setupMocks(mStore, mRepo, mUsers)

			var r io.Reader
			if got := tt.reader(); got != nil {
				r = got
			}
			photo, err := svc.Upload(ctx, tt.userID, r, "before.jpg", "image/jpeg", 10, "", time.Time{})

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrText != "":
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrText)
			default:
				assert.NoError(t, err)
				assert.NotNil(t, photo)
			}
			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
			mUsers.AssertExpectations(t)
		})
	}
}

func TestPhotoService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("presigns each photo", func(t *testing.T) {
		mStore := new(storageMocks.MockStorage)
		mRepo := new(repoMocks.MockPhotoRepository)
		svc := NewPhotoService(mStore, mRepo, nil)

		mRepo.On("ListByUser", ctx, "u1", repository.PageQuery{Limit: 10, Offset: 0}).
			Return(&repository.PageResult[model.ProgressPhoto]{
				Items: []model.ProgressPhoto{
					{ID: "p1", StoragePath: "photos/u1/a.jpg"},
					{ID: "p2", StoragePath: "photos/u1/b.jpg"},
				},
				Total: 2,
			}, nil)
		mStore.On("PresignGet", ctx, "photos/u1/a.jpg", presignExpiry).Return("https://minio/a", nil)
		mStore.On("PresignGet", ctx, "photos/u1/b.jpg", presignExpiry).Return("https://minio/b", nil)

		res, err := svc.List(ctx, "u1", 10, 0)
		assert.NoError(t, err)
		assert.Len(t, res.Items, 2)
		assert.Equal(t, "https://minio/a", res.Items[0].URL)
		assert.Equal(t, "https://minio/b", res.Items[1].URL)
		mStore.AssertExpectations(t)
	})

	t.Run("presign failure aborts the listing", func(t *testing.T) {
		mStore := new(storageMocks.MockStorage)
		mRepo := new(repoMocks.MockPhotoRepository)
		svc := NewPhotoService(mStore, mRepo, nil)

		mRepo.On("ListByUser", ctx, "u1", repository.PageQuery{Limit: 10, Offset: 0}).
			Return(&repository.PageResult[model.ProgressPhoto]{
				Items: []model.ProgressPhoto{{ID: "p1", StoragePath: "photos/u1/a.jpg"}},
				Total: 1,
			}, nil)
		mStore.On("PresignGet", ctx, "photos/u1/a.jpg", presignExpiry).Return("", errors.New("presign failed"))

		_, err := svc.List(ctx, "u1", 10, 0)
		assert.Error(t, err)
	})
}

func TestPhotoService_Download(t *testing.T) {
	ctx := context.Background()

	t.Run("streams the stored object", func(t *testing.T) {
		mStore := new(storageMocks.MockStorage)
		mRepo := new(repoMocks.MockPhotoRepository)
		svc := NewPhotoService(mStore, mRepo, nil)

		mRepo.On("FindByID", ctx, "p1").Return(&model.ProgressPhoto{ID: "p1", StoragePath: "photos/u1/a.jpg"}, nil)
		mStore.On("Get", ctx, "photos/u1/a.jpg").Return(
			io.NopCloser(strings.NewReader("jpeg bytes")),
			storage.ObjectInfo{Key: "photos/u1/a.jpg", Size: 10, ContentType: "image/jpeg"},
			nil,
		)

		rc, info, err := svc.Download(ctx, "p1")
		assert.NoError(t, err)
		assert.Equal(t, "image/jpeg", info.ContentType)

		data, _ := io.ReadAll(rc)
		rc.Close()
		assert.Equal(t, "jpeg bytes", string(data))
		mStore.AssertExpectations(t)
		mRepo.AssertExpectations(t)
	})

	t.Run("photo not found", func(t *testing.T) {
		mStore := new(storageMocks.MockStorage)
		mRepo := new(repoMocks.MockPhotoRepository)
		svc := NewPhotoService(mStore, mRepo, nil)

		mRepo.On("FindByID", ctx, "nope").Return(nil, sql.ErrNoRows)

		_, _, err := svc.Download(ctx, "nope")
		assert.ErrorIs(t, err, ErrPhotoNotFound)
		mStore.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("storage get failure", func(t *testing.T) {
		mStore := new(storageMocks.MockStorage)
		mRepo := new(repoMocks.MockPhotoRepository)
		svc := NewPhotoService(mStore, mRepo, nil)

		mRepo.On("FindByID", ctx, "p1").Return(&model.ProgressPhoto{ID: "p1", StoragePath: "photos/u1/a.jpg"}, nil)
		mStore.On("Get", ctx, "photos/u1/a.jpg").Return(nil, storage.ObjectInfo{}, errors.New("object gone"))

		_, _, err := svc.Download(ctx, "p1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "get photos/u1/a.jpg")
	})

	t.Run("missing id", func(t *testing.T) {
		svc := NewPhotoService(nil, nil, nil)

		_, _, err := svc.Download(ctx, "")
		assert.ErrorIs(t, err, ErrIDRequired)
	})
}

func TestPhotoService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(mStore *storageMocks.MockStorage, mRepo *repoMocks.MockPhotoRepository)
		wantErr    error
	}{
		{
			name: "happy path - storage first, then record",
			id:   "p1",
			setupMocks: func(mStore *storageMocks.MockStorage, mRepo *repoMocks.MockPhotoRepository) {
				mRepo.On("FindByID", ctx, "p1").Return(&model.ProgressPhoto{ID: "p1", StoragePath: "photos/u1/a.jpg"}, nil)
				mStore.On("Delete", ctx, "photos/u1/a.jpg").Return(nil)
				mRepo.On("Delete", ctx, "p1").Return(nil)
			},
		},
		{
			name: "photo not found",
			id:   "nope",
			setupMocks: func(mStore *storageMocks.MockStorage, mRepo *repoMocks.MockPhotoRepository) {
				mRepo.On("FindByID", ctx, "nope").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrPhotoNotFound,
		},
		{
			name: "storage delete failure keeps the record",
			id:   "p1",
			setupMocks: func(mStore *storageMocks.MockStorage, mRepo *repoMocks.MockPhotoRepository) {
				mRepo.On("FindByID", ctx, "p1").Return(&model.ProgressPhoto{ID: "p1", StoragePath: "photos/u1/a.jpg"}, nil)
				mStore.On("Delete", ctx, "photos/u1/a.jpg").Return(errors.New("object locked"))
			},
		},
		{
			name:       "missing id",
			id:         "",
			setupMocks: func(mStore *storageMocks.MockStorage, mRepo *repoMocks.MockPhotoRepository) {},
			wantErr:    ErrIDRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storageMocks.MockStorage)
			mRepo := new(repoMocks.MockPhotoRepository)
			svc := NewPhotoService(mStore, mRepo, nil)

			tt.setupMocks(mStore, mRepo)

			err := svc.Delete(ctx, tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else if tt.name == "storage delete failure keeps the record" {
				assert.Error(t, err)
				mRepo.AssertNotCalled(t, "Delete", ctx, "p1")
			} else {
				assert.NoError(t, err)
			}
			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}
