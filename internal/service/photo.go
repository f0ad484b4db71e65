package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"coachapi/internal/model"
	"coachapi/internal/repository"
	"coachapi/internal/storage"
)

var (
	ErrPhotoNotFound = errors.New("photo not found")
	ErrReaderNil     = errors.New("reader is nil")
)

// presignExpiry is how long a photo download URL stays valid.
const presignExpiry = 15 * time.Minute

// PhotoView is a photo record paired with a presigned download URL.
type PhotoView struct {
	model.ProgressPhoto
	URL string `json:"url"`
}

// PhotoListResult is the service-level DTO for paginated photos.
type PhotoListResult struct {
	Items []PhotoView `json:"data"`
	Total int         `json:"total"`
}

// PhotoService defines the progress photo use cases.
type PhotoService interface {
	// Upload streams the photo to object storage, saves metadata to DB, and
	// rolls back storage if the DB save fails.
	// - originalFilename is used only to extract the extension; the stored
	//   key is photos/<user>/<uuid><ext>.
	Upload(ctx context.Context, userID string, r io.Reader, originalFilename, contentType string, size int64, note string, takenAt time.Time) (*model.ProgressPhoto, error)

	// List returns a user's photos with presigned download URLs.
	List(ctx context.Context, userID string, limit, offset int) (*PhotoListResult, error)

	// Download streams a photo's bytes from object storage. The caller
	// must close the reader.
	Download(ctx context.Context, id string) (io.ReadCloser, storage.ObjectInfo, error)

	// Delete removes a photo from storage, then deletes its record.
	Delete(ctx context.Context, id string) error
}

type photoService struct {
	store storage.Storage
	repo  repository.PhotoRepository
	users repository.UserRepository
}

// NewPhotoService constructs a new PhotoService.
func NewPhotoService(store storage.Storage, repo repository.PhotoRepository, users repository.UserRepository) PhotoService {
	return &photoService{store: store, repo: repo, users: users}
}

func (s *photoService) Upload(ctx context.Context, userID string, r io.Reader, originalFilename, contentType string, size int64, note string, takenAt time.Time) (*model.ProgressPhoto, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	if r == nil {
		return nil, ErrReaderNil
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	ext := filepath.Ext(originalFilename)
	key := filepath.ToSlash(filepath.Join("photos", userID, uuid.New().String()+ext))

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	if takenAt.IsZero() {
		takenAt = time.Now().UTC()
	}
	photo := &model.ProgressPhoto{
		ID:          uuid.New().String(),
		UserID:      userID,
		StoragePath: objInfo.Key,
		Size:        objInfo.Size,
		ContentType: objInfo.ContentType,
		Note:        note,
		TakenAt:     takenAt,
		CreatedAt:   time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, photo)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *photoService) List(ctx context.Context, userID string, limit, offset int) (*PhotoListResult, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.ListByUser(ctx, userID, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}

	items := make([]PhotoView, 0, len(res.Items))
	for _, p := range res.Items {
		url, err := s.store.PresignGet(ctx, p.StoragePath, presignExpiry)
		if err != nil {
			return nil, fmt.Errorf("presign %s: %w", p.StoragePath, err)
		}
		items = append(items, PhotoView{ProgressPhoto: p, URL: url})
	}
	return &PhotoListResult{Items: items, Total: res.Total}, nil
}

func (s *photoService) Download(ctx context.Context, id string) (io.ReadCloser, storage.ObjectInfo, error) {
	if id == "" {
		return nil, storage.ObjectInfo{}, ErrIDRequired
	}
	photo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ObjectInfo{}, ErrPhotoNotFound
		}
		return nil, storage.ObjectInfo{}, err
	}
	rc, info, err := s.store.Get(ctx, photo.StoragePath)
	if err != nil {
		return nil, storage.ObjectInfo{}, fmt.Errorf("get %s: %w", photo.StoragePath, err)
	}
	return rc, info, nil
}

func (s *photoService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	photo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPhotoNotFound
		}
		return err
	}
	// Delete from storage first; if this fails, keep DB row to avoid losing the storage reference
	if err := s.store.Delete(ctx, photo.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.repo.Delete(ctx, id)
}
