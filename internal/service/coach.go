package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"coachapi/internal/coach"
	"coachapi/internal/model"
	"coachapi/internal/repository"
)

var (
	ErrThreadNotFound  = errors.New("thread not found")
	ErrMessageRequired = errors.New("message content is required")
)

// ThreadListResult is the service-level DTO for paginated threads.
type ThreadListResult struct {
	Items []model.ChatThread `json:"data"`
	Total int                `json:"total"`
}

// MessageListResult is the service-level DTO for paginated messages.
type MessageListResult struct {
	Items []model.ChatMessage `json:"data"`
	Total int                 `json:"total"`
}

// Exchange is one user turn and the coach's reply to it.
type Exchange struct {
	UserMessage *model.ChatMessage `json:"user_message"`
	Reply       *model.ChatMessage `json:"reply"`
}

// CoachService defines the chat coaching use cases.
type CoachService interface {
	// StartThread creates a new conversation for a user.
	StartThread(ctx context.Context, userID, title string) (*model.ChatThread, error)

	// ListThreads returns a user's threads, newest first.
	ListThreads(ctx context.Context, userID string, limit, offset int) (*ThreadListResult, error)

	// SendMessage appends the user's message to a thread, generates the
	// coach's canned reply, persists both, and returns the exchange.
	SendMessage(ctx context.Context, threadID, content string) (*Exchange, error)

	// History returns a thread's messages ordered by seq.
	History(ctx context.Context, threadID string, limit, offset int) (*MessageListResult, error)
}

type coachService struct {
	repo      repository.ChatRepository
	users     repository.UserRepository
	responder *coach.Responder
	maxLimit  int
}

// NewCoachService constructs a new CoachService.
// maxLimit caps the page size of history requests; non-positive means 200.
func NewCoachService(repo repository.ChatRepository, users repository.UserRepository, responder *coach.Responder, maxLimit int) CoachService {
	if maxLimit <= 0 {
		maxLimit = 200
	}
	return &coachService{repo: repo, users: users, responder: responder, maxLimit: maxLimit}
}

func (s *coachService) StartThread(ctx context.Context, userID, title string) (*model.ChatThread, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	t := &model.ChatThread{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.CreateThread(ctx, t)
}

func (s *coachService) ListThreads(ctx context.Context, userID string, limit, offset int) (*ThreadListResult, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	limit, offset = s.clamp(limit, offset)

	res, err := s.repo.ListThreads(ctx, userID, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ThreadListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *coachService) SendMessage(ctx context.Context, threadID, content string) (*Exchange, error) {
	if threadID == "" {
		return nil, ErrIDRequired
	}
	if content == "" {
		return nil, ErrMessageRequired
	}

	if _, err := s.repo.FindThreadByID(ctx, threadID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrThreadNotFound
		}
		return nil, err
	}

	seq, err := s.repo.MaxSeq(ctx, threadID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	userMsg := &model.ChatMessage{
		ID:        uuid.New().String(),
		ThreadID:  threadID,
		Seq:       seq + 1,
		Role:      model.RoleUser,
		Content:   content,
		CreatedAt: now,
	}

	reply, category := s.responder.Respond(content)
	coachMsg := &model.ChatMessage{
		ID:        uuid.New().String(),
		ThreadID:  threadID,
		Seq:       seq + 2,
		Role:      model.RoleAssistant,
		Content:   reply,
		Category:  category,
		CreatedAt: now,
	}

	if err := s.repo.CreateMessages(ctx, []*model.ChatMessage{userMsg, coachMsg}); err != nil {
		return nil, err
	}
	return &Exchange{UserMessage: userMsg, Reply: coachMsg}, nil
}

func (s *coachService) History(ctx context.Context, threadID string, limit, offset int) (*MessageListResult, error) {
	if threadID == "" {
		return nil, ErrIDRequired
	}
	if _, err := s.repo.FindThreadByID(ctx, threadID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrThreadNotFound
		}
		return nil, err
	}
	limit, offset = s.clamp(limit, offset)

	res, err := s.repo.ListMessages(ctx, threadID, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &MessageListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *coachService) clamp(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 50
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
