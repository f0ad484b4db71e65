package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"coachapi/internal/coach"
	"coachapi/internal/model"
	"coachapi/internal/repository"
	repoMocks "coachapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCoachService(chatRepo *repoMocks.MockChatRepository, userRepo *repoMocks.MockUserRepository) CoachService {
	return NewCoachService(chatRepo, userRepo, coach.NewResponder(), 200)
}

func TestCoachService_StartThread(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		userID     string
		setupMocks func(mChat *repoMocks.MockChatRepository, mUsers *repoMocks.MockUserRepository)
		wantErr    error
	}{
		{
			name:   "happy path",
			userID: "u1",
			setupMocks: func(mChat *repoMocks.MockChatRepository, mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindByID", ctx, "u1").Return(&model.User{ID: "u1"}, nil)
				mChat.On("CreateThread", ctx, mock.MatchedBy(func(th *model.ChatThread) bool {
					return th.UserID == "u1" && th.ID != ""
				})).Return(&model.ChatThread{ID: "t1", UserID: "u1"}, nil)
			},
		},
		{
			name:       "empty user id",
			userID:     "",
			setupMocks: func(mChat *repoMocks.MockChatRepository, mUsers *repoMocks.MockUserRepository) {},
			wantErr:    ErrIDRequired,
		},
		{
			name:   "user not found",
			userID: "missing",
			setupMocks: func(mChat *repoMocks.MockChatRepository, mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mChat := new(repoMocks.MockChatRepository)
			mUsers := new(repoMocks.MockUserRepository)
			svc := newCoachService(mChat, mUsers)

			tt.setupMocks(mChat, mUsers)

			th, err := svc.StartThread(ctx, tt.userID, "cutting advice")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, th)
			}
			mChat.AssertExpectations(t)
			mUsers.AssertExpectations(t)
		})
	}
}

func TestCoachService_SendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("stores user turn and coach reply with sequential seq", func(t *testing.T) {
		mChat := new(repoMocks.MockChatRepository)
		mUsers := new(repoMocks.MockUserRepository)
		svc := newCoachService(mChat, mUsers)

		mChat.On("FindThreadByID", ctx, "t1").Return(&model.ChatThread{ID: "t1"}, nil)
		mChat.On("MaxSeq", ctx, "t1").Return(int64(4), nil)

		var stored []*model.ChatMessage
		mChat.On("CreateMessages", ctx, mock.MatchedBy(func(msgs []*model.ChatMessage) bool {
			stored = msgs
			return len(msgs) == 2
		})).Return(nil)

		ex, err := svc.SendMessage(ctx, "t1", "what should I eat after training?")
		require.NoError(t, err)
		require.Len(t, stored, 2)

		assert.Equal(t, model.RoleUser, stored[0].Role)
		assert.Equal(t, int64(5), stored[0].Seq)
		assert.Equal(t, model.RoleAssistant, stored[1].Role)
		assert.Equal(t, int64(6), stored[1].Seq)
		assert.Equal(t, coach.CategoryNutrition, stored[1].Category)
		assert.NotEmpty(t, ex.Reply.Content)
		mChat.AssertExpectations(t)
	})

	t.Run("unmatched message gets default category reply", func(t *testing.T) {
		mChat := new(repoMocks.MockChatRepository)
		mUsers := new(repoMocks.MockUserRepository)
		svc := newCoachService(mChat, mUsers)

		mChat.On("FindThreadByID", ctx, "t1").Return(&model.ChatThread{ID: "t1"}, nil)
		mChat.On("MaxSeq", ctx, "t1").Return(int64(0), nil)
		mChat.On("CreateMessages", ctx, mock.Anything).Return(nil)

		ex, err := svc.SendMessage(ctx, "t1", "xyzzy")
		require.NoError(t, err)
		assert.Equal(t, coach.CategoryDefault, ex.Reply.Category)
		assert.NotEmpty(t, ex.Reply.Content)
	})

	t.Run("empty content rejected", func(t *testing.T) {
		mChat := new(repoMocks.MockChatRepository)
		mUsers := new(repoMocks.MockUserRepository)
		svc := newCoachService(mChat, mUsers)

		_, err := svc.SendMessage(ctx, "t1", "")
		assert.ErrorIs(t, err, ErrMessageRequired)
		mChat.AssertNotCalled(t, "CreateMessages")
	})

	t.Run("thread not found", func(t *testing.T) {
		mChat := new(repoMocks.MockChatRepository)
		mUsers := new(repoMocks.MockUserRepository)
		svc := newCoachService(mChat, mUsers)

		mChat.On("FindThreadByID", ctx, "missing").Return(nil, sql.ErrNoRows)

		_, err := svc.SendMessage(ctx, "missing", "hello")
		assert.ErrorIs(t, err, ErrThreadNotFound)
	})

	t.Run("persistence error propagates", func(t *testing.T) {
		mChat := new(repoMocks.MockChatRepository)
		mUsers := new(repoMocks.MockUserRepository)
		svc := newCoachService(mChat, mUsers)

		mChat.On("FindThreadByID", ctx, "t1").Return(&model.ChatThread{ID: "t1"}, nil)
		mChat.On("MaxSeq", ctx, "t1").Return(int64(0), nil)
		mChat.On("CreateMessages", ctx, mock.Anything).Return(errors.New("db fail"))

		_, err := svc.SendMessage(ctx, "t1", "hello")
		assert.Error(t, err)
	})
}

func TestCoachService_History(t *testing.T) {
	ctx := context.Background()

	t.Run("clamps limit to configured max", func(t *testing.T) {
		mChat := new(repoMocks.MockChatRepository)
		mUsers := new(repoMocks.MockUserRepository)
		svc := NewCoachService(mChat, mUsers, coach.NewResponder(), 100)

		mChat.On("FindThreadByID", ctx, "t1").Return(&model.ChatThread{ID: "t1"}, nil)
		mChat.On("ListMessages", ctx, "t1", repository.PageQuery{Limit: 100, Offset: 0}).
			Return(&repository.PageResult[model.ChatMessage]{Items: []model.ChatMessage{}, Total: 0}, nil)

		_, err := svc.History(ctx, "t1", 5000, -3)
		assert.NoError(t, err)
		mChat.AssertExpectations(t)
	})

	t.Run("zero limit uses default", func(t *testing.T) {
		mChat := new(repoMocks.MockChatRepository)
		mUsers := new(repoMocks.MockUserRepository)
		svc := newCoachService(mChat, mUsers)

		mChat.On("FindThreadByID", ctx, "t1").Return(&model.ChatThread{ID: "t1"}, nil)
		mChat.On("ListMessages", ctx, "t1", repository.PageQuery{Limit: 50, Offset: 0}).
			Return(&repository.PageResult[model.ChatMessage]{
				Items: []model.ChatMessage{{ID: "m1"}, {ID: "m2"}},
				Total: 2,
			}, nil)

		res, err := svc.History(ctx, "t1", 0, 0)
		assert.NoError(t, err)
		assert.Equal(t, 2, res.Total)
	})

	t.Run("thread not found", func(t *testing.T) {
		mChat := new(repoMocks.MockChatRepository)
		mUsers := new(repoMocks.MockUserRepository)
		svc := newCoachService(mChat, mUsers)

		mChat.On("FindThreadByID", ctx, "missing").Return(nil, sql.ErrNoRows)

		_, err := svc.History(ctx, "missing", 10, 0)
		assert.ErrorIs(t, err, ErrThreadNotFound)
	})
}
