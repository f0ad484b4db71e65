package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"coachapi/internal/model"
	"coachapi/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestChatPostgres_CreateThread(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewChatPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	thread := &model.ChatThread{ID: "t1", UserID: "u1", Title: "Getting started", CreatedAt: now}

	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "created_at"}).
		AddRow(thread.ID, thread.UserID, thread.Title, thread.CreatedAt)

	mock.ExpectQuery("INSERT INTO chat_threads").
		WithArgs(thread.ID, thread.UserID, thread.Title, thread.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.CreateThread(ctx, thread)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, thread.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatPostgres_MaxSeq(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewChatPostgres(db)
	ctx := context.Background()

	t.Run("thread with messages", func(t *testing.T) {
		mock.ExpectQuery("SELECT COALESCE\\(MAX\\(seq\\), 0\\) FROM chat_messages").
			WithArgs("t1").
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(6))

		max, err := repo.MaxSeq(ctx, "t1")

		assert.NoError(t, err)
		assert.Equal(t, int64(6), max)
	})

	t.Run("empty thread yields zero", func(t *testing.T) {
		mock.ExpectQuery("SELECT COALESCE\\(MAX\\(seq\\), 0\\) FROM chat_messages").
			WithArgs("empty").
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))

		max, err := repo.MaxSeq(ctx, "empty")

		assert.NoError(t, err)
		assert.Equal(t, int64(0), max)
	})
}

func TestChatPostgres_CreateMessages(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewChatPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	msgs := []*model.ChatMessage{
		{ID: "m1", ThreadID: "t1", Seq: 1, Role: model.RoleUser, Content: "hello", CreatedAt: now},
		{ID: "m2", ThreadID: "t1", Seq: 2, Role: model.RoleAssistant, Content: "Hi there!", Category: "greeting", CreatedAt: now},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO chat_messages").
		WithArgs("m1", "t1", int64(1), model.RoleUser, "hello", "", now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO chat_messages").
		WithArgs("m2", "t1", int64(2), model.RoleAssistant, "Hi there!", "greeting", now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.CreateMessages(ctx, msgs)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatPostgres_CreateMessagesRollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewChatPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	msgs := []*model.ChatMessage{
		{ID: "m1", ThreadID: "t1", Seq: 1, Role: model.RoleUser, Content: "hello", CreatedAt: now},
		{ID: "m2", ThreadID: "t1", Seq: 2, Role: model.RoleAssistant, Content: "Hi there!", Category: "greeting", CreatedAt: now},
	}

	// Second insert hits the UNIQUE(thread_id, seq) backstop; the first must
	// not stay committed.
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO chat_messages").
		WithArgs("m1", "t1", int64(1), model.RoleUser, "hello", "", now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO chat_messages").
		WithArgs("m2", "t1", int64(2), model.RoleAssistant, "Hi there!", "greeting", now).
		WillReturnError(errors.New("duplicate key value violates unique constraint"))
	mock.ExpectRollback()

	err = repo.CreateMessages(ctx, msgs)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatPostgres_CreateMessagesEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewChatPostgres(db)

	err = repo.CreateMessages(context.Background(), nil)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatPostgres_ListMessages(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewChatPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM chat_messages").
		WithArgs("t1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	rows := sqlmock.NewRows([]string{"id", "thread_id", "seq", "role", "content", "category", "created_at"}).
		AddRow("m1", "t1", 1, model.RoleUser, "hello", "", time.Now()).
		AddRow("m2", "t1", 2, model.RoleAssistant, "Hi there!", "greeting", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM chat_messages WHERE thread_id = (.+) ORDER BY seq ASC").
		WithArgs("t1", 50, 0).
		WillReturnRows(rows)

	res, err := repo.ListMessages(ctx, "t1", repository.PageQuery{Limit: 50, Offset: 0})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Len(t, res.Items, 2)
	assert.Equal(t, int64(1), res.Items[0].Seq)
	assert.NoError(t, mock.ExpectationsWereMet())
}
