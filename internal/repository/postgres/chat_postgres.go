package postgres

import (
	"context"
	"database/sql"

	"coachapi/internal/model"
	"coachapi/internal/repository"
)

// ChatPostgres is a PostgreSQL implementation of repository.ChatRepository.
type ChatPostgres struct {
	db *sql.DB
}

// NewChatPostgres creates a new ChatPostgres repository.
func NewChatPostgres(db *sql.DB) *ChatPostgres {
	return &ChatPostgres{db: db}
}

var _ repository.ChatRepository = (*ChatPostgres)(nil)

// CreateThread inserts a new thread row and returns the stored record.
func (r *ChatPostgres) CreateThread(ctx context.Context, t *model.ChatThread) (*model.ChatThread, error) {
	const q = `
		INSERT INTO chat_threads (id, user_id, title, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, title, created_at
	`
	row := r.db.QueryRowContext(ctx, q, t.ID, t.UserID, t.Title, t.CreatedAt)
	var out model.ChatThread
	if err := row.Scan(&out.ID, &out.UserID, &out.Title, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindThreadByID fetches a single thread by its ID.
func (r *ChatPostgres) FindThreadByID(ctx context.Context, id string) (*model.ChatThread, error) {
	const q = `SELECT id, user_id, title, created_at FROM chat_threads WHERE id = $1`
	row := r.db.QueryRowContext(ctx, q, id)
	var t model.ChatThread
	if err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListThreads returns a user's threads using LIMIT/OFFSET pagination and a total count.
func (r *ChatPostgres) ListThreads(ctx context.Context, userID string, pq repository.PageQuery) (*repository.PageResult[model.ChatThread], error) {
	const qCount = `SELECT COUNT(*) FROM chat_threads WHERE user_id = $1`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, userID).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, user_id, title, created_at
		FROM chat_threads
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, qList, userID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ChatThread, 0)
	for rows.Next() {
		var t model.ChatThread
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.ChatThread]{Items: items, Total: total}, nil
}

// MaxSeq returns the highest message seq in a thread, 0 for an empty thread.
func (r *ChatPostgres) MaxSeq(ctx context.Context, threadID string) (int64, error) {
	const q = `SELECT COALESCE(MAX(seq), 0) FROM chat_messages WHERE thread_id = $1`
	var max int64
	if err := r.db.QueryRowContext(ctx, q, threadID).Scan(&max); err != nil {
		return 0, err
	}
	return max, nil
}

// CreateMessages inserts the given messages in order inside one transaction,
// so a user turn and its reply land together or not at all.
func (r *ChatPostgres) CreateMessages(ctx context.Context, msgs []*model.ChatMessage) error {
	if len(msgs) == 0 {
		return nil
	}
	const q = `
		INSERT INTO chat_messages (id, thread_id, seq, role, content, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, m := range msgs {
		if _, err := tx.ExecContext(ctx, q,
			m.ID, m.ThreadID, m.Seq, m.Role, m.Content, m.Category, m.CreatedAt,
		); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// ListMessages returns messages ordered by seq ascending with a total count.
func (r *ChatPostgres) ListMessages(ctx context.Context, threadID string, pq repository.PageQuery) (*repository.PageResult[model.ChatMessage], error) {
	const qCount = `SELECT COUNT(*) FROM chat_messages WHERE thread_id = $1`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, threadID).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, thread_id, seq, role, content, category, created_at
		FROM chat_messages
		WHERE thread_id = $1
		ORDER BY seq ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, qList, threadID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ChatMessage, 0)
	for rows.Next() {
		var m model.ChatMessage
		if err := rows.Scan(&m.ID, &m.ThreadID, &m.Seq, &m.Role, &m.Content, &m.Category, &m.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.ChatMessage]{Items: items, Total: total}, nil
}
