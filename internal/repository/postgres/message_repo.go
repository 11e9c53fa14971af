package postgres

import (
	"context"
	"errors"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type messageRepo struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) domain.MessageRepository {
	return &messageRepo{db: db}
}

const messageSelect = `
	SELECT m.id, m.sender_id, m.recipient_id, m.subject, m.body, m.is_read, m.created_at,
	       s.username, r.username
	FROM messages m
	JOIN users s ON m.sender_id = s.id
	JOIN users r ON m.recipient_id = r.id`

func scanMessage(row pgx.Row) (*domain.Message, error) {
	var m domain.Message
	err := row.Scan(
		&m.ID, &m.SenderID, &m.RecipientID, &m.Subject, &m.Body,
		&m.IsRead, &m.CreatedAt, &m.SenderUsername, &m.RecipientUsername,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *messageRepo) Create(ctx context.Context, msg *domain.Message) error {
	query := `INSERT INTO messages (sender_id, recipient_id, subject, body, is_read, created_at)
              VALUES ($1, $2, $3, $4, FALSE, NOW()) RETURNING id, created_at`
	return r.db.QueryRow(ctx, query, msg.SenderID, msg.RecipientID, msg.Subject, msg.Body).
		Scan(&msg.ID, &msg.CreatedAt)
}

func (r *messageRepo) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	return scanMessage(r.db.QueryRow(ctx, messageSelect+` WHERE m.id = $1`, id))
}

func (r *messageRepo) FetchInbox(ctx context.Context, userID int64) ([]domain.Message, error) {
	return r.fetch(ctx, messageSelect+` WHERE m.recipient_id = $1 ORDER BY m.created_at DESC`, userID)
}

func (r *messageRepo) FetchSent(ctx context.Context, userID int64) ([]domain.Message, error) {
	return r.fetch(ctx, messageSelect+` WHERE m.sender_id = $1 ORDER BY m.created_at DESC`, userID)
}

func (r *messageRepo) FetchConversation(ctx context.Context, userA, userB int64) ([]domain.Message, error) {
	query := messageSelect + `
		WHERE (m.sender_id = $1 AND m.recipient_id = $2)
		   OR (m.sender_id = $2 AND m.recipient_id = $1)
		ORDER BY m.created_at ASC`

	rows, err := r.db.Query(ctx, query, userA, userB)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMessages(rows)
}

func (r *messageRepo) MarkRead(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE messages SET is_read = TRUE WHERE id = $1`, id)
	return err
}

func (r *messageRepo) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM messages WHERE recipient_id = $1 AND is_read = FALSE`
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	return count, err
}

func (r *messageRepo) fetch(ctx context.Context, query string, userID int64) ([]domain.Message, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMessages(rows)
}

func collectMessages(rows pgx.Rows) ([]domain.Message, error) {
	var msgs []domain.Message
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, *msg)
	}
	return msgs, rows.Err()
}
