package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/autoluxe/luxury_cars_backend/internal/core/domain"

	"github.com/lib/pq"
)

type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{
		db,
	}
}

func (r *ContactRepository) CreateMessage(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	query := `INSERT INTO contact_messages (name, email, message)
	VALUES ($1, $2, $3)
    RETURNING id, status, created_at`

	err := r.db.QueryRowContext(ctx, query, msg.Name, msg.Email, msg.Message).Scan(
		&msg.ID,
		&msg.Status,
		&msg.CreatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23502" {
			return nil, fmt.Errorf("required field is missing")
		}
		return nil, err
	}
	return msg, nil
}

func (r *ContactRepository) ListMessages(ctx context.Context) ([]*domain.ContactMessage, error) {
	query := `SELECT id, name, email, message, status, created_at
              FROM contact_messages ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*domain.ContactMessage
	for rows.Next() {
		msg := &domain.ContactMessage{}
		err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Message, &msg.Status, &msg.CreatedAt)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *ContactRepository) UpdateMessageStatus(ctx context.Context, id int, status domain.MessageStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE contact_messages SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
