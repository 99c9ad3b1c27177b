package postgres

import (
	"context"
	"database/sql"

	"msgboard/internal/model"
	"msgboard/internal/repository"
)

// MessagePostgres is a PostgreSQL implementation of repository.MessageRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type MessagePostgres struct {
	db *sql.DB
}

// NewMessagePostgres creates a new MessagePostgres repository.
func NewMessagePostgres(db *sql.DB) *MessagePostgres {
	return &MessagePostgres{db: db}
}

var _ repository.MessageRepository = (*MessagePostgres)(nil)

// Create inserts a new message row and returns the stored record.
func (r *MessagePostgres) Create(ctx context.Context, rec *model.MessageRecord) (*model.MessageRecord, error) {
	const q = `
		INSERT INTO messages (id, date, username, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, date, username, message
	`
	row := r.db.QueryRowContext(ctx, q,
		rec.ID,
		rec.Date,
		rec.Username,
		rec.Message,
	)
	var out model.MessageRecord
	if err := row.Scan(
		&out.ID,
		&out.Date,
		&out.Username,
		&out.Message,
	); err != nil {
		return nil, err
	}
	return &out, nil
}
