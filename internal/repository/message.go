package repository

import (
	"context"

	"msgboard/internal/model"
)

// MessageRepository defines persistence for message records using SQL queries
// only. No business logic here — strictly persistence operations. Records are
// append-only: there is no update, delete, or read-back path.
type MessageRepository interface {
	// Create inserts a new message record and returns the stored row
	// (may include values set by the DB).
	Create(ctx context.Context, rec *model.MessageRecord) (*model.MessageRecord, error)
}
