package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"msgboard/internal/form"
	"msgboard/internal/model"
	"msgboard/internal/repository"
)

// TimestampLayout is the wire format of MessageRecord.Date: local server
// time with microsecond precision.
const TimestampLayout = "2006-01-02 15:04:05.000000"

// MessageService turns raw datagram payloads into persisted message records.
type MessageService interface {
	// Record decodes raw as a URL-encoded form, stamps it with the current
	// server time, and persists it. It returns form.ErrIncomplete when the
	// payload has an empty username or message after trimming; callers are
	// expected to skip such payloads, not retry them.
	Record(ctx context.Context, raw []byte) (*model.MessageRecord, error)
}

// messageService is a concrete implementation of MessageService.
type messageService struct {
	repo repository.MessageRepository
	now  func() time.Time
}

// NewMessageService constructs a MessageService backed by the given repository.
func NewMessageService(repo repository.MessageRepository) MessageService {
	return &messageService{repo: repo, now: time.Now}
}

func (s *messageService) Record(ctx context.Context, raw []byte) (*model.MessageRecord, error) {
	sub, err := form.Decode(raw)
	if err != nil {
		return nil, err
	}

	rec := &model.MessageRecord{
		ID:       uuid.New().String(),
		Date:     s.now().Format(TimestampLayout),
		Username: sub.Username,
		Message:  sub.Message,
	}

	stored, err := s.repo.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	return stored, nil
}
