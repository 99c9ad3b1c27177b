package mocks

import (
	"context"

	"msgboard/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockMessageService struct {
	mock.Mock
}

func (m *MockMessageService) Record(ctx context.Context, raw []byte) (*model.MessageRecord, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MessageRecord), args.Error(1)
}
