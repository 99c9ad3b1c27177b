package mocks

import (
	"github.com/stretchr/testify/mock"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(payload []byte) error {
	args := m.Called(payload)
	return args.Error(0)
}
