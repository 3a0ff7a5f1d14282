package service

import (
	"context"
	"testing"

	"creativehub/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a testify mock of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates a mock that asserts its expectations when the test ends.
func NewMockEventPublisher(t testing.TB) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEventPublisher) PublishResourceEvent(ctx context.Context, event *service.ResourceEvent) error {
	ret := m.Called(ctx, event)

	return ret.Error(0)
}

func (m *MockEventPublisher) Close() error {
	ret := m.Called()

	return ret.Error(0)
}
