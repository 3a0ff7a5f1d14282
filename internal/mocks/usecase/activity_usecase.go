package usecase

import (
	"context"
	"testing"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"
	"creativehub/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockActivityUsecase is a testify mock of usecase.ActivityUsecase.
type MockActivityUsecase struct {
	mock.Mock
}

// NewMockActivityUsecase creates a mock that asserts its expectations when the test ends.
func NewMockActivityUsecase(t testing.TB) *MockActivityUsecase {
	m := &MockActivityUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockActivityUsecase) Record(ctx context.Context, messageID string, event *service.ResourceEvent) error {
	ret := m.Called(ctx, messageID, event)

	return ret.Error(0)
}

func (m *MockActivityUsecase) List(ctx context.Context, filter repository.ListFilter) ([]*entity.Activity, error) {
	ret := m.Called(ctx, filter)
	v0, _ := ret.Get(0).([]*entity.Activity)

	return v0, ret.Error(1)
}
