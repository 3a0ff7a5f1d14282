package repository

import (
	"context"
	"testing"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockActivityRepository is a testify mock of repository.ActivityRepository.
type MockActivityRepository struct {
	mock.Mock
}

// NewMockActivityRepository creates a mock that asserts its expectations when the test ends.
func NewMockActivityRepository(t testing.TB) *MockActivityRepository {
	m := &MockActivityRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockActivityRepository) Record(ctx context.Context, activity *entity.Activity) error {
	ret := m.Called(ctx, activity)

	return ret.Error(0)
}

func (m *MockActivityRepository) ListRecent(ctx context.Context, filter repository.ListFilter) ([]*entity.Activity, error) {
	ret := m.Called(ctx, filter)
	v0, _ := ret.Get(0).([]*entity.Activity)

	return v0, ret.Error(1)
}
