package repository

import (
	"context"
	"testing"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockModuleRepository is a testify mock of repository.ModuleRepository.
type MockModuleRepository struct {
	mock.Mock
}

// NewMockModuleRepository creates a mock that asserts its expectations when the test ends.
func NewMockModuleRepository(t testing.TB) *MockModuleRepository {
	m := &MockModuleRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockModuleRepository) List(ctx context.Context, filter repository.ListFilter) ([]*entity.Module, error) {
	ret := m.Called(ctx, filter)
	v0, _ := ret.Get(0).([]*entity.Module)

	return v0, ret.Error(1)
}

func (m *MockModuleRepository) FindByID(ctx context.Context, id string) (*entity.Module, error) {
	ret := m.Called(ctx, id)
	v0, _ := ret.Get(0).(*entity.Module)

	return v0, ret.Error(1)
}

func (m *MockModuleRepository) ListByCourse(ctx context.Context, courseID string) ([]*entity.Module, error) {
	ret := m.Called(ctx, courseID)
	v0, _ := ret.Get(0).([]*entity.Module)

	return v0, ret.Error(1)
}

func (m *MockModuleRepository) Create(ctx context.Context, module *entity.Module) error {
	ret := m.Called(ctx, module)

	return ret.Error(0)
}

func (m *MockModuleRepository) Update(ctx context.Context, module *entity.Module) error {
	ret := m.Called(ctx, module)

	return ret.Error(0)
}

func (m *MockModuleRepository) Delete(ctx context.Context, id string) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}

func (m *MockModuleRepository) DeleteByCourse(ctx context.Context, courseID string) (int64, error) {
	ret := m.Called(ctx, courseID)
	v0, _ := ret.Get(0).(int64)

	return v0, ret.Error(1)
}
