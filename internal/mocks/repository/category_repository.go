package repository

import (
	"context"
	"testing"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a testify mock of repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

// NewMockCategoryRepository creates a mock that asserts its expectations when the test ends.
func NewMockCategoryRepository(t testing.TB) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCategoryRepository) List(ctx context.Context, filter repository.ListFilter) ([]*entity.Category, error) {
	ret := m.Called(ctx, filter)
	v0, _ := ret.Get(0).([]*entity.Category)

	return v0, ret.Error(1)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	ret := m.Called(ctx, id)
	v0, _ := ret.Get(0).(*entity.Category)

	return v0, ret.Error(1)
}

func (m *MockCategoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	ret := m.Called(ctx, slug)
	v0, _ := ret.Get(0).(*entity.Category)

	return v0, ret.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	ret := m.Called(ctx, category)

	return ret.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	ret := m.Called(ctx, category)

	return ret.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}

func (m *MockCategoryRepository) CountChildren(ctx context.Context, parentID string) (int64, error) {
	ret := m.Called(ctx, parentID)
	v0, _ := ret.Get(0).(int64)

	return v0, ret.Error(1)
}
