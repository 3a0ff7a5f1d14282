package usecase

import (
	"context"
	"testing"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"
	"creativehub/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockCategoryUsecase is a testify mock of usecase.CategoryUsecase.
type MockCategoryUsecase struct {
	mock.Mock
}

// NewMockCategoryUsecase creates a mock that asserts its expectations when the test ends.
func NewMockCategoryUsecase(t testing.TB) *MockCategoryUsecase {
	m := &MockCategoryUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCategoryUsecase) List(ctx context.Context, filter repository.ListFilter) ([]*entity.Category, error) {
	ret := m.Called(ctx, filter)
	v0, _ := ret.Get(0).([]*entity.Category)

	return v0, ret.Error(1)
}

func (m *MockCategoryUsecase) Get(ctx context.Context, id string) (*entity.Category, error) {
	ret := m.Called(ctx, id)
	v0, _ := ret.Get(0).(*entity.Category)

	return v0, ret.Error(1)
}

func (m *MockCategoryUsecase) Create(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	ret := m.Called(ctx, input)
	v0, _ := ret.Get(0).(*entity.Category)

	return v0, ret.Error(1)
}

func (m *MockCategoryUsecase) Update(ctx context.Context, id string, patch *usecase.CategoryPatch) (*entity.Category, error) {
	ret := m.Called(ctx, id, patch)
	v0, _ := ret.Get(0).(*entity.Category)

	return v0, ret.Error(1)
}

func (m *MockCategoryUsecase) Delete(ctx context.Context, id string) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}
