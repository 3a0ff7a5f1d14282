package usecase

import (
	"context"
	"testing"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"
	"creativehub/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockProductUsecase is a testify mock of usecase.ProductUsecase.
type MockProductUsecase struct {
	mock.Mock
}

// NewMockProductUsecase creates a mock that asserts its expectations when the test ends.
func NewMockProductUsecase(t testing.TB) *MockProductUsecase {
	m := &MockProductUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductUsecase) List(ctx context.Context, productType entity.ProductType, filter repository.ListFilter) ([]*entity.Product, error) {
	ret := m.Called(ctx, productType, filter)
	v0, _ := ret.Get(0).([]*entity.Product)

	return v0, ret.Error(1)
}

func (m *MockProductUsecase) Get(ctx context.Context, productType entity.ProductType, id string) (*entity.Product, error) {
	ret := m.Called(ctx, productType, id)
	v0, _ := ret.Get(0).(*entity.Product)

	return v0, ret.Error(1)
}

func (m *MockProductUsecase) Create(ctx context.Context, productType entity.ProductType, input *usecase.ProductInput) (*entity.Product, error) {
	ret := m.Called(ctx, productType, input)
	v0, _ := ret.Get(0).(*entity.Product)

	return v0, ret.Error(1)
}

func (m *MockProductUsecase) Update(ctx context.Context, productType entity.ProductType, id string, patch *usecase.ProductPatch) (*entity.Product, error) {
	ret := m.Called(ctx, productType, id, patch)
	v0, _ := ret.Get(0).(*entity.Product)

	return v0, ret.Error(1)
}

func (m *MockProductUsecase) Delete(ctx context.Context, productType entity.ProductType, id string) error {
	ret := m.Called(ctx, productType, id)

	return ret.Error(0)
}
