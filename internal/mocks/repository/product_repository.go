package repository

import (
	"context"
	"testing"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a testify mock of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

// NewMockProductRepository creates a mock that asserts its expectations when the test ends.
func NewMockProductRepository(t testing.TB) *MockProductRepository {
	m := &MockProductRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductRepository) List(ctx context.Context, productType entity.ProductType, filter repository.ListFilter) ([]*entity.Product, error) {
	ret := m.Called(ctx, productType, filter)
	v0, _ := ret.Get(0).([]*entity.Product)

	return v0, ret.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, productType entity.ProductType, id string) (*entity.Product, error) {
	ret := m.Called(ctx, productType, id)
	v0, _ := ret.Get(0).(*entity.Product)

	return v0, ret.Error(1)
}

func (m *MockProductRepository) FindBySlug(ctx context.Context, productType entity.ProductType, slug string) (*entity.Product, error) {
	ret := m.Called(ctx, productType, slug)
	v0, _ := ret.Get(0).(*entity.Product)

	return v0, ret.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	ret := m.Called(ctx, product)

	return ret.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	ret := m.Called(ctx, product)

	return ret.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, productType entity.ProductType, id string) error {
	ret := m.Called(ctx, productType, id)

	return ret.Error(0)
}
