package repository

import (
	"context"
	"testing"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockWebinarRepository is a testify mock of repository.WebinarRepository.
type MockWebinarRepository struct {
	mock.Mock
}

// NewMockWebinarRepository creates a mock that asserts its expectations when the test ends.
func NewMockWebinarRepository(t testing.TB) *MockWebinarRepository {
	m := &MockWebinarRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockWebinarRepository) List(ctx context.Context, filter repository.ListFilter) ([]*entity.Webinar, error) {
	ret := m.Called(ctx, filter)
	v0, _ := ret.Get(0).([]*entity.Webinar)

	return v0, ret.Error(1)
}

func (m *MockWebinarRepository) FindByID(ctx context.Context, id string) (*entity.Webinar, error) {
	ret := m.Called(ctx, id)
	v0, _ := ret.Get(0).(*entity.Webinar)

	return v0, ret.Error(1)
}

func (m *MockWebinarRepository) FindBySlug(ctx context.Context, slug string) (*entity.Webinar, error) {
	ret := m.Called(ctx, slug)
	v0, _ := ret.Get(0).(*entity.Webinar)

	return v0, ret.Error(1)
}

func (m *MockWebinarRepository) Create(ctx context.Context, webinar *entity.Webinar) error {
	ret := m.Called(ctx, webinar)

	return ret.Error(0)
}

func (m *MockWebinarRepository) Update(ctx context.Context, webinar *entity.Webinar) error {
	ret := m.Called(ctx, webinar)

	return ret.Error(0)
}

func (m *MockWebinarRepository) Delete(ctx context.Context, id string) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}
