package repository

import (
	"context"
	"testing"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a testify mock of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock that asserts its expectations when the test ends.
func NewMockUserRepository(t testing.TB) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) List(ctx context.Context, filter repository.ListFilter) ([]*entity.User, error) {
	ret := m.Called(ctx, filter)
	v0, _ := ret.Get(0).([]*entity.User)

	return v0, ret.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	ret := m.Called(ctx, id)
	v0, _ := ret.Get(0).(*entity.User)

	return v0, ret.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	ret := m.Called(ctx, email)
	v0, _ := ret.Get(0).(*entity.User)

	return v0, ret.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	ret := m.Called(ctx, user)

	return ret.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	ret := m.Called(ctx, user)

	return ret.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}
