package usecase

import (
	"context"
	"testing"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"
	"creativehub/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockUserUsecase is a testify mock of usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

// NewMockUserUsecase creates a mock that asserts its expectations when the test ends.
func NewMockUserUsecase(t testing.TB) *MockUserUsecase {
	m := &MockUserUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserUsecase) List(ctx context.Context, filter repository.ListFilter) ([]*entity.User, error) {
	ret := m.Called(ctx, filter)
	v0, _ := ret.Get(0).([]*entity.User)

	return v0, ret.Error(1)
}

func (m *MockUserUsecase) Get(ctx context.Context, id string) (*entity.User, error) {
	ret := m.Called(ctx, id)
	v0, _ := ret.Get(0).(*entity.User)

	return v0, ret.Error(1)
}

func (m *MockUserUsecase) Create(ctx context.Context, input *usecase.UserInput) (*entity.User, error) {
	ret := m.Called(ctx, input)
	v0, _ := ret.Get(0).(*entity.User)

	return v0, ret.Error(1)
}

func (m *MockUserUsecase) Update(ctx context.Context, id string, patch *usecase.UserPatch) (*entity.User, error) {
	ret := m.Called(ctx, id, patch)
	v0, _ := ret.Get(0).(*entity.User)

	return v0, ret.Error(1)
}

func (m *MockUserUsecase) Delete(ctx context.Context, id string) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}
