package usecase

import (
	"context"
	"testing"

	"creativehub/internal/domain/entity"
	"creativehub/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a testify mock of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

// NewMockAuthUsecase creates a mock that asserts its expectations when the test ends.
func NewMockAuthUsecase(t testing.TB) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	ret := m.Called(ctx, input)
	v0, _ := ret.Get(0).(*usecase.AuthOutput)

	return v0, ret.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	ret := m.Called(ctx, input)
	v0, _ := ret.Get(0).(*usecase.AuthOutput)

	return v0, ret.Error(1)
}

func (m *MockAuthUsecase) Me(ctx context.Context, userID string) (*entity.User, error) {
	ret := m.Called(ctx, userID)
	v0, _ := ret.Get(0).(*entity.User)

	return v0, ret.Error(1)
}
