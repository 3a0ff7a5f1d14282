package usecase

import (
	"context"
	"testing"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"
	"creativehub/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockWebinarUsecase is a testify mock of usecase.WebinarUsecase.
type MockWebinarUsecase struct {
	mock.Mock
}

// NewMockWebinarUsecase creates a mock that asserts its expectations when the test ends.
func NewMockWebinarUsecase(t testing.TB) *MockWebinarUsecase {
	m := &MockWebinarUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockWebinarUsecase) List(ctx context.Context, filter repository.ListFilter) ([]*entity.Webinar, error) {
	ret := m.Called(ctx, filter)
	v0, _ := ret.Get(0).([]*entity.Webinar)

	return v0, ret.Error(1)
}

func (m *MockWebinarUsecase) Get(ctx context.Context, id string) (*entity.Webinar, error) {
	ret := m.Called(ctx, id)
	v0, _ := ret.Get(0).(*entity.Webinar)

	return v0, ret.Error(1)
}

func (m *MockWebinarUsecase) Create(ctx context.Context, input *usecase.WebinarInput) (*entity.Webinar, error) {
	ret := m.Called(ctx, input)
	v0, _ := ret.Get(0).(*entity.Webinar)

	return v0, ret.Error(1)
}

func (m *MockWebinarUsecase) Update(ctx context.Context, id string, patch *usecase.WebinarPatch) (*entity.Webinar, error) {
	ret := m.Called(ctx, id, patch)
	v0, _ := ret.Get(0).(*entity.Webinar)

	return v0, ret.Error(1)
}

func (m *MockWebinarUsecase) Delete(ctx context.Context, id string) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}
