package usecase

import (
	"context"
	"testing"

	"creativehub/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockSettingsUsecase is a testify mock of usecase.SettingsUsecase.
type MockSettingsUsecase struct {
	mock.Mock
}

// NewMockSettingsUsecase creates a mock that asserts its expectations when the test ends.
func NewMockSettingsUsecase(t testing.TB) *MockSettingsUsecase {
	m := &MockSettingsUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSettingsUsecase) GetFeatureFlags(ctx context.Context) (entity.FeatureFlags, error) {
	ret := m.Called(ctx)
	v0, _ := ret.Get(0).(entity.FeatureFlags)

	return v0, ret.Error(1)
}

func (m *MockSettingsUsecase) ReplaceFeatureFlags(ctx context.Context, flags entity.FeatureFlags) (entity.FeatureFlags, error) {
	ret := m.Called(ctx, flags)
	v0, _ := ret.Get(0).(entity.FeatureFlags)

	return v0, ret.Error(1)
}
