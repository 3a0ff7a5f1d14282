package repository

import (
	"context"
	"testing"

	"creativehub/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockSettingsRepository is a testify mock of repository.SettingsRepository.
type MockSettingsRepository struct {
	mock.Mock
}

// NewMockSettingsRepository creates a mock that asserts its expectations when the test ends.
func NewMockSettingsRepository(t testing.TB) *MockSettingsRepository {
	m := &MockSettingsRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSettingsRepository) GetFeatureFlags(ctx context.Context) (entity.FeatureFlags, error) {
	ret := m.Called(ctx)
	v0, _ := ret.Get(0).(entity.FeatureFlags)

	return v0, ret.Error(1)
}

func (m *MockSettingsRepository) ReplaceFeatureFlags(ctx context.Context, flags entity.FeatureFlags) error {
	ret := m.Called(ctx, flags)

	return ret.Error(0)
}
