package console

import (
	"context"
	"net/url"
	"testing"

	"creativehub/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

type mockResource[T any] struct {
	mock.Mock
}

func newMockResource[T any](t testing.TB) *mockResource[T] {
	m := &mockResource[T]{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockResource[T]) List(ctx context.Context, filters url.Values) ([]T, error) {
	ret := m.Called(ctx, filters)
	v0, _ := ret.Get(0).([]T)

	return v0, ret.Error(1)
}

func (m *mockResource[T]) Get(ctx context.Context, id string) (T, error) {
	ret := m.Called(ctx, id)
	v0, _ := ret.Get(0).(T)

	return v0, ret.Error(1)
}

func (m *mockResource[T]) Create(ctx context.Context, payload any) (T, error) {
	ret := m.Called(ctx, payload)
	v0, _ := ret.Get(0).(T)

	return v0, ret.Error(1)
}

func (m *mockResource[T]) Update(ctx context.Context, id string, payload any) (T, error) {
	ret := m.Called(ctx, id, payload)
	v0, _ := ret.Get(0).(T)

	return v0, ret.Error(1)
}

func (m *mockResource[T]) Remove(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockFlagStore struct {
	mock.Mock
}

func newMockFlagStore(t testing.TB) *mockFlagStore {
	m := &mockFlagStore{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockFlagStore) FeatureFlags(ctx context.Context) (entity.FeatureFlags, error) {
	ret := m.Called(ctx)
	v0, _ := ret.Get(0).(entity.FeatureFlags)

	return v0, ret.Error(1)
}

func (m *mockFlagStore) SaveFeatureFlags(ctx context.Context, flags entity.FeatureFlags) (entity.FeatureFlags, error) {
	ret := m.Called(ctx, flags)
	v0, _ := ret.Get(0).(entity.FeatureFlags)

	return v0, ret.Error(1)
}

func answer(ok bool) Confirmer {
	return ConfirmFunc(func(context.Context, string) (bool, error) { return ok, nil })
}
