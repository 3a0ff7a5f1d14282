package repository

import (
	"context"
	"testing"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockLessonRepository is a testify mock of repository.LessonRepository.
type MockLessonRepository struct {
	mock.Mock
}

// NewMockLessonRepository creates a mock that asserts its expectations when the test ends.
func NewMockLessonRepository(t testing.TB) *MockLessonRepository {
	m := &MockLessonRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLessonRepository) List(ctx context.Context, filter repository.ListFilter) ([]*entity.Lesson, error) {
	ret := m.Called(ctx, filter)
	v0, _ := ret.Get(0).([]*entity.Lesson)

	return v0, ret.Error(1)
}

func (m *MockLessonRepository) FindByID(ctx context.Context, id string) (*entity.Lesson, error) {
	ret := m.Called(ctx, id)
	v0, _ := ret.Get(0).(*entity.Lesson)

	return v0, ret.Error(1)
}

func (m *MockLessonRepository) ListByModule(ctx context.Context, moduleID string) ([]*entity.Lesson, error) {
	ret := m.Called(ctx, moduleID)
	v0, _ := ret.Get(0).([]*entity.Lesson)

	return v0, ret.Error(1)
}

func (m *MockLessonRepository) Create(ctx context.Context, lesson *entity.Lesson) error {
	ret := m.Called(ctx, lesson)

	return ret.Error(0)
}

func (m *MockLessonRepository) Update(ctx context.Context, lesson *entity.Lesson) error {
	ret := m.Called(ctx, lesson)

	return ret.Error(0)
}

func (m *MockLessonRepository) Delete(ctx context.Context, id string) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}

func (m *MockLessonRepository) DeleteByModules(ctx context.Context, moduleIDs []string) (int64, error) {
	ret := m.Called(ctx, moduleIDs)
	v0, _ := ret.Get(0).(int64)

	return v0, ret.Error(1)
}
