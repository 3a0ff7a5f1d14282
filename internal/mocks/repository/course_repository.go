package repository

import (
	"context"
	"testing"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockCourseRepository is a testify mock of repository.CourseRepository.
type MockCourseRepository struct {
	mock.Mock
}

// NewMockCourseRepository creates a mock that asserts its expectations when the test ends.
func NewMockCourseRepository(t testing.TB) *MockCourseRepository {
	m := &MockCourseRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCourseRepository) List(ctx context.Context, filter repository.ListFilter) ([]*entity.Course, error) {
	ret := m.Called(ctx, filter)
	v0, _ := ret.Get(0).([]*entity.Course)

	return v0, ret.Error(1)
}

func (m *MockCourseRepository) FindByID(ctx context.Context, id string) (*entity.Course, error) {
	ret := m.Called(ctx, id)
	v0, _ := ret.Get(0).(*entity.Course)

	return v0, ret.Error(1)
}

func (m *MockCourseRepository) FindBySlug(ctx context.Context, slug string) (*entity.Course, error) {
	ret := m.Called(ctx, slug)
	v0, _ := ret.Get(0).(*entity.Course)

	return v0, ret.Error(1)
}

func (m *MockCourseRepository) Create(ctx context.Context, course *entity.Course) error {
	ret := m.Called(ctx, course)

	return ret.Error(0)
}

func (m *MockCourseRepository) Update(ctx context.Context, course *entity.Course) error {
	ret := m.Called(ctx, course)

	return ret.Error(0)
}

func (m *MockCourseRepository) Delete(ctx context.Context, id string) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}
