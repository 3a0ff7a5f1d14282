package usecase

import (
	"context"
	"testing"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"
	"creativehub/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockCourseUsecase is a testify mock of usecase.CourseUsecase.
type MockCourseUsecase struct {
	mock.Mock
}

// NewMockCourseUsecase creates a mock that asserts its expectations when the test ends.
func NewMockCourseUsecase(t testing.TB) *MockCourseUsecase {
	m := &MockCourseUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCourseUsecase) ListCourses(ctx context.Context, filter repository.ListFilter) ([]*entity.Course, error) {
	ret := m.Called(ctx, filter)
	v0, _ := ret.Get(0).([]*entity.Course)

	return v0, ret.Error(1)
}

func (m *MockCourseUsecase) GetCourse(ctx context.Context, id string) (*entity.Course, error) {
	ret := m.Called(ctx, id)
	v0, _ := ret.Get(0).(*entity.Course)

	return v0, ret.Error(1)
}

func (m *MockCourseUsecase) CreateCourse(ctx context.Context, input *usecase.CourseInput) (*entity.Course, error) {
	ret := m.Called(ctx, input)
	v0, _ := ret.Get(0).(*entity.Course)

	return v0, ret.Error(1)
}

func (m *MockCourseUsecase) UpdateCourse(ctx context.Context, id string, patch *usecase.CoursePatch) (*entity.Course, error) {
	ret := m.Called(ctx, id, patch)
	v0, _ := ret.Get(0).(*entity.Course)

	return v0, ret.Error(1)
}

func (m *MockCourseUsecase) DeleteCourse(ctx context.Context, id string) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}

func (m *MockCourseUsecase) ListModules(ctx context.Context, filter repository.ListFilter) ([]*entity.Module, error) {
	ret := m.Called(ctx, filter)
	v0, _ := ret.Get(0).([]*entity.Module)

	return v0, ret.Error(1)
}

func (m *MockCourseUsecase) ListModulesByCourse(ctx context.Context, courseID string) ([]*entity.Module, error) {
	ret := m.Called(ctx, courseID)
	v0, _ := ret.Get(0).([]*entity.Module)

	return v0, ret.Error(1)
}

func (m *MockCourseUsecase) GetModule(ctx context.Context, id string) (*entity.Module, error) {
	ret := m.Called(ctx, id)
	v0, _ := ret.Get(0).(*entity.Module)

	return v0, ret.Error(1)
}

func (m *MockCourseUsecase) CreateModule(ctx context.Context, input *usecase.ModuleInput) (*entity.Module, error) {
	ret := m.Called(ctx, input)
	v0, _ := ret.Get(0).(*entity.Module)

	return v0, ret.Error(1)
}

func (m *MockCourseUsecase) UpdateModule(ctx context.Context, id string, patch *usecase.ModulePatch) (*entity.Module, error) {
	ret := m.Called(ctx, id, patch)
	v0, _ := ret.Get(0).(*entity.Module)

	return v0, ret.Error(1)
}

func (m *MockCourseUsecase) DeleteModule(ctx context.Context, id string) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}

func (m *MockCourseUsecase) ListLessons(ctx context.Context, filter repository.ListFilter) ([]*entity.Lesson, error) {
	ret := m.Called(ctx, filter)
	v0, _ := ret.Get(0).([]*entity.Lesson)

	return v0, ret.Error(1)
}

func (m *MockCourseUsecase) ListLessonsByModule(ctx context.Context, moduleID string) ([]*entity.Lesson, error) {
	ret := m.Called(ctx, moduleID)
	v0, _ := ret.Get(0).([]*entity.Lesson)

	return v0, ret.Error(1)
}

func (m *MockCourseUsecase) GetLesson(ctx context.Context, id string) (*entity.Lesson, error) {
	ret := m.Called(ctx, id)
	v0, _ := ret.Get(0).(*entity.Lesson)

	return v0, ret.Error(1)
}

func (m *MockCourseUsecase) CreateLesson(ctx context.Context, input *usecase.LessonInput) (*entity.Lesson, error) {
	ret := m.Called(ctx, input)
	v0, _ := ret.Get(0).(*entity.Lesson)

	return v0, ret.Error(1)
}

func (m *MockCourseUsecase) UpdateLesson(ctx context.Context, id string, patch *usecase.LessonPatch) (*entity.Lesson, error) {
	ret := m.Called(ctx, id, patch)
	v0, _ := ret.Get(0).(*entity.Lesson)

	return v0, ret.Error(1)
}

func (m *MockCourseUsecase) DeleteLesson(ctx context.Context, id string) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}
