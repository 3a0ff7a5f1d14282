package impl

import (
	"context"
	"testing"

	"creativehub/internal/domain/entity"
	domainerrors "creativehub/internal/domain/errors"
	"creativehub/internal/domain/repository"
	mockRepo "creativehub/internal/mocks/repository"
	"creativehub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type courseMocks struct {
	courses *mockRepo.MockCourseRepository
	modules *mockRepo.MockModuleRepository
	lessons *mockRepo.MockLessonRepository
}

func newTestCourseService(t *testing.T) (usecase.CourseUsecase, courseMocks) {
	m := courseMocks{
		courses: mockRepo.NewMockCourseRepository(t),
		modules: mockRepo.NewMockModuleRepository(t),
		lessons: mockRepo.NewMockLessonRepository(t),
	}
	srv := NewCourseService(CourseServiceParams{
		CourseRepo: m.courses,
		ModuleRepo: m.modules,
		LessonRepo: m.lessons,
		Publisher:  newQuietPublisher(t),
		Logger:     newDiscardLogger(),
	})

	return srv, m
}

func TestCourseService_DeleteCourse_CascadesChildrenFirst(t *testing.T) {
	ctx := context.Background()
	srv, m := newTestCourseService(t)

	var order []string
	m.courses.On("FindByID", ctx, "c1").Return(&entity.Course{ID: "c1"}, nil).Once()
	m.modules.On("ListByCourse", ctx, "c1").
		Return([]*entity.Module{{ID: "m1"}, {ID: "m2"}}, nil).Once()
	m.lessons.On("DeleteByModules", ctx, []string{"m1", "m2"}).
		Run(func(mock.Arguments) { order = append(order, "lessons") }).Return(int64(5), nil).Once()
	m.modules.On("DeleteByCourse", ctx, "c1").
		Run(func(mock.Arguments) { order = append(order, "modules") }).Return(int64(2), nil).Once()
	m.courses.On("Delete", ctx, "c1").
		Run(func(mock.Arguments) { order = append(order, "course") }).Return(nil).Once()

	require.NoError(t, srv.DeleteCourse(ctx, "c1"))
	assert.Equal(t, []string{"lessons", "modules", "course"}, order)
}

func TestCourseService_DeleteCourse_StopsWhenChildDeleteFails(t *testing.T) {
	ctx := context.Background()
	srv, m := newTestCourseService(t)

	m.courses.On("FindByID", ctx, "c1").Return(&entity.Course{ID: "c1"}, nil).Once()
	m.modules.On("ListByCourse", ctx, "c1").Return([]*entity.Module{{ID: "m1"}}, nil).Once()
	m.lessons.On("DeleteByModules", ctx, []string{"m1"}).Return(int64(0), errors.New("timeout")).Once()

	err := srv.DeleteCourse(ctx, "c1")
	require.Error(t, err)
	m.courses.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCourseService_DeleteCourse_NotFound(t *testing.T) {
	ctx := context.Background()
	srv, m := newTestCourseService(t)

	m.courses.On("FindByID", ctx, "nope").Return(nil, repository.ErrNotFound).Once()

	assert.True(t, errors.Is(srv.DeleteCourse(ctx, "nope"), domainerrors.ErrCourseNotFound))
}

func TestCourseService_CreateModule_RequiresCourse(t *testing.T) {
	ctx := context.Background()
	srv, m := newTestCourseService(t)

	m.courses.On("FindByID", ctx, "missing").Return(nil, repository.ErrNotFound).Once()

	_, err := srv.CreateModule(ctx, &usecase.ModuleInput{Course: "missing", Title: "Basics"})
	assert.True(t, errors.Is(err, domainerrors.ErrCourseNotFound))
}

func TestCourseService_CreateLesson(t *testing.T) {
	ctx := context.Background()
	srv, m := newTestCourseService(t)

	m.modules.On("FindByID", ctx, "m1").Return(&entity.Module{ID: "m1", Course: "c1"}, nil).Once()
	m.lessons.On("Create", ctx, mock.MatchedBy(func(l *entity.Lesson) bool {
		return l.Module == "m1" && l.Title == "Layers" && l.IsPreview
	})).Return(nil).Once()

	lesson, err := srv.CreateLesson(ctx, &usecase.LessonInput{Module: "m1", Title: " Layers ", Order: 1, IsPreview: true})
	require.NoError(t, err)
	assert.Equal(t, 1, lesson.Order)
}

func TestCourseService_DeleteModule_RemovesLessons(t *testing.T) {
	ctx := context.Background()
	srv, m := newTestCourseService(t)

	m.modules.On("FindByID", ctx, "m1").Return(&entity.Module{ID: "m1"}, nil).Once()
	m.lessons.On("DeleteByModules", ctx, []string{"m1"}).Return(int64(3), nil).Once()
	m.modules.On("Delete", ctx, "m1").Return(nil).Once()

	require.NoError(t, srv.DeleteModule(ctx, "m1"))
}

func TestCourseService_UpdateCourse_SlugConflict(t *testing.T) {
	ctx := context.Background()
	srv, m := newTestCourseService(t)

	m.courses.On("FindByID", ctx, "c1").Return(&entity.Course{ID: "c1", Title: "Figma", Price: 10}, nil).Once()
	m.courses.On("FindBySlug", ctx, "photoshop").Return(&entity.Course{ID: "c2"}, nil).Once()

	_, err := srv.UpdateCourse(ctx, "c1", &usecase.CoursePatch{Slug: ptr("photoshop")})
	assert.True(t, errors.Is(err, domainerrors.ErrSlugConflict))
}
