package repository

import (
	"context"

	"creativehub/internal/domain/entity"
)

// CourseRepository persists courses.
type CourseRepository interface {
	List(ctx context.Context, filter ListFilter) ([]*entity.Course, error)
	FindByID(ctx context.Context, id string) (*entity.Course, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Course, error)
	Create(ctx context.Context, course *entity.Course) error
	Update(ctx context.Context, course *entity.Course) error
	Delete(ctx context.Context, id string) error
}

// ModuleRepository persists course modules.
type ModuleRepository interface {
	List(ctx context.Context, filter ListFilter) ([]*entity.Module, error)
	// ListByCourse returns the modules of a course ordered by their order field.
	ListByCourse(ctx context.Context, courseID string) ([]*entity.Module, error)
	FindByID(ctx context.Context, id string) (*entity.Module, error)
	Create(ctx context.Context, module *entity.Module) error
	Update(ctx context.Context, module *entity.Module) error
	Delete(ctx context.Context, id string) error
	DeleteByCourse(ctx context.Context, courseID string) (int64, error)
}

// LessonRepository persists module lessons.
type LessonRepository interface {
	List(ctx context.Context, filter ListFilter) ([]*entity.Lesson, error)
	// ListByModule returns the lessons of a module ordered by their order field.
	ListByModule(ctx context.Context, moduleID string) ([]*entity.Lesson, error)
	FindByID(ctx context.Context, id string) (*entity.Lesson, error)
	Create(ctx context.Context, lesson *entity.Lesson) error
	Update(ctx context.Context, lesson *entity.Lesson) error
	Delete(ctx context.Context, id string) error
	DeleteByModules(ctx context.Context, moduleIDs []string) (int64, error)
}
