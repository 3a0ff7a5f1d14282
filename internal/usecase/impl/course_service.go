package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "creativehub/internal/delivery/context"
	"creativehub/internal/domain/entity"
	domainerrors "creativehub/internal/domain/errors"
	"creativehub/internal/domain/repository"
	"creativehub/internal/domain/service"
	"creativehub/internal/usecase"

	"go.uber.org/fx"
)

const (
	resourceCourses = "courses"
	resourceModules = "modules"
	resourceLessons = "lessons"
)

type courseService struct {
	courseRepo repository.CourseRepository
	moduleRepo repository.ModuleRepository
	lessonRepo repository.LessonRepository
	events     events
	logger     *slog.Logger
}

// CourseServiceParams holds dependencies for CourseService, injected by Fx.
type CourseServiceParams struct {
	fx.In

	CourseRepo repository.CourseRepository
	ModuleRepo repository.ModuleRepository
	LessonRepo repository.LessonRepository
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewCourseService is the constructor for courseService.
func NewCourseService(params CourseServiceParams) usecase.CourseUsecase {
	return &courseService{
		courseRepo: params.CourseRepo,
		moduleRepo: params.ModuleRepo,
		lessonRepo: params.LessonRepo,
		events:     events{publisher: params.Publisher, logger: params.Logger},
		logger:     params.Logger,
	}
}

func (srv *courseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// --- Courses ---

func (srv *courseService) ListCourses(ctx context.Context, filter repository.ListFilter) ([]*entity.Course, error) {
	courses, err := srv.courseRepo.List(ctx, filter)
	if err != nil {
		return nil, repoError(err, domainerrors.ErrCourseNotFound, "list courses")
	}

	return courses, nil
}

func (srv *courseService) GetCourse(ctx context.Context, id string) (*entity.Course, error) {
	course, err := srv.courseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, repoError(err, domainerrors.ErrCourseNotFound, "find course")
	}

	return course, nil
}

func (srv *courseService) CreateCourse(ctx context.Context, input *usecase.CourseInput) (*entity.Course, error) {
	if err := requireTitle(input.Title); err != nil {
		return nil, err
	}
	if err := validateSalePrice(input.Price, input.SalePrice); err != nil {
		return nil, err
	}

	status := entity.PublishStatus(input.Status)
	if status == "" {
		status = entity.StatusDraft
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + input.Status)
	}

	slug, err := resolveSlug(ctx, input.Slug, input.Title, "", srv.courseSlugLookup)
	if err != nil {
		return nil, err
	}

	course := &entity.Course{
		Title:       strings.TrimSpace(input.Title),
		Slug:        slug,
		Description: input.Description,
		Instructor:  input.Instructor,
		Level:       input.Level,
		Duration:    input.Duration,
		Price:       input.Price,
		SalePrice:   input.SalePrice,
		Category:    input.Category,
		Tags:        cleanTags(input.Tags),
		Status:      status,
		Thumbnail:   input.Thumbnail,
		Rating:      input.Rating,
	}
	if err := srv.courseRepo.Create(ctx, course); err != nil {
		return nil, repoError(err, domainerrors.ErrCourseNotFound, "create course")
	}

	srv.events.emit(ctx, resourceCourses, service.ActionCreated, course.ID)

	return course, nil
}

func (srv *courseService) UpdateCourse(ctx context.Context, id string, patch *usecase.CoursePatch) (*entity.Course, error) {
	course, err := srv.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	setIfPresent(&course.Title, patch.Title)
	setIfPresent(&course.Description, patch.Description)
	setIfPresent(&course.Instructor, patch.Instructor)
	setIfPresent(&course.Level, patch.Level)
	setIfPresent(&course.Duration, patch.Duration)
	setIfPresent(&course.Price, patch.Price)
	setIfPresent(&course.Category, patch.Category)
	setIfPresent(&course.Thumbnail, patch.Thumbnail)
	setIfPresent(&course.Rating, patch.Rating)
	if patch.SalePrice.Set {
		course.SalePrice = patch.SalePrice.Value
	}
	if patch.Tags != nil {
		course.Tags = cleanTags(patch.Tags)
	}
	if patch.Status != nil {
		course.Status = entity.PublishStatus(*patch.Status)
		if !course.Status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + *patch.Status)
		}
	}

	if err := requireTitle(course.Title); err != nil {
		return nil, err
	}
	if err := validateSalePrice(course.Price, course.SalePrice); err != nil {
		return nil, err
	}
	if patch.Slug != nil {
		slug, err := resolveSlug(ctx, *patch.Slug, course.Title, course.ID, srv.courseSlugLookup)
		if err != nil {
			return nil, err
		}
		course.Slug = slug
	}

	if err := srv.courseRepo.Update(ctx, course); err != nil {
		return nil, repoError(err, domainerrors.ErrCourseNotFound, "update course")
	}

	srv.events.emit(ctx, resourceCourses, service.ActionUpdated, course.ID)

	return course, nil
}

// DeleteCourse removes lessons, then modules, then the course, so an interrupted
// cascade never leaves children without their parent.
func (srv *courseService) DeleteCourse(ctx context.Context, id string) error {
	if _, err := srv.GetCourse(ctx, id); err != nil {
		return err
	}

	modules, err := srv.moduleRepo.ListByCourse(ctx, id)
	if err != nil {
		return repoError(err, domainerrors.ErrCourseNotFound, "list course modules")
	}

	moduleIDs := make([]string, 0, len(modules))
	for _, m := range modules {
		moduleIDs = append(moduleIDs, m.ID)
	}

	lessons, err := srv.lessonRepo.DeleteByModules(ctx, moduleIDs)
	if err != nil {
		return repoError(err, domainerrors.ErrCourseNotFound, "delete course lessons")
	}
	removedModules, err := srv.moduleRepo.DeleteByCourse(ctx, id)
	if err != nil {
		return repoError(err, domainerrors.ErrCourseNotFound, "delete course modules")
	}
	if err := srv.courseRepo.Delete(ctx, id); err != nil {
		return repoError(err, domainerrors.ErrCourseNotFound, "delete course")
	}

	srv.log(ctx).Info("Course deleted",
		slog.String("course_id", id),
		slog.Int64("modules", removedModules),
		slog.Int64("lessons", lessons),
	)
	srv.events.emit(ctx, resourceCourses, service.ActionDeleted, id)

	return nil
}

func (srv *courseService) courseSlugLookup(ctx context.Context, slug string) (string, error) {
	course, err := srv.courseRepo.FindBySlug(ctx, slug)
	if err != nil {
		return "", err
	}

	return course.ID, nil
}

// --- Modules ---

func (srv *courseService) ListModules(ctx context.Context, filter repository.ListFilter) ([]*entity.Module, error) {
	modules, err := srv.moduleRepo.List(ctx, filter)
	if err != nil {
		return nil, repoError(err, domainerrors.ErrModuleNotFound, "list modules")
	}

	return modules, nil
}

func (srv *courseService) ListModulesByCourse(ctx context.Context, courseID string) ([]*entity.Module, error) {
	if _, err := srv.GetCourse(ctx, courseID); err != nil {
		return nil, err
	}

	modules, err := srv.moduleRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, repoError(err, domainerrors.ErrModuleNotFound, "list course modules")
	}

	return modules, nil
}

func (srv *courseService) GetModule(ctx context.Context, id string) (*entity.Module, error) {
	module, err := srv.moduleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, repoError(err, domainerrors.ErrModuleNotFound, "find module")
	}

	return module, nil
}

func (srv *courseService) CreateModule(ctx context.Context, input *usecase.ModuleInput) (*entity.Module, error) {
	if err := requireTitle(input.Title); err != nil {
		return nil, err
	}
	if _, err := srv.GetCourse(ctx, input.Course); err != nil {
		return nil, err
	}

	module := &entity.Module{
		Course:      input.Course,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Order:       input.Order,
	}
	if err := srv.moduleRepo.Create(ctx, module); err != nil {
		return nil, repoError(err, domainerrors.ErrCourseNotFound, "create module")
	}

	srv.events.emit(ctx, resourceModules, service.ActionCreated, module.ID)

	return module, nil
}

func (srv *courseService) UpdateModule(ctx context.Context, id string, patch *usecase.ModulePatch) (*entity.Module, error) {
	module, err := srv.GetModule(ctx, id)
	if err != nil {
		return nil, err
	}

	setIfPresent(&module.Title, patch.Title)
	setIfPresent(&module.Description, patch.Description)
	setIfPresent(&module.Order, patch.Order)
	if err := requireTitle(module.Title); err != nil {
		return nil, err
	}

	if err := srv.moduleRepo.Update(ctx, module); err != nil {
		return nil, repoError(err, domainerrors.ErrModuleNotFound, "update module")
	}

	srv.events.emit(ctx, resourceModules, service.ActionUpdated, module.ID)

	return module, nil
}

func (srv *courseService) DeleteModule(ctx context.Context, id string) error {
	if _, err := srv.GetModule(ctx, id); err != nil {
		return err
	}

	if _, err := srv.lessonRepo.DeleteByModules(ctx, []string{id}); err != nil {
		return repoError(err, domainerrors.ErrModuleNotFound, "delete module lessons")
	}
	if err := srv.moduleRepo.Delete(ctx, id); err != nil {
		return repoError(err, domainerrors.ErrModuleNotFound, "delete module")
	}

	srv.events.emit(ctx, resourceModules, service.ActionDeleted, id)

	return nil
}

// --- Lessons ---

func (srv *courseService) ListLessons(ctx context.Context, filter repository.ListFilter) ([]*entity.Lesson, error) {
	lessons, err := srv.lessonRepo.List(ctx, filter)
	if err != nil {
		return nil, repoError(err, domainerrors.ErrLessonNotFound, "list lessons")
	}

	return lessons, nil
}

func (srv *courseService) ListLessonsByModule(ctx context.Context, moduleID string) ([]*entity.Lesson, error) {
	if _, err := srv.GetModule(ctx, moduleID); err != nil {
		return nil, err
	}

	lessons, err := srv.lessonRepo.ListByModule(ctx, moduleID)
	if err != nil {
		return nil, repoError(err, domainerrors.ErrLessonNotFound, "list module lessons")
	}

	return lessons, nil
}

func (srv *courseService) GetLesson(ctx context.Context, id string) (*entity.Lesson, error) {
	lesson, err := srv.lessonRepo.FindByID(ctx, id)
	if err != nil {
		return nil, repoError(err, domainerrors.ErrLessonNotFound, "find lesson")
	}

	return lesson, nil
}

func (srv *courseService) CreateLesson(ctx context.Context, input *usecase.LessonInput) (*entity.Lesson, error) {
	if err := requireTitle(input.Title); err != nil {
		return nil, err
	}
	if _, err := srv.GetModule(ctx, input.Module); err != nil {
		return nil, err
	}

	lesson := &entity.Lesson{
		Module:    input.Module,
		Title:     strings.TrimSpace(input.Title),
		Content:   input.Content,
		VideoURL:  input.VideoURL,
		Duration:  input.Duration,
		Order:     input.Order,
		IsPreview: input.IsPreview,
	}
	if err := srv.lessonRepo.Create(ctx, lesson); err != nil {
		return nil, repoError(err, domainerrors.ErrModuleNotFound, "create lesson")
	}

	srv.events.emit(ctx, resourceLessons, service.ActionCreated, lesson.ID)

	return lesson, nil
}

func (srv *courseService) UpdateLesson(ctx context.Context, id string, patch *usecase.LessonPatch) (*entity.Lesson, error) {
	lesson, err := srv.GetLesson(ctx, id)
	if err != nil {
		return nil, err
	}

	setIfPresent(&lesson.Title, patch.Title)
	setIfPresent(&lesson.Content, patch.Content)
	setIfPresent(&lesson.VideoURL, patch.VideoURL)
	setIfPresent(&lesson.Duration, patch.Duration)
	setIfPresent(&lesson.Order, patch.Order)
	setIfPresent(&lesson.IsPreview, patch.IsPreview)
	if err := requireTitle(lesson.Title); err != nil {
		return nil, err
	}

	if err := srv.lessonRepo.Update(ctx, lesson); err != nil {
		return nil, repoError(err, domainerrors.ErrLessonNotFound, "update lesson")
	}

	srv.events.emit(ctx, resourceLessons, service.ActionUpdated, lesson.ID)

	return lesson, nil
}

func (srv *courseService) DeleteLesson(ctx context.Context, id string) error {
	if err := srv.lessonRepo.Delete(ctx, id); err != nil {
		return repoError(err, domainerrors.ErrLessonNotFound, "delete lesson")
	}

	srv.events.emit(ctx, resourceLessons, service.ActionDeleted, id)

	return nil
}
