package handler

import (
	"net/http"

	"creativehub/internal/delivery/http/response"
	"creativehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CourseHandlerParams holds dependencies for CourseHandler, injected by Fx.
type CourseHandlerParams struct {
	fx.In

	CourseUC usecase.CourseUsecase
}

// CourseHandler serves courses together with their modules and lessons.
type CourseHandler struct {
	courseUC usecase.CourseUsecase
}

// NewCourseHandler is the constructor for CourseHandler.
func NewCourseHandler(params CourseHandlerParams) *CourseHandler {
	return &CourseHandler{courseUC: params.CourseUC}
}

// --- Courses ---

func (h *CourseHandler) ListCourses(c echo.Context) error {
	filter, err := listFilter(c)
	if err != nil {
		return err
	}

	courses, err := h.courseUC.ListCourses(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, courses)
}

func (h *CourseHandler) GetCourse(c echo.Context) error {
	course, err := h.courseUC.GetCourse(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, course)
}

func (h *CourseHandler) CreateCourse(c echo.Context) error {
	var input usecase.CourseInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	course, err := h.courseUC.CreateCourse(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, course, "Course created successfully")
}

func (h *CourseHandler) UpdateCourse(c echo.Context) error {
	var patch usecase.CoursePatch
	if err := bindAndValidate(c, &patch); err != nil {
		return err
	}

	course, err := h.courseUC.UpdateCourse(c.Request().Context(), c.Param("id"), &patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, course, "Course updated successfully")
}

// DeleteCourse also removes the course's modules and lessons.
func (h *CourseHandler) DeleteCourse(c echo.Context) error {
	if err := h.courseUC.DeleteCourse(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Course deleted successfully")
}

// --- Modules ---

func (h *CourseHandler) ListModules(c echo.Context) error {
	filter, err := listFilter(c)
	if err != nil {
		return err
	}

	modules, err := h.courseUC.ListModules(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, modules)
}

// ListModulesByCourse handles GET /api/modules/course/:courseId.
func (h *CourseHandler) ListModulesByCourse(c echo.Context) error {
	modules, err := h.courseUC.ListModulesByCourse(c.Request().Context(), c.Param("courseId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, modules)
}

func (h *CourseHandler) GetModule(c echo.Context) error {
	module, err := h.courseUC.GetModule(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, module)
}

func (h *CourseHandler) CreateModule(c echo.Context) error {
	var input usecase.ModuleInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	module, err := h.courseUC.CreateModule(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, module, "Module created successfully")
}

func (h *CourseHandler) UpdateModule(c echo.Context) error {
	var patch usecase.ModulePatch
	if err := bindAndValidate(c, &patch); err != nil {
		return err
	}

	module, err := h.courseUC.UpdateModule(c.Request().Context(), c.Param("id"), &patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, module, "Module updated successfully")
}

func (h *CourseHandler) DeleteModule(c echo.Context) error {
	if err := h.courseUC.DeleteModule(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Module deleted successfully")
}

// --- Lessons ---

func (h *CourseHandler) ListLessons(c echo.Context) error {
	filter, err := listFilter(c)
	if err != nil {
		return err
	}

	lessons, err := h.courseUC.ListLessons(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, lessons)
}

// ListLessonsByModule handles GET /api/lessons/module/:moduleId.
func (h *CourseHandler) ListLessonsByModule(c echo.Context) error {
	lessons, err := h.courseUC.ListLessonsByModule(c.Request().Context(), c.Param("moduleId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, lessons)
}

func (h *CourseHandler) GetLesson(c echo.Context) error {
	lesson, err := h.courseUC.GetLesson(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, lesson)
}

func (h *CourseHandler) CreateLesson(c echo.Context) error {
	var input usecase.LessonInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	lesson, err := h.courseUC.CreateLesson(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, lesson, "Lesson created successfully")
}

func (h *CourseHandler) UpdateLesson(c echo.Context) error {
	var patch usecase.LessonPatch
	if err := bindAndValidate(c, &patch); err != nil {
		return err
	}

	lesson, err := h.courseUC.UpdateLesson(c.Request().Context(), c.Param("id"), &patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, lesson, "Lesson updated successfully")
}

func (h *CourseHandler) DeleteLesson(c echo.Context) error {
	if err := h.courseUC.DeleteLesson(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Lesson deleted successfully")
}
