package handler

import (
	"net/http"

	"creativehub/internal/delivery/http/response"
	"creativehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
}

// CategoryHandler serves /api/categories.
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
}

// NewCategoryHandler is the constructor for CategoryHandler.
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{categoryUC: params.CategoryUC}
}

func (h *CategoryHandler) List(c echo.Context) error {
	filter, err := listFilter(c)
	if err != nil {
		return err
	}

	categories, err := h.categoryUC.List(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, categories)
}

func (h *CategoryHandler) Get(c echo.Context) error {
	category, err := h.categoryUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, category)
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var input usecase.CategoryInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	category, err := h.categoryUC.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, category, "Category created successfully")
}

func (h *CategoryHandler) Update(c echo.Context) error {
	var patch usecase.CategoryPatch
	if err := bindAndValidate(c, &patch); err != nil {
		return err
	}

	category, err := h.categoryUC.Update(c.Request().Context(), c.Param("id"), &patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "Category updated successfully")
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.categoryUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted successfully")
}
