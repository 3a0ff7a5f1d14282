package handler

import (
	"net/http"

	"creativehub/internal/delivery/http/response"
	"creativehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
}

// UserHandler is the admin user directory at /api/users.
type UserHandler struct {
	userUC usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{userUC: params.UserUC}
}

func (h *UserHandler) List(c echo.Context) error {
	filter, err := listFilter(c)
	if err != nil {
		return err
	}

	users, err := h.userUC.List(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, users)
}

func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user)
}

func (h *UserHandler) Create(c echo.Context) error {
	var input usecase.UserInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	user, err := h.userUC.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, user, "User created successfully")
}

func (h *UserHandler) Update(c echo.Context) error {
	var patch usecase.UserPatch
	if err := bindAndValidate(c, &patch); err != nil {
		return err
	}

	user, err := h.userUC.Update(c.Request().Context(), c.Param("id"), &patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User updated successfully")
}

func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted successfully")
}
