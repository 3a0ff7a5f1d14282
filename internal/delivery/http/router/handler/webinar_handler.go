package handler

import (
	"net/http"

	"creativehub/internal/delivery/http/response"
	"creativehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// WebinarHandlerParams holds dependencies for WebinarHandler, injected by Fx.
type WebinarHandlerParams struct {
	fx.In

	WebinarUC usecase.WebinarUsecase
}

// WebinarHandler serves /api/webinars.
type WebinarHandler struct {
	webinarUC usecase.WebinarUsecase
}

// NewWebinarHandler is the constructor for WebinarHandler.
func NewWebinarHandler(params WebinarHandlerParams) *WebinarHandler {
	return &WebinarHandler{webinarUC: params.WebinarUC}
}

func (h *WebinarHandler) List(c echo.Context) error {
	filter, err := listFilter(c)
	if err != nil {
		return err
	}

	webinars, err := h.webinarUC.List(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, webinars)
}

func (h *WebinarHandler) Get(c echo.Context) error {
	webinar, err := h.webinarUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, webinar)
}

func (h *WebinarHandler) Create(c echo.Context) error {
	var input usecase.WebinarInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	webinar, err := h.webinarUC.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, webinar, "Webinar created successfully")
}

func (h *WebinarHandler) Update(c echo.Context) error {
	var patch usecase.WebinarPatch
	if err := bindAndValidate(c, &patch); err != nil {
		return err
	}

	webinar, err := h.webinarUC.Update(c.Request().Context(), c.Param("id"), &patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, webinar, "Webinar updated successfully")
}

func (h *WebinarHandler) Delete(c echo.Context) error {
	if err := h.webinarUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Webinar deleted successfully")
}
