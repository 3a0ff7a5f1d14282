package handler

import (
	"creativehub/internal/delivery/http/response"
	"creativehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ActivityHandlerParams holds dependencies for ActivityHandler, injected by Fx.
type ActivityHandlerParams struct {
	fx.In

	ActivityUC usecase.ActivityUsecase
}

// ActivityHandler serves the admin change feed.
type ActivityHandler struct {
	activityUC usecase.ActivityUsecase
}

// NewActivityHandler is the constructor for ActivityHandler.
func NewActivityHandler(params ActivityHandlerParams) *ActivityHandler {
	return &ActivityHandler{activityUC: params.ActivityUC}
}

// List handles GET /api/activity; ?type= narrows by resource.
func (h *ActivityHandler) List(c echo.Context) error {
	filter, err := listFilter(c)
	if err != nil {
		return err
	}

	activities, err := h.activityUC.List(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, activities)
}
