package handler

import (
	"net/http"

	"creativehub/internal/delivery/http/response"
	"creativehub/internal/domain/entity"
	domainerrors "creativehub/internal/domain/errors"
	"creativehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
}

// SettingsHandler serves the feature flag map at /api/settings/modules.
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
}

// NewSettingsHandler is the constructor for SettingsHandler.
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{settingsUC: params.SettingsUC}
}

func (h *SettingsHandler) GetModules(c echo.Context) error {
	flags, err := h.settingsUC.GetFeatureFlags(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, flags)
}

// ReplaceModules stores the whole map sent in the body.
func (h *SettingsHandler) ReplaceModules(c echo.Context) error {
	var flags entity.FeatureFlags
	if err := c.Bind(&flags); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("body must map groups to flag objects")
	}

	saved, err := h.settingsUC.ReplaceFeatureFlags(c.Request().Context(), flags)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, saved, "Module settings saved")
}
