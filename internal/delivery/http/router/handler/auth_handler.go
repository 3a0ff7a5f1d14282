package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "creativehub/internal/delivery/context"
	"creativehub/internal/delivery/http/response"
	domainerrors "creativehub/internal/domain/errors"
	"creativehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler holds dependencies for registration and sign in.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	output, err := h.authUC.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, output, "Registration successful")
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	deliverycontext.LoggerFrom(c.Request().Context(), h.logger).Info("User signed in",
		slog.String("user_id", output.User.ID),
	)

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Me handles GET /api/auth/me for the authenticated caller.
func (h *AuthHandler) Me(c echo.Context) error {
	claims := deliverycontext.Claims(c)
	if claims == nil {
		return domainerrors.ErrUnauthorized
	}

	user, err := h.authUC.Me(c.Request().Context(), claims.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user)
}
