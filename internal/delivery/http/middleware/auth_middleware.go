// Package middleware contains the echo middleware specific to the REST API.
package middleware

import (
	"strings"

	deliverycontext "creativehub/internal/delivery/context"
	"creativehub/internal/domain/entity"
	domainerrors "creativehub/internal/domain/errors"
	"creativehub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid bearer access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || tokenString == "" {
			return domainerrors.ErrUnauthorized.WithDetails("invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}

// RequireRole allows the request only when the caller holds one of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if deliverycontext.Claims(c) == nil {
				return domainerrors.ErrUnauthorized
			}
			if !deliverycontext.HasRole(c, roles...) {
				return domainerrors.ErrForbidden.WithDetails("insufficient role")
			}

			return next(c)
		}
	}
}

// Protect chains Authenticate and RequireRole for a single route.
func (m *AuthMiddleware) Protect(roles ...entity.Role) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{m.Authenticate, m.RequireRole(roles...)}
}
