package context

import (
	"context"
	"slices"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SetClaims records the authenticated caller for handlers and use cases.
func SetClaims(c echo.Context, claims *service.Claims) {
	c.Set(echoClaims, claims)
	c.SetRequest(c.Request().WithContext(WithClaims(c.Request().Context(), claims)))
}

// Claims returns the authenticated caller, or nil for anonymous requests.
func Claims(c echo.Context) *service.Claims {
	claims, _ := c.Get(echoClaims).(*service.Claims)

	return claims
}

func WithClaims(ctx context.Context, claims *service.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFrom returns the caller carried by ctx, or nil.
func ClaimsFrom(ctx context.Context) *service.Claims {
	claims, _ := ctx.Value(claimsKey).(*service.Claims)

	return claims
}

// HasRole reports whether the caller holds one of roles.
func HasRole(c echo.Context, roles ...entity.Role) bool {
	claims := Claims(c)

	return claims != nil && slices.ContainsFunc(roles, func(r entity.Role) bool { return r.String() == claims.Role })
}
