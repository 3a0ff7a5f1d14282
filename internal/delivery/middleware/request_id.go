// Package middleware holds echo middleware shared by the API and the activity worker.
package middleware

import (
	"log/slog"

	deliverycontext "creativehub/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestID reuses the caller's X-Request-Id or mints one, echoes it back and binds it,
// with a logger tagged by it, to the request.
func RequestID(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(deliverycontext.HeaderXRequestID, id)
			deliverycontext.Bind(c, id, logger.With(slog.String("request_id", id)))

			return next(c)
		}
	}
}
