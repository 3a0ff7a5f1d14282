package middleware

import (
	"log/slog"
	"time"

	deliverycontext "creativehub/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// AccessLog writes one line per request through the request-scoped logger.
// It is a no-op unless enabled, which the worker ties to env.debug.
func AccessLog(fallback *slog.Logger, enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if !enabled {
			return next
		}

		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			req, res := c.Request(), c.Response()
			attrs := []slog.Attr{
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.Int("status", res.Status),
				slog.Duration("latency", time.Since(start)),
				slog.String("remote_ip", c.RealIP()),
			}
			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
			}

			level := slog.LevelInfo
			switch {
			case res.Status >= 500:
				level = slog.LevelError
			case res.Status >= 400:
				level = slog.LevelWarn
			}
			deliverycontext.LoggerFrom(req.Context(), fallback).LogAttrs(req.Context(), level, "HTTP Request", attrs...)

			return err
		}
	}
}
