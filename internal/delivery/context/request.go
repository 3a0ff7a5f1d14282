// Package context moves per-request values between echo handlers and the use cases:
// the request id, a logger already tagged with it, and the authenticated caller.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from callers and echoed back on every response.
const HeaderXRequestID = echo.HeaderXRequestID

type key int

const (
	requestIDKey key = iota
	loggerKey
	claimsKey
)

// echo.Context store keys
const (
	echoRequestID = "request_id"
	echoClaims    = "claims"
)

// Bind attaches requestID and its logger to both the echo store and the request context.
func Bind(c echo.Context, requestID string, logger *slog.Logger) {
	c.Set(echoRequestID, requestID)

	ctx := WithLogger(WithRequestID(c.Request().Context(), requestID), logger)
	c.SetRequest(c.Request().WithContext(ctx))
}

// RequestID returns the id bound to c, or "" before the request-id middleware ran.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestID).(string); ok {
		return id
	}

	return RequestIDFrom(c.Request().Context())
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFrom returns the request id carried by ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFrom returns the request-scoped logger, or fallback outside a request.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
