package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "creativehub/internal/delivery/context"
	"creativehub/internal/delivery/http/response"
	domainerrors "creativehub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders every handler error as the response envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler. Details of 5xx
// errors are logged and never sent to the client.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	req := c.Request()
	logFailure := func(msg string) {
		deliverycontext.LoggerFrom(req.Context(), m.logger).Error(msg,
			slog.Any("error", err),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
		)
	}

	var appErr domainerrors.AppError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		details := appErr.Details()
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logFailure("Request failed")
			details = ""
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)

	case errors.As(err, &httpErr):
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, "")

	default:
		logFailure("Unhandled error")
		_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
	}
}
