// Package response writes the {success, data, message} envelope every endpoint returns.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the body of every JSON response. Data is omitted when nil so
// clients can treat a missing and a null payload the same way.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Message string     `json:"message,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries a machine readable code, e.g. "PRODUCT_NOT_FOUND".
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

func Success(c echo.Context, status int, data any, message string) error {
	return c.JSON(status, Envelope{Success: true, Data: data, Message: message})
}

func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data, "")
}

func Created(c echo.Context, data any, message string) error {
	return Success(c, http.StatusCreated, data, message)
}

// Error writes a failure envelope. An empty message falls back to the status text.
func Error(c echo.Context, status int, code, message, details string) error {
	if message == "" {
		message = http.StatusText(status)
	}
	info := &ErrorInfo{Code: code, Details: details}

	return c.JSON(status, Envelope{Message: message, Error: info})
}

func InternalServerError(c echo.Context, code, message string) error {
	return Error(c, http.StatusInternalServerError, code, message, "")
}
