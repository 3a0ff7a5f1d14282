// Package errors defines the application errors surfaced to API clients.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError is an error the HTTP layer can render as an envelope.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string // e.g. "SLUG_CONFLICT"
	Message() string
	Details() string
}

// BaseError is an AppError identified by its business code.
type BaseError struct {
	status  int
	code    string
	message string
	details string
}

// NewBaseError creates a new base error
func NewBaseError(status int, code, message, details string) *BaseError {
	return &BaseError{status: status, code: code, message: message, details: details}
}

func coded(status int, code, message string) *BaseError {
	return NewBaseError(status, code, message, "")
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is compares business codes, so a WithDetails copy still matches the predefined value.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return other.code == e.code
}

// WrapMessage prefixes the error with context while keeping it an AppError.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithDetails returns a copy carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

func (e *BaseError) HTTPCode() int     { return e.status }
func (e *BaseError) ErrorCode() string { return e.code }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// Input
var (
	ErrValidationFailed      = coded(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
	ErrInvalidSalePrice      = coded(http.StatusBadRequest, "INVALID_SALE_PRICE", "Sale price must be lower than price")
	ErrInvalidParentCategory = coded(http.StatusBadRequest, "INVALID_PARENT_CATEGORY", "Parent category must be an existing parent of the same type")
	ErrUnknownFeature        = coded(http.StatusBadRequest, "UNKNOWN_FEATURE", "Unknown feature flag")
)

// Resources
var (
	ErrProductNotFound     = coded(http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
	ErrCategoryNotFound    = coded(http.StatusNotFound, "CATEGORY_NOT_FOUND", "Category not found")
	ErrCourseNotFound      = coded(http.StatusNotFound, "COURSE_NOT_FOUND", "Course not found")
	ErrModuleNotFound      = coded(http.StatusNotFound, "MODULE_NOT_FOUND", "Module not found")
	ErrLessonNotFound      = coded(http.StatusNotFound, "LESSON_NOT_FOUND", "Lesson not found")
	ErrCertificateNotFound = coded(http.StatusNotFound, "CERTIFICATE_NOT_FOUND", "Certificate not found")
	ErrWebinarNotFound     = coded(http.StatusNotFound, "WEBINAR_NOT_FOUND", "Webinar not found")
	ErrUserNotFound        = coded(http.StatusNotFound, "USER_NOT_FOUND", "User not found")

	ErrSlugConflict              = coded(http.StatusConflict, "SLUG_CONFLICT", "Slug is already in use")
	ErrCertificateAlreadyRevoked = coded(http.StatusConflict, "CERTIFICATE_ALREADY_REVOKED", "Certificate is already revoked")
	ErrUserAlreadyExists         = coded(http.StatusConflict, "USER_ALREADY_EXISTS", "Email is already registered")
	ErrConflict                  = coded(http.StatusConflict, "CONFLICT", "Resource conflict")
)

// Access
var (
	ErrInvalidCredentials = coded(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	ErrUnauthorized       = coded(http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	ErrAccountBlocked     = coded(http.StatusForbidden, "ACCOUNT_BLOCKED", "Account is blocked")
	ErrForbidden          = coded(http.StatusForbidden, "FORBIDDEN", "Access denied")
)

var (
	ErrPasswordHashFailed = coded(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Password processing failed")
	ErrInternalError      = coded(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
)

// DatabaseExecuteError wraps a driver failure as a 500.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return "database execution failed: " + e.err.Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database operation failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
