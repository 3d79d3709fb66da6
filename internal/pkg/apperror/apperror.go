// Package apperror carries failures that cross the HTTP boundary.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Category groups related application errors for unified handling.
type Category string

const (
	CategoryValidation   Category = "VALIDATION"
	CategoryNotFound     Category = "NOT_FOUND"
	CategoryUnauthorized Category = "UNAUTHORIZED"
	CategoryForbidden    Category = "FORBIDDEN"
	CategoryInternal     Category = "INTERNAL"
)

type AppError struct {
	Code     string
	Category Category
	Message  string
	Err      error
	Fields   map[string][]string
}

func (e *AppError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Category, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Category, e.Code, e.Message)
}

// Unwrap exposes the wrapped error to errors.Is/errors.As.
func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *AppError) HTTPStatus() int {
	switch e.Category {
	case CategoryValidation:
		return http.StatusUnprocessableEntity
	case CategoryNotFound:
		return http.StatusNotFound
	case CategoryUnauthorized:
		return http.StatusUnauthorized
	case CategoryForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func Validation(code, message string, fields map[string][]string) *AppError {
	return &AppError{Code: code, Category: CategoryValidation, Message: message, Fields: fields}
}

func NotFound(code, message string) *AppError {
	return &AppError{Code: code, Category: CategoryNotFound, Message: message}
}

func Unauthorized(message string) *AppError {
	return &AppError{Code: "Auth.Error0002", Category: CategoryUnauthorized, Message: message}
}

// Forbidden optionally wraps the fault that caused the denial.
func Forbidden(code, message string, cause error) *AppError {
	return &AppError{Code: code, Category: CategoryForbidden, Message: message, Err: cause}
}

func Internal(err error) *AppError {
	return &AppError{Code: "Common.Error0000", Category: CategoryInternal, Message: "Unexpected error", Err: err}
}

// As unwraps standard errors to AppError when possible.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsForbidden(err error) bool {
	appErr, ok := As(err)
	return ok && appErr.Category == CategoryForbidden
}
