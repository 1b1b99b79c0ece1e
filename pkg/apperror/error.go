package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an error independently of the transport that renders it.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindTransient    Kind = "transient"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindRateLimited  Kind = "rate_limited"
)

type AppError struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Wrap attaches the underlying cause and returns e.
func (e *AppError) Wrap(err error) *AppError {
	e.Err = err
	return e
}

func New(code int, kind Kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Validation reports missing or malformed input. The caller can always recover
// by correcting the input.
func Validation(message string) *AppError {
	return New(http.StatusBadRequest, KindValidation, message, nil)
}

func BadRequest(message string) *AppError {
	return Validation(message)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, KindNotFound, message, nil)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, KindConflict, message, nil)
}

// Transient wraps a backing-store failure. Reads may be retried by the caller;
// non-idempotent writes must not be retried blindly.
func Transient(err error) *AppError {
	return New(http.StatusInternalServerError, KindTransient, "Service temporarily unavailable", err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, KindTransient, "Internal Server Error", err)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, KindUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, KindForbidden, message, nil)
}

func TooManyRequests(message string) *AppError {
	return New(http.StatusTooManyRequests, KindRateLimited, message, nil)
}

// IsKind reports whether any AppError in err's chain has the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
