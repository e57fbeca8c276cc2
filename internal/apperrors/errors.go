package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// Lookups scoped to the wrong owner intentionally surface the same error.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// AppError carries a caller-facing message alongside the wrapped sentinel,
// so handlers can render the exact message without leaking internals.
type AppError struct {
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError builds a caller-correctable validation error with the given message.
func NewValidationError(msg string) *AppError {
	return &AppError{Message: msg, Err: ErrValidation}
}

// MessageFor extracts the caller-facing message from err, falling back to
// fallback when err carries no AppError.
func MessageFor(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return fallback
}
