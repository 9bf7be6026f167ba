// Package apperror defines the error taxonomy the service layer reports and
// the HTTP layer translates into status codes.
package apperror

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrValidation   = errors.New("validation failed")
	ErrForbidden    = errors.New("forbidden")
)

// AppError pairs a taxonomy sentinel with the human-readable detail message
// surfaced to the client.
type AppError struct {
	Err    error
	Detail string
}

func (e *AppError) Error() string {
	return e.Detail
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(detail string) *AppError {
	return &AppError{Err: ErrNotFound, Detail: detail}
}

func Conflict(detail string) *AppError {
	return &AppError{Err: ErrConflict, Detail: detail}
}

func InvalidState(detail string) *AppError {
	return &AppError{Err: ErrInvalidState, Detail: detail}
}

func Validation(detail string) *AppError {
	return &AppError{Err: ErrValidation, Detail: detail}
}

func Forbidden(detail string) *AppError {
	return &AppError{Err: ErrForbidden, Detail: detail}
}
