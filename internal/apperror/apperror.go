package apperror

import (
	"errors"
	"fmt"
)

// Type classifies an error by where it came from
type Type string

const (
	// TypeValidation indicates a client input error
	TypeValidation Type = "VALIDATION"

	// TypeNotFound indicates a referenced resource does not exist
	TypeNotFound Type = "NOT_FOUND"

	// TypeExternal indicates a failure in a collaborating service
	TypeExternal Type = "EXTERNAL"

	// TypeInternal indicates an unexpected failure inside this process
	TypeInternal Type = "INTERNAL"
)

// AppError represents an application error
type AppError struct {
	Type    Type
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *AppError {
	return &AppError{Type: TypeValidation, Message: message}
}

func NewNotFoundError(message string, err error) *AppError {
	return &AppError{Type: TypeNotFound, Message: message, Err: err}
}

func NewExternalError(message string, err error) *AppError {
	return &AppError{Type: TypeExternal, Message: message, Err: err}
}

func NewInternalError(message string, err error) *AppError {
	return &AppError{Type: TypeInternal, Message: message, Err: err}
}

// TypeOf returns the type of the first AppError in err's chain, or
// TypeInternal when there is none.
func TypeOf(err error) Type {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return TypeInternal
}

// Is reports whether any AppError in err's chain has type t.
func Is(err error, t Type) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}
