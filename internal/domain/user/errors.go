package user

import (
	"github.com/parley-chat/parley/internal/shared/errors"
)

var (
	ErrAccountInactive = errors.NewAccountInactiveError()
	ErrEmailTaken      = errors.NewConflictError("Email already registered")
)

// DomainError is a validation failure raised by the user aggregate or its
// value objects.
type DomainError struct {
	*errors.AppError
}

func NewDomainError(message string, details ...string) *DomainError {
	return &DomainError{AppError: errors.NewValidationError(message, details...)}
}

func (e *DomainError) Error() string {
	return e.AppError.Error()
}

func (e *DomainError) Unwrap() error {
	return e.AppError
}

func NewUserNotFoundError() *errors.AppError {
	return errors.NewNotFoundError("User not found")
}
