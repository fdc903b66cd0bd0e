package message

import "github.com/parley-chat/parley/internal/shared/errors"

var ErrEmptyMessage = errors.NewValidationError("Message must have text content or an image")

func NewReceiverNotFoundError() *errors.AppError {
	return errors.NewNotFoundError("Receiver not found")
}
