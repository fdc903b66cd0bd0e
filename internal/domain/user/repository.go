package user

import (
	"context"

	"github.com/parley-chat/parley/internal/domain/shared"
)

// Repository is the credential store. Lookups return (nil, nil) when no
// user matches.
type Repository interface {
	// Create inserts the user and sets its ID. A duplicate email yields
	// ErrEmailTaken.
	Create(ctx context.Context, user *User) error

	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByEmail matches the email exactly as stored, case included.
	GetByEmail(ctx context.Context, email string) (*User, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)

	UpdateProfileImage(ctx context.Context, id uint, image shared.ImageRef) error

	// ListExcept returns every user other than id, oldest first.
	ListExcept(ctx context.Context, id uint) ([]*User, error)
}
