package user

import (
	"fmt"

	vo "github.com/parley-chat/parley/internal/domain/user/valueobjects"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

func (u *User) SetPassword(password *vo.Password, hasher PasswordHasher) error {
	if password == nil {
		return fmt.Errorf("password cannot be nil")
	}

	hash, err := hasher.Hash(password.String())
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.passwordHash = hash
	return nil
}

func (u *User) VerifyPassword(plain string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return fmt.Errorf("user has no password set")
	}
	if err := hasher.Verify(plain, u.passwordHash); err != nil {
		return fmt.Errorf("invalid password")
	}
	return nil
}

// CanLogin reports whether the account may start a new session.
func (u *User) CanLogin() error {
	if !u.active {
		return ErrAccountInactive
	}
	return nil
}
