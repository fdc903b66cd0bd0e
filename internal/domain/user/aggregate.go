package user

import (
	"fmt"
	"time"

	"github.com/parley-chat/parley/internal/domain/shared"
	vo "github.com/parley-chat/parley/internal/domain/user/valueobjects"
)

// User is the account aggregate. It never leaves the process with its
// password hash; handlers work with dto.UserResponse.
type User struct {
	id           uint
	email        *vo.Email
	username     *vo.Username
	gender       vo.Gender
	passwordHash string
	profileImage *shared.ImageRef
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email *vo.Email, username *vo.Username, gender vo.Gender) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if username == nil {
		return nil, fmt.Errorf("username is required")
	}
	if !gender.IsValid() {
		return nil, fmt.Errorf("invalid gender: %s", gender)
	}

	now := time.Now().UTC()
	return &User{
		email:     email,
		username:  username,
		gender:    gender,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// UserSnapshot carries persisted state into ReconstructUser.
type UserSnapshot struct {
	ID           uint
	Email        string
	Username     string
	Gender       string
	PasswordHash string
	ProfileImage *shared.ImageRef
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ReconstructUser rebuilds a user from persistence without running the
// registration rules again.
func ReconstructUser(s UserSnapshot) (*User, error) {
	if s.ID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	email, err := vo.NewEmail(s.Email)
	if err != nil {
		return nil, err
	}
	username, err := vo.NewUsername(s.Username)
	if err != nil {
		return nil, err
	}

	return &User{
		id:           s.ID,
		email:        email,
		username:     username,
		gender:       vo.Gender(s.Gender),
		passwordHash: s.PasswordHash,
		profileImage: s.ProfileImage,
		active:       s.Active,
		createdAt:    s.CreatedAt,
		updatedAt:    s.UpdatedAt,
	}, nil
}

func (u *User) ID() uint                       { return u.id }
func (u *User) Email() *vo.Email               { return u.email }
func (u *User) Username() *vo.Username         { return u.username }
func (u *User) Gender() vo.Gender              { return u.gender }
func (u *User) PasswordHash() string           { return u.passwordHash }
func (u *User) ProfileImage() *shared.ImageRef { return u.profileImage }
func (u *User) IsActive() bool                 { return u.active }
func (u *User) CreatedAt() time.Time           { return u.createdAt }
func (u *User) UpdatedAt() time.Time           { return u.updatedAt }

// SetID is called by the repository after insert.
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// ChangeProfileImage swaps in a new image and returns the one it replaced,
// if any, so the caller can remove it from the object store.
func (u *User) ChangeProfileImage(ref shared.ImageRef) *shared.ImageRef {
	previous := u.profileImage
	u.profileImage = &ref
	u.updatedAt = time.Now().UTC()
	return previous
}

func (u *User) Deactivate() {
	u.active = false
	u.updatedAt = time.Now().UTC()
}
