package models

import (
	"time"

	"github.com/parley-chat/parley/internal/shared/constants"
)

// UserModel is the users table row. IsActive carries no GORM default so an
// explicit false is written rather than skipped.
type UserModel struct {
	ID               uint    `gorm:"primarykey"`
	Email            string  `gorm:"uniqueIndex:idx_users_email;not null;size:255"`
	Username         string  `gorm:"not null;size:50"`
	PasswordHash     string  `gorm:"not null;size:255"`
	Gender           string  `gorm:"not null;size:10"`
	ProfilePicture   *string `gorm:"size:500"`
	ProfileStorageID *string `gorm:"size:255"`
	IsActive         bool    `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
