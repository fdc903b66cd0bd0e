package http

import (
	"gorm.io/gorm"

	"github.com/parley-chat/parley/internal/domain/message"
	"github.com/parley-chat/parley/internal/domain/user"
	"github.com/parley-chat/parley/internal/infrastructure/repository"
	"github.com/parley-chat/parley/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo    user.Repository
	messageRepo message.Repository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:    repository.NewUserRepository(db, log),
		messageRepo: repository.NewMessageRepository(db, log),
	}
}
