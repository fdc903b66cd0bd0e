package http

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/parley-chat/parley/internal/domain/shared"
	"github.com/parley-chat/parley/internal/infrastructure/config"
	"github.com/parley-chat/parley/internal/infrastructure/storage"
	"github.com/parley-chat/parley/internal/shared/logger"
)

// ObjectStore is the blob storage the router uploads images to.
// *storage.S3ObjectStore satisfies it.
type ObjectStore interface {
	Upload(ctx context.Context, folder string, obj storage.Object) (shared.ImageRef, error)
	Delete(ctx context.Context, storageID string) error
}

// Dependencies are the externally owned resources the router is built on.
// Redis is optional; without it revocations and rate limits stay in process.
type Dependencies struct {
	DB      *gorm.DB
	Config  *config.Config
	Logger  logger.Interface
	Redis   *redis.Client
	Objects ObjectStore
}
