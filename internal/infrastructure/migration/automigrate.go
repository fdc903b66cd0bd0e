package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/parley-chat/parley/internal/infrastructure/persistence/models"
	"github.com/parley-chat/parley/internal/shared/logger"
)

// Models lists every table owned by the service.
func Models() []any {
	return []any{
		&models.UserModel{},
		&models.MessageModel{},
	}
}

// GormAutoMigrateStrategy derives the schema from the GORM models. It is
// meant for throwaway sqlite databases; deployed databases use goose.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Name() string {
	return "gorm_auto_migrate"
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to auto-migrate models: %w", err)
	}
	s.logger.Infow("auto-migration completed", "models", len(Models()))
	return nil
}
