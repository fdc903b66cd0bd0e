package migration

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/parley-chat/parley/internal/infrastructure/migration/scripts"
	"github.com/parley-chat/parley/internal/shared/logger"
)

// Strategy brings a database schema up to date.
type Strategy interface {
	Migrate(db *gorm.DB) error
	Name() string
}

// goose keeps its base FS and dialect in package state.
var gooseMu sync.Mutex

// GooseStrategy runs the embedded SQL scripts for one dialect.
type GooseStrategy struct {
	driver string
	logger logger.Interface
}

func NewGooseStrategy(driver string) *GooseStrategy {
	return &GooseStrategy{
		driver: driver,
		logger: logger.NewLogger().With("component", "migration.goose", "driver", driver),
	}
}

func (s *GooseStrategy) Name() string {
	return "goose"
}

// gooseDialect maps a database.driver value to the goose dialect name and
// the script directory inside scripts.FS.
func gooseDialect(driver string) (dialect, dir string, err error) {
	switch driver {
	case "mysql", "":
		return "mysql", "mysql", nil
	case "postgres":
		return "postgres", "postgres", nil
	case "sqlite":
		return "sqlite3", "sqlite", nil
	default:
		return "", "", fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// with prepares goose for this dialect and hands fn the raw connection and
// script directory.
func (s *GooseStrategy) with(db *gorm.DB, fn func(sqlDB *sql.DB, dir string) error) error {
	dialect, dir, err := gooseDialect(s.driver)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(scripts.FS)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(gooseLogger{s.logger})
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return fn(sqlDB, dir)
}

func (s *GooseStrategy) Migrate(db *gorm.DB) error {
	return s.with(db, func(sqlDB *sql.DB, dir string) error {
		from, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get current version: %w", err)
		}
		if err := goose.Up(sqlDB, dir); err != nil {
			s.logger.Errorw("migration failed", "error", err)
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		to, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get final version: %w", err)
		}
		s.logger.Infow("migration completed", "from_version", from, "to_version", to)
		return nil
	})
}

func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	return s.with(db, func(sqlDB *sql.DB, dir string) error {
		for i := 0; i < steps; i++ {
			if err := goose.Down(sqlDB, dir); err != nil {
				return fmt.Errorf("failed to run down migration: %w", err)
			}
		}
		s.logger.Infow("down migration completed", "steps", steps)
		return nil
	})
}

func (s *GooseStrategy) Version(db *gorm.DB) (int64, error) {
	var version int64
	err := s.with(db, func(sqlDB *sql.DB, _ string) error {
		v, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		version = v
		return nil
	})
	return version, err
}

func (s *GooseStrategy) Status(db *gorm.DB) error {
	return s.with(db, func(sqlDB *sql.DB, dir string) error {
		if err := goose.Status(sqlDB, dir); err != nil {
			return fmt.Errorf("failed to get status: %w", err)
		}
		return nil
	})
}

type gooseLogger struct {
	l logger.Interface
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.l.Error(fmt.Sprintf(format, v...))
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.l.Info(fmt.Sprintf(format, v...))
}
