package migration

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/parley-chat/parley/internal/infrastructure/persistence/models"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parley.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestGooseStrategy_UpDown(t *testing.T) {
	db := openSQLite(t)
	s := NewGooseStrategy("sqlite")

	require.NoError(t, s.Migrate(db))
	version, err := s.Version(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	assert.True(t, db.Migrator().HasTable(&models.UserModel{}))
	assert.True(t, db.Migrator().HasTable(&models.MessageModel{}))

	// running again is a no-op
	require.NoError(t, s.Migrate(db))

	require.NoError(t, s.MigrateDown(db, 1))
	version, err = s.Version(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
	assert.False(t, db.Migrator().HasTable(&models.MessageModel{}))
}

func TestGooseStrategy_EmailIsUnique(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, NewGooseStrategy("sqlite").Migrate(db))

	now := time.Now().UTC()
	row := func() *models.UserModel {
		return &models.UserModel{
			Email: "same@example.com", Username: "abc", PasswordHash: "x",
			Gender: "other", IsActive: true, CreatedAt: now, UpdatedAt: now,
		}
	}
	require.NoError(t, db.Create(row()).Error)
	assert.Error(t, db.Create(row()).Error)
}

func TestGooseStrategy_UnknownDriver(t *testing.T) {
	err := NewGooseStrategy("oracle").Migrate(openSQLite(t))
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestManager_AutoMigrate(t *testing.T) {
	db := openSQLite(t)
	m := NewManager("sqlite", true)

	assert.Equal(t, "gorm_auto_migrate", m.Strategy().Name())
	require.NoError(t, m.Migrate(db))
	assert.True(t, db.Migrator().HasTable(&models.MessageModel{}))
}
