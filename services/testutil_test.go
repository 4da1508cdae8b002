package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"travel-backend/config"
	"travel-backend/models"
)

// newTestDB opens an isolated in-memory database with the full schema.
// A single connection keeps the in-memory store alive for the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.AutoMigrate(db))
	return db
}

func createPackage(t *testing.T, db *gorm.DB, pkg *models.Package) *models.Package {
	t.Helper()
	require.NoError(t, db.Create(pkg).Error)
	return pkg
}
