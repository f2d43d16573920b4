package db

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/commercegrid/mediabridge/biz/dal/model"
)

// SetupTestDB creates an in-memory SQLite database for testing
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Reduce log noise in tests
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Asset{},
		&model.Setting{},
	); err != nil {
		t.Fatalf("Failed to migrate tables: %v", err)
	}

	return db
}

// CleanupTestDB closes the database connection
func CleanupTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		t.Logf("Warning: Failed to get underlying DB: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Logf("Warning: Failed to close DB: %v", err)
	}
}

// CreateTestSetting creates a setting row with the given value
func CreateTestSetting(t *testing.T, db *gorm.DB, group, key, value string) *model.Setting {
	t.Helper()
	dao := NewSettingDAO()
	setting := &model.Setting{
		SettingGroup: group,
		SettingKey:   key,
		SettingValue: value,
	}
	if err := dao.Create(context.Background(), db, setting); err != nil {
		t.Fatalf("Failed to create test setting: %v", err)
	}
	return setting
}
