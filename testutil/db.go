package testutil

import (
	"path/filepath"
	"testing"

	"nutritrack/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a throwaway sqlite database in the test's temp dir with
// the full schema migrated. Each test gets its own file, so tests can run
// in parallel without sharing state.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.FoodItem{},
		&models.DailyTotal{},
		&models.StepLog{},
		&models.UserDevice{},
		&models.Alert{},
	); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	return db
}
