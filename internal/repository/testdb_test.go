package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ibrahimt2325-tech/fitness-tracker/internal/model"
)

// openTestDB opens an in-memory sqlite database with the app schema. Pure-Go
// driver, so tests run without cgo or a MySQL instance.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.DailyLog{}, &model.WeeklyLog{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
