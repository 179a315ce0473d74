package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ibrahimt2325-tech/fitness-tracker/internal/model"
	"github.com/ibrahimt2325-tech/fitness-tracker/internal/repository"
)

func intp(v int) *int       { return &v }
func boolp(v bool) *bool    { return &v }
func strp(v string) *string { return &v }

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

// newTestServices wires the service stack over an in-memory database with no
// redis and a frozen clock.
func newTestServices(t *testing.T, now string) (*LogService, *AchievementService) {
	t.Helper()
	db := openTestDB(t)
	dailyRepo := repository.NewDailyLogRepository(db)
	weeklyRepo := repository.NewWeeklyLogRepository(db)
	userRepo := repository.NewUserRepository(db)

	achievement := NewAchievementService(dailyRepo, weeklyRepo, userRepo, nil)
	logs := NewLogService(dailyRepo, weeklyRepo, userRepo, achievement)

	fixed, err := time.ParseInLocation("2006-01-02", now, time.Local)
	if err != nil {
		t.Fatalf("bad test clock %q: %v", now, err)
	}
	logs.now = func() time.Time { return fixed }
	return logs, achievement
}
