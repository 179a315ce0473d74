package repository

import (
	"github.com/ibrahimt2325-tech/fitness-tracker/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WeeklyLogRepository struct {
	DB *gorm.DB
}

func NewWeeklyLogRepository(db *gorm.DB) *WeeklyLogRepository {
	return &WeeklyLogRepository{DB: db}
}

// Upsert writes one week's log, last-write-wins on (user_id, week_start_date).
func (r *WeeklyLogRepository) Upsert(log *model.WeeklyLog) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "week_start_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"did_3_mile", "updated_at"}),
	}).Create(log).Error
}

// FindByWeek returns all users' logs for one week key.
func (r *WeeklyLogRepository) FindByWeek(weekStartKey string) ([]model.WeeklyLog, error) {
	var logs []model.WeeklyLog
	err := r.DB.Where("week_start_date = ?", weekStartKey).Find(&logs).Error
	return logs, err
}

// FindAllByUser returns a user's complete weekly history, ascending.
func (r *WeeklyLogRepository) FindAllByUser(userID uint) ([]model.WeeklyLog, error) {
	var logs []model.WeeklyLog
	err := r.DB.Where("user_id = ?", userID).Order("week_start_date").Find(&logs).Error
	return logs, err
}
