package repository

import (
	"github.com/ibrahimt2325-tech/fitness-tracker/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DailyLogRepository handles the sparse per-day log series.

type DailyLogRepository struct {
	DB *gorm.DB
}

func NewDailyLogRepository(db *gorm.DB) *DailyLogRepository {
	return &DailyLogRepository{DB: db}
}

// Upsert writes one day's log, last-write-wins on the (user_id, date) natural
// key. Every save fully replaces the row's logged fields, so no transaction is
// needed around it.
func (r *DailyLogRepository) Upsert(log *model.DailyLog) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"steps", "current_page", "stretched", "lifted", "learned", "updated_at"}),
	}).Create(log).Error
}

// FindByUserAndRange returns one user's logs with startKey <= date <= endKey,
// ascending. Callers that need page-delta resolution extend the range one day
// back to include the lookback record.
func (r *DailyLogRepository) FindByUserAndRange(userID uint, startKey, endKey string) ([]model.DailyLog, error) {
	var logs []model.DailyLog
	err := r.DB.Where("user_id = ? AND date >= ? AND date <= ?", userID, startKey, endKey).
		Order("date").Find(&logs).Error
	return logs, err
}

// FindByRange returns all users' logs for a date range, ascending by date.
func (r *DailyLogRepository) FindByRange(startKey, endKey string) ([]model.DailyLog, error) {
	var logs []model.DailyLog
	err := r.DB.Where("date >= ? AND date <= ?", startKey, endKey).
		Order("date").Find(&logs).Error
	return logs, err
}

// FindAllByUser returns a user's complete history, ascending. Streak
// computation always works on the full series.
func (r *DailyLogRepository) FindAllByUser(userID uint) ([]model.DailyLog, error) {
	var logs []model.DailyLog
	err := r.DB.Where("user_id = ?", userID).Order("date").Find(&logs).Error
	return logs, err
}

// FindJournal returns the days with a journal entry, newest first.
func (r *DailyLogRepository) FindJournal(userID uint) ([]model.DailyLog, error) {
	var logs []model.DailyLog
	err := r.DB.Select("date", "learned").
		Where("user_id = ? AND learned IS NOT NULL", userID).
		Order("date DESC").Find(&logs).Error
	return logs, err
}
