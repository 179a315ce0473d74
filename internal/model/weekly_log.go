package model

// WeeklyLog is one user's log for one ISO week, keyed by the Monday date.
// swagger:model WeeklyLog
type WeeklyLog struct {
	BaseModel
	UserID        uint   `gorm:"index:idx_weekly_user_week,unique;not null" json:"userId"`
	WeekStartDate string `gorm:"size:10;index:idx_weekly_user_week,unique;not null" json:"weekStartDate"` // Monday, YYYY-MM-DD
	Did3Mile      bool   `gorm:"column:did_3_mile" json:"did3Mile"`
}

func (WeeklyLog) TableName() string {
	return "weekly_logs"
}
