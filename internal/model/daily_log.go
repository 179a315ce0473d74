package model

// DailyLog is one user's log for one calendar day. The series is sparse: days
// without any activity have no row. CurrentPage is the cumulative page the
// reader is on, not a daily count; the daily figure is derived on read.
// swagger:model DailyLog
type DailyLog struct {
	BaseModel
	UserID      uint    `gorm:"index:idx_daily_user_date,unique;not null" json:"userId"`
	Date        string  `gorm:"size:10;index:idx_daily_user_date,unique;not null" json:"date"` // YYYY-MM-DD
	Steps       *int    `json:"steps"`
	CurrentPage *int    `gorm:"column:current_page" json:"currentPage"`
	Stretched   *bool   `json:"stretched"`
	Lifted      *bool   `json:"lifted"`
	Learned     *string `gorm:"type:text" json:"learned,omitempty"`
}

func (DailyLog) TableName() string {
	return "daily_logs"
}
