package util

const (
	DateFormat  = "2006-01-02"
	MonthFormat = "2006-01"
	TimeFormat  = "2006-01-02 15:04:05"
)
