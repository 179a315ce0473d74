package util

import (
	"time"
)

// Calendar helpers. Weeks start on Monday everywhere in the app, and date keys
// are local-calendar-day strings in YYYY-MM-DD form.

// WeekStart returns the Monday 00:00 (local) of the week containing t.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return day.AddDate(0, 0, -offset)
}

// WeekDays returns the seven days of the week starting at weekStart.
func WeekDays(weekStart time.Time) []time.Time {
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = weekStart.AddDate(0, 0, i)
	}
	return days
}

func PrevWeek(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, -7)
}

func NextWeek(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, 7)
}

// FormatDateKey renders a time as a date key (YYYY-MM-DD).
func FormatDateKey(t time.Time) string {
	return t.Format(DateFormat)
}

// ParseDateKey parses a date key at local midnight.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, key, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// WeekStartKey normalizes any date key to the Monday key of its ISO week.
func WeekStartKey(dateKey string) (string, error) {
	t, err := ParseDateKey(dateKey)
	if err != nil {
		return "", err
	}
	return FormatDateKey(WeekStart(t)), nil
}

// DayBefore returns the date key of the previous calendar day. Used to fetch
// the lookback record that resolves the first page delta of a range.
func DayBefore(dateKey string) (string, error) {
	t, err := ParseDateKey(dateKey)
	if err != nil {
		return "", err
	}
	return FormatDateKey(t.AddDate(0, 0, -1)), nil
}

// MonthRange returns the first and last day of a YYYY-MM month.
func MonthRange(monthKey string) (time.Time, time.Time, error) {
	first, err := time.ParseInLocation(MonthFormat, monthKey, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidMonth
	}
	last := first.AddDate(0, 1, -1)
	return first, last, nil
}

// IsFutureDay reports whether the date key is after today (local).
func IsFutureDay(dateKey string, now time.Time) bool {
	today := FormatDateKey(now)
	return dateKey > today
}
