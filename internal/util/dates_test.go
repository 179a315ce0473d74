package util

import (
	"testing"
	"time"
)

func TestWeekStartIsMonday(t *testing.T) {
	tests := []struct {
		day  string
		want string
	}{
		{"2024-01-01", "2024-01-01"}, // a Monday maps to itself
		{"2024-01-03", "2024-01-01"}, // Wednesday
		{"2024-01-07", "2024-01-01"}, // Sunday stays in the same week
		{"2024-03-03", "2024-02-26"}, // month boundary
		{"2025-01-01", "2024-12-30"}, // year boundary
	}
	for _, tt := range tests {
		day, err := ParseDateKey(tt.day)
		if err != nil {
			t.Fatalf("ParseDateKey(%q): %v", tt.day, err)
		}
		if got := FormatDateKey(WeekStart(day)); got != tt.want {
			t.Fatalf("WeekStart(%s) = %s, want %s", tt.day, got, tt.want)
		}
	}
}

func TestWeekDays(t *testing.T) {
	monday, _ := ParseDateKey("2024-01-01")
	days := WeekDays(monday)
	if len(days) != 7 {
		t.Fatalf("WeekDays returned %d days", len(days))
	}
	if got := FormatDateKey(days[6]); got != "2024-01-07" {
		t.Fatalf("last day = %s, want 2024-01-07", got)
	}
}

func TestPrevNextWeek(t *testing.T) {
	monday, _ := ParseDateKey("2024-01-08")
	if got := FormatDateKey(PrevWeek(monday)); got != "2024-01-01" {
		t.Fatalf("PrevWeek = %s", got)
	}
	if got := FormatDateKey(NextWeek(monday)); got != "2024-01-15" {
		t.Fatalf("NextWeek = %s", got)
	}
}

func TestWeekStartKey(t *testing.T) {
	got, err := WeekStartKey("2024-01-06")
	if err != nil || got != "2024-01-01" {
		t.Fatalf("WeekStartKey = %s, %v", got, err)
	}
	if _, err := WeekStartKey("not-a-date"); err == nil {
		t.Fatal("expected error for malformed key")
	}
}

func TestDayBefore(t *testing.T) {
	got, err := DayBefore("2024-03-01")
	if err != nil || got != "2024-02-29" {
		t.Fatalf("DayBefore = %s, %v (2024 is a leap year)", got, err)
	}
}

func TestMonthRange(t *testing.T) {
	first, last, err := MonthRange("2024-02")
	if err != nil {
		t.Fatalf("MonthRange: %v", err)
	}
	if FormatDateKey(first) != "2024-02-01" || FormatDateKey(last) != "2024-02-29" {
		t.Fatalf("MonthRange = %s .. %s", FormatDateKey(first), FormatDateKey(last))
	}
}

func TestIsFutureDay(t *testing.T) {
	now, _ := ParseDateKey("2024-06-15")
	if IsFutureDay("2024-06-15", now) {
		t.Fatal("today is not future")
	}
	if !IsFutureDay("2024-06-16", now) {
		t.Fatal("tomorrow is future")
	}
	if IsFutureDay("2024-06-14", now) {
		t.Fatal("yesterday is not future")
	}
}

func TestParseDateKeyRejectsGarbage(t *testing.T) {
	if _, err := ParseDateKey("2024/01/01"); err == nil {
		t.Fatal("expected error")
	}
	var zero time.Time
	got, _ := ParseDateKey("bad")
	if got != zero {
		t.Fatal("failed parse must return zero time")
	}
}
