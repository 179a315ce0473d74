package streak

import "testing"

func TestCalculateDailyStreakSteps(t *testing.T) {
	logs := map[string]DayLog{
		"2024-01-01": {Steps: intp(7000)},
		"2024-01-02": {Steps: intp(7200)},
		"2024-01-03": {Steps: intp(3000)},
	}
	if got := CalculateDailyStreak(logs, ActivitySteps); got != 0 {
		t.Fatalf("streak with miss at head = %d, want 0", got)
	}

	delete(logs, "2024-01-03")
	if got := CalculateDailyStreak(logs, ActivitySteps); got != 2 {
		t.Fatalf("streak without the miss = %d, want 2", got)
	}
}

func TestCalculateDailyStreakIsIdempotent(t *testing.T) {
	logs := map[string]DayLog{
		"2024-01-01": {Steps: intp(8000)},
		"2024-01-02": {Steps: intp(9000)},
	}
	first := CalculateDailyStreak(logs, ActivitySteps)
	second := CalculateDailyStreak(logs, ActivitySteps)
	if first != second {
		t.Fatalf("same input gave %d then %d", first, second)
	}
}

func TestCalculateDailyStreakExtension(t *testing.T) {
	logs := map[string]DayLog{
		"2024-01-01": {Steps: intp(7000)},
		"2024-01-02": {Steps: intp(7200)},
	}
	before := CalculateDailyStreak(logs, ActivitySteps)
	logs["2024-01-03"] = DayLog{Steps: intp(6500)}
	after := CalculateDailyStreak(logs, ActivitySteps)
	if after != before+1 {
		t.Fatalf("streak after adding a hit = %d, want %d", after, before+1)
	}
}

func TestCalculateDailyStreakGapIsNeutral(t *testing.T) {
	// No record on Jan 2: the walk only visits present keys, so the gap does
	// not break the run.
	logs := map[string]DayLog{
		"2024-01-01": {Steps: intp(7000)},
		"2024-01-03": {Steps: intp(7200)},
	}
	if got := CalculateDailyStreak(logs, ActivitySteps); got != 2 {
		t.Fatalf("streak across logging gap = %d, want 2", got)
	}
}

func TestCalculateDailyStreakStretch(t *testing.T) {
	logs := map[string]DayLog{
		"2024-01-01": {Stretched: boolp(true)},
		"2024-01-02": {Stretched: boolp(true)},
		"2024-01-03": {Stretched: boolp(false)},
	}
	if got := CalculateDailyStreak(logs, ActivityStretch); got != 0 {
		t.Fatalf("stretch streak = %d, want 0", got)
	}
	logs["2024-01-03"] = DayLog{Stretched: boolp(true)}
	if got := CalculateDailyStreak(logs, ActivityStretch); got != 3 {
		t.Fatalf("stretch streak = %d, want 3", got)
	}
}

func TestCalculateDailyStreakEmpty(t *testing.T) {
	if got := CalculateDailyStreak(map[string]DayLog{}, ActivitySteps); got != 0 {
		t.Fatalf("empty series streak = %d, want 0", got)
	}
}

func TestCalculateReadingStreak(t *testing.T) {
	// d1 gets full credit (50), d2 reads 15, d3 page count drops (new book).
	logs := map[string]DayLog{
		"2024-02-01": {CurrentPage: intp(50)},
		"2024-02-02": {CurrentPage: intp(65)},
		"2024-02-03": {CurrentPage: intp(40)},
	}
	if got := CalculateReadingStreak(logs); got != 0 {
		t.Fatalf("reading streak with book change at head = %d, want 0", got)
	}

	delete(logs, "2024-02-03")
	if got := CalculateReadingStreak(logs); got != 2 {
		t.Fatalf("reading streak = %d, want 2", got)
	}
}

func TestCalculateReadingStreakUsesSeriesAdjacentPrev(t *testing.T) {
	// Gap on Feb 2: Feb 3's delta is against Feb 1's page, not a missing
	// calendar neighbor.
	logs := map[string]DayLog{
		"2024-02-01": {CurrentPage: intp(100)},
		"2024-02-03": {CurrentPage: intp(112)},
	}
	if got := CalculateReadingStreak(logs); got != 2 {
		t.Fatalf("reading streak across gap = %d, want 2", got)
	}
}

func TestCalculateReadingStreakZeroDeltaMisses(t *testing.T) {
	logs := map[string]DayLog{
		"2024-02-01": {CurrentPage: intp(100)},
		"2024-02-02": {CurrentPage: intp(100)},
	}
	if got := CalculateReadingStreak(logs); got != 0 {
		t.Fatalf("reading streak with zero delta at head = %d, want 0", got)
	}
}

func TestCalculateReadingStreakEmpty(t *testing.T) {
	if got := CalculateReadingStreak(nil); got != 0 {
		t.Fatalf("empty reading streak = %d, want 0", got)
	}
}

func TestCalculateLiftingStreak(t *testing.T) {
	weeks := map[string]int{
		"2024-01-01": 5,
		"2024-01-08": 6,
		"2024-01-15": 3,
	}
	if got := CalculateLiftingStreak(weeks); got != 0 {
		t.Fatalf("lifting streak = %d, want 0", got)
	}
	weeks["2024-01-15"] = 5
	if got := CalculateLiftingStreak(weeks); got != 3 {
		t.Fatalf("lifting streak = %d, want 3", got)
	}
}

func TestCalculateRunningStreak(t *testing.T) {
	weeks := map[string]bool{
		"2024-01-01": true,
		"2024-01-08": false,
		"2024-01-15": true,
		"2024-01-22": true,
	}
	if got := CalculateRunningStreak(weeks); got != 2 {
		t.Fatalf("running streak = %d, want 2", got)
	}
}

func TestCalculateAllStreaksIndependence(t *testing.T) {
	daily := map[string]DayLog{
		"2024-03-01": {Steps: intp(9000), Stretched: boolp(false)},
	}
	got := CalculateAllStreaks(daily, nil, nil)
	want := Streaks{Steps: 1, Reading: 0, Stretch: 0, Lifting: 0, Running: 0}
	if got != want {
		t.Fatalf("CalculateAllStreaks = %+v, want %+v", got, want)
	}
}
