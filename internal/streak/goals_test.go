package streak

import "testing"

func TestGoalPredicates(t *testing.T) {
	if StepsGoalMet(nil) || StepsGoalMet(intp(6499)) {
		t.Fatal("steps below goal must not hit")
	}
	if !StepsGoalMet(intp(6500)) {
		t.Fatal("steps at goal must hit")
	}
	if StretchGoalMet(nil) || StretchGoalMet(boolp(false)) {
		t.Fatal("unlogged or false stretch must not hit")
	}
	if !StretchGoalMet(boolp(true)) {
		t.Fatal("stretched must hit")
	}
	if LiftGoalMet(4) || !LiftGoalMet(5) {
		t.Fatal("lift goal is 5 days per week")
	}
	if RunGoalMet(false) || !RunGoalMet(true) {
		t.Fatal("run goal follows the weekly flag")
	}
}

func TestEvaluateDay(t *testing.T) {
	tests := []struct {
		name      string
		log       *DayLog
		pagesRead *int
		want      DayStatus
	}{
		{"no record", nil, nil, DayNoData},
		{"record with no fields", &DayLog{}, nil, DayNoData},
		{"all goals hit", &DayLog{Steps: intp(7000), CurrentPage: intp(60), Stretched: boolp(true)}, intp(12), DayHit},
		{"steps short", &DayLog{Steps: intp(4000), CurrentPage: intp(60), Stretched: boolp(true)}, intp(12), DayMissed},
		{"reading delta nil", &DayLog{Steps: intp(7000), CurrentPage: intp(60), Stretched: boolp(true)}, nil, DayMissed},
		{"partial log counts as data", &DayLog{Steps: intp(7000)}, nil, DayMissed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateDay(tt.log, tt.pagesRead); got != tt.want {
				t.Fatalf("EvaluateDay = %q, want %q", got, tt.want)
			}
		})
	}
}
