package streak

// ActivityAchievement is one activity's streak plus the medals it has earned.
type ActivityAchievement struct {
	Streak       int     `json:"streak"`
	Medals       []Medal `json:"medals"`
	HighestMedal Medal   `json:"highestMedal,omitempty"`
}

// Summary is the full per-user achievement picture consumed by the UI.
type Summary struct {
	Steps   ActivityAchievement `json:"steps"`
	Reading ActivityAchievement `json:"reading"`
	Stretch ActivityAchievement `json:"stretch"`
	Lifting ActivityAchievement `json:"lifting"`
	Running ActivityAchievement `json:"running"`
}

func achievementFor(streak int, weekly bool) ActivityAchievement {
	return ActivityAchievement{
		Streak:       streak,
		Medals:       EarnedMedals(streak, weekly),
		HighestMedal: HighestMedal(streak, weekly),
	}
}

// Aggregate composes streaks and medals for every activity from one user's raw
// history. Each activity is derived independently from its own inputs, so
// absent data in one never empties the others.
func Aggregate(dailyLogsByDate map[string]DayLog, weeklyLogsByWeek map[string]bool, liftDaysByWeek map[string]int) Summary {
	s := CalculateAllStreaks(dailyLogsByDate, weeklyLogsByWeek, liftDaysByWeek)
	return Summary{
		Steps:   achievementFor(s.Steps, false),
		Reading: achievementFor(s.Reading, false),
		Stretch: achievementFor(s.Stretch, false),
		Lifting: achievementFor(s.Lifting, true),
		Running: achievementFor(s.Running, true),
	}
}
