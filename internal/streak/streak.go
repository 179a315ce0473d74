package streak

import "sort"

// The walks below iterate only the keys actually present in a series, most
// recent first, and stop at the first miss. A logging gap therefore never
// breaks a streak; only an explicit non-hit record does. That presence-based
// semantic is deliberate and load-bearing for the whole medal system.

func sortedDayKeysAsc(logsByDate map[string]DayLog) []string {
	keys := make([]string, 0, len(logsByDate))
	for k := range logsByDate {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func countFromHead(keysDesc []string, hit func(key string) bool) int {
	streak := 0
	for _, key := range keysDesc {
		if !hit(key) {
			break
		}
		streak++
	}
	return streak
}

func reverse(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[len(keys)-1-i] = k
	}
	return out
}

// CalculateDailyStreak counts the consecutive run of most-recent days that hit
// the given daily activity's goal. Reading dispatches to its delta-based walk
// so the enum stays total.
func CalculateDailyStreak(logsByDate map[string]DayLog, activity Activity) int {
	if activity == ActivityReading {
		return CalculateReadingStreak(logsByDate)
	}
	keys := reverse(sortedDayKeysAsc(logsByDate))
	return countFromHead(keys, func(key string) bool {
		log := logsByDate[key]
		switch activity {
		case ActivitySteps:
			return StepsGoalMet(log.Steps)
		case ActivityStretch:
			return StretchGoalMet(log.Stretched)
		default:
			return false
		}
	})
}

// CalculateReadingStreak counts consecutive days whose derived page delta meets
// the reading goal. Each day's previous page is taken from the immediately
// preceding present key in the series, not the previous calendar day, so a
// logging gap carries the last known page forward.
func CalculateReadingStreak(logsByDate map[string]DayLog) int {
	asc := sortedDayKeysAsc(logsByDate)
	if len(asc) == 0 {
		return 0
	}

	pagesRead := make(map[string]*int, len(asc))
	for i, key := range asc {
		var prevPage *int
		if i > 0 {
			prevPage = logsByDate[asc[i-1]].CurrentPage
		}
		pagesRead[key] = ComputePagesRead(logsByDate[key].CurrentPage, prevPage)
	}

	return countFromHead(reverse(asc), func(key string) bool {
		return ReadingGoalMet(pagesRead[key])
	})
}

// CalculateLiftingStreak counts consecutive weeks with enough lifting days.
// Input is pre-aggregated by the caller: lifting days per Monday week key.
func CalculateLiftingStreak(liftDaysByWeek map[string]int) int {
	keys := make([]string, 0, len(liftDaysByWeek))
	for k := range liftDaysByWeek {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return countFromHead(keys, func(key string) bool {
		return LiftGoalMet(liftDaysByWeek[key])
	})
}

// CalculateRunningStreak counts consecutive weeks where the 3-mile run was done.
func CalculateRunningStreak(weeklyLogsByWeek map[string]bool) int {
	keys := make([]string, 0, len(weeklyLogsByWeek))
	for k := range weeklyLogsByWeek {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return countFromHead(keys, func(key string) bool {
		return RunGoalMet(weeklyLogsByWeek[key])
	})
}

// Streaks holds the current streak per activity.
type Streaks struct {
	Steps   int `json:"steps"`
	Reading int `json:"reading"`
	Stretch int `json:"stretch"`
	Lifting int `json:"lifting"`
	Running int `json:"running"`
}

// CalculateAllStreaks computes every activity's streak from one user's history.
// Activities are computed independently; missing data for one yields 0 for that
// activity without affecting the others.
func CalculateAllStreaks(dailyLogsByDate map[string]DayLog, weeklyLogsByWeek map[string]bool, liftDaysByWeek map[string]int) Streaks {
	return Streaks{
		Steps:   CalculateDailyStreak(dailyLogsByDate, ActivitySteps),
		Reading: CalculateReadingStreak(dailyLogsByDate),
		Stretch: CalculateDailyStreak(dailyLogsByDate, ActivityStretch),
		Lifting: CalculateLiftingStreak(liftDaysByWeek),
		Running: CalculateRunningStreak(weeklyLogsByWeek),
	}
}
