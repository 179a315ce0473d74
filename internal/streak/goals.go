package streak

// DayStatus is the tri-state result of evaluating one calendar day.
// A day without any logged field is NoData, which is not a miss.
type DayStatus string

const (
	DayNoData DayStatus = "no_data"
	DayMissed DayStatus = "missed"
	DayHit    DayStatus = "hit"
)

// StepsGoalMet reports whether a logged step count meets the daily goal.
func StepsGoalMet(steps *int) bool {
	return steps != nil && *steps >= StepsGoal
}

// StretchGoalMet reports whether the stretch goal was hit.
func StretchGoalMet(stretched *bool) bool {
	return stretched != nil && *stretched
}

// LiftGoalMet reports whether a week's lifting-day count meets the weekly goal.
func LiftGoalMet(liftDays int) bool {
	return liftDays >= LiftDaysGoal
}

// RunGoalMet reports whether the weekly 3-mile run was done.
func RunGoalMet(did3Mile bool) bool {
	return did3Mile
}

// EvaluateDay classifies one day against all daily goals (steps, reading,
// stretch). pagesRead is the derived delta for that day; the caller resolves it
// because the previous-page lookup needs context this package does not hold.
func EvaluateDay(log *DayLog, pagesRead *int) DayStatus {
	if log == nil || !log.HasData() {
		return DayNoData
	}
	if StepsGoalMet(log.Steps) && ReadingGoalMet(pagesRead) && StretchGoalMet(log.Stretched) {
		return DayHit
	}
	return DayMissed
}
