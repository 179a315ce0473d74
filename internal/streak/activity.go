package streak

// Activity identifies one tracked habit.
type Activity string

const (
	ActivitySteps   Activity = "steps"
	ActivityReading Activity = "reading"
	ActivityStretch Activity = "stretch"
	ActivityLifting Activity = "lifting"
	ActivityRunning Activity = "running"
)

// Weekly reports whether the activity is evaluated per ISO week rather than per day.
func (a Activity) Weekly() bool {
	return a == ActivityLifting || a == ActivityRunning
}

// Goal thresholds. Fixed by product design, not runtime configuration.
const (
	StepsGoal    = 6500 // steps per day
	PagesGoal    = 10   // pages read per day
	LiftDaysGoal = 5    // lifting days per week
)

// DayLog is the slice of a daily log row the engine evaluates. Nil pointers mean
// "not logged", which is distinct from a logged zero or false.
type DayLog struct {
	Steps       *int
	CurrentPage *int
	Stretched   *bool
	Lifted      *bool
}

// HasData reports whether at least one field was logged. A day with a row but
// no logged fields counts as "no data" for goal evaluation.
func (d DayLog) HasData() bool {
	return d.Steps != nil || d.CurrentPage != nil || d.Stretched != nil || d.Lifted != nil
}
