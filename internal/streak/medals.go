package streak

// Medal is a streak milestone tier.
type Medal string

const (
	MedalBronze   Medal = "bronze"
	MedalSilver   Medal = "silver"
	MedalGold     Medal = "gold"
	MedalPlatinum Medal = "platinum"
)

// Milestone thresholds, ordered bronze to platinum. Daily activities count
// days, weekly activities count weeks.
var milestones = []struct {
	medal  Medal
	daily  int
	weekly int
}{
	{MedalBronze, 30, 4},
	{MedalSilver, 90, 13},
	{MedalGold, 180, 26},
	{MedalPlatinum, 365, 52},
}

// EarnedMedals returns every tier the streak has reached, ordered bronze to
// platinum. Earning a higher tier always includes the lower ones.
func EarnedMedals(streak int, weekly bool) []Medal {
	earned := make([]Medal, 0, len(milestones))
	for _, m := range milestones {
		threshold := m.daily
		if weekly {
			threshold = m.weekly
		}
		if streak >= threshold {
			earned = append(earned, m.medal)
		}
	}
	return earned
}

// HighestMedal returns the best earned tier, or "" when none is earned yet.
func HighestMedal(streak int, weekly bool) Medal {
	earned := EarnedMedals(streak, weekly)
	if len(earned) == 0 {
		return ""
	}
	return earned[len(earned)-1]
}
