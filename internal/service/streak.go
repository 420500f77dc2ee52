package service

import "time"

// Streak transitions, also used as metric labels.
const (
	TransitionFirst       = "first"
	TransitionSameDay     = "same_day"
	TransitionConsecutive = "consecutive"
	TransitionReset       = "reset"
)

// StreakUpdate is the outcome of applying one log insertion to a streak.
type StreakUpdate struct {
	Streak      int
	LastLogDate *time.Time
	Transition  string
}

// NextStreak applies a log written at now to the current streak. Days are calendar days in loc.
func NextStreak(streak int, lastLogDate *time.Time, now time.Time, loc *time.Location) StreakUpdate {
	if lastLogDate == nil {
		return StreakUpdate{Streak: 1, LastLogDate: &now, Transition: TransitionFirst}
	}

	gap := dayNumber(now, loc) - dayNumber(*lastLogDate, loc)
	switch {
	case gap == 0:
		return StreakUpdate{Streak: streak, LastLogDate: lastLogDate, Transition: TransitionSameDay}
	case gap <= 1:
		// gap < 0 only happens when the stored date is ahead of the clock.
		return StreakUpdate{Streak: streak + 1, LastLogDate: &now, Transition: TransitionConsecutive}
	default:
		return StreakUpdate{Streak: 1, LastLogDate: &now, Transition: TransitionReset}
	}
}

// dayNumber counts calendar days so that DST shifts never produce a 23 or 25 hour "day".
func dayNumber(t time.Time, loc *time.Location) int64 {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// DayBounds returns the first and last instant of t's calendar day in loc.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, d := t.In(loc).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	end := time.Date(y, m, d+1, 0, 0, 0, 0, loc).Add(-time.Nanosecond)
	return start, end
}
