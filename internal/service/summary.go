package service

import (
	"errors"
	"strings"
	"time"

	"healthtrack/internal/models"
)

// ErrInvalidDateRange is returned for a bound that is neither RFC3339 nor YYYY-MM-DD.
var ErrInvalidDateRange = errors.New("invalid date range")

// DateRange is an inclusive time window. It is only applied when both ends are set.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Complete reports whether both bounds are present.
func (r DateRange) Complete() bool {
	return r.Start != nil && r.End != nil
}

// ParseDateRange parses optional query bounds. Date-only values are read in loc, and a date-only
// end means the end of that day.
func ParseDateRange(start, end string, loc *time.Location) (DateRange, error) {
	var r DateRange

	if s := strings.TrimSpace(start); s != "" {
		t, _, err := parseBound(s, loc)
		if err != nil {
			return DateRange{}, err
		}
		r.Start = &t
	}

	if s := strings.TrimSpace(end); s != "" {
		t, dateOnly, err := parseBound(s, loc)
		if err != nil {
			return DateRange{}, err
		}
		if dateOnly {
			_, t = DayBounds(t, loc)
		}
		r.End = &t
	}

	return r, nil
}

func parseBound(s string, loc *time.Location) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, false, nil
	}
	if t, err := time.ParseInLocation(time.DateOnly, s, loc); err == nil {
		return t, true, nil
	}
	return time.Time{}, false, ErrInvalidDateRange
}

// Summarize folds logs into daily totals. heartRate is the last present, non-zero reading.
func Summarize(logs []models.HealthLog) models.DailySummary {
	var s models.DailySummary
	for _, l := range logs {
		s.Water += valueOrZero(l.Water)
		s.Steps += valueOrZero(l.Steps)
		s.CaloriesIntake += valueOrZero(l.CaloriesIntake)
		s.CaloriesBurned += valueOrZero(l.CaloriesBurned)
		s.SleepHours += valueOrZero(l.SleepHours)
		if l.HeartRate != nil && *l.HeartRate != 0 {
			s.HeartRate = *l.HeartRate
		}
	}
	return s
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
