package service

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStreak(t *testing.T) {
	utc := time.UTC
	at := func(day, hour int) time.Time {
		return time.Date(2025, 4, day, hour, 0, 0, 0, utc)
	}
	ptr := func(t time.Time) *time.Time { return &t }

	tests := []struct {
		name           string
		streak         int
		last           *time.Time
		now            time.Time
		wantStreak     int
		wantTransition string
		wantLastIsNow  bool
	}{
		{name: "first log", streak: 0, last: nil, now: at(10, 9), wantStreak: 1, wantTransition: TransitionFirst, wantLastIsNow: true},
		{name: "same day keeps streak", streak: 3, last: ptr(at(10, 1)), now: at(10, 23), wantStreak: 3, wantTransition: TransitionSameDay},
		{name: "next day increments", streak: 3, last: ptr(at(9, 23)), now: at(10, 0), wantStreak: 4, wantTransition: TransitionConsecutive, wantLastIsNow: true},
		{name: "next day late increments", streak: 1, last: ptr(at(9, 0)), now: at(10, 23), wantStreak: 2, wantTransition: TransitionConsecutive, wantLastIsNow: true},
		{name: "skipped day resets", streak: 5, last: ptr(at(7, 12)), now: at(10, 12), wantStreak: 1, wantTransition: TransitionReset, wantLastIsNow: true},
		{name: "last date ahead of clock", streak: 2, last: ptr(at(11, 8)), now: at(10, 8), wantStreak: 3, wantTransition: TransitionConsecutive, wantLastIsNow: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextStreak(tt.streak, tt.last, tt.now, utc)
			assert.Equal(t, tt.wantStreak, got.Streak)
			assert.Equal(t, tt.wantTransition, got.Transition)
			require.NotNil(t, got.LastLogDate)
			if tt.wantLastIsNow {
				assert.True(t, got.LastLogDate.Equal(tt.now))
			} else {
				assert.True(t, got.LastLogDate.Equal(*tt.last))
			}
		})
	}
}

func TestNextStreak_Sequence(t *testing.T) {
	loc := time.UTC
	d := time.Date(2025, 1, 20, 8, 0, 0, 0, loc)

	var (
		streak int
		last   *time.Time
	)
	apply := func(now time.Time) int {
		u := NextStreak(streak, last, now, loc)
		streak, last = u.Streak, u.LastLogDate
		return streak
	}

	assert.Equal(t, 1, apply(d))
	assert.Equal(t, 1, apply(d.Add(6*time.Hour)))
	assert.Equal(t, 2, apply(d.AddDate(0, 0, 1)))
	assert.Equal(t, 1, apply(d.AddDate(0, 0, 3)))
}

func TestNextStreak_CalendarDaysInZone(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	t.Run("spring forward day is still consecutive", func(t *testing.T) {
		last := time.Date(2025, 3, 8, 23, 30, 0, 0, ny)
		now := time.Date(2025, 3, 9, 23, 30, 0, 0, ny)
		assert.Equal(t, 23*time.Hour, now.Sub(last))

		got := NextStreak(1, &last, now, ny)
		assert.Equal(t, TransitionConsecutive, got.Transition)
	})

	t.Run("more than 24 hours across one midnight is consecutive", func(t *testing.T) {
		last := time.Date(2025, 6, 1, 0, 30, 0, 0, ny)
		now := time.Date(2025, 6, 2, 23, 30, 0, 0, ny)

		got := NextStreak(4, &last, now, ny)
		assert.Equal(t, TransitionConsecutive, got.Transition)
		assert.Equal(t, 5, got.Streak)
	})

	t.Run("zone decides the day", func(t *testing.T) {
		// 03:00 UTC on the 2nd is still the 1st in New York.
		last := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)
		now := time.Date(2025, 6, 2, 3, 0, 0, 0, time.UTC)

		assert.Equal(t, TransitionSameDay, NextStreak(2, &last, now, ny).Transition)
		assert.Equal(t, TransitionConsecutive, NextStreak(2, &last, now, time.UTC).Transition)
	})
}

func TestDayBounds(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	start, end := DayBounds(time.Date(2025, 3, 9, 12, 0, 0, 0, ny), ny)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, ny), start)
	assert.Equal(t, 23*time.Hour-time.Nanosecond, end.Sub(start))
}
