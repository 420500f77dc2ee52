// Package seed creates demo users and health history. It is intended for
// development and testing only.
package seed

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"healthtrack/internal/models"
	"healthtrack/internal/repository"
	"healthtrack/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the password of every seeded user.
const DefaultPassword = "password123"

// Options configures the seeder.
type Options struct {
	NumUsers    int
	Days        int
	MaxPerDay   int
	SkipDayRate float64 // chance a user skips a day, which breaks the streak
	ShouldClean bool
	// FastHash uses bcrypt.MinCost so large seeds finish quickly.
	FastHash bool
	Seed     int64
}

// Factory builds users and logs and persists them through the repositories.
type Factory struct {
	users repository.UserRepository
	logs  repository.HealthLogRepository
	opts  Options
	loc   *time.Location
	now   func() time.Time
	seq   int
}

// NewFactory creates a Factory that reckons days in loc.
func NewFactory(users repository.UserRepository, logs repository.HealthLogRepository, opts Options, loc *time.Location) *Factory {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	gofakeit.Seed(opts.Seed)
	if loc == nil {
		loc = time.Local
	}
	return &Factory{users: users, logs: logs, opts: opts, loc: loc, now: time.Now}
}

// CreateUser persists a fake user with DefaultPassword. Overrides run before saving.
func (f *Factory) CreateUser(ctx context.Context, overrides ...func(*models.User)) (*models.User, error) {
	f.seq++

	age := gofakeit.Number(18, 80)
	height := round1(gofakeit.Float64Range(150, 200))
	weight := round1(gofakeit.Float64Range(50, 110))

	user := &models.User{
		Name:   gofakeit.Name(),
		Email:  fmt.Sprintf("%s%d@example.com", strings.ToLower(gofakeit.Username()), f.seq),
		Age:    &age,
		Height: &height,
		Weight: &weight,
	}

	cost := bcrypt.DefaultCost
	if f.opts.FastHash {
		cost = bcrypt.MinCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), cost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashed)
	user.ApplyDefaultGoals()

	for _, override := range overrides {
		override(user)
	}

	if err := f.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// BuildLog returns an unsaved log at at. Each metric is present about two times in three.
func (f *Factory) BuildLog(userID uint, at time.Time) *models.HealthLog {
	return &models.HealthLog{
		UserID:         userID,
		Date:           at.UTC().Truncate(time.Microsecond),
		Water:          maybe(func() float64 { return float64(gofakeit.Number(1, 8) * 250) }),
		Steps:          maybe(func() float64 { return float64(gofakeit.Number(500, 8000)) }),
		CaloriesIntake: maybe(func() float64 { return float64(gofakeit.Number(150, 900)) }),
		CaloriesBurned: maybe(func() float64 { return float64(gofakeit.Number(50, 600)) }),
		SleepHours:     maybe(func() float64 { return round1(gofakeit.Float64Range(4, 9.5)) }),
		HeartRate:      maybe(func() float64 { return float64(gofakeit.Number(52, 110)) }),
	}
}

// CreateHistory stores up to days of logs ending today and sets the user's streak to what
// logging them in order would have produced. It returns the number of logs stored.
func (f *Factory) CreateHistory(ctx context.Context, user *models.User, days int) (int, error) {
	maxPerDay := f.opts.MaxPerDay
	if maxPerDay <= 0 {
		maxPerDay = 3
	}

	start, _ := service.DayBounds(f.now(), f.loc)
	state := repository.StreakState{}
	created := 0

	for back := days - 1; back >= 0; back-- {
		if back > 0 && gofakeit.Float64Range(0, 1) < f.opts.SkipDayRate {
			continue
		}
		day := start.AddDate(0, 0, -back)

		for _, at := range f.logTimes(day, gofakeit.Number(1, maxPerDay)) {
			log := f.BuildLog(user.ID, at)
			if err := f.logs.Create(ctx, log); err != nil {
				return created, err
			}
			created++

			next := service.NextStreak(state.Streak, state.LastLogDate, log.Date, f.loc)
			state = repository.StreakState{Streak: next.Streak, LastLogDate: next.LastLogDate}
		}
	}

	if created == 0 {
		return 0, nil
	}

	current, err := f.users.GetStreakState(ctx, user.ID)
	if err != nil {
		return created, err
	}
	ok, err := f.users.UpdateStreak(ctx, user.ID, current, state)
	if err != nil {
		return created, err
	}
	if !ok {
		return created, fmt.Errorf("streak of user %d changed while seeding", user.ID)
	}

	user.Streak = state.Streak
	user.LastLogDate = state.LastLogDate
	return created, nil
}

// logTimes returns n ascending times between 06:00 and 22:00 of day, none in the future.
func (f *Factory) logTimes(day time.Time, n int) []time.Time {
	now := f.now()
	times := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		at := day.Add(time.Duration(gofakeit.Number(6*60, 22*60)) * time.Minute)
		if at.After(now) {
			at = now
		}
		times = append(times, at)
	}
	slices.SortFunc(times, func(a, b time.Time) int { return a.Compare(b) })
	return times
}

func maybe(gen func() float64) *float64 {
	if gofakeit.Number(0, 2) == 0 {
		return nil
	}
	v := gen()
	return &v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
