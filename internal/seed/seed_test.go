package seed

import (
	"context"
	"testing"
	"time"

	"healthtrack/internal/database"
	"healthtrack/internal/models"
	"healthtrack/internal/repository"
	"healthtrack/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	return db
}

func TestSeeder_Run(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)

	s := NewSeeder(db, Options{NumUsers: 3, Days: 10, MaxPerDay: 2, SkipDayRate: 0.3, FastHash: true, Seed: 42}, time.UTC)
	users, err := s.Run(ctx)
	require.NoError(t, err)
	require.Len(t, users, 4)

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.EqualValues(t, 4, userCount)

	logRepo := repository.NewHealthLogRepository(db)
	userRepo := repository.NewUserRepository(db)

	for _, u := range users {
		logs, err := logRepo.List(ctx, repository.LogFilter{UserID: u.ID, Order: repository.OrderByID})
		require.NoError(t, err)
		require.NotEmpty(t, logs, "the last day is never skipped")
		assert.LessOrEqual(t, len(logs), 10*2)

		// Replaying the stored logs gives the stored streak.
		var streak int
		var last *time.Time
		for _, l := range logs {
			next := service.NextStreak(streak, last, l.Date, time.UTC)
			streak, last = next.Streak, next.LastLogDate
		}

		state, err := userRepo.GetStreakState(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, streak, state.Streak)
		assert.GreaterOrEqual(t, state.Streak, 1)
		assert.LessOrEqual(t, state.Streak, 10)
		require.NotNil(t, state.LastLogDate)
		assert.True(t, state.LastLogDate.Equal(*last))
	}

	demo, err := userRepo.GetByEmail(ctx, DemoEmail)
	require.NoError(t, err)
	require.NotNil(t, demo)
	assert.Equal(t, "Demo User", demo.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(demo.Password), []byte(DefaultPassword)))
	assert.Equal(t, models.DefaultStepGoal, demo.StepGoal)
}

func TestSeeder_CleanRerun(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)

	opts := Options{NumUsers: 1, Days: 3, FastHash: true, ShouldClean: true, Seed: 7}
	_, err := NewSeeder(db, opts, time.UTC).Run(ctx)
	require.NoError(t, err)

	// The demo email is unique, so a second run only works after cleaning.
	_, err = NewSeeder(db, opts, time.UTC).Run(ctx)
	require.NoError(t, err)

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.EqualValues(t, 2, userCount)
}

func TestFactory_BuildLog(t *testing.T) {
	f := NewFactory(nil, nil, Options{Seed: 1}, time.UTC)
	at := time.Date(2024, 3, 10, 14, 30, 0, 123456789, time.FixedZone("X", 3600))

	l := f.BuildLog(5, at)
	assert.Equal(t, uint(5), l.UserID)
	assert.Equal(t, time.UTC, l.Date.Location())
	assert.True(t, l.Date.Equal(at.Truncate(time.Microsecond)))
	if l.HeartRate != nil {
		assert.GreaterOrEqual(t, *l.HeartRate, 52.0)
	}
	if l.Water != nil {
		assert.Zero(t, int(*l.Water)%250)
	}
}

func TestFactory_LogTimes(t *testing.T) {
	f := NewFactory(nil, nil, Options{Seed: 3}, time.UTC)
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	f.now = func() time.Time { return now }

	day, _ := service.DayBounds(now, time.UTC)
	times := f.logTimes(day, 5)
	require.Len(t, times, 5)
	for i, at := range times {
		assert.False(t, at.After(now))
		assert.False(t, at.Before(day.Add(6*time.Hour)))
		if i > 0 {
			assert.False(t, at.Before(times[i-1]))
		}
	}
}
