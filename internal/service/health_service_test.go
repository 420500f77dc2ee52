package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"healthtrack/internal/models"
	"healthtrack/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func newHealthService(t *testing.T, start time.Time) (*HealthService, *memLogRepo, *streakStore, *fakeClock) {
	t.Helper()
	logs := &memLogRepo{}
	users := noopUserRepo()
	store := &streakStore{}
	store.wire(users)
	clock := &fakeClock{now: start}

	svc := NewHealthService(logs, users, time.UTC)
	svc.now = clock.Now
	return svc, logs, store, clock
}

func TestHealthService_InsertLog_StreakSequence(t *testing.T) {
	d := time.Date(2025, 2, 3, 9, 0, 0, 0, time.UTC)
	svc, _, store, clock := newHealthService(t, d)
	ctx := context.Background()

	steps := []struct {
		at   time.Time
		want int
	}{
		{at: d, want: 1},
		{at: d.Add(5 * time.Hour), want: 1},
		{at: d.AddDate(0, 0, 1), want: 2},
		{at: d.AddDate(0, 0, 3), want: 1},
	}

	for _, s := range steps {
		clock.Set(s.at)
		res, err := svc.InsertLog(ctx, 1, MetricsInput{Steps: floatPtr(100)})
		require.NoError(t, err)
		assert.Equal(t, s.want, res.Streak)
		assert.True(t, res.Log.Date.Equal(s.at))
	}

	require.NotNil(t, store.state.LastLogDate)
	assert.True(t, store.state.LastLogDate.Equal(d.AddDate(0, 0, 3)))
}

func TestHealthService_InsertLog_SameDayKeepsFirstTimestamp(t *testing.T) {
	d := time.Date(2025, 2, 3, 9, 0, 0, 0, time.UTC)
	svc, _, store, clock := newHealthService(t, d)

	_, err := svc.InsertLog(context.Background(), 1, MetricsInput{})
	require.NoError(t, err)

	clock.Set(d.Add(3 * time.Hour))
	_, err = svc.InsertLog(context.Background(), 1, MetricsInput{})
	require.NoError(t, err)

	assert.True(t, store.state.LastLogDate.Equal(d))
}

func TestHealthService_InsertLog_RetriesLostRace(t *testing.T) {
	d := time.Date(2025, 2, 3, 9, 0, 0, 0, time.UTC)
	logs := &memLogRepo{}
	users := noopUserRepo()

	yesterday := d.AddDate(0, 0, -1)
	reads := 0
	users.getStreakStateFn = func(_ context.Context, _ uint) (repository.StreakState, error) {
		reads++
		return repository.StreakState{Streak: 4, LastLogDate: &yesterday}, nil
	}
	writes := 0
	users.updateStreakFn = func(_ context.Context, _ uint, _, _ repository.StreakState) (bool, error) {
		writes++
		return writes == 2, nil
	}

	svc := NewHealthService(logs, users, time.UTC)
	svc.now = func() time.Time { return d }

	res, err := svc.InsertLog(context.Background(), 1, MetricsInput{})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Streak)
	assert.Equal(t, 2, reads)
	assert.Equal(t, 2, writes)
}

func TestHealthService_InsertLog_GivesUpAfterRetries(t *testing.T) {
	users := noopUserRepo()
	users.updateStreakFn = func(_ context.Context, _ uint, _, _ repository.StreakState) (bool, error) {
		return false, nil
	}
	logs := &memLogRepo{}

	svc := NewHealthService(logs, users, time.UTC)
	_, err := svc.InsertLog(context.Background(), 1, MetricsInput{})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeStorage, appErr.Code)
	assert.Equal(t, "Error saving log", appErr.Message)
	// The log itself was already stored.
	assert.Len(t, logs.logs, 1)
}

func TestHealthService_InsertLog_ConcurrentSameDay(t *testing.T) {
	d := time.Date(2025, 2, 3, 9, 0, 0, 0, time.UTC)
	svc, logs, store, _ := newHealthService(t, d)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.InsertLog(context.Background(), 1, MetricsInput{})
		}()
	}
	wg.Wait()

	assert.Len(t, logs.logs, 8)
	assert.Equal(t, 1, store.state.Streak)
}

func TestHealthService_InsertLog_StoreFailure(t *testing.T) {
	svc, logs, _, _ := newHealthService(t, time.Now())
	logs.failErr = errors.New("db down")

	_, err := svc.InsertLog(context.Background(), 1, MetricsInput{})
	assert.True(t, models.HasCode(err, models.CodeStorage))
}

func TestHealthService_Queries(t *testing.T) {
	d := time.Date(2025, 2, 3, 9, 0, 0, 0, time.UTC)
	svc, _, _, clock := newHealthService(t, d.AddDate(0, 0, -2))
	ctx := context.Background()

	_, err := svc.InsertLog(ctx, 1, MetricsInput{Water: floatPtr(1000)})
	require.NoError(t, err)

	clock.Set(d)
	first, err := svc.InsertLog(ctx, 1, MetricsInput{Water: floatPtr(200), Steps: floatPtr(1000)})
	require.NoError(t, err)
	clock.Set(d.Add(time.Hour))
	second, err := svc.InsertLog(ctx, 1, MetricsInput{Water: floatPtr(300), Steps: floatPtr(500), HeartRate: floatPtr(70)})
	require.NoError(t, err)
	_, err = svc.InsertLog(ctx, 2, MetricsInput{Water: floatPtr(9999)})
	require.NoError(t, err)

	t.Run("today", func(t *testing.T) {
		logs, err := svc.GetTodayLogs(ctx, 1)
		require.NoError(t, err)
		require.Len(t, logs, 2)
		assert.Equal(t, first.Log.ID, logs[0].ID)
		assert.Equal(t, second.Log.ID, logs[1].ID)
	})

	t.Run("summary", func(t *testing.T) {
		summary, err := svc.GetTodaySummary(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, models.DailySummary{Water: 500, Steps: 1500, HeartRate: 70}, *summary)

		empty, err := svc.GetTodaySummary(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, models.DailySummary{}, *empty)
	})

	t.Run("all logs newest first", func(t *testing.T) {
		logs, err := svc.GetLogs(ctx, 1, DateRange{})
		require.NoError(t, err)
		require.Len(t, logs, 3)
		assert.Equal(t, second.Log.ID, logs[0].ID)
	})

	t.Run("range", func(t *testing.T) {
		r, err := ParseDateRange("2025-02-01", "2025-02-01", time.UTC)
		require.NoError(t, err)
		logs, err := svc.GetLogs(ctx, 1, r)
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, 1000.0, *logs[0].Water)
	})

	t.Run("half range lists everything", func(t *testing.T) {
		start := d
		logs, err := svc.GetLogs(ctx, 1, DateRange{Start: &start})
		require.NoError(t, err)
		assert.Len(t, logs, 3)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, svc.DeleteLog(ctx, 2, first.Log.ID))
		logs, err := svc.GetTodayLogs(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, logs, 2)

		require.NoError(t, svc.DeleteLog(ctx, 1, first.Log.ID))
		require.NoError(t, svc.DeleteLog(ctx, 1, 424242))
		logs, err = svc.GetTodayLogs(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, logs, 1)
	})
}

func TestHealthService_QueryFailures(t *testing.T) {
	svc, logs, _, _ := newHealthService(t, time.Now())
	logs.failErr = errors.New("db down")
	ctx := context.Background()

	_, err := svc.GetTodayLogs(ctx, 1)
	assert.True(t, models.HasCode(err, models.CodeStorage))

	_, err = svc.GetLogs(ctx, 1, DateRange{})
	assert.True(t, models.HasCode(err, models.CodeStorage))

	_, err = svc.GetTodaySummary(ctx, 1)
	assert.True(t, models.HasCode(err, models.CodeStorage))

	err = svc.DeleteLog(ctx, 1, 1)
	assert.True(t, models.HasCode(err, models.CodeStorage))
}
