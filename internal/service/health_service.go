package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"healthtrack/internal/cache"
	"healthtrack/internal/middleware"
	"healthtrack/internal/models"
	"healthtrack/internal/observability"
	"healthtrack/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

const maxStreakAttempts = 3

var errStreakContention = errors.New("streak update lost to concurrent writers")

// MetricsInput is one snapshot of user-reported metrics. Absent metrics stay nil.
type MetricsInput struct {
	Water          *float64
	Steps          *float64
	CaloriesIntake *float64
	CaloriesBurned *float64
	SleepHours     *float64
	HeartRate      *float64
}

// InsertResult is the stored log and the user's streak after it.
type InsertResult struct {
	Log    *models.HealthLog
	Streak int
}

// HealthService records health logs and derives streaks and daily summaries from them.
type HealthService struct {
	logRepo  repository.HealthLogRepository
	userRepo repository.UserRepository
	loc      *time.Location
	now      func() time.Time
}

// NewHealthService returns a HealthService that reckons calendar days in loc.
func NewHealthService(logRepo repository.HealthLogRepository, userRepo repository.UserRepository, loc *time.Location) *HealthService {
	if loc == nil {
		loc = time.Local
	}
	return &HealthService{logRepo: logRepo, userRepo: userRepo, loc: loc, now: time.Now}
}

// Location is the zone calendar days are computed in.
func (s *HealthService) Location() *time.Location {
	return s.loc
}

// InsertLog stores a log stamped with the current time and advances the user's streak.
// If the streak write fails the log stays stored.
func (s *HealthService) InsertLog(ctx context.Context, userID uint, in MetricsInput) (res *InsertResult, err error) {
	ctx, span := observability.StartSpan(ctx, "HealthService.InsertLog", attribute.Int64("user.id", int64(userID)))
	defer func() { observability.EndSpan(span, err) }()

	now := s.now().UTC().Truncate(time.Microsecond)

	log := &models.HealthLog{
		UserID:         userID,
		Date:           now,
		Water:          in.Water,
		Steps:          in.Steps,
		CaloriesIntake: in.CaloriesIntake,
		CaloriesBurned: in.CaloriesBurned,
		SleepHours:     in.SleepHours,
		HeartRate:      in.HeartRate,
	}
	if err := s.logRepo.Create(ctx, log); err != nil {
		return nil, models.NewStorageError("Error saving log", err)
	}
	middleware.HealthLogsCreated.Inc()
	cache.InvalidateSummary(ctx, userID, now.In(s.loc))

	streak, err := s.advanceStreak(ctx, userID, now)
	if err != nil {
		return nil, models.NewStorageError("Error saving log", err)
	}
	span.SetAttributes(attribute.Int64("health_log.id", int64(log.ID)), attribute.Int("streak", streak))

	return &InsertResult{Log: log, Streak: streak}, nil
}

// advanceStreak applies now to the stored streak with a compare-and-swap, re-reading on conflict.
func (s *HealthService) advanceStreak(ctx context.Context, userID uint, now time.Time) (int, error) {
	for attempt := 1; attempt <= maxStreakAttempts; attempt++ {
		current, err := s.userRepo.GetStreakState(ctx, userID)
		if err != nil {
			return 0, err
		}

		update := NextStreak(current.Streak, current.LastLogDate, now, s.loc)
		if update.Transition == TransitionSameDay {
			middleware.StreakTransitions.WithLabelValues(update.Transition).Inc()
			return current.Streak, nil
		}

		ok, err := s.userRepo.UpdateStreak(ctx, userID, current, repository.StreakState{
			Streak:      update.Streak,
			LastLogDate: update.LastLogDate,
		})
		if err != nil {
			return 0, err
		}
		if ok {
			middleware.StreakTransitions.WithLabelValues(update.Transition).Inc()
			middleware.Logger.DebugContext(ctx, "streak updated",
				slog.String("transition", update.Transition),
				slog.Int("streak", update.Streak),
			)
			return update.Streak, nil
		}

		middleware.StreakConflicts.Inc()
		middleware.Logger.WarnContext(ctx, "streak update conflict, retrying", slog.Int("attempt", attempt))
	}
	return 0, errStreakContention
}

// GetTodayLogs returns today's logs in insertion order.
func (s *HealthService) GetTodayLogs(ctx context.Context, userID uint) ([]models.HealthLog, error) {
	logs, err := s.todayLogs(ctx, userID)
	if err != nil {
		return nil, models.NewStorageError("Could not fetch logs", err)
	}
	return logs, nil
}

func (s *HealthService) todayLogs(ctx context.Context, userID uint) ([]models.HealthLog, error) {
	start, end := DayBounds(s.now(), s.loc)
	return s.logRepo.List(ctx, repository.LogFilter{
		UserID: userID,
		From:   &start,
		To:     &end,
		Order:  repository.OrderByID,
	})
}

// GetLogs returns the user's logs newest first, limited to r when both bounds are set.
func (s *HealthService) GetLogs(ctx context.Context, userID uint, r DateRange) ([]models.HealthLog, error) {
	filter := repository.LogFilter{UserID: userID, Order: repository.OrderByDateDesc}
	if r.Complete() {
		filter.From = r.Start
		filter.To = r.End
	}

	logs, err := s.logRepo.List(ctx, filter)
	if err != nil {
		return nil, models.NewStorageError("Could not fetch logs", err)
	}
	return logs, nil
}

// GetTodaySummary totals today's logs.
func (s *HealthService) GetTodaySummary(ctx context.Context, userID uint) (*models.DailySummary, error) {
	var summary models.DailySummary

	key := cache.SummaryKey(userID, s.now().In(s.loc))
	err := cache.Aside(ctx, key, &summary, cache.SummaryTTL, func() error {
		logs, err := s.todayLogs(ctx, userID)
		if err != nil {
			return err
		}
		summary = Summarize(logs)
		return nil
	})
	if err != nil {
		return nil, models.NewStorageError("Could not fetch summary", err)
	}
	return &summary, nil
}

// DeleteLog removes the log if the user owns it. Unknown or foreign IDs are not an error.
func (s *HealthService) DeleteLog(ctx context.Context, userID, logID uint) error {
	n, err := s.logRepo.DeleteOwned(ctx, userID, logID)
	if err != nil {
		return models.NewStorageError("Could not delete log", err)
	}
	if n > 0 {
		cache.InvalidateSummary(ctx, userID, s.now().In(s.loc))
	}
	return nil
}
