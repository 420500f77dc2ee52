package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"healthtrack/internal/middleware"
)

const (
	UserKeyPrefix    = "user:%d"
	SummaryKeyPrefix = "summary:%d:%s"
)

const (
	UserTTL    = 5 * time.Minute
	SummaryTTL = 2 * time.Minute
)

// UserKey is the cache key of a user's profile.
func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

// SummaryKey is the cache key of a user's summary for the calendar day of day.
func SummaryKey(userID uint, day time.Time) string {
	return fmt.Sprintf(SummaryKeyPrefix, userID, day.Format(time.DateOnly))
}

// Invalidate drops key. Failures are logged; a stale entry expires with its TTL.
func Invalidate(ctx context.Context, key string) {
	if client == nil {
		return
	}
	if err := client.Del(ctx, key).Err(); err != nil {
		middleware.Logger.WarnContext(ctx, "cache invalidation failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateSummary(ctx context.Context, userID uint, day time.Time) {
	Invalidate(ctx, SummaryKey(userID, day))
}
