package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HealthLogsCreated counts stored health log entries.
	HealthLogsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "healthtrack_health_logs_created_total",
		Help: "Total number of health log entries stored",
	})

	// StreakTransitions counts streak updates by transition kind (first, same_day, consecutive, reset).
	StreakTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "healthtrack_streak_transitions_total",
		Help: "Streak state transitions applied on log insertion",
	}, []string{"transition"})

	// StreakConflicts counts compare-and-swap retries on the streak update.
	StreakConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "healthtrack_streak_update_conflicts_total",
		Help: "Concurrent streak updates that had to be retried",
	})

	// RedisErrors counts Redis errors by command.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "healthtrack_redis_errors_total",
		Help: "Total number of Redis errors by operation",
	}, []string{"operation"})
)

var (
	promOnce sync.Once
	prom     *fiberprometheus.FiberPrometheus
)

// InitMetrics returns the process-wide HTTP metrics middleware. Collectors register once.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		prom = fiberprometheus.NewWithRegistry(prometheus.DefaultRegisterer, serviceName, "http", "", nil)
	})
	return prom
}

// MetricsMiddleware records request counts and latencies, skipping the scrape endpoint itself.
func MetricsMiddleware(p *fiberprometheus.FiberPrometheus) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}
		return p.Middleware(c)
	}
}
