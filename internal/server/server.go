// Package server contains the HTTP handlers and wiring for the API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "healthtrack/docs" // swagger docs
	"healthtrack/internal/cache"
	"healthtrack/internal/config"
	"healthtrack/internal/database"
	"healthtrack/internal/middleware"
	"healthtrack/internal/models"
	"healthtrack/internal/repository"
	"healthtrack/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

const serviceName = "healthtrack-api"

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	logRepo        repository.HealthLogRepository
	tokens         *service.TokenManager
	authService    *service.AuthService
	healthService  *service.HealthService
}

// NewServer connects to Postgres and Redis and builds the server on top of them.
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	db, err := database.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// A missing Redis leaves the cache disabled.
	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db)
}

// NewServerWithDeps creates a Server using an already-initialized database.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB) (*Server, error) {
	return newServer(cfg, db, repository.NewUserRepository(db), repository.NewHealthLogRepository(db))
}

func newServer(cfg *config.Config, db *gorm.DB, userRepo repository.UserRepository, logRepo repository.HealthLogRepository) (*Server, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	s := &Server{
		config:         cfg,
		db:             db,
		promMiddleware: middleware.InitMetrics(serviceName),
		userRepo:       userRepo,
		logRepo:        logRepo,
		tokens:         tokens,
		authService:    service.NewAuthService(userRepo, tokens),
		healthService:  service.NewHealthService(logRepo, userRepo, loc),
	}
	s.app = s.newApp()
	return s, nil
}

func (s *Server) newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Health Tracking API",
		ErrorHandler: errorHandler,
	})

	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// errorHandler keeps Fiber's own status errors (404, 405, ...) and turns anything else into a bare 500.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(models.ErrorResponse{Message: fe.Message})
	}

	middleware.Logger.ErrorContext(c.UserContext(), "unhandled error", slog.String("error", err.Error()))
	return models.RespondWithError(c, fiber.StatusInternalServerError, err)
}

// App returns the configured Fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.TracingMiddleware())

	// Copies request and trace IDs into the context the logger reads.
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		MaxAge:       86400,
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/", s.Root)
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	app.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Health Tracking API Metrics",
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")
	requireAuth := middleware.AuthRequired(s.tokens)

	auth := api.Group("/auth")
	auth.Post("/register", s.Register)
	auth.Post("/login", s.Login)
	auth.Put("/update", requireAuth, s.UpdateProfile)
	auth.Get("/profile", requireAuth, s.GetProfile)

	health := api.Group("/health", requireAuth)
	health.Post("/add", s.AddLog)
	health.Get("/today", s.GetTodayLogs)
	health.Get("/summary", s.GetTodaySummary)
	health.Get("/", s.GetLogs)
	health.Delete("/:id", s.DeleteLog)
}

// Root handles GET /
func (s *Server) Root(c *fiber.Ctx) error {
	return c.SendString("Health Tracking API Running...")
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck reports 503 while Postgres is unreachable. Redis is reported but optional.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	if s.db == nil {
		dbStatus = "unavailable"
	} else if err := database.Ping(ctx, s.db); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if cache.GetClient() == nil {
		redisStatus = "disabled"
	} else if err := cache.Ping(ctx); err != nil {
		redisStatus = "unhealthy"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	middleware.Logger.Info("Server starting", slog.String("port", s.config.Port))
	return s.app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.app.ShutdownWithContext(ctx); err != nil {
		middleware.Logger.Error("error shutting down HTTP server", slog.String("error", err.Error()))
	}

	if s.db != nil {
		if err := database.Close(s.db); err != nil {
			middleware.Logger.Error("error closing database", slog.String("error", err.Error()))
		}
	}

	if err := cache.Close(); err != nil {
		middleware.Logger.Error("error closing redis", slog.String("error", err.Error()))
	}

	middleware.Logger.Info("Server shutdown complete")
	return nil
}
