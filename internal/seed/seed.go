package seed

import (
	"context"
	"log/slog"
	"time"

	"healthtrack/internal/middleware"
	"healthtrack/internal/models"
	"healthtrack/internal/repository"

	"gorm.io/gorm"
)

// DemoEmail is the account always created by Run.
const DemoEmail = "demo@example.com"

// Seeder fills the database with demo data.
type Seeder struct {
	db      *gorm.DB
	opts    Options
	factory *Factory
}

// NewSeeder returns a Seeder writing through the regular repositories.
func NewSeeder(db *gorm.DB, opts Options, loc *time.Location) *Seeder {
	if opts.NumUsers < 0 {
		opts.NumUsers = 0
	}
	if opts.Days <= 0 {
		opts.Days = 30
	}

	return &Seeder{
		db:      db,
		opts:    opts,
		factory: NewFactory(repository.NewUserRepository(db), repository.NewHealthLogRepository(db), opts, loc),
	}
}

// ClearAll deletes every health log and user.
func (s *Seeder) ClearAll(ctx context.Context) error {
	tx := s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})
	if err := tx.Delete(&models.HealthLog{}).Error; err != nil {
		return err
	}
	if err := tx.Delete(&models.User{}).Error; err != nil {
		return err
	}
	middleware.Logger.InfoContext(ctx, "seed: cleared health logs and users")
	return nil
}

// Run creates the demo user plus opts.NumUsers random users, each with a log history.
func (s *Seeder) Run(ctx context.Context) ([]*models.User, error) {
	if s.opts.ShouldClean {
		if err := s.ClearAll(ctx); err != nil {
			return nil, err
		}
	}

	demo, err := s.factory.CreateUser(ctx, func(u *models.User) {
		u.Name = "Demo User"
		u.Email = DemoEmail
	})
	if err != nil {
		return nil, err
	}

	users := []*models.User{demo}
	for i := 0; i < s.opts.NumUsers; i++ {
		u, err := s.factory.CreateUser(ctx)
		if err != nil {
			return users, err
		}
		users = append(users, u)
	}

	total := 0
	for _, u := range users {
		n, err := s.factory.CreateHistory(ctx, u, s.opts.Days)
		if err != nil {
			return users, err
		}
		total += n
	}

	middleware.Logger.InfoContext(ctx, "seed: done",
		slog.Int("users", len(users)),
		slog.Int("logs", total),
		slog.Int("days", s.opts.Days),
	)
	return users, nil
}
