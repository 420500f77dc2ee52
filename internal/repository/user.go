// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"healthtrack/internal/cache"
	"healthtrack/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateProfile(ctx context.Context, id uint, fields map[string]any) error
	GetStreakState(ctx context.Context, id uint) (StreakState, error)
	UpdateStreak(ctx context.Context, id uint, expected StreakState, next StreakState) (bool, error)
}

// StreakState is the pair of user columns the streak logic reads and writes together.
type StreakState struct {
	Streak      int
	LastLogDate *time.Time
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// GetByID returns the user, served from the profile cache when possible.
// The password hash never enters the cache, so callers must not persist the result wholesale.
func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User

	err := cache.Aside(ctx, cache.UserKey(id), &user, cache.UserTTL, func() error {
		if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User not found")
			}
			return fmt.Errorf("get user %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns nil, nil when no user has the address.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("User already exists")
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// UpdateProfile writes the given columns only.
func (r *userRepository) UpdateProfile(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("update user %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("User not found")
	}

	cache.InvalidateUser(ctx, id)
	return nil
}

// GetStreakState reads the streak columns straight from the database, bypassing the cache.
func (r *userRepository) GetStreakState(ctx context.Context, id uint) (StreakState, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Select("id", "streak", "last_log_date").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StreakState{}, models.NewNotFoundError("User not found")
		}
		return StreakState{}, fmt.Errorf("get streak for user %d: %w", id, err)
	}
	return StreakState{Streak: user.Streak, LastLogDate: user.LastLogDate}, nil
}

// UpdateStreak stores next only if the row still holds expected. It reports false when another
// writer got there first.
func (r *userRepository) UpdateStreak(ctx context.Context, id uint, expected StreakState, next StreakState) (bool, error) {
	q := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ? AND streak = ?", id, expected.Streak)
	if expected.LastLogDate == nil {
		q = q.Where("last_log_date IS NULL")
	} else {
		q = q.Where("last_log_date = ?", *expected.LastLogDate)
	}

	res := q.Updates(map[string]any{
		"streak":        next.Streak,
		"last_log_date": next.LastLogDate,
	})
	if res.Error != nil {
		return false, fmt.Errorf("update streak for user %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return false, nil
	}

	cache.InvalidateUser(ctx, id)
	return true, nil
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint")
}
