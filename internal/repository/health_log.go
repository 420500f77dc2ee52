package repository

import (
	"context"
	"fmt"
	"time"

	"healthtrack/internal/models"

	"gorm.io/gorm"
)

// Log orderings.
const (
	OrderByID       = "id ASC"
	OrderByDateDesc = `"date" DESC, id DESC`
)

// LogFilter selects one user's logs. From and To are inclusive; nil leaves that side open.
type LogFilter struct {
	UserID uint
	From   *time.Time
	To     *time.Time
	Order  string
}

// HealthLogRepository defines persistence operations for health logs.
type HealthLogRepository interface {
	Create(ctx context.Context, log *models.HealthLog) error
	List(ctx context.Context, filter LogFilter) ([]models.HealthLog, error)
	DeleteOwned(ctx context.Context, userID, logID uint) (int64, error)
}

type healthLogRepository struct {
	db *gorm.DB
}

// NewHealthLogRepository returns a new HealthLogRepository implementation.
func NewHealthLogRepository(db *gorm.DB) HealthLogRepository {
	return &healthLogRepository{db: db}
}

func (r *healthLogRepository) Create(ctx context.Context, log *models.HealthLog) error {
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return fmt.Errorf("create health log: %w", err)
	}
	return nil
}

func (r *healthLogRepository) List(ctx context.Context, filter LogFilter) ([]models.HealthLog, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", filter.UserID)
	if filter.From != nil {
		q = q.Where(`"date" >= ?`, filter.From.UTC())
	}
	if filter.To != nil {
		q = q.Where(`"date" <= ?`, filter.To.UTC())
	}

	order := filter.Order
	if order == "" {
		order = OrderByDateDesc
	}

	logs := []models.HealthLog{}
	if err := q.Order(order).Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list health logs: %w", err)
	}
	return logs, nil
}

// DeleteOwned deletes the log only if userID owns it and returns the number of rows removed.
func (r *healthLogRepository) DeleteOwned(ctx context.Context, userID, logID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", logID, userID).Delete(&models.HealthLog{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete health log %d: %w", logID, res.Error)
	}
	return res.RowsAffected, nil
}
