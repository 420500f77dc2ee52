package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"healthtrack/internal/models"
	"healthtrack/internal/repository"
)

type userRepoStub struct {
	getByIDFn        func(ctx context.Context, id uint) (*models.User, error)
	getByEmailFn     func(ctx context.Context, email string) (*models.User, error)
	createFn         func(ctx context.Context, user *models.User) error
	updateProfileFn  func(ctx context.Context, id uint, fields map[string]any) error
	getStreakStateFn func(ctx context.Context, id uint) (repository.StreakState, error)
	updateStreakFn   func(ctx context.Context, id uint, expected, next repository.StreakState) (bool, error)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, _ uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User not found")
		},
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:     func(_ context.Context, _ *models.User) error { return nil },
		updateProfileFn: func(_ context.Context, _ uint, _ map[string]any) error {
			return nil
		},
		getStreakStateFn: func(_ context.Context, _ uint) (repository.StreakState, error) {
			return repository.StreakState{}, nil
		},
		updateStreakFn: func(_ context.Context, _ uint, _, _ repository.StreakState) (bool, error) {
			return true, nil
		},
	}
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func (s *userRepoStub) UpdateProfile(ctx context.Context, id uint, fields map[string]any) error {
	return s.updateProfileFn(ctx, id, fields)
}

func (s *userRepoStub) GetStreakState(ctx context.Context, id uint) (repository.StreakState, error) {
	return s.getStreakStateFn(ctx, id)
}

func (s *userRepoStub) UpdateStreak(ctx context.Context, id uint, expected, next repository.StreakState) (bool, error) {
	return s.updateStreakFn(ctx, id, expected, next)
}

// streakStore backs a userRepoStub with one user's streak columns and honours the compare-and-swap.
type streakStore struct {
	mu    sync.Mutex
	state repository.StreakState
}

func (st *streakStore) wire(repo *userRepoStub) {
	repo.getStreakStateFn = func(_ context.Context, _ uint) (repository.StreakState, error) {
		st.mu.Lock()
		defer st.mu.Unlock()
		return st.state, nil
	}
	repo.updateStreakFn = func(_ context.Context, _ uint, expected, next repository.StreakState) (bool, error) {
		st.mu.Lock()
		defer st.mu.Unlock()
		if st.state.Streak != expected.Streak || !sameTime(st.state.LastLogDate, expected.LastLogDate) {
			return false, nil
		}
		st.state = next
		return true, nil
	}
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// memLogRepo is an in-memory HealthLogRepository.
type memLogRepo struct {
	mu      sync.Mutex
	nextID  uint
	logs    []models.HealthLog
	failErr error
}

func (r *memLogRepo) Create(_ context.Context, log *models.HealthLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return r.failErr
	}
	r.nextID++
	log.ID = r.nextID
	r.logs = append(r.logs, *log)
	return nil
}

func (r *memLogRepo) List(_ context.Context, filter repository.LogFilter) ([]models.HealthLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return nil, r.failErr
	}

	out := []models.HealthLog{}
	for _, l := range r.logs {
		if l.UserID != filter.UserID {
			continue
		}
		if filter.From != nil && l.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && l.Date.After(*filter.To) {
			continue
		}
		out = append(out, l)
	}

	if filter.Order == repository.OrderByID {
		sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	} else {
		sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	}
	return out, nil
}

func (r *memLogRepo) DeleteOwned(_ context.Context, userID, logID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return 0, r.failErr
	}
	for i, l := range r.logs {
		if l.ID == logID && l.UserID == userID {
			r.logs = append(r.logs[:i], r.logs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func floatPtr(v float64) *float64 { return &v }
