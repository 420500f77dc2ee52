package server

import (
	"context"
	"testing"
	"time"

	"healthtrack/internal/config"
	"healthtrack/internal/models"
	"healthtrack/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id uint, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockUserRepository) GetStreakState(ctx context.Context, id uint) (repository.StreakState, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(repository.StreakState), args.Error(1)
}

func (m *MockUserRepository) UpdateStreak(ctx context.Context, id uint, expected, next repository.StreakState) (bool, error) {
	args := m.Called(ctx, id, expected, next)
	return args.Bool(0), args.Error(1)
}

// MockHealthLogRepository is a mock of the HealthLogRepository interface
type MockHealthLogRepository struct {
	mock.Mock
}

func (m *MockHealthLogRepository) Create(ctx context.Context, log *models.HealthLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockHealthLogRepository) List(ctx context.Context, filter repository.LogFilter) ([]models.HealthLog, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.HealthLog), args.Error(1)
}

func (m *MockHealthLogRepository) DeleteOwned(ctx context.Context, userID, logID uint) (int64, error) {
	args := m.Called(ctx, userID, logID)
	return args.Get(0).(int64), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		Port:           "0",
		Env:            "test",
		Timezone:       "UTC",
		JWTSecret:      "test_secret_that_is_long_enough_123",
		JWTTTL:         time.Hour,
		AllowedOrigins: "*",
	}
}

// newMockServer builds a server over fresh mocks.
func newMockServer(t *testing.T) (*Server, *MockUserRepository, *MockHealthLogRepository) {
	t.Helper()
	userRepo := new(MockUserRepository)
	logRepo := new(MockHealthLogRepository)

	s, err := newServer(testConfig(), nil, userRepo, logRepo)
	require.NoError(t, err)
	return s, userRepo, logRepo
}

func bearer(t *testing.T, s *Server, userID uint) string {
	t.Helper()
	token, err := s.tokens.Issue(userID)
	require.NoError(t, err)
	return "Bearer " + token
}
