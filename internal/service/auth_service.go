// Package service holds the application's business logic.
package service

import (
	"context"
	"errors"

	"healthtrack/internal/models"
	"healthtrack/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService registers users, signs them in and manages their profile.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *TokenManager
}

// RegisterInput carries the fields accepted at sign-up.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Age      *int
	Height   *float64
	Weight   *float64
}

// UpdateProfileInput lists the editable profile fields. Nil fields are left unchanged.
type UpdateProfileInput struct {
	Name        *string
	Age         *int
	Height      *float64
	Weight      *float64
	StepGoal    *int
	WaterGoal   *int
	CalorieGoal *int
	SleepGoal   *float64
}

// AuthResult is a signed token with the account it belongs to.
type AuthResult struct {
	Token string
	User  *models.User
}

func NewAuthService(userRepo repository.UserRepository, tokens *TokenManager) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, models.NewStorageError("Server Error", err)
	}
	if existing != nil {
		return nil, models.NewConflictError("User already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, models.NewValidationError("Password too long")
		}
		return nil, models.NewStorageError("Server Error", err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hashed),
		Age:      in.Age,
		Height:   in.Height,
		Weight:   in.Weight,
	}
	user.ApplyDefaultGoals()

	if err := s.userRepo.Create(ctx, user); err != nil {
		if models.HasCode(err, models.CodeConflict) {
			return nil, err
		}
		return nil, models.NewStorageError("Server Error", err)
	}

	return s.issue(user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, models.NewStorageError("Server Error", err)
	}
	if user == nil {
		return nil, models.NewNotFoundError("User not found")
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); cmpErr != nil {
		return nil, models.NewInvalidCredentialsError()
	}

	return s.issue(user)
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, models.NewStorageError("Server Error", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}

// UpdateProfile applies the supplied fields and returns the stored profile.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (*models.User, error) {
	fields := in.columns()
	if len(fields) == 0 {
		return s.GetProfile(ctx, userID)
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, fields); err != nil {
		if models.HasCode(err, models.CodeNotFound) {
			return nil, err
		}
		return nil, models.NewStorageError("Update failed", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if models.HasCode(err, models.CodeNotFound) {
			return nil, err
		}
		return nil, models.NewStorageError("Update failed", err)
	}
	return user, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if models.HasCode(err, models.CodeNotFound) {
			return nil, err
		}
		return nil, models.NewStorageError("Server Error", err)
	}
	return user, nil
}

func (in UpdateProfileInput) columns() map[string]any {
	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Age != nil {
		fields["age"] = *in.Age
	}
	if in.Height != nil {
		fields["height"] = *in.Height
	}
	if in.Weight != nil {
		fields["weight"] = *in.Weight
	}
	if in.StepGoal != nil {
		fields["step_goal"] = *in.StepGoal
	}
	if in.WaterGoal != nil {
		fields["water_goal"] = *in.WaterGoal
	}
	if in.CalorieGoal != nil {
		fields["calorie_goal"] = *in.CalorieGoal
	}
	if in.SleepGoal != nil {
		fields["sleep_goal"] = *in.SleepGoal
	}
	return fields
}
