package server

import (
	"healthtrack/internal/models"
	"healthtrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

type registerRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Age      *int     `json:"age"`
	Height   *float64 `json:"height"`
	Weight   *float64 `json:"weight"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Name        *string  `json:"name"`
	Age         *int     `json:"age"`
	Height      *float64 `json:"height"`
	Weight      *float64 `json:"weight"`
	StepGoal    *int     `json:"stepGoal"`
	WaterGoal   *int     `json:"waterGoal"`
	CalorieGoal *int     `json:"calorieGoal"`
	SleepGoal   *float64 `json:"sleepGoal"`
}

type authResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
}

// Register handles POST /api/auth/register
// @Summary Register
// @Description Create an account and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body registerRequest true "Account details"
// @Success 201 {object} authResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /auth/register [post]
func (s *Server) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := parseBody(c, &req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	res, err := s.authService.Register(c.UserContext(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
		Height:   req.Height,
		Weight:   req.Weight,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(authResponse{
		Message: "Registered successfully",
		Token:   res.Token,
		User:    res.User,
	})
}

// Login handles POST /api/auth/login
// @Summary Login
// @Description Exchange email and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body loginRequest true "Credentials"
// @Success 200 {object} authResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /auth/login [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := parseBody(c, &req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	res, err := s.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(authResponse{
		Message: "Login successful",
		Token:   res.Token,
		User:    res.User,
	})
}

// UpdateProfile handles PUT /api/auth/update
// @Summary Update profile
// @Description Change profile fields and goals. Omitted fields keep their value.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body updateProfileRequest true "Fields to change"
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /auth/update [put]
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var req updateProfileRequest
	if err := parseBody(c, &req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	user, err := s.authService.UpdateProfile(c.UserContext(), currentUserID(c), service.UpdateProfileInput{
		Name:        req.Name,
		Age:         req.Age,
		Height:      req.Height,
		Weight:      req.Weight,
		StepGoal:    req.StepGoal,
		WaterGoal:   req.WaterGoal,
		CalorieGoal: req.CalorieGoal,
		SleepGoal:   req.SleepGoal,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// GetProfile handles GET /api/auth/profile
// @Summary Current profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /auth/profile [get]
func (s *Server) GetProfile(c *fiber.Ctx) error {
	user, err := s.authService.GetProfile(c.UserContext(), currentUserID(c))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}
