package server

import (
	"strconv"

	"healthtrack/internal/models"
	"healthtrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

type addLogRequest struct {
	Water          *float64 `json:"water"`
	Steps          *float64 `json:"steps"`
	CaloriesIntake *float64 `json:"caloriesIntake"`
	CaloriesBurned *float64 `json:"caloriesBurned"`
	SleepHours     *float64 `json:"sleepHours"`
	HeartRate      *float64 `json:"heartRate"`
}

type addLogResponse struct {
	Message string            `json:"message"`
	Log     *models.HealthLog `json:"log"`
	Streak  int               `json:"streak"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// AddLog handles POST /api/health/add
// @Summary Add a health log
// @Description Store a metrics snapshot stamped with the current time and update the streak
// @Tags health
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body addLogRequest true "Metrics, all optional"
// @Success 201 {object} addLogResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /health/add [post]
func (s *Server) AddLog(c *fiber.Ctx) error {
	var req addLogRequest
	if err := parseBody(c, &req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	res, err := s.healthService.InsertLog(c.UserContext(), currentUserID(c), service.MetricsInput{
		Water:          req.Water,
		Steps:          req.Steps,
		CaloriesIntake: req.CaloriesIntake,
		CaloriesBurned: req.CaloriesBurned,
		SleepHours:     req.SleepHours,
		HeartRate:      req.HeartRate,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(addLogResponse{
		Message: "Log added",
		Log:     res.Log,
		Streak:  res.Streak,
	})
}

// GetTodayLogs handles GET /api/health/today
// @Summary Today's logs
// @Tags health
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.HealthLog
// @Failure 500 {object} models.ErrorResponse
// @Router /health/today [get]
func (s *Server) GetTodayLogs(c *fiber.Ctx) error {
	logs, err := s.healthService.GetTodayLogs(c.UserContext(), currentUserID(c))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(logs)
}

// GetLogs handles GET /api/health
// @Summary List logs
// @Description All logs newest first, or only those between startDate and endDate when both are given
// @Tags health
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "RFC3339 timestamp or YYYY-MM-DD"
// @Param endDate query string false "RFC3339 timestamp or YYYY-MM-DD (whole day)"
// @Success 200 {array} models.HealthLog
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /health [get]
func (s *Server) GetLogs(c *fiber.Ctx) error {
	r, err := service.ParseDateRange(c.Query("startDate"), c.Query("endDate"), s.healthService.Location())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid date range"))
	}

	logs, err := s.healthService.GetLogs(c.UserContext(), currentUserID(c), r)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(logs)
}

// GetTodaySummary handles GET /api/health/summary
// @Summary Today's totals
// @Description Sums of today's metrics; heartRate is the latest reading
// @Tags health
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DailySummary
// @Failure 500 {object} models.ErrorResponse
// @Router /health/summary [get]
func (s *Server) GetTodaySummary(c *fiber.Ctx) error {
	summary, err := s.healthService.GetTodaySummary(c.UserContext(), currentUserID(c))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(summary)
}

// DeleteLog handles DELETE /api/health/:id
// @Summary Delete a log
// @Description Deletes the log if it belongs to the caller. Unknown IDs succeed.
// @Tags health
// @Produce json
// @Security BearerAuth
// @Param id path string true "Log ID"
// @Success 200 {object} messageResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /health/{id} [delete]
func (s *Server) DeleteLog(c *fiber.Ctx) error {
	// A non-numeric ID cannot match any log.
	if id, err := strconv.ParseUint(c.Params("id"), 10, 0); err == nil {
		if err := s.healthService.DeleteLog(c.UserContext(), currentUserID(c), uint(id)); err != nil {
			return mapServiceError(c, err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(messageResponse{Message: "Log deleted"})
}
