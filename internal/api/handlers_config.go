package api

import (
	"errors"
	"strings"
	"time"

	"github.com/cyra-health/cyra/internal/models"
	"github.com/cyra-health/cyra/internal/services"
	"github.com/gofiber/fiber/v2"
)

type cycleConfigRequest struct {
	CycleLength     int    `json:"cycle_length"`
	PeriodLength    int    `json:"period_length"`
	LastPeriodStart string `json:"last_period_start"`
}

type logPeriodRequest struct {
	Date string `json:"date"`
}

func cycleConfigResponse(config models.CycleConfig) fiber.Map {
	response := fiber.Map{
		"cycle_length":      config.CycleLength,
		"period_length":     config.PeriodLength,
		"last_period_start": nil,
	}
	if config.LastPeriodStart != nil {
		response["last_period_start"] = config.LastPeriodStart.Format("2006-01-02")
	}
	return response
}

func (handler *Handler) GetCycleConfig(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	config, found, err := handler.repos.Configs.LatestByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load config")
	}
	if !found {
		config = models.CycleConfig{
			UserID:       user.ID,
			CycleLength:  models.DefaultCycleLength,
			PeriodLength: models.DefaultPeriodLength,
		}
	}

	return c.JSON(cycleConfigResponse(config))
}

// UpdateCycleConfig appends a new epoch; it never rewrites history.
func (handler *Handler) UpdateCycleConfig(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var request cycleConfigRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	violations := services.ValidateCycleConfig(request.CycleLength, request.PeriodLength)
	if len(violations) > 0 {
		return apiValidationError(c, violations)
	}

	now := time.Now().In(handler.location)
	lastPeriodStart, err := services.ParseLastPeriodStart(request.LastPeriodStart, now, handler.location)
	if err != nil {
		if errors.Is(err, services.ErrLastPeriodStartInvalid) {
			return apiValidationError(c, []string{"last period start must be a past date within the last year"})
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save config")
	}

	config := models.CycleConfig{
		UserID:          user.ID,
		CycleLength:     request.CycleLength,
		PeriodLength:    request.PeriodLength,
		LastPeriodStart: lastPeriodStart,
	}
	if err := handler.repos.Configs.Create(&config); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save config")
	}

	handler.scheduler.NotifyChange(user.ID)
	return c.Status(fiber.StatusCreated).JSON(cycleConfigResponse(config))
}

// LogPeriodStart carries the latest lengths forward into a new epoch with
// the given start date, defaulting to today.
func (handler *Handler) LogPeriodStart(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var request logPeriodRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	now := time.Now().In(handler.location)
	raw := strings.TrimSpace(request.Date)
	if raw == "" {
		raw = services.DateAtLocation(now, handler.location).Format("2006-01-02")
	}
	startDate, err := services.ParseLastPeriodStart(raw, now, handler.location)
	if err != nil || startDate == nil {
		return apiValidationError(c, []string{"period start must be a past date within the last year"})
	}

	cycleLength := models.DefaultCycleLength
	periodLength := models.DefaultPeriodLength
	if latest, found, err := handler.repos.Configs.LatestByUser(user.ID); err == nil && found {
		cycleLength = latest.CycleLength
		periodLength = latest.PeriodLength
	}

	config := models.CycleConfig{
		UserID:          user.ID,
		CycleLength:     cycleLength,
		PeriodLength:    periodLength,
		LastPeriodStart: startDate,
	}
	if err := handler.repos.Configs.Create(&config); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to log period")
	}

	handler.scheduler.NotifyChange(user.ID)
	return c.Status(fiber.StatusCreated).JSON(cycleConfigResponse(config))
}
