package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

const maxTrendWindowDays = 365

func (handler *Handler) GetSnapshot(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	now := time.Now().In(handler.location)
	snapshot, err := handler.insights.BuildSnapshot(user.ID, now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build snapshot")
	}

	accuracy, err := handler.insights.PredictionAccuracyForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build snapshot")
	}

	return c.JSON(fiber.Map{
		"snapshot": snapshot,
		"accuracy": accuracy,
	})
}

func (handler *Handler) GetTrends(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	windowDays := handler.insights.WindowDays()
	if raw := c.Query("window"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxTrendWindowDays {
			return apiError(c, fiber.StatusBadRequest, "window must be between 1 and 365 days")
		}
		windowDays = parsed
	}

	now := time.Now().In(handler.location)
	summary, _ := handler.insights.BuildTrends(user.ID, now, windowDays)
	return c.JSON(summary)
}

// GetInsights serves the scheduler's cached pass when one exists and
// computes a fresh one otherwise, so a first request after startup is
// never empty.
func (handler *Handler) GetInsights(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if snapshot, insights, generatedAt, found := handler.scheduler.Latest(user.ID); found {
		return c.JSON(fiber.Map{
			"snapshot":     snapshot,
			"insights":     insights,
			"generated_at": generatedAt.Format(time.RFC3339),
			"cached":       true,
		})
	}

	now := time.Now().In(handler.location)
	snapshot, _, insights, err := handler.insights.GenerateForUser(user.ID, now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to generate insights")
	}

	return c.JSON(fiber.Map{
		"snapshot":     snapshot,
		"insights":     insights,
		"generated_at": now.Format(time.RFC3339),
		"cached":       false,
	})
}
