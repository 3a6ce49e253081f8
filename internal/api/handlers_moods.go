package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/cyra-health/cyra/internal/models"
	"github.com/gofiber/fiber/v2"
)

type moodRequest struct {
	Date        string `json:"date"`
	Mood        string `json:"mood"`
	EnergyLevel int    `json:"energy_level"`
	StressLevel int    `json:"stress_level"`
	Notes       string `json:"notes"`
}

func moodResponse(entry models.MoodEntry) fiber.Map {
	return fiber.Map{
		"id":           entry.ID,
		"date":         entry.Date.Format("2006-01-02"),
		"mood":         entry.Mood,
		"energy_level": entry.EnergyLevel,
		"stress_level": entry.StressLevel,
		"notes":        entry.Notes,
		"cycle_day":    entry.CycleDay,
	}
}

func (handler *Handler) ListMoods(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entries, err := handler.repos.Moods.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load mood entries")
	}

	response := make([]fiber.Map, 0, len(entries))
	for _, entry := range entries {
		response = append(response, moodResponse(entry))
	}
	return c.JSON(response)
}

func (handler *Handler) CreateMoodEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var request moodRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	mood := strings.TrimSpace(request.Mood)
	if mood == "" {
		return apiError(c, fiber.StatusBadRequest, "mood is required")
	}
	if request.EnergyLevel < models.MinMoodLevel || request.EnergyLevel > models.MaxMoodLevel {
		return apiError(c, fiber.StatusBadRequest, "energy level must be between 1 and 10")
	}
	if request.StressLevel < models.MinMoodLevel || request.StressLevel > models.MaxMoodLevel {
		return apiError(c, fiber.StatusBadRequest, "stress level must be between 1 and 10")
	}

	now := time.Now().In(handler.location)
	date, ok := handler.parseRecordDate(request.Date, now)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "date must be today or earlier, formatted YYYY-MM-DD")
	}

	entry := models.MoodEntry{
		UserID:      user.ID,
		Date:        date,
		Mood:        mood,
		EnergyLevel: request.EnergyLevel,
		StressLevel: request.StressLevel,
		Notes:       strings.TrimSpace(request.Notes),
		CycleDay:    handler.cycleDayFor(user.ID, date),
	}
	if err := handler.repos.Moods.Create(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save mood entry")
	}

	handler.scheduler.NotifyChange(user.ID)
	return c.Status(fiber.StatusCreated).JSON(moodResponse(entry))
}

func (handler *Handler) DeleteMoodEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entryID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid record id")
	}

	deleted, err := handler.repos.Moods.DeleteByIDForUser(uint(entryID), user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete mood entry")
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "mood entry not found")
	}

	handler.scheduler.NotifyChange(user.ID)
	return c.JSON(fiber.Map{"ok": true})
}
