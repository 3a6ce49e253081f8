package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/cyra-health/cyra/internal/models"
	"github.com/gofiber/fiber/v2"
)

type hormoneRequest struct {
	Date         string  `json:"date"`
	Estrogen     float64 `json:"estrogen"`
	Progesterone float64 `json:"progesterone"`
	LH           float64 `json:"lh"`
	FSH          float64 `json:"fsh"`
	Testosterone float64 `json:"testosterone"`
	Cortisol     float64 `json:"cortisol"`
	Source       string  `json:"source"`
}

func hormoneResponse(reading models.HormoneReading) fiber.Map {
	return fiber.Map{
		"id":           reading.ID,
		"date":         reading.Date.Format("2006-01-02"),
		"estrogen":     reading.Estrogen,
		"progesterone": reading.Progesterone,
		"lh":           reading.LH,
		"fsh":          reading.FSH,
		"testosterone": reading.Testosterone,
		"cortisol":     reading.Cortisol,
		"source":       reading.Source,
		"cycle_day":    reading.CycleDay,
	}
}

func (handler *Handler) ListHormones(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	readings, err := handler.repos.Hormones.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load hormone readings")
	}

	response := make([]fiber.Map, 0, len(readings))
	for _, reading := range readings {
		response = append(response, hormoneResponse(reading))
	}
	return c.JSON(response)
}

func (handler *Handler) CreateHormoneReading(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var request hormoneRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	values := []float64{
		request.Estrogen, request.Progesterone, request.LH,
		request.FSH, request.Testosterone, request.Cortisol,
	}
	anyMeasured := false
	for _, value := range values {
		if value < 0 {
			return apiError(c, fiber.StatusBadRequest, "hormone values must not be negative")
		}
		if value > 0 {
			anyMeasured = true
		}
	}
	if !anyMeasured {
		return apiError(c, fiber.StatusBadRequest, "at least one hormone value is required")
	}

	source := strings.TrimSpace(request.Source)
	if source == "" {
		source = models.HormoneSourceManual
	} else if !models.IsValidHormoneSource(source) {
		return apiError(c, fiber.StatusBadRequest, "unknown reading source")
	}

	now := time.Now().In(handler.location)
	date, ok := handler.parseRecordDate(request.Date, now)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "date must be today or earlier, formatted YYYY-MM-DD")
	}

	reading := models.HormoneReading{
		UserID:       user.ID,
		Date:         date,
		Estrogen:     request.Estrogen,
		Progesterone: request.Progesterone,
		LH:           request.LH,
		FSH:          request.FSH,
		Testosterone: request.Testosterone,
		Cortisol:     request.Cortisol,
		Source:       source,
		CycleDay:     handler.cycleDayFor(user.ID, date),
	}
	if err := handler.repos.Hormones.Create(&reading); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save hormone reading")
	}

	handler.scheduler.NotifyChange(user.ID)
	return c.Status(fiber.StatusCreated).JSON(hormoneResponse(reading))
}

func (handler *Handler) DeleteHormoneReading(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	readingID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid record id")
	}

	deleted, err := handler.repos.Hormones.DeleteByIDForUser(uint(readingID), user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete hormone reading")
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "hormone reading not found")
	}

	handler.scheduler.NotifyChange(user.ID)
	return c.JSON(fiber.Map{"ok": true})
}
