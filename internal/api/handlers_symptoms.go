package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/cyra-health/cyra/internal/models"
	"github.com/gofiber/fiber/v2"
)

type symptomRequest struct {
	Date     string `json:"date"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Severity int    `json:"severity"`
	Notes    string `json:"notes"`
}

func symptomResponse(record models.SymptomRecord) fiber.Map {
	return fiber.Map{
		"id":        record.ID,
		"date":      record.Date.Format("2006-01-02"),
		"category":  record.Category,
		"name":      record.Name,
		"severity":  record.Severity,
		"notes":     record.Notes,
		"cycle_day": record.CycleDay,
	}
}

func (handler *Handler) ListSymptoms(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	records, err := handler.repos.Symptoms.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load symptoms")
	}

	response := make([]fiber.Map, 0, len(records))
	for _, record := range records {
		response = append(response, symptomResponse(record))
	}
	return c.JSON(response)
}

func (handler *Handler) CreateSymptom(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var request symptomRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	name := strings.TrimSpace(request.Name)
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "symptom name is required")
	}
	if request.Severity < models.MinSymptomSeverity || request.Severity > models.MaxSymptomSeverity {
		return apiError(c, fiber.StatusBadRequest, "severity must be between 1 and 5")
	}

	category := strings.TrimSpace(request.Category)
	if category == "" {
		category = models.CatalogCategoryForSymptom(name)
	} else if !models.IsValidSymptomCategory(category) {
		return apiError(c, fiber.StatusBadRequest, "unknown symptom category")
	}

	now := time.Now().In(handler.location)
	date, ok := handler.parseRecordDate(request.Date, now)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "date must be today or earlier, formatted YYYY-MM-DD")
	}

	record := models.SymptomRecord{
		UserID:   user.ID,
		Date:     date,
		Category: category,
		Name:     name,
		Severity: request.Severity,
		Notes:    strings.TrimSpace(request.Notes),
		CycleDay: handler.cycleDayFor(user.ID, date),
	}
	if err := handler.repos.Symptoms.Create(&record); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save symptom")
	}

	handler.scheduler.NotifyChange(user.ID)
	return c.Status(fiber.StatusCreated).JSON(symptomResponse(record))
}

func (handler *Handler) DeleteSymptom(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recordID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid record id")
	}

	deleted, err := handler.repos.Symptoms.DeleteByIDForUser(uint(recordID), user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete symptom")
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "symptom not found")
	}

	handler.scheduler.NotifyChange(user.ID)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) GetSymptomCatalog(c *fiber.Ctx) error {
	catalog := models.DefaultSymptomCatalog()
	response := make([]fiber.Map, 0, len(catalog))
	for _, entry := range catalog {
		response = append(response, fiber.Map{
			"name":     entry.Name,
			"category": entry.Category,
		})
	}
	return c.JSON(response)
}
