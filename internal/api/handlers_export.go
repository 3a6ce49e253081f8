package api

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/cyra-health/cyra/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetExportSummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	summary, err := handler.exports.BuildSummary(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export summary")
	}
	return c.JSON(summary)
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	document, err := handler.exports.BuildDocument(user.ID, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="cyra-export.json"`)
	return c.JSON(document)
}

func (handler *Handler) ExportSymptomCSV(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	rows, err := handler.exports.BuildSymptomCSVRows(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)
	if err := writer.Write(services.ExportSymptomCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	for _, row := range rows {
		if err := writer.Write(row.Columns()); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="cyra-symptoms.csv"`)
	return c.Send(buffer.Bytes())
}
