package api

import (
	"github.com/cyra-health/cyra/internal/models"
	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func apiValidationError(c *fiber.Ctx, violations []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": violations})
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
