package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth := app.Group("/api/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)

	protected := app.Group("/api", handler.AuthRequired)
	protected.Get("/me", handler.Me)
	protected.Delete("/account", handler.DeleteAccount)

	protected.Get("/config", handler.GetCycleConfig)
	protected.Post("/config", handler.UpdateCycleConfig)
	protected.Post("/periods", handler.LogPeriodStart)

	protected.Get("/symptoms/catalog", handler.GetSymptomCatalog)
	protected.Get("/symptoms", handler.ListSymptoms)
	protected.Post("/symptoms", handler.CreateSymptom)
	protected.Delete("/symptoms/:id", handler.DeleteSymptom)

	protected.Get("/hormones", handler.ListHormones)
	protected.Post("/hormones", handler.CreateHormoneReading)
	protected.Delete("/hormones/:id", handler.DeleteHormoneReading)

	protected.Get("/moods", handler.ListMoods)
	protected.Post("/moods", handler.CreateMoodEntry)
	protected.Delete("/moods/:id", handler.DeleteMoodEntry)

	protected.Get("/snapshot", handler.GetSnapshot)
	protected.Get("/trends", handler.GetTrends)
	protected.Get("/insights", handler.GetInsights)

	protected.Get("/export/summary", handler.GetExportSummary)
	protected.Get("/export/json", handler.ExportJSON)
	protected.Get("/export/csv", handler.ExportSymptomCSV)
}
