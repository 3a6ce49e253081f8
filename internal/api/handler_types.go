package api

import (
	"time"

	"github.com/cyra-health/cyra/internal/db"
	"github.com/cyra-health/cyra/internal/services"
	"gorm.io/gorm"
)

const (
	authCookieName = "cyra_auth"
	contextUserKey = "current_user"

	defaultAuthTokenTTL = 7 * 24 * time.Hour
)

type Handler struct {
	repos        *db.Repositories
	insights     *services.InsightService
	exports      *services.ExportService
	scheduler    *services.RegenScheduler
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool, windowDays int) *Handler {
	if location == nil {
		location = time.UTC
	}

	repos := db.NewRepositories(database)
	insights := services.NewInsightService(
		repos.Configs,
		repos.Symptoms,
		repos.Hormones,
		repos.Moods,
		location,
		windowDays,
	)
	exports := services.NewExportService(
		repos.Configs,
		repos.Symptoms,
		repos.Hormones,
		repos.Moods,
		location,
	)
	scheduler := services.NewRegenScheduler(insights, services.DefaultRegenDebounce)

	return &Handler{
		repos:        repos,
		insights:     insights,
		exports:      exports,
		scheduler:    scheduler,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
	}
}

func (handler *Handler) Scheduler() *services.RegenScheduler {
	return handler.scheduler
}
