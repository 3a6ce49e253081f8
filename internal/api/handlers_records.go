package api

import (
	"strings"
	"time"

	"github.com/cyra-health/cyra/internal/services"
)

// parseRecordDate accepts an empty value as "today". Future dates are
// rejected; records describe what already happened.
func (handler *Handler) parseRecordDate(raw string, now time.Time) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	today := services.DateAtLocation(now, handler.location)
	if trimmed == "" {
		return today, true
	}

	parsed, err := time.ParseInLocation("2006-01-02", trimmed, handler.location)
	if err != nil {
		return time.Time{}, false
	}
	day := services.DateAtLocation(parsed, handler.location)
	if day.After(today) {
		return time.Time{}, false
	}
	return day, true
}

// cycleDayFor stamps records with the cycle day they fall on, or zero
// when no period has been logged yet.
func (handler *Handler) cycleDayFor(userID uint, date time.Time) int {
	snapshot, err := handler.insights.BuildSnapshot(userID, date)
	if err != nil || !snapshot.HasData {
		return 0
	}
	return snapshot.CycleDay
}
