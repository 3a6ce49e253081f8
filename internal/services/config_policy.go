package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cyra-health/cyra/internal/models"
)

var ErrLastPeriodStartInvalid = errors.New("last period start date invalid")

const lastPeriodStartMaxAgeDays = 365

// ValidateCycleConfig collects every violation so the caller can surface
// all problems at once instead of failing on the first.
func ValidateCycleConfig(cycleLength int, periodLength int) []string {
	violations := make([]string, 0)

	if cycleLength < models.MinCycleLength || cycleLength > models.MaxCycleLength {
		violations = append(violations, fmt.Sprintf(
			"cycle length must be between %d and %d days, got %d",
			models.MinCycleLength, models.MaxCycleLength, cycleLength,
		))
	}
	if periodLength < models.MinPeriodLength || periodLength > models.MaxPeriodLength {
		violations = append(violations, fmt.Sprintf(
			"period length must be between %d and %d days, got %d",
			models.MinPeriodLength, models.MaxPeriodLength, periodLength,
		))
	}
	if periodLength >= cycleLength {
		violations = append(violations, fmt.Sprintf(
			"period length (%d) must be shorter than cycle length (%d)",
			periodLength, cycleLength,
		))
	}

	return violations
}

// ParseLastPeriodStart accepts an empty value as "no history yet".
func ParseLastPeriodStart(raw string, now time.Time, location *time.Location) (*time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}

	if location == nil {
		location = time.UTC
	}
	parsed, err := time.ParseInLocation("2006-01-02", trimmed, location)
	if err != nil {
		return nil, ErrLastPeriodStartInvalid
	}
	day := DateAtLocation(parsed, location)

	today := DateAtLocation(now, location)
	if day.After(today) || day.Before(today.AddDate(0, 0, -lastPeriodStartMaxAgeDays)) {
		return nil, ErrLastPeriodStartInvalid
	}

	return &day, nil
}
