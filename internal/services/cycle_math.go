package services

import (
	"time"

	"github.com/cyra-health/cyra/internal/models"
)

type Phase string

const (
	PhaseMenstrual  Phase = "menstrual"
	PhaseFollicular Phase = "follicular"
	PhaseOvulatory  Phase = "ovulatory"
	PhaseLuteal     Phase = "luteal"
)

type FertilityStatus string

const (
	FertilityLow    FertilityStatus = "low"
	FertilityMedium FertilityStatus = "medium"
	FertilityHigh   FertilityStatus = "high"
	FertilityPeak   FertilityStatus = "peak"
)

// CycleSnapshot is derived on demand and never persisted as authoritative
// state. HasData distinguishes "no period logged yet" from day 1 of an
// active cycle.
type CycleSnapshot struct {
	HasData             bool            `json:"has_data"`
	CycleDay            int             `json:"cycle_day"`
	Phase               Phase           `json:"phase"`
	FertilityStatus     FertilityStatus `json:"fertility_status"`
	CycleLength         int             `json:"cycle_length"`
	PeriodLength        int             `json:"period_length"`
	LastPeriodStart     time.Time       `json:"last_period_start"`
	NextPeriodStart     time.Time       `json:"next_period_start"`
	OvulationDate       time.Time       `json:"ovulation_date"`
	DaysUntilNextPeriod int             `json:"days_until_next_period"`
}

func BuildCycleSnapshot(config models.CycleConfig, now time.Time, location *time.Location) CycleSnapshot {
	snapshot := CycleSnapshot{
		CycleLength:  config.CycleLength,
		PeriodLength: config.PeriodLength,
	}
	if snapshot.CycleLength <= 0 {
		snapshot.CycleLength = models.DefaultCycleLength
	}
	if snapshot.PeriodLength <= 0 {
		snapshot.PeriodLength = models.DefaultPeriodLength
	}
	if config.LastPeriodStart == nil || config.LastPeriodStart.IsZero() {
		return snapshot
	}

	start := DateAtLocation(*config.LastPeriodStart, location)
	today := DateAtLocation(now, location)

	snapshot.HasData = true
	snapshot.LastPeriodStart = start
	snapshot.CycleDay = ComputeCycleDay(start, today, snapshot.CycleLength)
	snapshot.Phase = ComputePhase(snapshot.CycleDay, snapshot.CycleLength, snapshot.PeriodLength)
	snapshot.FertilityStatus = ComputeFertilityStatus(snapshot.CycleDay, snapshot.CycleLength, snapshot.PeriodLength)
	snapshot.NextPeriodStart, snapshot.OvulationDate = ComputePredictions(start, snapshot.CycleLength)

	daysUntil := daysBetween(today, snapshot.NextPeriodStart)
	if daysUntil < 0 {
		daysUntil = 0
	}
	snapshot.DaysUntilNextPeriod = daysUntil
	return snapshot
}

// ComputeCycleDay is 1-indexed and clamped to [1, cycleLength]; callers
// that need "no history" semantics must gate on the config before calling.
func ComputeCycleDay(lastPeriodStart time.Time, today time.Time, cycleLength int) int {
	if lastPeriodStart.IsZero() || today.Before(lastPeriodStart) {
		return 1
	}
	day := daysBetween(lastPeriodStart, today) + 1
	if cycleLength > 0 && day > cycleLength {
		day = cycleLength
	}
	return day
}

// ComputePhase uses the cycleLength/2 +-2 ovulatory window. The ordered
// thresholds keep the four phases a partition of [1, cycleLength] even
// when a long period swallows the follicular range.
func ComputePhase(cycleDay int, cycleLength int, periodLength int) Phase {
	midpoint := cycleLength / 2
	switch {
	case cycleDay <= periodLength:
		return PhaseMenstrual
	case cycleDay <= midpoint-2:
		return PhaseFollicular
	case cycleDay <= midpoint+2:
		return PhaseOvulatory
	default:
		return PhaseLuteal
	}
}

func ComputeFertilityStatus(cycleDay int, cycleLength int, periodLength int) FertilityStatus {
	midpoint := cycleLength / 2
	switch {
	case cycleDay == midpoint || cycleDay == midpoint+1:
		return FertilityPeak
	case cycleDay >= midpoint-2 && cycleDay <= midpoint+2:
		return FertilityHigh
	case cycleDay > periodLength && cycleDay < midpoint-2:
		return FertilityMedium
	default:
		return FertilityLow
	}
}

func ComputePredictions(lastPeriodStart time.Time, cycleLength int) (time.Time, time.Time) {
	nextPeriodStart := lastPeriodStart.AddDate(0, 0, cycleLength)
	ovulationDate := lastPeriodStart.AddDate(0, 0, cycleLength/2)
	return nextPeriodStart, ovulationDate
}

func DaysToOvulation(cycleDay int, cycleLength int) int {
	return cycleLength/2 - cycleDay
}
