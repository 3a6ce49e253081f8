package services

import (
	"math"
	"time"

	"github.com/cyra-health/cyra/internal/models"
)

// Accuracy degrades linearly with the mean absolute miss, hitting zero at
// a full week of error.
const accuracyFullMissDays = 7.0

type PredictionAccuracy struct {
	HasValue    bool    `json:"has_value"`
	Value       float64 `json:"value"`
	SampleCount int     `json:"sample_count"`
}

// ComputePredictionAccuracy compares each epoch's predicted next period
// start against the start recorded by the following epoch. With fewer
// than two dated epochs there is nothing to score.
func ComputePredictionAccuracy(epochs []models.CycleConfig, location *time.Location) PredictionAccuracy {
	starts := make([]time.Time, 0, len(epochs))
	lengths := make([]int, 0, len(epochs))
	for _, epoch := range epochs {
		if epoch.LastPeriodStart == nil || epoch.LastPeriodStart.IsZero() {
			continue
		}
		day := DateAtLocation(*epoch.LastPeriodStart, location)
		if len(starts) > 0 && starts[len(starts)-1].Equal(day) {
			continue
		}
		starts = append(starts, day)
		lengths = append(lengths, epoch.CycleLength)
	}

	if len(starts) < 2 {
		return PredictionAccuracy{}
	}

	var totalMissDays float64
	samples := 0
	for i := 1; i < len(starts); i++ {
		cycleLength := lengths[i-1]
		if cycleLength <= 0 {
			cycleLength = models.DefaultCycleLength
		}
		predicted := starts[i-1].AddDate(0, 0, cycleLength)
		totalMissDays += math.Abs(float64(daysBetween(predicted, starts[i])))
		samples++
	}

	meanMiss := totalMissDays / float64(samples)
	value := 1 - meanMiss/accuracyFullMissDays
	if value < 0 {
		value = 0
	}

	return PredictionAccuracy{
		HasValue:    true,
		Value:       value,
		SampleCount: samples,
	}
}
