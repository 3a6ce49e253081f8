package services

import (
	"time"

	"github.com/cyra-health/cyra/internal/models"
)

type InsightConfigReader interface {
	LatestByUser(userID uint) (models.CycleConfig, bool, error)
	ListByUser(userID uint) ([]models.CycleConfig, error)
}

type InsightSymptomReader interface {
	ListByUserRange(userID uint, from time.Time, to time.Time) ([]models.SymptomRecord, error)
}

type InsightHormoneReader interface {
	ListByUserRange(userID uint, from time.Time, to time.Time) ([]models.HormoneReading, error)
}

type InsightMoodReader interface {
	ListByUserRange(userID uint, from time.Time, to time.Time) ([]models.MoodEntry, error)
}

type InsightService struct {
	configs    InsightConfigReader
	symptoms   InsightSymptomReader
	hormones   InsightHormoneReader
	moods      InsightMoodReader
	location   *time.Location
	windowDays int
}

func NewInsightService(
	configs InsightConfigReader,
	symptoms InsightSymptomReader,
	hormones InsightHormoneReader,
	moods InsightMoodReader,
	location *time.Location,
	windowDays int,
) *InsightService {
	if location == nil {
		location = time.UTC
	}
	if windowDays <= 0 {
		windowDays = DefaultTrendWindowDays
	}
	return &InsightService{
		configs:    configs,
		symptoms:   symptoms,
		hormones:   hormones,
		moods:      moods,
		location:   location,
		windowDays: windowDays,
	}
}

func (service *InsightService) WindowDays() int {
	return service.windowDays
}

func (service *InsightService) BuildSnapshot(userID uint, now time.Time) (CycleSnapshot, error) {
	config, found, err := service.configs.LatestByUser(userID)
	if err != nil {
		return CycleSnapshot{}, err
	}
	if !found {
		return BuildCycleSnapshot(models.CycleConfig{}, now, service.location), nil
	}
	return BuildCycleSnapshot(config, now, service.location), nil
}

// FetchRecordBundle absorbs per-kind fetch failures into empty lists:
// insights are advisory, and a partial bundle still produces a useful
// result for the kinds that loaded.
func (service *InsightService) FetchRecordBundle(userID uint, now time.Time, windowDays int) RecordBundle {
	if windowDays <= 0 {
		windowDays = service.windowDays
	}
	from, to := TrailingWindow(now, windowDays, service.location)

	bundle := RecordBundle{}
	if symptoms, err := service.symptoms.ListByUserRange(userID, from, to); err == nil {
		bundle.Symptoms = symptoms
	}
	if hormones, err := service.hormones.ListByUserRange(userID, from, to); err == nil {
		bundle.Hormones = hormones
	}
	if moods, err := service.moods.ListByUserRange(userID, from, to); err == nil {
		bundle.Moods = moods
	}
	return bundle
}

func (service *InsightService) BuildTrends(userID uint, now time.Time, windowDays int) (TrendSummary, RecordBundle) {
	if windowDays <= 0 {
		windowDays = service.windowDays
	}
	bundle := service.FetchRecordBundle(userID, now, windowDays)
	summary := BuildTrendSummary(bundle.Symptoms, bundle.Hormones, bundle.Moods, windowDays, now, service.location)
	return summary, bundle
}

func (service *InsightService) GenerateForUser(userID uint, now time.Time) (CycleSnapshot, TrendSummary, []Insight, error) {
	snapshot, err := service.BuildSnapshot(userID, now)
	if err != nil {
		return CycleSnapshot{}, TrendSummary{}, nil, err
	}

	trends, bundle := service.BuildTrends(userID, now, service.windowDays)
	insights := GenerateInsights(snapshot, trends, bundle, now)
	return snapshot, trends, insights, nil
}

func (service *InsightService) PredictionAccuracyForUser(userID uint) (PredictionAccuracy, error) {
	epochs, err := service.configs.ListByUser(userID)
	if err != nil {
		return PredictionAccuracy{}, err
	}
	return ComputePredictionAccuracy(epochs, service.location), nil
}
