package services

import (
	"strconv"
	"time"

	"github.com/cyra-health/cyra/internal/models"
)

const exportDateLayout = "2006-01-02"

var ExportSymptomCSVHeaders = []string{
	"Date",
	"Cycle day",
	"Category",
	"Symptom",
	"Severity",
	"Notes",
}

type ExportConfigReader interface {
	LatestByUser(userID uint) (models.CycleConfig, bool, error)
}

type ExportSymptomReader interface {
	ListByUser(userID uint) ([]models.SymptomRecord, error)
}

type ExportHormoneReader interface {
	ListByUser(userID uint) ([]models.HormoneReading, error)
}

type ExportMoodReader interface {
	ListByUser(userID uint) ([]models.MoodEntry, error)
}

type ExportService struct {
	configs  ExportConfigReader
	symptoms ExportSymptomReader
	hormones ExportHormoneReader
	moods    ExportMoodReader
	location *time.Location
}

func NewExportService(
	configs ExportConfigReader,
	symptoms ExportSymptomReader,
	hormones ExportHormoneReader,
	moods ExportMoodReader,
	location *time.Location,
) *ExportService {
	if location == nil {
		location = time.UTC
	}
	return &ExportService{
		configs:  configs,
		symptoms: symptoms,
		hormones: hormones,
		moods:    moods,
		location: location,
	}
}

type ExportSummary struct {
	HasData      bool   `json:"has_data"`
	SymptomCount int    `json:"symptom_count"`
	HormoneCount int    `json:"hormone_count"`
	MoodCount    int    `json:"mood_count"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
}

type ExportSymptomEntry struct {
	Date     string `json:"date"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Severity int    `json:"severity"`
	Notes    string `json:"notes,omitempty"`
	CycleDay int    `json:"cycle_day"`
}

type ExportHormoneEntry struct {
	Date         string  `json:"date"`
	Estrogen     float64 `json:"estrogen"`
	Progesterone float64 `json:"progesterone"`
	LH           float64 `json:"lh"`
	FSH          float64 `json:"fsh"`
	Testosterone float64 `json:"testosterone"`
	Cortisol     float64 `json:"cortisol"`
	Source       string  `json:"source"`
	CycleDay     int     `json:"cycle_day"`
}

type ExportMoodEntry struct {
	Date        string `json:"date"`
	Mood        string `json:"mood"`
	EnergyLevel int    `json:"energy_level"`
	StressLevel int    `json:"stress_level"`
	Notes       string `json:"notes,omitempty"`
	CycleDay    int    `json:"cycle_day"`
}

type ExportDocument struct {
	ExportedAt string               `json:"exported_at"`
	Snapshot   CycleSnapshot        `json:"snapshot"`
	Symptoms   []ExportSymptomEntry `json:"symptoms"`
	Hormones   []ExportHormoneEntry `json:"hormones"`
	Moods      []ExportMoodEntry    `json:"moods"`
}

type ExportSymptomCSVRow struct {
	Date     string
	CycleDay int
	Category string
	Name     string
	Severity int
	Notes    string
}

func (service *ExportService) loadAll(userID uint) ([]models.SymptomRecord, []models.HormoneReading, []models.MoodEntry, error) {
	symptoms, err := service.symptoms.ListByUser(userID)
	if err != nil {
		return nil, nil, nil, err
	}
	hormones, err := service.hormones.ListByUser(userID)
	if err != nil {
		return nil, nil, nil, err
	}
	moods, err := service.moods.ListByUser(userID)
	if err != nil {
		return nil, nil, nil, err
	}
	return symptoms, hormones, moods, nil
}

func (service *ExportService) BuildSummary(userID uint) (ExportSummary, error) {
	symptoms, hormones, moods, err := service.loadAll(userID)
	if err != nil {
		return ExportSummary{}, err
	}

	summary := ExportSummary{
		SymptomCount: len(symptoms),
		HormoneCount: len(hormones),
		MoodCount:    len(moods),
	}
	if summary.SymptomCount+summary.HormoneCount+summary.MoodCount == 0 {
		return summary, nil
	}

	first, last := time.Time{}, time.Time{}
	observe := func(date time.Time) {
		day := DateAtLocation(date, service.location)
		if first.IsZero() || day.Before(first) {
			first = day
		}
		if last.IsZero() || day.After(last) {
			last = day
		}
	}
	for _, record := range symptoms {
		observe(record.Date)
	}
	for _, reading := range hormones {
		observe(reading.Date)
	}
	for _, entry := range moods {
		observe(entry.Date)
	}

	summary.HasData = true
	summary.DateFrom = first.Format(exportDateLayout)
	summary.DateTo = last.Format(exportDateLayout)
	return summary, nil
}

func (service *ExportService) BuildDocument(userID uint, now time.Time) (ExportDocument, error) {
	symptoms, hormones, moods, err := service.loadAll(userID)
	if err != nil {
		return ExportDocument{}, err
	}

	config, _, err := service.configs.LatestByUser(userID)
	if err != nil {
		return ExportDocument{}, err
	}

	document := ExportDocument{
		ExportedAt: now.In(service.location).Format(time.RFC3339),
		Snapshot:   BuildCycleSnapshot(config, now, service.location),
		Symptoms:   make([]ExportSymptomEntry, 0, len(symptoms)),
		Hormones:   make([]ExportHormoneEntry, 0, len(hormones)),
		Moods:      make([]ExportMoodEntry, 0, len(moods)),
	}

	for _, record := range symptoms {
		document.Symptoms = append(document.Symptoms, ExportSymptomEntry{
			Date:     DateAtLocation(record.Date, service.location).Format(exportDateLayout),
			Category: record.Category,
			Name:     record.Name,
			Severity: record.Severity,
			Notes:    record.Notes,
			CycleDay: record.CycleDay,
		})
	}
	for _, reading := range hormones {
		document.Hormones = append(document.Hormones, ExportHormoneEntry{
			Date:         DateAtLocation(reading.Date, service.location).Format(exportDateLayout),
			Estrogen:     reading.Estrogen,
			Progesterone: reading.Progesterone,
			LH:           reading.LH,
			FSH:          reading.FSH,
			Testosterone: reading.Testosterone,
			Cortisol:     reading.Cortisol,
			Source:       reading.Source,
			CycleDay:     reading.CycleDay,
		})
	}
	for _, entry := range moods {
		document.Moods = append(document.Moods, ExportMoodEntry{
			Date:        DateAtLocation(entry.Date, service.location).Format(exportDateLayout),
			Mood:        entry.Mood,
			EnergyLevel: entry.EnergyLevel,
			StressLevel: entry.StressLevel,
			Notes:       entry.Notes,
			CycleDay:    entry.CycleDay,
		})
	}

	return document, nil
}

func (service *ExportService) BuildSymptomCSVRows(userID uint) ([]ExportSymptomCSVRow, error) {
	symptoms, err := service.symptoms.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	rows := make([]ExportSymptomCSVRow, 0, len(symptoms))
	for _, record := range symptoms {
		rows = append(rows, ExportSymptomCSVRow{
			Date:     DateAtLocation(record.Date, service.location).Format(exportDateLayout),
			CycleDay: record.CycleDay,
			Category: record.Category,
			Name:     record.Name,
			Severity: record.Severity,
			Notes:    record.Notes,
		})
	}
	return rows, nil
}

func (row ExportSymptomCSVRow) Columns() []string {
	return []string{
		row.Date,
		strconv.Itoa(row.CycleDay),
		row.Category,
		row.Name,
		strconv.Itoa(row.Severity),
		row.Notes,
	}
}
