package services

import (
	"testing"
	"time"

	"github.com/cyra-health/cyra/internal/models"
)

type stubExportConfigReader struct {
	latest    models.CycleConfig
	hasLatest bool
}

func (stub *stubExportConfigReader) LatestByUser(userID uint) (models.CycleConfig, bool, error) {
	return stub.latest, stub.hasLatest, nil
}

type stubExportSymptomReader struct {
	records []models.SymptomRecord
}

func (stub *stubExportSymptomReader) ListByUser(userID uint) ([]models.SymptomRecord, error) {
	return stub.records, nil
}

type stubExportHormoneReader struct {
	readings []models.HormoneReading
}

func (stub *stubExportHormoneReader) ListByUser(userID uint) ([]models.HormoneReading, error) {
	return stub.readings, nil
}

type stubExportMoodReader struct {
	entries []models.MoodEntry
}

func (stub *stubExportMoodReader) ListByUser(userID uint) ([]models.MoodEntry, error) {
	return stub.entries, nil
}

func newExportFixture(t *testing.T) *ExportService {
	t.Helper()
	start := mustParseDay(t, "2026-08-01")
	return NewExportService(
		&stubExportConfigReader{
			latest: models.CycleConfig{
				CycleLength:     28,
				PeriodLength:    5,
				LastPeriodStart: &start,
			},
			hasLatest: true,
		},
		&stubExportSymptomReader{records: []models.SymptomRecord{
			{
				Date:     mustParseDay(t, "2026-08-03"),
				Category: models.SymptomCategoryPhysical,
				Name:     "Cramps",
				Severity: 4,
				Notes:    "worse in the evening",
				CycleDay: 3,
			},
		}},
		&stubExportHormoneReader{readings: []models.HormoneReading{
			{
				Date:     mustParseDay(t, "2026-08-10"),
				Estrogen: 180,
				LH:       12,
				Source:   models.HormoneSourceHome,
				CycleDay: 10,
			},
		}},
		&stubExportMoodReader{entries: []models.MoodEntry{
			{
				Date:        mustParseDay(t, "2026-08-05"),
				Mood:        "calm",
				EnergyLevel: 6,
				StressLevel: 3,
				CycleDay:    5,
			},
		}},
		time.UTC,
	)
}

func TestExportSummary(t *testing.T) {
	t.Parallel()

	service := newExportFixture(t)
	summary, err := service.BuildSummary(42)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}

	if !summary.HasData {
		t.Fatalf("expected summary to report data")
	}
	if summary.SymptomCount != 1 || summary.HormoneCount != 1 || summary.MoodCount != 1 {
		t.Fatalf("unexpected counts: %+v", summary)
	}
	if summary.DateFrom != "2026-08-03" || summary.DateTo != "2026-08-10" {
		t.Fatalf("expected range 2026-08-03..2026-08-10, got %s..%s", summary.DateFrom, summary.DateTo)
	}
}

func TestExportSummaryEmpty(t *testing.T) {
	t.Parallel()

	service := NewExportService(
		&stubExportConfigReader{},
		&stubExportSymptomReader{},
		&stubExportHormoneReader{},
		&stubExportMoodReader{},
		time.UTC,
	)

	summary, err := service.BuildSummary(42)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.HasData || summary.DateFrom != "" || summary.DateTo != "" {
		t.Fatalf("expected an empty summary, got %+v", summary)
	}
}

func TestExportDocument(t *testing.T) {
	t.Parallel()

	service := newExportFixture(t)
	document, err := service.BuildDocument(42, mustParseDay(t, "2026-08-15"))
	if err != nil {
		t.Fatalf("document failed: %v", err)
	}

	if document.ExportedAt == "" {
		t.Fatalf("expected an export timestamp")
	}
	if !document.Snapshot.HasData || document.Snapshot.CycleDay != 15 {
		t.Fatalf("expected a day-15 snapshot in the document, got %+v", document.Snapshot)
	}
	if len(document.Symptoms) != 1 || document.Symptoms[0].Date != "2026-08-03" {
		t.Fatalf("unexpected symptom entries: %+v", document.Symptoms)
	}
	if len(document.Hormones) != 1 || document.Hormones[0].Source != models.HormoneSourceHome {
		t.Fatalf("unexpected hormone entries: %+v", document.Hormones)
	}
	if len(document.Moods) != 1 || document.Moods[0].Mood != "calm" {
		t.Fatalf("unexpected mood entries: %+v", document.Moods)
	}
}

func TestExportSymptomCSVRows(t *testing.T) {
	t.Parallel()

	service := newExportFixture(t)
	rows, err := service.BuildSymptomCSVRows(42)
	if err != nil {
		t.Fatalf("csv rows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	columns := rows[0].Columns()
	if len(columns) != len(ExportSymptomCSVHeaders) {
		t.Fatalf("expected %d columns, got %d", len(ExportSymptomCSVHeaders), len(columns))
	}
	want := []string{"2026-08-03", "3", "physical", "Cramps", "4", "worse in the evening"}
	for i := range want {
		if columns[i] != want[i] {
			t.Fatalf("column %d: expected %q, got %q", i, want[i], columns[i])
		}
	}
}
