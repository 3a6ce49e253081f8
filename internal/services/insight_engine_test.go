package services

import (
	"sort"
	"testing"
	"time"

	"github.com/cyra-health/cyra/internal/models"
)

func snapshotForDay(t *testing.T, cycleDay int, cycleLength int, periodLength int) CycleSnapshot {
	t.Helper()
	start := mustParseDay(t, "2026-08-01")
	now := start.AddDate(0, 0, cycleDay-1)
	config := models.CycleConfig{
		CycleLength:     cycleLength,
		PeriodLength:    periodLength,
		LastPeriodStart: &start,
	}
	snapshot := BuildCycleSnapshot(config, now, time.UTC)
	if snapshot.CycleDay != cycleDay {
		t.Fatalf("fixture mismatch: wanted cycle day %d, built %d", cycleDay, snapshot.CycleDay)
	}
	return snapshot
}

func emptyTrends(windowDays int) TrendSummary {
	return TrendSummary{
		WindowDays: windowDays,
		Symptoms: SymptomTrends{
			Frequencies:       map[string]int{},
			AverageSeverity:   map[string]float64{},
			SeverityDirection: TrendStable,
		},
		Hormones: HormoneTrends{EstrogenDirection: TrendStable},
		Moods: MoodTrends{
			EnergyDirection: TrendStable,
			StressDirection: TrendStable,
		},
	}
}

func insightWithConfidence(insights []Insight, confidence float64) (Insight, bool) {
	for _, insight := range insights {
		if insight.Confidence == confidence {
			return insight, true
		}
	}
	return Insight{}, false
}

func TestGenerateInsights_OvulatoryDay(t *testing.T) {
	t.Parallel()

	now := mustParseDay(t, "2026-08-15")
	snapshot := snapshotForDay(t, 15, 28, 5)

	insights := GenerateInsights(snapshot, emptyTrends(30), RecordBundle{}, now)

	if len(insights) == 0 || len(insights) > MaxInsightsPerPass {
		t.Fatalf("expected between 1 and %d insights, got %d", MaxInsightsPerPass, len(insights))
	}
	if !sort.SliceIsSorted(insights, func(i, j int) bool {
		return insights[i].Confidence > insights[j].Confidence
	}) {
		t.Fatalf("expected insights sorted by confidence descending")
	}

	if insights[0].Title != "Ovulatory phase" {
		t.Fatalf("expected ovulatory phase insight first, got %q", insights[0].Title)
	}
	if insights[0].Type != InsightTypePrediction {
		t.Fatalf("expected prediction type, got %q", insights[0].Type)
	}

	if _, found := insightWithConfidence(insights, 0.85); !found {
		t.Fatalf("expected fertile window recommendation at peak fertility")
	}
	if _, found := insightWithConfidence(insights, 0.70); !found {
		t.Fatalf("expected more-hormone-data recommendation with zero readings")
	}
}

func TestGenerateInsights_CapsAndOrders(t *testing.T) {
	t.Parallel()

	now := mustParseDay(t, "2026-08-13")
	snapshot := snapshotForDay(t, 13, 28, 8)

	trends := emptyTrends(30)
	trends.Symptoms.Frequencies = map[string]int{"Cramps": 6}

	bundle := RecordBundle{
		Symptoms: []models.SymptomRecord{
			symptomOn(t, "2026-08-10", "Cramps", 5),
			symptomOn(t, "2026-08-11", "Cramps", 4),
			symptomOn(t, "2026-08-12", "Cramps", 4),
		},
	}

	insights := GenerateInsights(snapshot, trends, bundle, now)

	if len(insights) != MaxInsightsPerPass {
		t.Fatalf("expected the pass capped at %d, got %d", MaxInsightsPerPass, len(insights))
	}
	if insights[0].Confidence != 0.95 {
		t.Fatalf("expected ovulatory phase on top, got %v", insights[0].Confidence)
	}
	for i := 1; i < len(insights); i++ {
		if insights[i].Confidence > insights[i-1].Confidence {
			t.Fatalf("insights out of order at %d: %v after %v", i, insights[i].Confidence, insights[i-1].Confidence)
		}
	}
	if _, found := insightWithConfidence(insights, 0.70); found {
		t.Fatalf("expected low-confidence hormone nudge to fall off the capped list")
	}
}

func TestGenerateInsights_NoHistoryStillAdvises(t *testing.T) {
	t.Parallel()

	now := mustParseDay(t, "2026-08-15")
	snapshot := BuildCycleSnapshot(models.CycleConfig{}, now, time.UTC)

	insights := GenerateInsights(snapshot, emptyTrends(30), RecordBundle{}, now)

	if len(insights) != 1 {
		t.Fatalf("expected only the hormone data nudge without history, got %d", len(insights))
	}
	if insights[0].Title != "More hormone data needed" {
		t.Fatalf("unexpected insight %q", insights[0].Title)
	}
}

func TestGenerateInsights_IrregularityFiresWithoutHistory(t *testing.T) {
	t.Parallel()

	now := mustParseDay(t, "2026-08-15")
	snapshot := CycleSnapshot{CycleLength: 45, PeriodLength: 9}

	insights := GenerateInsights(snapshot, emptyTrends(30), RecordBundle{}, now)

	if _, found := insightWithConfidence(insights, 0.85); !found {
		t.Fatalf("expected irregular cycle warning from configured lengths alone")
	}
	if _, found := insightWithConfidence(insights, 0.80); !found {
		t.Fatalf("expected long period warning from configured lengths alone")
	}
}

func TestGenerateInsights_ExtendedMenstrualWarning(t *testing.T) {
	t.Parallel()

	now := mustParseDay(t, "2026-08-08")
	snapshot := snapshotForDay(t, 8, 30, 8)

	insights := GenerateInsights(snapshot, emptyTrends(30), RecordBundle{}, now)

	warning, found := insightWithConfidence(insights, 0.80)
	if !found {
		t.Fatalf("expected extended menstrual warning past day 7")
	}
	if warning.Type != InsightTypeWarning {
		t.Fatalf("expected warning type, got %q", warning.Type)
	}
}

func TestHormoneInsights_SurgeAndElevatedEstrogen(t *testing.T) {
	t.Parallel()

	now := mustParseDay(t, "2026-08-15")

	sparse := emptyTrends(30)
	sparse.Hormones.ReadingCount = 2
	sparse.Hormones.MaxLH = 40
	insights := hormoneInsights(sparse, now)
	if len(insights) != 1 || insights[0].Confidence != 0.70 {
		t.Fatalf("expected only the data nudge below %d readings, got %+v", 3, insights)
	}

	rich := emptyTrends(30)
	rich.Hormones.ReadingCount = 4
	rich.Hormones.AverageEstrogen = 350
	rich.Hormones.MaxLH = 25
	insights = hormoneInsights(rich, now)
	if len(insights) != 2 {
		t.Fatalf("expected estrogen and LH insights, got %d", len(insights))
	}
	if _, found := insightWithConfidence(insights, 0.75); !found {
		t.Fatalf("expected elevated estrogen insight")
	}
	if _, found := insightWithConfidence(insights, 0.88); !found {
		t.Fatalf("expected LH surge insight")
	}
}

func TestGenerateInsights_StressAndAchievement(t *testing.T) {
	t.Parallel()

	now := mustParseDay(t, "2026-08-15")
	snapshot := BuildCycleSnapshot(models.CycleConfig{}, now, time.UTC)

	trends := emptyTrends(30)
	trends.Moods.StressDirection = TrendIncreasing
	trends.Moods.AverageStress = 7.5

	bundle := RecordBundle{}
	for day := 1; day <= 15; day++ {
		bundle.Moods = append(bundle.Moods, models.MoodEntry{
			Date:        mustParseDay(t, "2026-08-01").AddDate(0, 0, day-1),
			Mood:        "steady",
			EnergyLevel: 5,
			StressLevel: 5,
		})
	}

	insights := GenerateInsights(snapshot, trends, bundle, now)

	if _, found := insightWithConfidence(insights, 0.74); !found {
		t.Fatalf("expected rising stress recommendation")
	}
	achievement, found := insightWithConfidence(insights, 0.76)
	if !found {
		t.Fatalf("expected consistent tracking achievement at 15 entries")
	}
	if achievement.Type != InsightTypeAchievement {
		t.Fatalf("expected achievement type, got %q", achievement.Type)
	}
}
