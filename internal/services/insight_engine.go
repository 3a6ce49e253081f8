package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/cyra-health/cyra/internal/models"
)

type InsightType string

const (
	InsightTypePrediction     InsightType = "prediction"
	InsightTypeTrend          InsightType = "trend"
	InsightTypeWarning        InsightType = "warning"
	InsightTypeRecommendation InsightType = "recommendation"
	InsightTypeAchievement    InsightType = "achievement"
)

type Insight struct {
	Title      string      `json:"title"`
	Content    string      `json:"content"`
	Type       InsightType `json:"type"`
	Confidence float64     `json:"confidence"`
	Actionable bool        `json:"actionable"`
	CreatedAt  time.Time   `json:"created_at"`
}

// RecordBundle carries the raw in-window records alongside the aggregated
// trends, for rules that inspect individual entries.
type RecordBundle struct {
	Symptoms []models.SymptomRecord
	Hormones []models.HormoneReading
	Moods    []models.MoodEntry
}

const MaxInsightsPerPass = 6

const (
	confidencePhaseMenstrual  = 0.90
	confidencePhaseFollicular = 0.88
	confidencePhaseOvulatory  = 0.95
	confidencePhaseLuteal     = 0.85

	confidenceExtendedMenstrual = 0.80
	confidencePeakApproaching   = 0.87
	confidenceFertileTracking   = 0.85

	confidenceRecurringSymptom = 0.82
	confidenceHighSeverity     = 0.78

	confidenceMoreHormoneData = 0.70
	confidenceElevatedEstrogen = 0.75
	confidenceLHSurge          = 0.88

	confidenceIrregularCycle = 0.85
	confidenceLongPeriod     = 0.80

	confidenceHealthTipMenstrual  = 0.88
	confidenceHealthTipFollicular = 0.86
	confidenceHealthTipOvulatory  = 0.90
	confidenceHealthTipLuteal     = 0.85

	confidenceSymptomCorrelation = 0.72
	confidenceRisingStress       = 0.74
	confidenceConsistentTracking = 0.76
)

const (
	recurringSymptomMinCount = 5
	highSeverityMinRecords   = 3
	hormoneMinReadings       = 3
	elevatedEstrogenLevel    = 300
	lhSurgeLevel             = 20
	extendedMenstrualDay     = 7
	longPeriodDays           = 7
	consistentTrackingCount  = 15
)

// GenerateInsights evaluates every rule independently, then merges, sorts
// by confidence descending and caps the result. Ties keep rule order.
// Overlapping topics between rules are accepted, not deduplicated.
func GenerateInsights(snapshot CycleSnapshot, trends TrendSummary, bundle RecordBundle, now time.Time) []Insight {
	candidates := make([]Insight, 0, 16)

	if snapshot.HasData {
		candidates = append(candidates, phaseInsights(snapshot, now)...)
		candidates = append(candidates, fertilityInsights(snapshot, now)...)
		candidates = append(candidates, healthRecommendations(snapshot, now)...)
	}
	candidates = append(candidates, symptomPatternInsights(trends, bundle, now)...)
	candidates = append(candidates, hormoneInsights(trends, now)...)
	candidates = append(candidates, irregularityInsights(snapshot, now)...)
	candidates = append(candidates, correlationInsights(trends, now)...)
	candidates = append(candidates, moodInsights(trends, now)...)
	candidates = append(candidates, trackingAchievements(bundle, now)...)

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})
	if len(candidates) > MaxInsightsPerPass {
		candidates = candidates[:MaxInsightsPerPass]
	}
	return candidates
}

func phaseInsights(snapshot CycleSnapshot, now time.Time) []Insight {
	insights := make([]Insight, 0, 2)

	switch snapshot.Phase {
	case PhaseMenstrual:
		insights = append(insights, Insight{
			Title:      "Menstrual phase",
			Content:    fmt.Sprintf("You are on day %d of your period. Rest, hydration and iron-rich foods help most right now.", snapshot.CycleDay),
			Type:       InsightTypePrediction,
			Confidence: confidencePhaseMenstrual,
			Actionable: true,
			CreatedAt:  now,
		})
	case PhaseFollicular:
		insights = append(insights, Insight{
			Title:      "Follicular phase",
			Content:    fmt.Sprintf("Day %d: estrogen is rising and energy tends to climb. A good window for demanding workouts and new projects.", snapshot.CycleDay),
			Type:       InsightTypePrediction,
			Confidence: confidencePhaseFollicular,
			Actionable: true,
			CreatedAt:  now,
		})
	case PhaseOvulatory:
		insights = append(insights, Insight{
			Title:      "Ovulatory phase",
			Content:    fmt.Sprintf("Day %d falls in your ovulatory window. Fertility is at its monthly high.", snapshot.CycleDay),
			Type:       InsightTypePrediction,
			Confidence: confidencePhaseOvulatory,
			Actionable: true,
			CreatedAt:  now,
		})
	case PhaseLuteal:
		insights = append(insights, Insight{
			Title:      "Luteal phase",
			Content:    fmt.Sprintf("Day %d: progesterone dominates this phase. Premenstrual symptoms may appear toward its end.", snapshot.CycleDay),
			Type:       InsightTypePrediction,
			Confidence: confidencePhaseLuteal,
			Actionable: true,
			CreatedAt:  now,
		})
	}

	if snapshot.Phase == PhaseMenstrual && snapshot.CycleDay > extendedMenstrualDay {
		insights = append(insights, Insight{
			Title:      "Extended menstrual phase",
			Content:    fmt.Sprintf("Your period has lasted %d days, longer than typical. Consider discussing this with a healthcare provider.", snapshot.CycleDay),
			Type:       InsightTypeWarning,
			Confidence: confidenceExtendedMenstrual,
			Actionable: true,
			CreatedAt:  now,
		})
	}

	return insights
}

func fertilityInsights(snapshot CycleSnapshot, now time.Time) []Insight {
	insights := make([]Insight, 0, 2)

	daysToOvulation := DaysToOvulation(snapshot.CycleDay, snapshot.CycleLength)
	if daysToOvulation >= 0 && daysToOvulation <= 2 {
		insights = append(insights, Insight{
			Title:      "Peak fertility approaching",
			Content:    fmt.Sprintf("Ovulation is predicted in %d day(s). Conception likelihood is highest over the next few days.", daysToOvulation),
			Type:       InsightTypePrediction,
			Confidence: confidencePeakApproaching,
			Actionable: true,
			CreatedAt:  now,
		})
	}

	if snapshot.FertilityStatus == FertilityHigh || snapshot.FertilityStatus == FertilityPeak {
		insights = append(insights, Insight{
			Title:      "Fertile window open",
			Content:    "Tracking cervical mucus and basal body temperature now gives the clearest picture of your fertile window.",
			Type:       InsightTypeRecommendation,
			Confidence: confidenceFertileTracking,
			Actionable: true,
			CreatedAt:  now,
		})
	}

	return insights
}

func symptomPatternInsights(trends TrendSummary, bundle RecordBundle, now time.Time) []Insight {
	insights := make([]Insight, 0, 2)

	topName, topCount := "", 0
	for name, count := range trends.Symptoms.Frequencies {
		if count > topCount || (count == topCount && name < topName) {
			topName, topCount = name, count
		}
	}
	if topCount >= recurringSymptomMinCount {
		insights = append(insights, Insight{
			Title:      "Recurring symptom pattern",
			Content:    fmt.Sprintf("%s was logged %d times in the last %d days. Recurring symptoms are worth watching across cycles.", topName, topCount, trends.WindowDays),
			Type:       InsightTypeTrend,
			Confidence: confidenceRecurringSymptom,
			Actionable: false,
			CreatedAt:  now,
		})
	}

	highSeverity := 0
	for _, record := range bundle.Symptoms {
		if record.Severity >= 4 {
			highSeverity++
		}
	}
	if highSeverity >= highSeverityMinRecords {
		insights = append(insights, Insight{
			Title:      "High severity symptoms",
			Content:    fmt.Sprintf("%d symptoms in the last %d days were rated severity 4 or higher. Persistent severe symptoms deserve medical attention.", highSeverity, trends.WindowDays),
			Type:       InsightTypeWarning,
			Confidence: confidenceHighSeverity,
			Actionable: true,
			CreatedAt:  now,
		})
	}

	return insights
}

func hormoneInsights(trends TrendSummary, now time.Time) []Insight {
	if trends.Hormones.ReadingCount < hormoneMinReadings {
		return []Insight{{
			Title:      "More hormone data needed",
			Content:    fmt.Sprintf("Only %d hormone reading(s) in the last %d days. At least %d are needed for hormone trend analysis.", trends.Hormones.ReadingCount, trends.WindowDays, hormoneMinReadings),
			Type:       InsightTypeRecommendation,
			Confidence: confidenceMoreHormoneData,
			Actionable: true,
			CreatedAt:  now,
		}}
	}

	insights := make([]Insight, 0, 2)
	if trends.Hormones.AverageEstrogen > elevatedEstrogenLevel {
		insights = append(insights, Insight{
			Title:      "Elevated estrogen",
			Content:    fmt.Sprintf("Average estrogen over the window is %.0f pg/mL, above the typical range midpoint.", trends.Hormones.AverageEstrogen),
			Type:       InsightTypeTrend,
			Confidence: confidenceElevatedEstrogen,
			Actionable: false,
			CreatedAt:  now,
		})
	}
	if trends.Hormones.MaxLH > lhSurgeLevel {
		insights = append(insights, Insight{
			Title:      "LH surge detected",
			Content:    fmt.Sprintf("A luteinizing hormone peak of %.1f mIU/mL suggests ovulation within 24-36 hours of that reading.", trends.Hormones.MaxLH),
			Type:       InsightTypePrediction,
			Confidence: confidenceLHSurge,
			Actionable: true,
			CreatedAt:  now,
		})
	}
	return insights
}

func irregularityInsights(snapshot CycleSnapshot, now time.Time) []Insight {
	insights := make([]Insight, 0, 2)

	if snapshot.CycleLength < models.MinCycleLength || snapshot.CycleLength > models.MaxCycleLength {
		insights = append(insights, Insight{
			Title:      "Irregular cycle length",
			Content:    fmt.Sprintf("A cycle length of %d days is outside the typical %d-%d day range. Tracking a few more cycles will clarify whether this is your normal.", snapshot.CycleLength, models.MinCycleLength, models.MaxCycleLength),
			Type:       InsightTypeWarning,
			Confidence: confidenceIrregularCycle,
			Actionable: true,
			CreatedAt:  now,
		})
	}
	if snapshot.PeriodLength > longPeriodDays {
		insights = append(insights, Insight{
			Title:      "Long period duration",
			Content:    fmt.Sprintf("An average period of %d days is on the long side. A healthcare provider can rule out underlying causes.", snapshot.PeriodLength),
			Type:       InsightTypeWarning,
			Confidence: confidenceLongPeriod,
			Actionable: true,
			CreatedAt:  now,
		})
	}

	return insights
}

func healthRecommendations(snapshot CycleSnapshot, now time.Time) []Insight {
	insight := Insight{
		Type:       InsightTypeRecommendation,
		Actionable: true,
		CreatedAt:  now,
	}

	switch snapshot.Phase {
	case PhaseMenstrual:
		insight.Title = "Nutrition for your period"
		insight.Content = "Iron-rich foods like leafy greens and lentils replace what is lost during menstruation. Gentle movement eases cramps."
		insight.Confidence = confidenceHealthTipMenstrual
	case PhaseFollicular:
		insight.Title = "Make the most of rising energy"
		insight.Content = "Strength training and complex carbohydrates pair well with the follicular rise in estrogen."
		insight.Confidence = confidenceHealthTipFollicular
	case PhaseOvulatory:
		insight.Title = "Support your ovulatory window"
		insight.Content = "Antioxidant-rich foods and staying hydrated support egg quality around ovulation."
		insight.Confidence = confidenceHealthTipOvulatory
	case PhaseLuteal:
		insight.Title = "Ease the luteal phase"
		insight.Content = "Magnesium, B6 and steady blood sugar blunt premenstrual symptoms. Prioritize sleep this week."
		insight.Confidence = confidenceHealthTipLuteal
	default:
		return nil
	}

	return []Insight{insight}
}

func correlationInsights(trends TrendSummary, now time.Time) []Insight {
	if len(trends.Symptoms.Correlations) == 0 {
		return nil
	}

	strongest := trends.Symptoms.Correlations[0]
	relation := "tend to occur together"
	if strongest.Coefficient < 0 {
		relation = "rarely occur on the same day"
	}
	return []Insight{{
		Title:      "Symptoms that travel together",
		Content:    fmt.Sprintf("%s and %s %s (correlation %.2f over the last %d days).", strongest.NameA, strongest.NameB, relation, strongest.Coefficient, trends.WindowDays),
		Type:       InsightTypeTrend,
		Confidence: confidenceSymptomCorrelation,
		Actionable: false,
		CreatedAt:  now,
	}}
}

func moodInsights(trends TrendSummary, now time.Time) []Insight {
	if trends.Moods.StressDirection != TrendIncreasing {
		return nil
	}
	return []Insight{{
		Title:      "Stress is trending up",
		Content:    fmt.Sprintf("Your recent stress entries average %.1f/10 and are rising. Short daily wind-down routines measurably lower reported stress.", trends.Moods.AverageStress),
		Type:       InsightTypeRecommendation,
		Confidence: confidenceRisingStress,
		Actionable: true,
		CreatedAt:  now,
	}}
}

func trackingAchievements(bundle RecordBundle, now time.Time) []Insight {
	logged := len(bundle.Symptoms) + len(bundle.Moods) + len(bundle.Hormones)
	if logged < consistentTrackingCount {
		return nil
	}
	return []Insight{{
		Title:      "Consistent tracking",
		Content:    fmt.Sprintf("%d entries logged this window. Consistent tracking is what makes your predictions and trends trustworthy.", logged),
		Type:       InsightTypeAchievement,
		Confidence: confidenceConsistentTracking,
		Actionable: false,
		CreatedAt:  now,
	}}
}
