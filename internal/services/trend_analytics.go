package services

import (
	"math"
	"sort"
	"time"

	"github.com/cyra-health/cyra/internal/models"
)

type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

const (
	DefaultTrendWindowDays = 30

	// Policy constant, not a numerical necessity: pairs below this are
	// not surfaced.
	MeaningfulCorrelationThreshold = 0.3

	trendRecentSampleSize       = 3
	trendDirectionChangePercent = 0.10
)

type SymptomCorrelation struct {
	NameA       string  `json:"name_a"`
	NameB       string  `json:"name_b"`
	Coefficient float64 `json:"coefficient"`
}

type SymptomTrends struct {
	RecordCount       int                `json:"record_count"`
	Frequencies       map[string]int     `json:"frequencies"`
	AverageSeverity   map[string]float64 `json:"average_severity"`
	HighSeverityCount int                `json:"high_severity_count"`
	SeverityDirection TrendDirection     `json:"severity_direction"`
	Correlations      []SymptomCorrelation `json:"correlations"`
}

type HormoneTrends struct {
	ReadingCount        int            `json:"reading_count"`
	AverageEstrogen     float64        `json:"average_estrogen"`
	AverageProgesterone float64        `json:"average_progesterone"`
	MaxLH               float64        `json:"max_lh"`
	EstrogenDirection   TrendDirection `json:"estrogen_direction"`
}

type MoodTrends struct {
	EntryCount      int            `json:"entry_count"`
	AverageEnergy   float64        `json:"average_energy"`
	AverageStress   float64        `json:"average_stress"`
	EnergyDirection TrendDirection `json:"energy_direction"`
	StressDirection TrendDirection `json:"stress_direction"`
}

type TrendSummary struct {
	WindowDays int           `json:"window_days"`
	Symptoms   SymptomTrends `json:"symptoms"`
	Hormones   HormoneTrends `json:"hormones"`
	Moods      MoodTrends    `json:"moods"`
}

// BuildTrendSummary aggregates the records that fall inside the trailing
// window. The inputs are closed snapshots; nothing here performs I/O.
func BuildTrendSummary(
	symptoms []models.SymptomRecord,
	hormones []models.HormoneReading,
	moods []models.MoodEntry,
	windowDays int,
	now time.Time,
	location *time.Location,
) TrendSummary {
	if windowDays <= 0 {
		windowDays = DefaultTrendWindowDays
	}
	windowStart, windowEnd := TrailingWindow(now, windowDays, location)

	windowedSymptoms := filterSymptoms(symptoms, windowStart, windowEnd, location)
	windowedHormones := filterHormones(hormones, windowStart, windowEnd, location)
	windowedMoods := filterMoods(moods, windowStart, windowEnd, location)

	return TrendSummary{
		WindowDays: windowDays,
		Symptoms:   buildSymptomTrends(windowedSymptoms, windowDays, now, location),
		Hormones:   buildHormoneTrends(windowedHormones),
		Moods:      buildMoodTrends(windowedMoods),
	}
}

func buildSymptomTrends(records []models.SymptomRecord, windowDays int, now time.Time, location *time.Location) SymptomTrends {
	severitySeries := make([]float64, 0, len(records))
	highSeverity := 0
	for _, record := range records {
		severitySeries = append(severitySeries, float64(record.Severity))
		if record.Severity >= 4 {
			highSeverity++
		}
	}

	return SymptomTrends{
		RecordCount:       len(records),
		Frequencies:       SymptomFrequencies(records),
		AverageSeverity:   averageSeverityByName(records),
		HighSeverityCount: highSeverity,
		SeverityDirection: TrendDirectionOf(severitySeries),
		Correlations:      MeaningfulSymptomCorrelations(records, windowDays, now, location),
	}
}

func buildHormoneTrends(readings []models.HormoneReading) HormoneTrends {
	trends := HormoneTrends{
		ReadingCount:      len(readings),
		EstrogenDirection: TrendStable,
	}
	if len(readings) == 0 {
		return trends
	}

	estrogenSeries := make([]float64, 0, len(readings))
	var estrogenTotal, progesteroneTotal float64
	estrogenCount, progesteroneCount := 0, 0
	for _, reading := range readings {
		if reading.Estrogen > 0 {
			estrogenTotal += reading.Estrogen
			estrogenCount++
			estrogenSeries = append(estrogenSeries, reading.Estrogen)
		}
		if reading.Progesterone > 0 {
			progesteroneTotal += reading.Progesterone
			progesteroneCount++
		}
		if reading.LH > trends.MaxLH {
			trends.MaxLH = reading.LH
		}
	}

	if estrogenCount > 0 {
		trends.AverageEstrogen = estrogenTotal / float64(estrogenCount)
	}
	if progesteroneCount > 0 {
		trends.AverageProgesterone = progesteroneTotal / float64(progesteroneCount)
	}
	trends.EstrogenDirection = TrendDirectionOf(estrogenSeries)
	return trends
}

func buildMoodTrends(entries []models.MoodEntry) MoodTrends {
	trends := MoodTrends{
		EntryCount:      len(entries),
		EnergyDirection: TrendStable,
		StressDirection: TrendStable,
	}
	if len(entries) == 0 {
		return trends
	}

	energySeries := make([]float64, 0, len(entries))
	stressSeries := make([]float64, 0, len(entries))
	for _, entry := range entries {
		energySeries = append(energySeries, float64(entry.EnergyLevel))
		stressSeries = append(stressSeries, float64(entry.StressLevel))
	}

	trends.AverageEnergy = meanFloat(energySeries)
	trends.AverageStress = meanFloat(stressSeries)
	trends.EnergyDirection = TrendDirectionOf(energySeries)
	trends.StressDirection = TrendDirectionOf(stressSeries)
	return trends
}

func SymptomFrequencies(records []models.SymptomRecord) map[string]int {
	frequencies := make(map[string]int, len(records))
	for _, record := range records {
		frequencies[record.Name]++
	}
	return frequencies
}

func AverageSeverity(records []models.SymptomRecord, name string) float64 {
	var total float64
	count := 0
	for _, record := range records {
		if record.Name != name {
			continue
		}
		total += float64(record.Severity)
		count++
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

func averageSeverityByName(records []models.SymptomRecord) map[string]float64 {
	totals := make(map[string]float64)
	counts := make(map[string]int)
	for _, record := range records {
		totals[record.Name] += float64(record.Severity)
		counts[record.Name]++
	}

	averages := make(map[string]float64, len(totals))
	for name, total := range totals {
		averages[name] = total / float64(counts[name])
	}
	return averages
}

// TrendDirectionOf compares the mean of the last three values against the
// mean of the older remainder; fewer than two values is always stable.
func TrendDirectionOf(series []float64) TrendDirection {
	if len(series) < 2 {
		return TrendStable
	}

	recentCount := trendRecentSampleSize
	if recentCount > len(series) {
		recentCount = len(series)
	}
	recentMean := meanFloat(series[len(series)-recentCount:])

	older := series[:len(series)-recentCount]
	if len(older) == 0 {
		older = series
	}
	olderMean := meanFloat(older)

	threshold := math.Abs(olderMean) * trendDirectionChangePercent
	switch {
	case recentMean > olderMean+threshold:
		return TrendIncreasing
	case recentMean < olderMean-threshold:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

// ChangePercentage guards the zero-first-value case explicitly instead of
// letting it produce Inf or NaN.
func ChangePercentage(series []float64) float64 {
	if len(series) < 2 {
		return 0
	}
	first := series[0]
	last := series[len(series)-1]
	if first == 0 {
		return 0
	}
	return (last - first) / first * 100
}

func PearsonCorrelation(seriesA []float64, seriesB []float64) float64 {
	n := len(seriesA)
	if n == 0 || n != len(seriesB) {
		return 0
	}

	var sumA, sumB, sumAB, sumAA, sumBB float64
	for i := 0; i < n; i++ {
		sumA += seriesA[i]
		sumB += seriesB[i]
		sumAB += seriesA[i] * seriesB[i]
		sumAA += seriesA[i] * seriesA[i]
		sumBB += seriesB[i] * seriesB[i]
	}

	count := float64(n)
	denominator := math.Sqrt((count*sumAA - sumA*sumA) * (count*sumBB - sumB*sumB))
	if denominator == 0 {
		return 0
	}
	return (count*sumAB - sumA*sumB) / denominator
}

// DailyPresenceSeries maps a symptom name onto a 0/1 indicator per
// calendar day across the trailing window, oldest day first.
func DailyPresenceSeries(records []models.SymptomRecord, name string, windowDays int, now time.Time, location *time.Location) []float64 {
	if windowDays <= 0 {
		windowDays = DefaultTrendWindowDays
	}

	presentDays := make(map[string]bool)
	for _, record := range records {
		if record.Name != name {
			continue
		}
		presentDays[DateAtLocation(record.Date, location).Format("2006-01-02")] = true
	}

	windowStart, _ := TrailingWindow(now, windowDays, location)
	series := make([]float64, 0, windowDays)
	for offset := 0; offset < windowDays; offset++ {
		day := windowStart.AddDate(0, 0, offset).Format("2006-01-02")
		if presentDays[day] {
			series = append(series, 1)
		} else {
			series = append(series, 0)
		}
	}
	return series
}

func MeaningfulSymptomCorrelations(records []models.SymptomRecord, windowDays int, now time.Time, location *time.Location) []SymptomCorrelation {
	names := make([]string, 0)
	seen := make(map[string]struct{})
	for _, record := range records {
		if _, ok := seen[record.Name]; ok {
			continue
		}
		seen[record.Name] = struct{}{}
		names = append(names, record.Name)
	}
	sort.Strings(names)

	seriesByName := make(map[string][]float64, len(names))
	for _, name := range names {
		seriesByName[name] = DailyPresenceSeries(records, name, windowDays, now, location)
	}

	correlations := make([]SymptomCorrelation, 0)
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			coefficient := PearsonCorrelation(seriesByName[names[i]], seriesByName[names[j]])
			if math.Abs(coefficient) <= MeaningfulCorrelationThreshold {
				continue
			}
			correlations = append(correlations, SymptomCorrelation{
				NameA:       names[i],
				NameB:       names[j],
				Coefficient: coefficient,
			})
		}
	}

	sort.SliceStable(correlations, func(i, j int) bool {
		return math.Abs(correlations[i].Coefficient) > math.Abs(correlations[j].Coefficient)
	})
	return correlations
}

func meanFloat(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var total float64
	for _, value := range values {
		total += value
	}
	return total / float64(len(values))
}

func filterSymptoms(records []models.SymptomRecord, from time.Time, to time.Time, location *time.Location) []models.SymptomRecord {
	filtered := make([]models.SymptomRecord, 0, len(records))
	for _, record := range records {
		day := DateAtLocation(record.Date, location)
		if day.Before(from) || !day.Before(to) {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

func filterHormones(readings []models.HormoneReading, from time.Time, to time.Time, location *time.Location) []models.HormoneReading {
	filtered := make([]models.HormoneReading, 0, len(readings))
	for _, reading := range readings {
		day := DateAtLocation(reading.Date, location)
		if day.Before(from) || !day.Before(to) {
			continue
		}
		filtered = append(filtered, reading)
	}
	return filtered
}

func filterMoods(entries []models.MoodEntry, from time.Time, to time.Time, location *time.Location) []models.MoodEntry {
	filtered := make([]models.MoodEntry, 0, len(entries))
	for _, entry := range entries {
		day := DateAtLocation(entry.Date, location)
		if day.Before(from) || !day.Before(to) {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered
}
