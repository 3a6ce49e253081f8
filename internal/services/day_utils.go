package services

import "time"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// TrailingWindow returns the half-open day range [start, end) covering the
// last windowDays calendar days up to and including the day of now.
func TrailingWindow(now time.Time, windowDays int, location *time.Location) (time.Time, time.Time) {
	if windowDays <= 0 {
		windowDays = DefaultTrendWindowDays
	}
	today := DateAtLocation(now, location)
	end := today.AddDate(0, 0, 1)
	start := end.AddDate(0, 0, -windowDays)
	return start, end
}

func daysBetween(from time.Time, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
