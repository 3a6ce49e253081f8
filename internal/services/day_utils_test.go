package services

import (
	"testing"
	"time"
)

func TestDateAtLocation(t *testing.T) {
	t.Parallel()

	moment := time.Date(2026, 8, 15, 23, 45, 12, 0, time.UTC)
	day := DateAtLocation(moment, time.UTC)

	if day.Hour() != 0 || day.Minute() != 0 || day.Second() != 0 {
		t.Fatalf("expected midnight, got %s", day)
	}
	if day.Format("2006-01-02") != "2026-08-15" {
		t.Fatalf("expected 2026-08-15, got %s", day.Format("2006-01-02"))
	}
}

func TestTrailingWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 15, 14, 30, 0, 0, time.UTC)
	start, end := TrailingWindow(now, 30, time.UTC)

	if start.Format("2006-01-02") != "2026-07-17" {
		t.Fatalf("expected window start 2026-07-17, got %s", start.Format("2006-01-02"))
	}
	if end.Format("2006-01-02") != "2026-08-16" {
		t.Fatalf("expected window end 2026-08-16, got %s", end.Format("2006-01-02"))
	}

	today := DateAtLocation(now, time.UTC)
	if today.Before(start) || !today.Before(end) {
		t.Fatalf("expected today inside the half-open window")
	}
}

func TestTrailingWindowDefaultsBadInput(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	start, end := TrailingWindow(now, 0, time.UTC)

	if got := int(end.Sub(start).Hours() / 24); got != DefaultTrendWindowDays {
		t.Fatalf("expected %d-day default window, got %d", DefaultTrendWindowDays, got)
	}
}

func TestDayRange(t *testing.T) {
	t.Parallel()

	start, end := DayRange(time.Date(2026, 8, 15, 18, 0, 0, 0, time.UTC), time.UTC)
	if start.Format("2006-01-02") != "2026-08-15" || end.Format("2006-01-02") != "2026-08-16" {
		t.Fatalf("expected [2026-08-15, 2026-08-16), got [%s, %s)", start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
}
