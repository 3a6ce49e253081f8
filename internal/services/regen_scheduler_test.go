package services

import (
	"context"
	"sync"
	"testing"
	"time"
)

type countingRegenerator struct {
	mu    sync.Mutex
	calls int
	delay time.Duration
}

func (fake *countingRegenerator) GenerateForUser(userID uint, now time.Time) (CycleSnapshot, TrendSummary, []Insight, error) {
	if fake.delay > 0 {
		time.Sleep(fake.delay)
	}
	fake.mu.Lock()
	fake.calls++
	calls := fake.calls
	fake.mu.Unlock()

	return CycleSnapshot{HasData: true, CycleDay: calls}, TrendSummary{}, []Insight{{Title: "pass", Confidence: 0.9}}, nil
}

func (fake *countingRegenerator) callCount() int {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	return fake.calls
}

func waitForResult(t *testing.T, scheduler *RegenScheduler, userID uint) (CycleSnapshot, []Insight, time.Time) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if snapshot, insights, generatedAt, ok := scheduler.Latest(userID); ok {
			return snapshot, insights, generatedAt
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("regeneration result never arrived")
	return CycleSnapshot{}, nil, time.Time{}
}

func TestRegenSchedulerDebouncesBursts(t *testing.T) {
	t.Parallel()

	fake := &countingRegenerator{}
	scheduler := NewRegenScheduler(fake, 30*time.Millisecond)

	for i := 0; i < 5; i++ {
		scheduler.NotifyChange(7)
	}

	snapshot, insights, generatedAt := waitForResult(t, scheduler, 7)
	time.Sleep(60 * time.Millisecond)

	if got := fake.callCount(); got != 1 {
		t.Fatalf("expected a burst to collapse into one regeneration, got %d", got)
	}
	if !snapshot.HasData || len(insights) != 1 {
		t.Fatalf("expected cached pass result, got %+v / %d insights", snapshot, len(insights))
	}
	if generatedAt.IsZero() {
		t.Fatalf("expected a generation timestamp")
	}
}

func TestRegenSchedulerTracksUsersIndependently(t *testing.T) {
	t.Parallel()

	fake := &countingRegenerator{}
	scheduler := NewRegenScheduler(fake, 10*time.Millisecond)

	scheduler.NotifyChange(1)
	scheduler.NotifyChange(2)

	waitForResult(t, scheduler, 1)
	waitForResult(t, scheduler, 2)

	if got := fake.callCount(); got != 2 {
		t.Fatalf("expected one regeneration per user, got %d", got)
	}
	if _, _, _, ok := scheduler.Latest(3); ok {
		t.Fatalf("expected no cached result for an unnotified user")
	}
}

func TestRegenSchedulerStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	fake := &countingRegenerator{}
	scheduler := NewRegenScheduler(fake, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)
	cancel()

	// Give the stop goroutine a moment to run, then verify notifications
	// are dropped.
	time.Sleep(30 * time.Millisecond)
	scheduler.NotifyChange(9)
	time.Sleep(50 * time.Millisecond)

	if got := fake.callCount(); got != 0 {
		t.Fatalf("expected no regenerations after shutdown, got %d", got)
	}
	if _, _, _, ok := scheduler.Latest(9); ok {
		t.Fatalf("expected no result after shutdown")
	}
}
