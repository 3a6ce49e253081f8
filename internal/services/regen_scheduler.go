package services

import (
	"context"
	"sync"
	"time"
)

type InsightRegenerator interface {
	GenerateForUser(userID uint, now time.Time) (CycleSnapshot, TrendSummary, []Insight, error)
}

const DefaultRegenDebounce = time.Second

type regenResult struct {
	Snapshot    CycleSnapshot
	Insights    []Insight
	GeneratedAt time.Time
}

// RegenScheduler debounces change notifications per user and keeps only
// the freshest regeneration result. If a newer request starts while an
// older one is in flight, the older result is discarded on arrival.
type RegenScheduler struct {
	regenerator InsightRegenerator
	debounce    time.Duration

	mu          sync.Mutex
	timers      map[uint]*time.Timer
	generations map[uint]uint64
	results     map[uint]regenResult
	stopped     bool
}

func NewRegenScheduler(regenerator InsightRegenerator, debounce time.Duration) *RegenScheduler {
	if debounce <= 0 {
		debounce = DefaultRegenDebounce
	}
	return &RegenScheduler{
		regenerator: regenerator,
		debounce:    debounce,
		timers:      make(map[uint]*time.Timer),
		generations: make(map[uint]uint64),
		results:     make(map[uint]regenResult),
	}
}

func (scheduler *RegenScheduler) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()
		scheduler.stop()
	}()
}

// NotifyChange restarts the user's debounce timer, collapsing bursts of
// record writes into a single regeneration.
func (scheduler *RegenScheduler) NotifyChange(userID uint) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	if scheduler.stopped {
		return
	}

	if timer, ok := scheduler.timers[userID]; ok {
		timer.Stop()
	}
	scheduler.timers[userID] = time.AfterFunc(scheduler.debounce, func() {
		scheduler.regenerate(userID)
	})
}

func (scheduler *RegenScheduler) Latest(userID uint) (CycleSnapshot, []Insight, time.Time, bool) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	result, ok := scheduler.results[userID]
	if !ok {
		return CycleSnapshot{}, nil, time.Time{}, false
	}
	return result.Snapshot, result.Insights, result.GeneratedAt, true
}

func (scheduler *RegenScheduler) regenerate(userID uint) {
	scheduler.mu.Lock()
	if scheduler.stopped {
		scheduler.mu.Unlock()
		return
	}
	scheduler.generations[userID]++
	generation := scheduler.generations[userID]
	delete(scheduler.timers, userID)
	scheduler.mu.Unlock()

	now := time.Now()
	snapshot, _, insights, err := scheduler.regenerator.GenerateForUser(userID, now)
	if err != nil {
		return
	}

	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	if scheduler.stopped || scheduler.generations[userID] != generation {
		// A newer regeneration superseded this one; drop the stale result.
		return
	}
	scheduler.results[userID] = regenResult{
		Snapshot:    snapshot,
		Insights:    insights,
		GeneratedAt: now,
	}
}

func (scheduler *RegenScheduler) stop() {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	scheduler.stopped = true
	for userID, timer := range scheduler.timers {
		timer.Stop()
		delete(scheduler.timers, userID)
	}
}
