package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"warehouse/internal/service"
)

type fakeStats struct {
	service.StatisticsService
	refreshes atomic.Int32
	err       error
}

func (f *fakeStats) Refresh(context.Context) (*service.ImportOrderStatistics, error) {
	f.refreshes.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &service.ImportOrderStatistics{TotalOrders: 3, TotalValue: "10.00"}, nil
}

func TestNewRejectsInvalidSchedule(t *testing.T) {
	_, err := New(map[string]Job{"bad": {Schedule: "every now and then", Run: func(context.Context) error { return nil }}})
	if err == nil {
		t.Fatal("expected error for invalid schedule")
	}
}

func TestRunNow(t *testing.T) {
	stats := &fakeStats{}
	s, err := New(DefaultJobs("@every 1h", stats))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := s.RunNow(StatisticsRefreshJob); err != nil {
		t.Fatalf("RunNow: %v", err)
	}
	if stats.refreshes.Load() != 1 {
		t.Errorf("refreshes = %d", stats.refreshes.Load())
	}
	if err := s.RunNow("missing"); err == nil {
		t.Error("expected error for unknown job")
	}

	stats.err = errors.New("db down")
	if err := s.RunNow(StatisticsRefreshJob); err == nil {
		t.Error("expected refresh error to surface")
	}
}

func TestScheduledExecution(t *testing.T) {
	var runs atomic.Int32
	s, err := New(map[string]Job{
		"tick": {Schedule: "@every 1s", Run: func(context.Context) error { runs.Add(1); return nil }},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s.Start()
	deadline := time.Now().Add(3 * time.Second)
	for runs.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)

	if runs.Load() == 0 {
		t.Fatal("job never ran")
	}
	if got := s.Names(); len(got) != 1 || got[0] != "tick" {
		t.Errorf("names = %v", got)
	}
}
