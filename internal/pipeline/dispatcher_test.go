package pipeline

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestDispatchProcessesAllJobs(t *testing.T) {
	jobs := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	var mu sync.Mutex
	seen := make(map[int]bool)

	stats := Dispatch(context.Background(), jobs, 3, "test", testLogger(),
		func(ctx context.Context, job int) JobResult {
			mu.Lock()
			seen[job] = true
			mu.Unlock()
			return JobResult{}
		})

	if stats.Total != 10 || stats.Succeeded != 10 || stats.Failed != 0 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if len(seen) != 10 {
		t.Errorf("Expected 10 jobs processed, got %d", len(seen))
	}
}

func TestDispatchIsolatesFailures(t *testing.T) {
	jobs := []int{1, 2, 3, 4, 5}

	stats := Dispatch(context.Background(), jobs, 2, "test", testLogger(),
		func(ctx context.Context, job int) JobResult {
			if job%2 == 0 {
				return JobResult{Err: errors.New("boom")}
			}
			return JobResult{}
		})

	if stats.Succeeded != 3 {
		t.Errorf("Expected 3 successes, got %d", stats.Succeeded)
	}
	if stats.Failed != 2 {
		t.Errorf("Expected 2 failures, got %d", stats.Failed)
	}
}

func TestDispatchBoundsConcurrency(t *testing.T) {
	jobs := make([]int, 50)
	var active, peak atomic.Int64

	Dispatch(context.Background(), jobs, 4, "test", testLogger(),
		func(ctx context.Context, job int) JobResult {
			n := active.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			active.Add(-1)
			return JobResult{}
		})

	if peak.Load() > 4 {
		t.Errorf("Concurrency exceeded bound: peak %d workers", peak.Load())
	}
}

func TestDispatchEmptyJobs(t *testing.T) {
	stats := Dispatch(context.Background(), nil, 4, "test", testLogger(),
		func(ctx context.Context, job int) JobResult {
			t.Error("process called with no jobs")
			return JobResult{}
		})
	if stats.Total != 0 {
		t.Errorf("Expected zero total, got %d", stats.Total)
	}
}

func TestDispatchStopsFeedingOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	jobs := make([]int, 100)
	var processed atomic.Int64

	Dispatch(ctx, jobs, 1, "test", testLogger(),
		func(ctx context.Context, job int) JobResult {
			if processed.Add(1) == 3 {
				cancel()
			}
			return JobResult{}
		})

	if n := processed.Load(); n >= 100 {
		t.Errorf("Expected early stop after cancellation, processed %d", n)
	}
}
