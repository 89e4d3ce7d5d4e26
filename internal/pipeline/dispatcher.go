package pipeline

import (
	"context"
	"log/slog"
	"sync"

	"github.com/schollz/progressbar/v3"
)

// JobResult carries one job's outcome back to the collector.
type JobResult struct {
	ID  string
	Err error
}

// Stats summarizes one Dispatch run.
type Stats struct {
	Total     int
	Succeeded int
	Failed    int
}

// Dispatch fans jobs out over a bounded worker pool and collects results with
// a progress bar. A failing job is logged and counted but never stops its
// siblings; cancellation of ctx stops workers from picking up new jobs.
//
// process does the actual work for one job and reports its outcome. Side
// effects (checkpoint writes, downloads) happen inside process; the
// dispatcher only owns concurrency and accounting.
func Dispatch[J any](
	ctx context.Context,
	jobs []J,
	workers int,
	label string,
	logger *slog.Logger,
	process func(ctx context.Context, job J) JobResult,
) Stats {
	stats := Stats{Total: len(jobs)}
	if len(jobs) == 0 {
		return stats
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	jobChan := make(chan J, workers)
	results := make(chan JobResult, workers)

	var workerWg sync.WaitGroup
	for i := 0; i < workers; i++ {
		workerWg.Add(1)
		go func(workerID int) {
			defer workerWg.Done()
			workerLogger := logger.With("worker_id", workerID)
			for job := range jobChan {
				select {
				case <-ctx.Done():
					workerLogger.Debug("Worker cancelled", "label", label)
					return
				default:
				}
				results <- process(ctx, job)
			}
		}(i)
	}

	var collectorWg sync.WaitGroup
	collectorWg.Add(1)
	go func() {
		defer collectorWg.Done()
		bar := progressbar.Default(int64(len(jobs)), label)
		for result := range results {
			if result.Err != nil {
				logger.Error("Job failed",
					"label", label,
					"id", result.ID,
					"error", result.Err)
				stats.Failed++
			} else {
				stats.Succeeded++
			}
			_ = bar.Add(1)
		}
	}()

	for _, job := range jobs {
		select {
		case <-ctx.Done():
			// Stop feeding; in-flight jobs drain through the collector.
			goto done
		case jobChan <- job:
		}
	}
done:
	close(jobChan)
	workerWg.Wait()
	close(results)
	collectorWg.Wait()

	return stats
}
