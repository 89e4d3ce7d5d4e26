package evaluation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/atamiles/vlures-bench/internal/checkpoint"
	"github.com/atamiles/vlures-bench/internal/config"
	"github.com/atamiles/vlures-bench/internal/dataset"
	"github.com/atamiles/vlures-bench/internal/metrics"
	"github.com/atamiles/vlures-bench/internal/pipeline"
	"github.com/atamiles/vlures-bench/internal/prompts"
	"github.com/atamiles/vlures-bench/pkg/models"
)

// ScoresPrefix is prepended to an inference output filename to derive its
// scores filename.
const ScoresPrefix = "scores_"

// JudgeCaller is the API surface the evaluator needs from the judge client.
type JudgeCaller interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Evaluator scores inference outputs with an LLM judge. Every response gets
// a 0-100 quality score; items that exhaust their retry budget receive the
// configured default score rather than holding up the file, since a partial
// scores file is useless for aggregate statistics.
type Evaluator struct {
	cfg       *config.Config
	client    JudgeCaller
	logger    *slog.Logger
	collector *metrics.Collector
	retry     pipeline.Policy
}

// NewEvaluator creates an evaluator.
func NewEvaluator(cfg *config.Config, client JudgeCaller, logger *slog.Logger, collector *metrics.Collector) *Evaluator {
	return &Evaluator{
		cfg:       cfg,
		client:    client,
		logger:    logger,
		collector: collector,
		retry:     pipeline.PolicyFromConfig(cfg.Retry),
	}
}

// Run scores every inference output file matching the model and language.
func (e *Evaluator) Run(ctx context.Context, model, language string) (models.RunStats, error) {
	stats := models.RunStats{StartTime: time.Now()}

	pattern := filepath.Join(e.cfg.Paths.OutputDir, fmt.Sprintf("%s_%s_*.json", model, language))
	files, err := filepath.Glob(pattern)
	if err != nil {
		return stats, fmt.Errorf("bad glob pattern %q: %w", pattern, err)
	}
	if len(files) == 0 {
		return stats, fmt.Errorf("no inference outputs found for %s/%s in %s", model, language, e.cfg.Paths.OutputDir)
	}
	e.logger.Info("Starting evaluation run",
		"model", model,
		"language", language,
		"files", len(files))

	for _, file := range files {
		fileStats, err := e.evaluateFile(ctx, file)
		stats.Total += fileStats.Total
		stats.Succeeded += fileStats.Succeeded
		stats.Failed += fileStats.Failed
		stats.Defaulted += fileStats.Defaulted
		stats.Skipped += fileStats.Skipped
		if err != nil {
			stats.Finish()
			return stats, err
		}
	}

	stats.Finish()
	return stats, nil
}

// judgeJob is one response awaiting a score.
type judgeJob struct {
	id     string
	prompt string
}

func (e *Evaluator) evaluateFile(ctx context.Context, file string) (models.RunStats, error) {
	var stats models.RunStats

	scope, err := ParseFilename(file)
	if err != nil {
		return stats, err
	}
	e.logger.Info("Evaluating file", "file", filepath.Base(file), "scope", scope.String())

	catalog, err := prompts.ForSetting(scope.Setting)
	if err != nil {
		return stats, err
	}
	lang, err := catalog.Language(scope.Language)
	if err != nil {
		return stats, err
	}

	base := filepath.Base(file)
	checkpointPath := filepath.Join(e.cfg.Paths.CheckpointDir, checkpoint.CheckpointName(ScoresPrefix+base))
	scoresPath := filepath.Join(e.cfg.Paths.EvalOutputDir, ScoresPrefix+base)

	// A finalized scores file with no checkpoint means this file is done;
	// re-scoring it would re-spend the judge budget and overwrite it.
	if checkpoint.Finalized(checkpointPath, scoresPath) {
		e.logger.Info("File already evaluated, nothing to do",
			"file", base,
			"scores", scoresPath)
		return stats, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return stats, fmt.Errorf("failed to read inference output %s: %w", file, err)
	}
	ids, responses, err := checkpoint.DecodeOrdered(data)
	if err != nil {
		return stats, fmt.Errorf("malformed inference output %s: %w", file, err)
	}
	stats.Total = len(ids)

	store, err := checkpoint.Load(checkpointPath, scoresPath, e.logger)
	if err != nil {
		return stats, err
	}

	var jobs []judgeJob
	for _, id := range ids {
		if store.Has(id) {
			stats.Skipped++
			continue
		}
		response, err := responseText(responses[id], scope.Task)
		if err != nil {
			e.logger.Warn("Skipping malformed response entry", "id", id, "error", err)
			stats.Skipped++
			continue
		}

		textContent, err := dataset.ReadText(dataset.TextPath(e.cfg.Paths.DataDir, lang.Code, id))
		if err != nil {
			e.logger.Warn("Skipping item with unreadable text file", "id", id, "error", err)
			stats.Skipped++
			continue
		}

		prompt, err := prompts.JudgePrompt(prompts.JudgeInput{
			ID:            id,
			Response:      response,
			Task:          scope.Task,
			Language:      scope.Language,
			Setting:       scope.Setting,
			TextContent:   textContent,
			ImageFilename: id + ".jpg",
		})
		if err != nil {
			return stats, err
		}
		jobs = append(jobs, judgeJob{id: id, prompt: prompt})
	}

	if len(jobs) == 0 {
		e.logger.Info("All items already evaluated", "file", base)
		return stats, store.Finalize()
	}

	e.collector.SetActiveWorkers("judge", e.cfg.Judge.Concurrency)
	defer e.collector.SetActiveWorkers("judge", 0)

	var defaulted errorCounter
	dispatchStats := pipeline.Dispatch(ctx, jobs, e.cfg.Judge.Concurrency,
		fmt.Sprintf("Scoring task %d", scope.Task), e.logger,
		func(ctx context.Context, job judgeJob) pipeline.JobResult {
			score, wasDefaulted, err := e.scoreOne(ctx, job)
			if err != nil {
				e.collector.IncrementItem("judge", "error")
				return pipeline.JobResult{ID: job.id, Err: err}
			}
			if wasDefaulted {
				defaulted.inc()
				e.collector.IncrementItem("judge", "defaulted")
			} else {
				e.collector.IncrementItem("judge", "success")
			}
			if err := store.PutAndMaybeFlush(job.id, models.ScoreRecord{Score: score}, e.cfg.Judge.FlushInterval); err != nil {
				return pipeline.JobResult{ID: job.id, Err: err}
			}
			return pipeline.JobResult{ID: job.id}
		})

	stats.Succeeded = dispatchStats.Succeeded
	stats.Failed = dispatchStats.Failed
	stats.Defaulted = defaulted.value()

	if ctx.Err() != nil {
		if err := store.Flush(); err != nil {
			e.logger.Error("Failed to flush checkpoint on shutdown", "error", err)
		}
		return stats, ctx.Err()
	}

	return stats, store.Finalize()
}

// scoreOne runs the judge for one item. Retries exhausted means the default
// score, logged loudly: a default is a data-quality event the operator
// should know about, not a silent fill-in.
func (e *Evaluator) scoreOne(ctx context.Context, job judgeJob) (score float64, wasDefaulted bool, err error) {
	attempts := 0
	score, err = pipeline.Do(ctx, e.retry, e.logger, fmt.Sprintf("judge item %s", job.id), nil,
		func(ctx context.Context) (float64, error) {
			attempts++
			if attempts > 1 {
				e.collector.IncrementRetry("judge")
			}
			start := time.Now()
			response, err := e.client.GenerateContent(ctx, job.prompt)
			e.collector.RecordAPIRequest("judge", time.Since(start), err == nil)
			if err != nil {
				return 0, err
			}
			return ParseScore(response)
		})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return 0, false, err
		}
		e.logger.Warn("Retries exhausted, assigning default score",
			"id", job.id,
			"default_score", e.cfg.Judge.DefaultScore,
			"error", err)
		return e.cfg.Judge.DefaultScore, true, nil
	}
	return score, false, nil
}

// errorCounter is a goroutine-safe counter for worker callbacks.
type errorCounter struct {
	n atomic.Int64
}

func (c *errorCounter) inc() {
	c.n.Add(1)
}

func (c *errorCounter) value() int {
	return int(c.n.Load())
}

// responseText extracts the scoreable response from one inference entry:
// the raw string for plain zero-shot outputs, the Task_<n> field for
// with-rationales outputs.
func responseText(raw json.RawMessage, task int) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var obj map[string]string
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", fmt.Errorf("entry is neither a string nor an object: %w", err)
	}
	key := fmt.Sprintf("Task_%d", task)
	response, ok := obj[key]
	if !ok {
		return "", fmt.Errorf("entry has no %s field", key)
	}
	return response, nil
}
