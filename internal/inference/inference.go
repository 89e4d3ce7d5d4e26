package inference

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/atamiles/vlures-bench/internal/api"
	"github.com/atamiles/vlures-bench/internal/checkpoint"
	"github.com/atamiles/vlures-bench/internal/config"
	"github.com/atamiles/vlures-bench/internal/dataset"
	"github.com/atamiles/vlures-bench/internal/metrics"
	"github.com/atamiles/vlures-bench/internal/pipeline"
	"github.com/atamiles/vlures-bench/internal/prompts"
	"github.com/atamiles/vlures-bench/pkg/models"
)

// VLMCaller is the API surface the runner needs from the VLM client.
type VLMCaller interface {
	ChatCompletion(ctx context.Context, messages []api.Message) (string, error)
}

// Runner drives one inference run: one model, one language, one task, one
// prompting setting. Image-only tasks (1-5) send a whole batch of images in
// a single request and record the consolidated response against every id in
// the batch; image-text tasks (6-8) go one item at a time since each prompt
// embeds that item's text.
type Runner struct {
	cfg       *config.Config
	client    VLMCaller
	logger    *slog.Logger
	collector *metrics.Collector
	retry     pipeline.Policy
}

// NewRunner creates an inference runner.
func NewRunner(cfg *config.Config, client VLMCaller, logger *slog.Logger, collector *metrics.Collector) *Runner {
	return &Runner{
		cfg:       cfg,
		client:    client,
		logger:    logger,
		collector: collector,
		retry:     pipeline.PolicyFromConfig(cfg.Retry),
	}
}

// Run executes the inference pipeline for one scope, resuming from any
// existing checkpoint. Item failures that survive the retry budget are
// skipped so one bad item never blocks the rest of a long run.
func (r *Runner) Run(ctx context.Context, scope models.RunScope) (models.RunStats, error) {
	stats := models.RunStats{StartTime: time.Now()}

	catalog, err := prompts.ForSetting(scope.Setting)
	if err != nil {
		return stats, err
	}
	if err := catalog.Validate(); err != nil {
		return stats, fmt.Errorf("invalid prompt catalog: %w", err)
	}
	lang, err := catalog.Language(scope.Language)
	if err != nil {
		return stats, err
	}
	if scope.Task < 1 || scope.Task > prompts.NumTasks {
		return stats, fmt.Errorf("task must be between 1 and %d (got %d)", prompts.NumTasks, scope.Task)
	}

	outputName := scope.OutputFilename()
	checkpointPath := filepath.Join(r.cfg.Paths.CheckpointDir, checkpoint.CheckpointName(outputName))
	outputPath := filepath.Join(r.cfg.Paths.OutputDir, outputName)

	// A finalized run leaves the output and no checkpoint; re-running it
	// must not re-spend the API budget or overwrite the finished file.
	if checkpoint.Finalized(checkpointPath, outputPath) {
		r.logger.Info("Run already complete, nothing to do",
			"scope", scope.String(),
			"output", outputPath)
		stats.Finish()
		return stats, nil
	}

	store, err := checkpoint.Load(checkpointPath, outputPath, r.logger)
	if err != nil {
		return stats, err
	}

	items, err := dataset.Enumerate(r.cfg.Paths.DataDir, lang.Code)
	if err != nil {
		return stats, err
	}

	pending := items[:0:0]
	for _, item := range items {
		if !store.Has(item.ID) {
			pending = append(pending, item)
		}
	}
	stats.Total = len(items)
	stats.Skipped = len(items) - len(pending)

	r.logger.Info("Starting inference run",
		"scope", scope.String(),
		"items", len(items),
		"already_completed", stats.Skipped)

	if len(pending) == 0 {
		r.logger.Info("All items already processed", "scope", scope.String())
		return r.finish(stats, store)
	}

	var dispatchStats pipeline.Stats
	if prompts.IsImageTextTask(scope.Task) {
		dispatchStats, err = r.runImageText(ctx, scope, catalog, pending, store)
	} else {
		dispatchStats, err = r.runImageOnly(ctx, scope, catalog, lang, pending, store)
	}
	stats.Succeeded = dispatchStats.Succeeded
	stats.Failed = dispatchStats.Failed
	if err != nil {
		// Cancelled mid-run: keep the checkpoint for the next invocation.
		if flushErr := store.Flush(); flushErr != nil {
			r.logger.Error("Failed to flush checkpoint on shutdown", "error", flushErr)
		}
		stats.Finish()
		return stats, err
	}

	return r.finish(stats, store)
}

func (r *Runner) finish(stats models.RunStats, store *checkpoint.Store) (models.RunStats, error) {
	if err := store.Finalize(); err != nil {
		stats.Finish()
		return stats, err
	}
	stats.Finish()
	return stats, nil
}

// runImageOnly processes tasks 1-5 in batches. Every image in a batch rides
// in one request; the single consolidated response is recorded for each id.
func (r *Runner) runImageOnly(
	ctx context.Context,
	scope models.RunScope,
	catalog *prompts.Catalog,
	lang prompts.LanguageConfig,
	pending []models.WorkItem,
	store *checkpoint.Store,
) (pipeline.Stats, error) {
	prompt, err := catalog.ImageOnlyPrompt(scope.Language, scope.Task)
	if err != nil {
		return pipeline.Stats{}, err
	}

	batchSize := r.cfg.VLM.BatchSize
	batches := make([][]models.WorkItem, 0, (len(pending)+batchSize-1)/batchSize)
	for i := 0; i < len(pending); i += batchSize {
		end := min(i+batchSize, len(pending))
		batches = append(batches, pending[i:end])
	}

	r.collector.SetActiveWorkers("inference", r.cfg.VLM.Concurrency)
	defer r.collector.SetActiveWorkers("inference", 0)

	stats := pipeline.Dispatch(ctx, batches, r.cfg.VLM.Concurrency,
		fmt.Sprintf("Task %d batches", scope.Task), r.logger,
		func(ctx context.Context, batch []models.WorkItem) pipeline.JobResult {
			id := batchID(batch)
			if err := r.processBatch(ctx, batch, lang.SystemPrompt, prompt, scope, store); err != nil {
				r.collector.IncrementItem("inference", "error")
				return pipeline.JobResult{ID: id, Err: err}
			}
			r.collector.IncrementItem("inference", "success")
			return pipeline.JobResult{ID: id}
		})

	if ctx.Err() != nil {
		return stats, ctx.Err()
	}
	return stats, nil
}

func batchID(batch []models.WorkItem) string {
	if len(batch) == 0 {
		return ""
	}
	return fmt.Sprintf("%s..%s", batch[0].ID, batch[len(batch)-1].ID)
}

func (r *Runner) processBatch(
	ctx context.Context,
	batch []models.WorkItem,
	systemPrompt, prompt string,
	scope models.RunScope,
	store *checkpoint.Store,
) error {
	parts := []api.ContentPart{api.TextPart(prompt)}
	for _, item := range batch {
		dataURI, err := api.EncodeImageFile(item.ImagePath)
		if err != nil {
			r.logger.Warn("Failed to encode image, excluding from batch",
				"id", item.ID,
				"error", err)
			continue
		}
		parts = append(parts, api.ImagePart(dataURI))
	}
	if len(parts) == 1 {
		return fmt.Errorf("no readable images in batch %s", batchID(batch))
	}

	messages := []api.Message{
		api.SystemMessage(systemPrompt),
		api.UserMessage(parts...),
	}

	response, err := r.callWithRetry(ctx, fmt.Sprintf("batch %s", batchID(batch)), messages)
	if err != nil {
		return err
	}

	for _, item := range batch {
		if err := r.record(store, item.ID, scope, response); err != nil {
			return err
		}
	}
	if err := store.Flush(); err != nil {
		return err
	}
	r.collector.IncrementCheckpointFlush("inference")
	return nil
}

// runImageText processes tasks 6-8 one item at a time. Items whose paired
// text file is missing are skipped with a warning.
func (r *Runner) runImageText(
	ctx context.Context,
	scope models.RunScope,
	catalog *prompts.Catalog,
	pending []models.WorkItem,
	store *checkpoint.Store,
) (pipeline.Stats, error) {
	lang, err := catalog.Language(scope.Language)
	if err != nil {
		return pipeline.Stats{}, err
	}

	r.collector.SetActiveWorkers("inference", r.cfg.VLM.Concurrency)
	defer r.collector.SetActiveWorkers("inference", 0)

	stats := pipeline.Dispatch(ctx, pending, r.cfg.VLM.Concurrency,
		fmt.Sprintf("Task %d items", scope.Task), r.logger,
		func(ctx context.Context, item models.WorkItem) pipeline.JobResult {
			if err := r.processItem(ctx, item, lang.SystemPrompt, catalog, scope, store); err != nil {
				r.collector.IncrementItem("inference", "error")
				return pipeline.JobResult{ID: item.ID, Err: err}
			}
			r.collector.IncrementItem("inference", "success")
			return pipeline.JobResult{ID: item.ID}
		})

	if ctx.Err() != nil {
		return stats, ctx.Err()
	}
	return stats, nil
}

func (r *Runner) processItem(
	ctx context.Context,
	item models.WorkItem,
	systemPrompt string,
	catalog *prompts.Catalog,
	scope models.RunScope,
	store *checkpoint.Store,
) error {
	if _, err := os.Stat(item.TextPath); err != nil {
		r.logger.Warn("Text file not found for image, skipping",
			"id", item.ID,
			"path", item.TextPath)
		return nil
	}
	textContent, err := dataset.ReadText(item.TextPath)
	if err != nil {
		return err
	}

	prompt, err := catalog.ImageTextPrompt(scope.Language, scope.Task, textContent)
	if err != nil {
		return err
	}
	dataURI, err := api.EncodeImageFile(item.ImagePath)
	if err != nil {
		return err
	}

	messages := []api.Message{
		api.SystemMessage(systemPrompt),
		api.UserMessage(api.TextPart(prompt), api.ImagePart(dataURI)),
	}

	response, err := r.callWithRetry(ctx, fmt.Sprintf("item %s", item.ID), messages)
	if err != nil {
		return err
	}

	if err := r.record(store, item.ID, scope, response); err != nil {
		return err
	}
	if err := store.Flush(); err != nil {
		return err
	}
	r.collector.IncrementCheckpointFlush("inference")
	return nil
}

// record writes one item's result to the store in the shape its setting
// calls for: the raw response for plain zero-shot, a split analysis plus
// rationale otherwise.
func (r *Runner) record(store *checkpoint.Store, id string, scope models.RunScope, response string) error {
	if scope.Setting == models.SettingZeroShotRationales {
		analysis, rationale := SplitRationale(response)
		return store.Put(id, models.RationaleRecord{
			ID:        id,
			Task:      scope.Task,
			Analysis:  analysis,
			Rationale: rationale,
		})
	}
	return store.Put(id, response)
}

func (r *Runner) callWithRetry(ctx context.Context, label string, messages []api.Message) (string, error) {
	attempts := 0
	return pipeline.Do(ctx, r.retry, r.logger, label, api.IsRetryable,
		func(ctx context.Context) (string, error) {
			attempts++
			if attempts > 1 {
				r.collector.IncrementRetry("inference")
			}
			start := time.Now()
			response, err := r.client.ChatCompletion(ctx, messages)
			r.collector.RecordAPIRequest("vlm", time.Since(start), err == nil)
			return response, err
		})
}
