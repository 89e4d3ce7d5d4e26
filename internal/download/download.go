package download

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/atamiles/vlures-bench/internal/api"
	"github.com/atamiles/vlures-bench/internal/config"
	"github.com/atamiles/vlures-bench/internal/dataset"
	"github.com/atamiles/vlures-bench/internal/metrics"
	"github.com/atamiles/vlures-bench/internal/pipeline"
	"github.com/atamiles/vlures-bench/pkg/models"
)

// Downloader mirrors a hosted dataset's images to the local data layout.
// Runs are restartable: existing files are skipped, and a file only stays on
// disk once it has decoded as a real image, so an interrupted run never
// leaves corrupt entries behind.
type Downloader struct {
	provider   *dataset.HubProvider
	httpClient *http.Client
	cfg        config.DownloadConfig
	logger     *slog.Logger
	collector  *metrics.Collector
	retry      pipeline.Policy
}

// NewDownloader creates a downloader for the configured dataset repository.
func NewDownloader(cfg config.DownloadConfig, retry config.RetryConfig, logger *slog.Logger, collector *metrics.Collector) *Downloader {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	return &Downloader{
		provider:   dataset.NewHubProvider(cfg.DatasetRepo, timeout, logger),
		httpClient: &http.Client{Timeout: timeout},
		cfg:        cfg,
		logger:     logger,
		collector:  collector,
		retry:      pipeline.PolicyFromConfig(retry),
	}
}

// WithProvider overrides the hub provider, for tests.
func (d *Downloader) WithProvider(p *dataset.HubProvider) *Downloader {
	d.provider = p
	return d
}

// Run downloads every split of the dataset into dataDir. Each split lands in
// <dataDir>/<split>/images/. Item failures are logged and skipped; only
// enumeration failures abort the run.
func (d *Downloader) Run(ctx context.Context, dataDir string) (models.RunStats, error) {
	stats := models.RunStats{StartTime: time.Now()}

	splits, err := d.provider.Splits(ctx)
	if err != nil {
		return stats, err
	}
	d.logger.Info("Dataset splits discovered", "repo", d.cfg.DatasetRepo, "splits", len(splits))

	for _, split := range splits {
		imageDir := dataset.ImagesDir(dataDir, split.Split)
		if err := os.MkdirAll(imageDir, 0755); err != nil {
			return stats, fmt.Errorf("failed to create image dir %s: %w", imageDir, err)
		}

		items, err := d.provider.Items(ctx, split, imageDir)
		if err != nil {
			return stats, err
		}
		d.logger.Info("Downloading split",
			"split", split.Split,
			"items", len(items),
			"workers", d.cfg.Workers)

		d.collector.SetActiveWorkers("download", d.cfg.Workers)
		dispatchStats := pipeline.Dispatch(ctx, items, d.cfg.Workers,
			fmt.Sprintf("Downloading %s images", split.Split), d.logger,
			func(ctx context.Context, item models.DownloadItem) pipeline.JobResult {
				err := d.fetchOne(ctx, item)
				status := "success"
				if err != nil {
					status = "error"
				}
				d.collector.IncrementItem("download", status)
				return pipeline.JobResult{ID: item.ID, Err: err}
			})
		d.collector.SetActiveWorkers("download", 0)

		stats.Total += dispatchStats.Total
		stats.Succeeded += dispatchStats.Succeeded
		stats.Failed += dispatchStats.Failed

		if ctx.Err() != nil {
			stats.Finish()
			return stats, ctx.Err()
		}
	}

	stats.Finish()
	return stats, nil
}

// fetchOne downloads and verifies a single image, retrying transient
// failures within the shared retry budget. A corrupt payload is not
// retried: the hosted file itself is bad, so another fetch returns the
// same bytes.
func (d *Downloader) fetchOne(ctx context.Context, item models.DownloadItem) error {
	if _, err := os.Stat(item.Path); err == nil {
		// Already downloaded on a previous run.
		return nil
	}

	attempts := 0
	_, err := pipeline.Do(ctx, d.retry, d.logger, fmt.Sprintf("download %s", item.ID), api.IsRetryable,
		func(ctx context.Context) (struct{}, error) {
			attempts++
			if attempts > 1 {
				d.collector.IncrementRetry("download")
			}
			return struct{}{}, d.download(ctx, item)
		})
	return err
}

// download performs one fetch attempt.
func (d *Downloader) download(ctx context.Context, item models.DownloadItem) error {
	req, err := http.NewRequestWithContext(ctx, "GET", item.URL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", item.URL, err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return &api.APIError{
			Message:   fmt.Sprintf("failed to download %s: %v", item.URL, err),
			Retryable: true,
		}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			d.logger.Warn("Failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return &api.APIError{
			Message:    fmt.Sprintf("download of %s failed", item.URL),
			StatusCode: resp.StatusCode,
			Retryable:  api.IsStatusCodeRetryable(resp.StatusCode),
		}
	}

	// Write to a temp file and verify before the final path exists, so a
	// crash mid-write cannot leave a partial file that a later run would
	// skip as already downloaded.
	tempPath := item.Path + ".tmp"
	f, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tempPath, err)
	}
	n, copyErr := io.Copy(f, resp.Body)
	closeErr := f.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(tempPath)
		if copyErr != nil {
			return fmt.Errorf("failed to write %s: %w", tempPath, copyErr)
		}
		return fmt.Errorf("failed to close %s: %w", tempPath, closeErr)
	}
	d.collector.AddDownloadBytes(n)

	if err := verifyImage(tempPath); err != nil {
		_ = os.Remove(tempPath)
		d.logger.Warn("Corrupted image downloaded, deleting",
			"url", item.URL,
			"error", err)
		return fmt.Errorf("corrupt image from %s: %w", item.URL, err)
	}

	if err := os.Rename(tempPath, item.Path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to move %s into place: %w", tempPath, err)
	}
	return nil
}

// verifyImage checks that a file decodes as a known image format.
func verifyImage(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, _, err := image.DecodeConfig(f); err != nil {
		return fmt.Errorf("not a valid image (%s): %w", filepath.Base(path), err)
	}
	return nil
}
