package inference

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/atamiles/vlures-bench/internal/api"
	"github.com/atamiles/vlures-bench/internal/checkpoint"
	"github.com/atamiles/vlures-bench/internal/config"
	"github.com/atamiles/vlures-bench/internal/metrics"
	"github.com/atamiles/vlures-bench/pkg/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fakeVLM returns canned responses and optionally fails a number of times for
// prompts containing a marker string.
type fakeVLM struct {
	mu           sync.Mutex
	calls        int
	failMarker   string
	failuresLeft int
	failErr      error
	respond      func(call int) string
}

func (f *fakeVLM) ChatCompletion(ctx context.Context, messages []api.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	if f.failMarker != "" && f.failuresLeft > 0 && promptText(messages) != "" &&
		strings.Contains(promptText(messages), f.failMarker) {
		f.failuresLeft--
		return "", f.failErr
	}
	if f.respond != nil {
		return f.respond(f.calls), nil
	}
	return fmt.Sprintf("response %d", f.calls), nil
}

func promptText(messages []api.Message) string {
	for _, msg := range messages {
		parts, ok := msg.Content.([]api.ContentPart)
		if !ok {
			continue
		}
		for _, part := range parts {
			if part.Type == "text" {
				return part.Text
			}
		}
	}
	return ""
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := &config.Config{}
	cfg.Paths.DataDir = filepath.Join(root, "data")
	cfg.Paths.OutputDir = filepath.Join(root, "results")
	cfg.Paths.CheckpointDir = filepath.Join(root, "checkpoints")
	cfg.VLM.Model = "gpt-4o"
	cfg.VLM.MaxTokens = 1024
	cfg.VLM.BatchSize = 8
	cfg.VLM.Concurrency = 1
	cfg.Retry.MaxRetries = 3
	cfg.Retry.DelaySeconds = 0

	for _, dir := range []string{cfg.Paths.OutputDir, cfg.Paths.CheckpointDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}
	return cfg
}

// seedItems creates n images (and matching text files when withText) under
// the English data layout.
func seedItems(t *testing.T, dataDir string, n int, withText bool) {
	t.Helper()
	imageDir := filepath.Join(dataDir, "En", "images")
	if err := os.MkdirAll(imageDir, 0755); err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= n; i++ {
		img := filepath.Join(imageDir, fmt.Sprintf("%d.jpg", i))
		if err := os.WriteFile(img, []byte("jpegbytes"), 0644); err != nil {
			t.Fatal(err)
		}
		if withText {
			txt := filepath.Join(dataDir, "En", fmt.Sprintf("text%d.txt", i))
			if err := os.WriteFile(txt, []byte(fmt.Sprintf("article %d body", i)), 0644); err != nil {
				t.Fatal(err)
			}
		}
	}
}

func readOutput(t *testing.T, path string) ([]string, map[string]json.RawMessage) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	keys, entries, err := checkpoint.DecodeOrdered(data)
	if err != nil {
		t.Fatalf("Failed to decode output: %v", err)
	}
	return keys, entries
}

func TestRunImageTextRetriesThenFinalizes(t *testing.T) {
	cfg := testConfig(t)
	seedItems(t, cfg.Paths.DataDir, 3, true)

	// Item 2's prompt embeds its article text; fail it twice with a
	// retryable error before letting it through.
	client := &fakeVLM{
		failMarker:   "article 2 body",
		failuresLeft: 2,
		failErr:      &api.APIError{Message: "overloaded", StatusCode: 503, Retryable: true},
	}
	runner := NewRunner(cfg, client, testLogger(), metrics.NewCollector(testLogger()))

	scope := models.RunScope{Language: "English", Task: 6, Setting: models.SettingZeroShot, Model: "gpt-4o"}
	stats, err := runner.Run(context.Background(), scope)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if stats.Succeeded != 3 {
		t.Errorf("Expected 3 successes, got %d", stats.Succeeded)
	}
	if client.calls != 5 {
		t.Errorf("Expected 5 calls (3 items + 2 retries), got %d", client.calls)
	}

	outputPath := filepath.Join(cfg.Paths.OutputDir, scope.OutputFilename())
	keys, _ := readOutput(t, outputPath)
	if len(keys) != 3 {
		t.Fatalf("Expected 3 output entries, got %d", len(keys))
	}
	for i, want := range []string{"1", "2", "3"} {
		if keys[i] != want {
			t.Errorf("Expected key %s at position %d, got %s", want, i, keys[i])
		}
	}

	ckptPath := filepath.Join(cfg.Paths.CheckpointDir, checkpoint.CheckpointName(scope.OutputFilename()))
	if _, err := os.Stat(ckptPath); !os.IsNotExist(err) {
		t.Error("Checkpoint should be removed after a completed run")
	}
}

func TestRunImageOnlyRecordsBatchResponseForEveryItem(t *testing.T) {
	cfg := testConfig(t)
	cfg.VLM.BatchSize = 2
	seedItems(t, cfg.Paths.DataDir, 3, false)

	client := &fakeVLM{}
	runner := NewRunner(cfg, client, testLogger(), metrics.NewCollector(testLogger()))

	scope := models.RunScope{Language: "English", Task: 1, Setting: models.SettingZeroShot, Model: "gpt-4o"}
	stats, err := runner.Run(context.Background(), scope)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if client.calls != 2 {
		t.Errorf("Expected 2 batch calls for 3 items at batch size 2, got %d", client.calls)
	}
	if stats.Succeeded != 2 {
		t.Errorf("Expected 2 successful batches, got %d", stats.Succeeded)
	}

	_, entries := readOutput(t, filepath.Join(cfg.Paths.OutputDir, scope.OutputFilename()))
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}

	var first, second string
	if err := json.Unmarshal(entries["1"], &first); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(entries["2"], &second); err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("Items in one batch should share the batch response: %q vs %q", first, second)
	}
}

func TestRunRationalesSplitsResponse(t *testing.T) {
	cfg := testConfig(t)
	seedItems(t, cfg.Paths.DataDir, 1, false)

	client := &fakeVLM{respond: func(int) string {
		return "1. A tree by a river.\n\nYour Rationale: The branches and water are clearly visible."
	}}
	runner := NewRunner(cfg, client, testLogger(), metrics.NewCollector(testLogger()))

	scope := models.RunScope{Language: "English", Task: 1, Setting: models.SettingZeroShotRationales, Model: "gpt-4o"}
	if _, err := runner.Run(context.Background(), scope); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	_, entries := readOutput(t, filepath.Join(cfg.Paths.OutputDir, scope.OutputFilename()))
	var record map[string]string
	if err := json.Unmarshal(entries["1"], &record); err != nil {
		t.Fatalf("Failed to decode record: %v", err)
	}
	if record["id"] != "1" {
		t.Errorf("Unexpected id %q", record["id"])
	}
	if record["Task_1"] != "1. A tree by a river." {
		t.Errorf("Unexpected analysis %q", record["Task_1"])
	}
	if record["Rationale_1"] != "The branches and water are clearly visible." {
		t.Errorf("Unexpected rationale %q", record["Rationale_1"])
	}
}

func TestRunResumesFromCheckpoint(t *testing.T) {
	cfg := testConfig(t)
	cfg.VLM.BatchSize = 1
	seedItems(t, cfg.Paths.DataDir, 3, false)

	scope := models.RunScope{Language: "English", Task: 1, Setting: models.SettingZeroShot, Model: "gpt-4o"}
	ckptPath := filepath.Join(cfg.Paths.CheckpointDir, checkpoint.CheckpointName(scope.OutputFilename()))
	outputPath := filepath.Join(cfg.Paths.OutputDir, scope.OutputFilename())

	// Simulate an interrupted run that already processed item 1.
	store, err := checkpoint.Load(ckptPath, outputPath, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Put("1", "earlier response"); err != nil {
		t.Fatal(err)
	}
	if err := store.Flush(); err != nil {
		t.Fatal(err)
	}

	client := &fakeVLM{}
	runner := NewRunner(cfg, client, testLogger(), metrics.NewCollector(testLogger()))
	stats, err := runner.Run(context.Background(), scope)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if stats.Skipped != 1 {
		t.Errorf("Expected 1 skipped item, got %d", stats.Skipped)
	}
	if client.calls != 2 {
		t.Errorf("Expected 2 calls for the remaining items, got %d", client.calls)
	}

	keys, entries := readOutput(t, outputPath)
	if len(keys) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(keys))
	}
	var first string
	if err := json.Unmarshal(entries["1"], &first); err != nil {
		t.Fatal(err)
	}
	if first != "earlier response" {
		t.Errorf("Resumed run should keep the checkpointed response, got %q", first)
	}
}

func TestRunSkipsItemsWithMissingText(t *testing.T) {
	cfg := testConfig(t)
	seedItems(t, cfg.Paths.DataDir, 3, true)
	if err := os.Remove(filepath.Join(cfg.Paths.DataDir, "En", "text2.txt")); err != nil {
		t.Fatal(err)
	}

	client := &fakeVLM{}
	runner := NewRunner(cfg, client, testLogger(), metrics.NewCollector(testLogger()))

	scope := models.RunScope{Language: "English", Task: 7, Setting: models.SettingZeroShot, Model: "gpt-4o"}
	if _, err := runner.Run(context.Background(), scope); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if client.calls != 2 {
		t.Errorf("Expected 2 calls, got %d", client.calls)
	}

	keys, _ := readOutput(t, filepath.Join(cfg.Paths.OutputDir, scope.OutputFilename()))
	if len(keys) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(keys))
	}
}

func TestRunNonRetryableFailureDoesNotBlockOthers(t *testing.T) {
	cfg := testConfig(t)
	seedItems(t, cfg.Paths.DataDir, 3, true)

	client := &fakeVLM{
		failMarker:   "article 2 body",
		failuresLeft: 1,
		failErr:      &api.APIError{Message: "bad request", StatusCode: 400, Retryable: false},
	}
	runner := NewRunner(cfg, client, testLogger(), metrics.NewCollector(testLogger()))

	scope := models.RunScope{Language: "English", Task: 6, Setting: models.SettingZeroShot, Model: "gpt-4o"}
	stats, err := runner.Run(context.Background(), scope)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if stats.Failed != 1 {
		t.Errorf("Expected 1 failed item, got %d", stats.Failed)
	}
	if stats.Succeeded != 2 {
		t.Errorf("Expected 2 successes, got %d", stats.Succeeded)
	}
	if client.calls != 3 {
		t.Errorf("Expected 3 calls with no retry of the 400, got %d", client.calls)
	}

	keys, _ := readOutput(t, filepath.Join(cfg.Paths.OutputDir, scope.OutputFilename()))
	if len(keys) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(keys))
	}
}

func TestRunIsNoOpWhenAlreadyFinalized(t *testing.T) {
	cfg := testConfig(t)
	seedItems(t, cfg.Paths.DataDir, 2, false)

	client := &fakeVLM{}
	runner := NewRunner(cfg, client, testLogger(), metrics.NewCollector(testLogger()))

	scope := models.RunScope{Language: "English", Task: 1, Setting: models.SettingZeroShot, Model: "gpt-4o"}
	if _, err := runner.Run(context.Background(), scope); err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	firstCalls := client.calls

	outputPath := filepath.Join(cfg.Paths.OutputDir, scope.OutputFilename())
	before, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatal(err)
	}

	// Re-running a finalized scope must not touch the API or the output.
	if _, err := runner.Run(context.Background(), scope); err != nil {
		t.Fatalf("Second run failed: %v", err)
	}
	if client.calls != firstCalls {
		t.Errorf("Finalized run made %d extra API calls", client.calls-firstCalls)
	}
	after, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("Finalized output was rewritten")
	}
}

func TestRunRejectsUnknownTask(t *testing.T) {
	cfg := testConfig(t)
	client := &fakeVLM{}
	runner := NewRunner(cfg, client, testLogger(), metrics.NewCollector(testLogger()))

	scope := models.RunScope{Language: "English", Task: 9, Setting: models.SettingZeroShot, Model: "gpt-4o"}
	if _, err := runner.Run(context.Background(), scope); err == nil {
		t.Error("Expected error for task 9")
	}
}
