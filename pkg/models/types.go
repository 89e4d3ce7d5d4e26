package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// PromptSetting identifies the prompting strategy used for an inference run.
type PromptSetting string

const (
	// SettingZeroShot asks for the task analysis only.
	SettingZeroShot PromptSetting = "zeroshot_no_rationales"
	// SettingZeroShotRationales asks for a step-by-step analysis followed by
	// an explicit rationale section.
	SettingZeroShotRationales PromptSetting = "zeroshot_with_rationales"
)

// RunScope identifies one independent pipeline invocation. Two scopes that
// differ in any field never share checkpoint or output state.
type RunScope struct {
	Language string
	Task     int
	Setting  PromptSetting
	Model    string
}

// OutputFilename returns the canonical result filename for this scope,
// shared between the inference output and the checkpoint/scores names
// derived from it.
func (s RunScope) OutputFilename() string {
	return fmt.Sprintf("%s_%s_task%d_%s.json", s.Model, s.Language, s.Task, s.Setting)
}

func (s RunScope) String() string {
	return fmt.Sprintf("%s/%s/task%d/%s", s.Model, s.Language, s.Task, s.Setting)
}

// WorkItem is one unit of inference work: a local image plus, for the
// image-text tasks, its paired text file.
type WorkItem struct {
	ID        string
	ImagePath string
	TextPath  string
}

// DownloadItem is one unit of download work.
type DownloadItem struct {
	ID  string
	URL string
	// Destination path on disk.
	Path string
}

// RationaleRecord is the per-item output of a with-rationales inference run.
// The JSON keys embed the task number ("Task_3", "Rationale_3"), matching the
// published benchmark output schema.
type RationaleRecord struct {
	ID        string
	Task      int
	Analysis  string
	Rationale string
}

func (r RationaleRecord) MarshalJSON() ([]byte, error) {
	m := map[string]string{
		"id": r.ID,
		fmt.Sprintf("Task_%d", r.Task):      r.Analysis,
		fmt.Sprintf("Rationale_%d", r.Task): r.Rationale,
	}
	return json.Marshal(m)
}

// ScoreRecord is the per-item output of the judge evaluation pipeline.
type ScoreRecord struct {
	Score float64 `json:"score"`
}

// RunStats accumulates per-pipeline counters for the final summary.
type RunStats struct {
	StartTime time.Time
	EndTime   time.Time
	Total     int
	Succeeded int
	Failed    int
	// Defaulted counts judge items that exhausted retries and received the
	// configured fallback score.
	Defaulted int
	Skipped   int
	Duration  time.Duration
}

// Finish stamps the end time and total duration.
func (s *RunStats) Finish() {
	s.EndTime = time.Now()
	s.Duration = s.EndTime.Sub(s.StartTime)
}
