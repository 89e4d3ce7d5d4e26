package config

import (
	"fmt"
	"os"
)

// Config represents the complete application configuration.
type Config struct {
	Paths    PathsConfig    `toml:"paths"`
	VLM      EndpointConfig `toml:"vlm"`
	Judge    JudgeConfig    `toml:"judge"`
	Download DownloadConfig `toml:"download"`
	Retry    RetryConfig    `toml:"retry"`
}

// PathsConfig holds the filesystem layout shared by all pipelines.
type PathsConfig struct {
	DataDir       string `toml:"data_dir"`
	OutputDir     string `toml:"output_dir"`
	CheckpointDir string `toml:"checkpoint_dir"`
	EvalOutputDir string `toml:"eval_output_dir"`
	LogDir        string `toml:"log_dir"`
}

// EndpointConfig describes the VLM endpoint used by the inference pipeline.
type EndpointConfig struct {
	BaseURL            string  `toml:"base_url"`
	Model              string  `toml:"model"`
	MaxTokens          int     `toml:"max_tokens"`
	Temperature        float64 `toml:"temperature"`
	TimeoutSeconds     int     `toml:"timeout_seconds"`
	BatchSize          int     `toml:"batch_size"`
	Concurrency        int     `toml:"concurrency"`
	RateLimitPerMinute int     `toml:"rate_limit_per_minute"`
}

// JudgeConfig describes the LLM-as-judge endpoint and scoring policy.
type JudgeConfig struct {
	BaseURL            string  `toml:"base_url"`
	Model              string  `toml:"model"`
	MaxTokens          int     `toml:"max_tokens"`
	Temperature        float64 `toml:"temperature"`
	TimeoutSeconds     int     `toml:"timeout_seconds"`
	Concurrency        int     `toml:"concurrency"`
	RateLimitPerMinute int     `toml:"rate_limit_per_minute"`
	// FlushInterval is how many accumulated scores trigger a checkpoint flush.
	FlushInterval int `toml:"flush_interval"`
	// DefaultScore is substituted when an item exhausts its retry budget.
	DefaultScore float64 `toml:"default_score"`
}

// DownloadConfig describes the dataset download pipeline.
type DownloadConfig struct {
	DatasetRepo    string `toml:"dataset_repo"`
	Workers        int    `toml:"workers"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// RetryConfig holds the shared retry policy for remote calls.
type RetryConfig struct {
	MaxRetries   int `toml:"max_retries"`
	DelaySeconds int `toml:"delay_seconds"`
}

const (
	// MaxWorkers is the maximum allowed worker count for any pipeline.
	MaxWorkers = 256
	// MaxTaskNumber is the highest benchmark task number.
	MaxTaskNumber = 8
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Paths.DataDir == "" {
		return fmt.Errorf("paths.data_dir is required")
	}
	if c.Paths.OutputDir == "" {
		return fmt.Errorf("paths.output_dir is required")
	}
	if c.Paths.CheckpointDir == "" {
		return fmt.Errorf("paths.checkpoint_dir is required")
	}
	if c.VLM.BatchSize < 1 {
		return fmt.Errorf("vlm.batch_size must be at least 1 (got %d)", c.VLM.BatchSize)
	}
	if c.VLM.Concurrency < 1 || c.VLM.Concurrency > MaxWorkers {
		return fmt.Errorf("vlm.concurrency must be between 1 and %d (got %d)", MaxWorkers, c.VLM.Concurrency)
	}
	if c.VLM.Temperature < 0 || c.VLM.Temperature > 2 {
		return fmt.Errorf("vlm.temperature must be between 0 and 2 (got %.2f)", c.VLM.Temperature)
	}
	if c.VLM.MaxTokens < 1 {
		return fmt.Errorf("vlm.max_tokens must be at least 1 (got %d)", c.VLM.MaxTokens)
	}
	if c.Judge.Concurrency < 1 || c.Judge.Concurrency > MaxWorkers {
		return fmt.Errorf("judge.concurrency must be between 1 and %d (got %d)", MaxWorkers, c.Judge.Concurrency)
	}
	if c.Judge.FlushInterval < 1 {
		return fmt.Errorf("judge.flush_interval must be at least 1 (got %d)", c.Judge.FlushInterval)
	}
	if c.Judge.DefaultScore < 0 || c.Judge.DefaultScore > 100 {
		return fmt.Errorf("judge.default_score must be between 0 and 100 (got %.1f)", c.Judge.DefaultScore)
	}
	if c.Download.Workers < 1 || c.Download.Workers > MaxWorkers {
		return fmt.Errorf("download.workers must be between 1 and %d (got %d)", MaxWorkers, c.Download.Workers)
	}
	if c.Retry.MaxRetries < 0 {
		return fmt.Errorf("retry.max_retries must not be negative (got %d)", c.Retry.MaxRetries)
	}
	if c.Retry.DelaySeconds < 0 {
		return fmt.Errorf("retry.delay_seconds must not be negative (got %d)", c.Retry.DelaySeconds)
	}
	return nil
}

// Secrets holds sensitive credentials loaded from environment variables.
type Secrets struct {
	// VLMAPIKey authenticates against the OpenAI-compatible VLM endpoint.
	VLMAPIKey string
	// JudgeAPIKey authenticates against the judge endpoint.
	JudgeAPIKey string
}

// LoadSecrets loads credentials from environment variables.
func LoadSecrets() *Secrets {
	return &Secrets{
		VLMAPIKey:   os.Getenv("OPENAI_API_KEY"),
		JudgeAPIKey: os.Getenv("GOOGLE_API_KEY"),
	}
}
