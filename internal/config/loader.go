package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses the configuration file. A missing file is not an
// error: every field has a default matching the published benchmark setup, so
// the tool runs without any config at all. Defaults are populated before
// parsing, so an explicit zero in the file (default_score = 0, max_retries
// = 0) is honored rather than promoted back to the default.
func Load(configPath string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err):
		// Defaults only.
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a fully populated configuration matching the
// published benchmark setup.
func defaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			DataDir:       "data",
			OutputDir:     "results/inference_outputs",
			CheckpointDir: "results/checkpoints",
			EvalOutputDir: "results/evaluation_scores",
			LogDir:        "results/logs",
		},
		VLM: EndpointConfig{
			BaseURL:            "https://api.openai.com/v1",
			Model:              "gpt-4o",
			MaxTokens:          1024,
			TimeoutSeconds:     60,
			BatchSize:          8,
			Concurrency:        10,
			RateLimitPerMinute: 60,
		},
		Judge: JudgeConfig{
			BaseURL:            "https://generativelanguage.googleapis.com/v1beta",
			Model:              "gemini-1.5-pro-latest",
			MaxTokens:          50,
			TimeoutSeconds:     60,
			Concurrency:        10,
			RateLimitPerMinute: 60,
			FlushInterval:      20,
			DefaultScore:       50,
		},
		Download: DownloadConfig{
			DatasetRepo:    "atamiles/VLURes",
			Workers:        16,
			TimeoutSeconds: 15,
		},
		Retry: RetryConfig{
			MaxRetries:   3,
			DelaySeconds: 5,
		},
	}
}

// LoadEnvFile loads KEY=VALUE pairs from a file into the environment.
// Comments and blank lines are skipped; existing variables are overwritten.
func LoadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}
	return nil
}
