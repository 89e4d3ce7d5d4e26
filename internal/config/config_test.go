package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.VLM.Model != "gpt-4o" {
		t.Errorf("Expected default VLM model gpt-4o, got %s", cfg.VLM.Model)
	}
	if cfg.VLM.BatchSize != 8 {
		t.Errorf("Expected default batch size 8, got %d", cfg.VLM.BatchSize)
	}
	if cfg.Judge.Model != "gemini-1.5-pro-latest" {
		t.Errorf("Expected default judge model, got %s", cfg.Judge.Model)
	}
	if cfg.Judge.MaxTokens != 50 {
		t.Errorf("Expected judge max_tokens 50, got %d", cfg.Judge.MaxTokens)
	}
	if cfg.Judge.DefaultScore != 50 {
		t.Errorf("Expected default score 50, got %v", cfg.Judge.DefaultScore)
	}
	if cfg.Download.DatasetRepo != "atamiles/VLURes" {
		t.Errorf("Expected default dataset repo, got %s", cfg.Download.DatasetRepo)
	}
	if cfg.Download.Workers != 16 {
		t.Errorf("Expected 16 download workers, got %d", cfg.Download.Workers)
	}
	if cfg.Retry.MaxRetries != 3 || cfg.Retry.DelaySeconds != 5 {
		t.Errorf("Unexpected retry defaults: %+v", cfg.Retry)
	}
}

func TestLoadOverridesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[vlm]
model = "gpt-4o-mini"
batch_size = 4

[judge]
default_score = 40

[download]
workers = 4
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.VLM.Model != "gpt-4o-mini" {
		t.Errorf("Expected overridden model, got %s", cfg.VLM.Model)
	}
	if cfg.VLM.BatchSize != 4 {
		t.Errorf("Expected batch size 4, got %d", cfg.VLM.BatchSize)
	}
	if cfg.Judge.DefaultScore != 40 {
		t.Errorf("Expected default score 40, got %v", cfg.Judge.DefaultScore)
	}
	// Untouched fields still get defaults.
	if cfg.VLM.MaxTokens != 1024 {
		t.Errorf("Expected default max_tokens 1024, got %d", cfg.VLM.MaxTokens)
	}
}

func TestLoadHonorsExplicitZeros(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[judge]
default_score = 0

[retry]
max_retries = 0
delay_seconds = 0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Judge.DefaultScore != 0 {
		t.Errorf("Explicit default_score = 0 promoted to %v", cfg.Judge.DefaultScore)
	}
	if cfg.Retry.MaxRetries != 0 {
		t.Errorf("Explicit max_retries = 0 promoted to %d", cfg.Retry.MaxRetries)
	}
	if cfg.Retry.DelaySeconds != 0 {
		t.Errorf("Explicit delay_seconds = 0 promoted to %d", cfg.Retry.DelaySeconds)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("vlm = {{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected error for invalid TOML")
	}
}

func TestValidate(t *testing.T) {
	valid := defaultConfig

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"zero batch size", func(c *Config) { c.VLM.BatchSize = 0 }, true},
		{"excessive concurrency", func(c *Config) { c.VLM.Concurrency = MaxWorkers + 1 }, true},
		{"temperature out of range", func(c *Config) { c.VLM.Temperature = 2.5 }, true},
		{"default score out of range", func(c *Config) { c.Judge.DefaultScore = 101 }, true},
		{"negative retries", func(c *Config) { c.Retry.MaxRetries = -1 }, true},
		{"missing data dir", func(c *Config) { c.Paths.DataDir = "" }, true},
		{"zero flush interval", func(c *Config) { c.Judge.FlushInterval = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := `
# credentials
OPENAI_API_KEY=sk-test-123
GOOGLE_API_KEY="quoted-value"

NOT_A_PAIR
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("OPENAI_API_KEY", "preexisting")
	t.Setenv("GOOGLE_API_KEY", "")

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile failed: %v", err)
	}
	if got := os.Getenv("OPENAI_API_KEY"); got != "sk-test-123" {
		t.Errorf("Expected OPENAI_API_KEY overwritten, got %q", got)
	}
	if got := os.Getenv("GOOGLE_API_KEY"); got != "quoted-value" {
		t.Errorf("Expected quotes stripped, got %q", got)
	}
}

func TestLoadEnvFileMissing(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), ".env")); err == nil {
		t.Error("Expected error for missing env file")
	}
}

func TestLoadSecrets(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "vlm-key")
	t.Setenv("GOOGLE_API_KEY", "judge-key")

	secrets := LoadSecrets()
	if secrets.VLMAPIKey != "vlm-key" {
		t.Errorf("Unexpected VLM key %q", secrets.VLMAPIKey)
	}
	if secrets.JudgeAPIKey != "judge-key" {
		t.Errorf("Unexpected judge key %q", secrets.JudgeAPIKey)
	}
}
