package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atamiles/vlures-bench/internal/config"
)

func testJudgeConfig(baseURL string) config.JudgeConfig {
	return config.JudgeConfig{
		BaseURL:            baseURL,
		Model:              "gemini-1.5-pro-latest",
		Temperature:        0.0,
		MaxTokens:          50,
		TimeoutSeconds:     10,
		RateLimitPerMinute: 6000,
	}
}

func TestGenerateContentSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/gemini-1.5-pro-latest:generateContent" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("key"); got != "judge-key" {
			t.Errorf("Unexpected key param %q", got)
		}

		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if req.GenerationConfig.MaxOutputTokens != 50 {
			t.Errorf("Expected maxOutputTokens 50, got %d", req.GenerationConfig.MaxOutputTokens)
		}
		if len(req.SafetySettings) != 4 {
			t.Errorf("Expected 4 safety settings, got %d", len(req.SafetySettings))
		}
		for _, s := range req.SafetySettings {
			if s.Threshold != "BLOCK_ONLY_HIGH" {
				t.Errorf("Unexpected threshold %q for %s", s.Threshold, s.Category)
			}
		}

		fmt.Fprint(w, `{"candidates": [{"content": {"parts": [{"text": "  {\"score\": 85}\n"}]}}]}`)
	}))
	defer server.Close()

	client := NewJudgeClient(testJudgeConfig(server.URL), "judge-key", testLogger())
	text, err := client.GenerateContent(context.Background(), "Rate this response.")
	if err != nil {
		t.Fatalf("GenerateContent failed: %v", err)
	}
	if text != `{"score": 85}` {
		t.Errorf("Expected trimmed candidate text, got %q", text)
	}
}

func TestGenerateContentServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, `{"error": {"code": 503, "message": "model overloaded", "status": "UNAVAILABLE"}}`)
	}))
	defer server.Close()

	client := NewJudgeClient(testJudgeConfig(server.URL), "judge-key", testLogger())
	_, err := client.GenerateContent(context.Background(), "Rate this response.")
	if err == nil {
		t.Fatal("Expected error for 503 response")
	}
	if !IsRetryable(err) {
		t.Errorf("Expected 503 to be retryable, got %v", err)
	}
}

func TestGenerateContentNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"candidates": []}`)
	}))
	defer server.Close()

	client := NewJudgeClient(testJudgeConfig(server.URL), "judge-key", testLogger())
	_, err := client.GenerateContent(context.Background(), "Rate this response.")
	if err == nil {
		t.Fatal("Expected error for empty candidates")
	}
}
